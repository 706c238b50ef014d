package sink

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Disk saves datasets as files under a base directory.
type Disk struct {
	dir string
}

// NewDisk prepares dir (creating it if needed) and returns a sink writing into it.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("NewDisk(): failed to create directory %s: %w", dir, err)
	}
	return &Disk{dir: dir}, nil
}

// Dir is the directory this sink writes into.
func (d *Disk) Dir() string {
	return d.dir
}

// Sub returns a sink rooted at a child directory, e.g. one per user.
func (d *Disk) Sub(name string) (*Disk, error) {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return nil, fmt.Errorf("Disk.Sub(): invalid directory name %q", name)
	}
	return NewDisk(filepath.Join(d.dir, base))
}

// Save writes data to <dir>/<filename>, replacing an existing file atomically.
// Only the base name of filename is used.
func (d *Disk) Save(ctx context.Context, data []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("Disk.Save(): invalid filename %q", filename)
	}
	finalPath := filepath.Join(d.dir, name)

	tmp, err := os.CreateTemp(d.dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("Disk.Save(): failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("Disk.Save(): failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("Disk.Save(): failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("Disk.Save(): failed to chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("Disk.Save(): failed to move %s into place: %w", name, err)
	}

	log.Printf("Disk.Save(): Saved %s (%d bytes)", finalPath, len(data))
	return finalPath, nil
}
