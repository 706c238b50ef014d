package sink

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "datasets")
	d, err := NewDisk(dir)
	require.NoError(t, err)

	path, err := d.Save(context.Background(), []byte("a,b\n1,2"), "weight_loss_dataset_1_rows.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "weight_loss_dataset_1_rows.csv"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestDiskSaveOverwrites(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = d.Save(context.Background(), []byte("first"), "x.csv")
	require.NoError(t, err)
	path, err := d.Save(context.Background(), []byte("second"), "x.csv")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestDiskSaveStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	d, err := NewDisk(dir)
	require.NoError(t, err)

	path, err := d.Save(context.Background(), []byte("x"), "../../escape.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), path)
}

func TestDiskSub(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	sub, err := d.Sub("alice")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.Dir(), "alice"), sub.Dir())

	info, err := os.Stat(sub.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = d.Sub("..")
	assert.Error(t, err)
}

func TestDiskSaveCancelled(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Save(ctx, []byte("x"), "x.csv")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriterSave(t *testing.T) {
	var buf bytes.Buffer
	loc, err := NewWriter(&buf).Save(context.Background(), []byte("h\nr"), "ignored.csv")
	require.NoError(t, err)
	assert.Equal(t, "-", loc)
	assert.Equal(t, "h\nr", buf.String())
}

type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterSaveIgnoresBrokenPipe(t *testing.T) {
	_, err := NewWriter(closedPipe{}).Save(context.Background(), []byte("x"), "x.csv")
	assert.NoError(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrPermission }

func TestWriterSaveReportsOtherErrors(t *testing.T) {
	_, err := NewWriter(failingWriter{}).Save(context.Background(), []byte("x"), "x.csv")
	assert.ErrorIs(t, err, os.ErrPermission)
}

var (
	_ Sink = (*Disk)(nil)
	_ Sink = (*Writer)(nil)
)
