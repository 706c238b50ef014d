package dataset

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"WeightLossDataGenerator/internal/models"
	"WeightLossDataGenerator/internal/observability"
	"WeightLossDataGenerator/internal/sink"
	"WeightLossDataGenerator/internal/storage"
)

// Archiver keeps a copy of every dataset generated by a signed-in user and
// records it in the generation history.
type Archiver struct {
	root *sink.Disk
}

// NewArchiver stores archives under dir/<username>/.
func NewArchiver(dir string) (*Archiver, error) {
	root, err := sink.NewDisk(dir)
	if err != nil {
		return nil, err
	}
	return &Archiver{root: root}, nil
}

// Archive saves ds for username and returns the history entry.
func (a *Archiver) Archive(ctx context.Context, username string, ds Dataset) (models.Generation, error) {
	userID, err := storage.GetUserIDByUsername(username)
	if err != nil {
		observability.RecordArchiveFailure()
		return models.Generation{}, fmt.Errorf("Archive(): failed to look up user %s: %w", username, err)
	}

	userDir, err := a.root.Sub(username)
	if err != nil {
		observability.RecordArchiveFailure()
		return models.Generation{}, err
	}

	id := uuid.NewString()
	path, err := userDir.Save(ctx, ds.Data, id+"_"+ds.Filename)
	if err != nil {
		observability.RecordArchiveFailure()
		return models.Generation{}, err
	}

	g := models.Generation{
		ID:        id,
		UserID:    userID,
		Rows:      ds.Rows,
		Seed:      ds.Seed,
		Filename:  ds.Filename,
		FilePath:  path,
		SizeBytes: int64(len(ds.Data)),
		CreatedAt: time.Now().UTC(),
	}
	if err := storage.CreateGeneration(g); err != nil {
		observability.RecordArchiveFailure()
		return models.Generation{}, fmt.Errorf("Archive(): failed to record generation: %w", err)
	}

	log.Printf("Archive(): %s archived %d rows (seed %d) as %s", username, ds.Rows, ds.Seed, id)
	return g, nil
}
