// Package dataset ties generation, encoding and delivery together for the API and the CLI.
package dataset

import (
	"time"

	"WeightLossDataGenerator/internal/csvexport"
	"WeightLossDataGenerator/internal/generator"
	"WeightLossDataGenerator/internal/observability"
)

// Dataset is one encoded generation result.
type Dataset struct {
	Rows     int
	Seed     int64
	Filename string
	Data     []byte
}

// ResolveSeed returns *seed, or a fresh random seed when seed is nil.
func ResolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return generator.RandomSeed()
}

// Records generates rows records from seed. rows below 1 is treated as 1.
func Records(rows int, seed int64) []generator.Record {
	return generator.NewSeeded(seed).Generate(rows)
}

// Build generates and encodes a dataset, counting it against channel.
func Build(channel string, rows int, seed int64) Dataset {
	start := time.Now()
	rows = generator.NormalizeRowCount(rows)
	data := csvexport.Encode(Records(rows, seed))
	observability.RecordGeneration(channel, rows, time.Since(start))

	return Dataset{
		Rows:     rows,
		Seed:     seed,
		Filename: csvexport.Filename(rows),
		Data:     data,
	}
}
