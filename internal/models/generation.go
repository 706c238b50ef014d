package models

import "time"

// Generation is an archived dataset produced for a signed-in user.
type Generation struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	Rows      int       `json:"rows"`
	Seed      int64     `json:"seed"`
	Filename  string    `json:"filename"`
	FilePath  string    `json:"-"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
