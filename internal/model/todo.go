package model

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch is a partial update. Nil fields keep their current value.
type Patch struct {
	Text      *string
	Completed *bool
}

type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}
