// Package journal records every line of player input, append-only.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded line of player input.
type Entry struct {
	SessionID uuid.UUID `json:"session_id"`
	Time      time.Time `json:"time"`
	Line      string    `json:"line"`
}
