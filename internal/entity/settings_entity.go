package entity

import (
	"time"

	"github.com/google/uuid"
)

// Settings is a singleton: exactly one row exists, lazily created with
// defaults on first read.
type Settings struct {
	Id                 uuid.UUID
	AssistantName      string
	SystemInstructions string
	UpdatedAt          time.Time
}
