package connector

import (
	"context"
	"errors"
	"time"
)

// ErrNotConnected means the integration has no usable credentials.
var ErrNotConnected = errors.New("connector: not connected")

type EmailItem struct {
	From    string
	Subject string
	Date    time.Time
	Snippet string
}

type CalendarEvent struct {
	Summary        string
	Start          time.Time
	Location       string
	AttendeeEmails []string
}

type EmailClient interface {
	ListRecent(ctx context.Context, max int) ([]EmailItem, error)
	UnreadCount(ctx context.Context) (int, error)
}

type CalendarClient interface {
	ListUpcoming(ctx context.Context, days int) ([]CalendarEvent, error)
}
