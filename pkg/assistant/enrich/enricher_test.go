package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"modern-assistant-be/pkg/connector"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type fakeEmailClient struct {
	items  []connector.EmailItem
	unread int
	err    error
	calls  int
}

func (f *fakeEmailClient) ListRecent(ctx context.Context, max int) ([]connector.EmailItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) > max {
		return f.items[:max], nil
	}
	return f.items, nil
}

func (f *fakeEmailClient) UnreadCount(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.unread, nil
}

type fakeCalendarClient struct {
	events []connector.CalendarEvent
	err    error
	calls  int
}

func (f *fakeCalendarClient) ListUpcoming(ctx context.Context, days int) ([]connector.CalendarEvent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func newTestEnricher(email *fakeEmailClient, calendar *fakeCalendarClient) *Enricher {
	return NewEnricher(email, calendar, noopLogger{})
}

func TestBuildEmptyMessageSkipsEverything(t *testing.T) {
	email := &fakeEmailClient{}
	calendar := &fakeCalendarClient{}
	e := newTestEnricher(email, calendar)

	block, snapshot := e.Build(context.Background(), "   ")
	if block != "" {
		t.Errorf("expected empty block, got %q", block)
	}
	if snapshot.Email != nil || snapshot.Calendar != nil {
		t.Error("expected empty snapshot")
	}
	if email.calls != 0 || calendar.calls != 0 {
		t.Error("no clients should be called for blank input")
	}
}

func TestBuildNoKeywordsNoFetch(t *testing.T) {
	email := &fakeEmailClient{}
	calendar := &fakeCalendarClient{}
	e := newTestEnricher(email, calendar)

	block, _ := e.Build(context.Background(), "what is the weather today?")
	if block != "" {
		t.Errorf("expected empty block, got %q", block)
	}
	if email.calls != 0 || calendar.calls != 0 {
		t.Error("no clients should be called without topical keywords")
	}
}

func TestBuildEmailKeywordTriggersFetch(t *testing.T) {
	email := &fakeEmailClient{
		items: []connector.EmailItem{
			{From: "ceo@corp.com", Subject: "Q3 numbers", Date: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), Snippet: "see attached"},
		},
		unread: 3,
	}
	e := newTestEnricher(email, &fakeCalendarClient{})

	block, snapshot := e.Build(context.Background(), "Check my INBOX please")
	if !strings.Contains(block, "Recent email (3 unread):") {
		t.Errorf("missing email header: %q", block)
	}
	if !strings.Contains(block, "1. From: ceo@corp.com") {
		t.Errorf("missing numbered item: %q", block)
	}
	if snapshot.Email == nil || snapshot.Email.UnreadCount != 3 {
		t.Error("snapshot email summary missing")
	}
}

func TestBuildArabicKeywordTriggersFetch(t *testing.T) {
	email := &fakeEmailClient{unread: 1}
	e := newTestEnricher(email, &fakeCalendarClient{})

	block, _ := e.Build(context.Background(), "هل وصل بريد جديد؟")
	if !strings.Contains(block, "Recent email (1 unread):") {
		t.Errorf("arabic email keyword should trigger fetch: %q", block)
	}
	if email.calls != 1 {
		t.Errorf("expected 1 fetch, got %d", email.calls)
	}
}

func TestBuildCalendarBlockFormatting(t *testing.T) {
	calendar := &fakeCalendarClient{
		events: []connector.CalendarEvent{
			{
				Summary:        "Board Sync",
				Start:          time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
				Location:       "Room 4",
				AttendeeEmails: []string{"a@b.c", "d@e.f"},
			},
		},
	}
	e := newTestEnricher(&fakeEmailClient{}, calendar)

	block, snapshot := e.Build(context.Background(), "when is my next meeting?")
	if !strings.Contains(block, "1. Board Sync") {
		t.Errorf("missing event: %q", block)
	}
	if !strings.Contains(block, "Location: Room 4") {
		t.Errorf("missing location: %q", block)
	}
	if !strings.Contains(block, "Attendees: 2") {
		t.Errorf("missing attendee count: %q", block)
	}
	if snapshot.Calendar == nil || len(snapshot.Calendar.Items) != 1 {
		t.Error("snapshot calendar summary missing")
	}
}

func TestBuildEmptyCalendarSaysNoEvents(t *testing.T) {
	e := newTestEnricher(&fakeEmailClient{}, &fakeCalendarClient{})

	block, _ := e.Build(context.Background(), "anything on my schedule?")
	if !strings.Contains(block, "No upcoming events.") {
		t.Errorf("expected explicit no-events line: %q", block)
	}
}

func TestBuildFailureIsolation(t *testing.T) {
	email := &fakeEmailClient{err: connector.ErrNotConnected}
	calendar := &fakeCalendarClient{
		events: []connector.CalendarEvent{
			{Summary: "Standup", Start: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)},
		},
	}
	e := newTestEnricher(email, calendar)

	// Message triggers both keyword sets; only the calendar block survives.
	block, snapshot := e.Build(context.Background(), "any email about the next meeting?")
	if strings.Contains(block, "Recent email") {
		t.Errorf("email block must be omitted on failure: %q", block)
	}
	if !strings.Contains(block, "1. Standup") {
		t.Errorf("calendar block must be unaffected: %q", block)
	}
	if snapshot.Email != nil {
		t.Error("failed email fetch must not populate snapshot")
	}
}

func TestBuildGenericFailureAlsoSwallowed(t *testing.T) {
	calendar := &fakeCalendarClient{err: errors.New("http 503")}
	e := newTestEnricher(&fakeEmailClient{}, calendar)

	block, _ := e.Build(context.Background(), "what meetings do I have?")
	if block != "" {
		t.Errorf("any fetch failure must yield an empty block: %q", block)
	}
}

func TestBuildBothBlocksJoined(t *testing.T) {
	email := &fakeEmailClient{unread: 2}
	calendar := &fakeCalendarClient{}
	e := newTestEnricher(email, calendar)

	block, _ := e.Build(context.Background(), "check my mail and my calendar")
	if !strings.Contains(block, "Recent email (2 unread):") {
		t.Errorf("missing email block: %q", block)
	}
	if !strings.Contains(block, "No upcoming events.") {
		t.Errorf("missing calendar block: %q", block)
	}
	if !strings.Contains(block, "\n\n") {
		t.Errorf("blocks should be separated by a blank line: %q", block)
	}
}

func TestBuildUsesCachedSnapshot(t *testing.T) {
	email := &fakeEmailClient{unread: 5}
	e := newTestEnricher(email, &fakeCalendarClient{})

	e.Build(context.Background(), "inbox?")
	e.Build(context.Background(), "inbox again?")
	if email.calls != 1 {
		t.Errorf("second call within TTL should hit the cache, got %d fetches", email.calls)
	}
}
