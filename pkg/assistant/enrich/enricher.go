package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"modern-assistant-be/internal/pkg/logger"
	"modern-assistant-be/pkg/connector"

	gocache "github.com/patrickmn/go-cache"
)

const (
	maxRecentEmails   = 5
	upcomingDays      = 7
	snapshotCacheTTL  = 1 * time.Minute
	cacheKeyEmail     = "snapshot:email"
	cacheKeyCalendar  = "snapshot:calendar"
	cacheSweepPeriod  = 5 * time.Minute
	dateDisplayFormat = "Mon, 02 Jan 2006 15:04"
)

var emailKeywords = []string{
	"email", "mail", "inbox",
	"بريد", "رسائل", "إيميل",
}

var calendarKeywords = []string{
	"calendar", "meeting", "schedule", "event",
	"تقويم", "اجتماع", "موعد", "جدول",
}

// EmailSummary is the email half of a snapshot.
type EmailSummary struct {
	UnreadCount int
	Items       []connector.EmailItem
}

// CalendarSummary is the calendar half of a snapshot.
type CalendarSummary struct {
	Items []connector.CalendarEvent
}

// Snapshot holds whatever external data was fetched for one turn.
// It lives for a single orchestration call.
type Snapshot struct {
	Email    *EmailSummary
	Calendar *CalendarSummary
}

type Enricher struct {
	email    connector.EmailClient
	calendar connector.CalendarClient
	cache    *gocache.Cache
	logger   logger.ILogger
}

func NewEnricher(email connector.EmailClient, calendar connector.CalendarClient, log logger.ILogger) *Enricher {
	return &Enricher{
		email:    email,
		calendar: calendar,
		cache:    gocache.New(snapshotCacheTTL, cacheSweepPeriod),
		logger:   log,
	}
}

// Build inspects the user message for topical keywords and returns a
// formatted context block plus the raw snapshot. Fetch failures are
// logged and the matching block is omitted; Build never returns an error.
func (e *Enricher) Build(ctx context.Context, message string) (string, *Snapshot) {
	if strings.TrimSpace(message) == "" {
		return "", &Snapshot{}
	}

	lowered := strings.ToLower(message)
	snapshot := &Snapshot{}
	var blocks []string

	if matchesAny(lowered, emailKeywords) {
		if summary := e.fetchEmail(ctx); summary != nil {
			snapshot.Email = summary
			blocks = append(blocks, formatEmailBlock(summary))
		}
	}

	if matchesAny(lowered, calendarKeywords) {
		if summary := e.fetchCalendar(ctx); summary != nil {
			snapshot.Calendar = summary
			blocks = append(blocks, formatCalendarBlock(summary))
		}
	}

	return strings.Join(blocks, "\n\n"), snapshot
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func (e *Enricher) fetchEmail(ctx context.Context) *EmailSummary {
	if e.email == nil {
		return nil
	}

	if cached, found := e.cache.Get(cacheKeyEmail); found {
		return cached.(*EmailSummary)
	}

	items, err := e.email.ListRecent(ctx, maxRecentEmails)
	if err != nil {
		e.logger.Warn("enrich", "email snapshot skipped", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	unread, err := e.email.UnreadCount(ctx)
	if err != nil {
		e.logger.Warn("enrich", "unread count skipped", map[string]interface{}{
			"error": err.Error(),
		})
		unread = 0
	}

	summary := &EmailSummary{
		UnreadCount: unread,
		Items:       items,
	}
	e.cache.Set(cacheKeyEmail, summary, snapshotCacheTTL)
	return summary
}

func (e *Enricher) fetchCalendar(ctx context.Context) *CalendarSummary {
	if e.calendar == nil {
		return nil
	}

	if cached, found := e.cache.Get(cacheKeyCalendar); found {
		return cached.(*CalendarSummary)
	}

	events, err := e.calendar.ListUpcoming(ctx, upcomingDays)
	if err != nil {
		e.logger.Warn("enrich", "calendar snapshot skipped", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	summary := &CalendarSummary{Items: events}
	e.cache.Set(cacheKeyCalendar, summary, snapshotCacheTTL)
	return summary
}

func formatEmailBlock(summary *EmailSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recent email (%d unread):\n", summary.UnreadCount))
	for i, item := range summary.Items {
		sb.WriteString(fmt.Sprintf("%d. From: %s | Subject: %s | Date: %s | %s\n",
			i+1, item.From, item.Subject, item.Date.Format(dateDisplayFormat), item.Snippet))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatCalendarBlock(summary *CalendarSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Upcoming calendar events (next %d days):\n", upcomingDays))
	if len(summary.Items) == 0 {
		sb.WriteString("No upcoming events.")
		return sb.String()
	}
	for i, ev := range summary.Items {
		line := fmt.Sprintf("%d. %s | Starts: %s", i+1, ev.Summary, ev.Start.Format(dateDisplayFormat))
		if ev.Location != "" {
			line += " | Location: " + ev.Location
		}
		if n := len(ev.AttendeeEmails); n > 0 {
			line += fmt.Sprintf(" | Attendees: %d", n)
		}
		sb.WriteString(line + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
