package google

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"modern-assistant-be/pkg/connector"
)

type calendarEventsResponse struct {
	Items []struct {
		Summary  string `json:"summary"`
		Location string `json:"location"`
		Start    struct {
			DateTime string `json:"dateTime"`
			Date     string `json:"date"`
		} `json:"start"`
		Attendees []struct {
			Email string `json:"email"`
		} `json:"attendees"`
	} `json:"items"`
}

func (c *Client) ListUpcoming(ctx context.Context, days int) ([]connector.CalendarEvent, error) {
	if !c.connected() {
		return nil, connector.ErrNotConnected
	}

	now := time.Now()
	params := url.Values{}
	params.Set("timeMin", now.Format(time.RFC3339))
	params.Set("timeMax", now.AddDate(0, 0, days).Format(time.RFC3339))
	params.Set("singleEvents", "true")
	params.Set("orderBy", "startTime")

	eventsURL := fmt.Sprintf("%s/calendars/primary/events?%s", calendarBaseURL, params.Encode())
	var res calendarEventsResponse
	if err := c.getJSON(ctx, eventsURL, &res); err != nil {
		return nil, err
	}

	events := make([]connector.CalendarEvent, 0, len(res.Items))
	for _, item := range res.Items {
		event := connector.CalendarEvent{
			Summary:  item.Summary,
			Location: item.Location,
		}
		if item.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
				event.Start = t
			}
		} else if item.Start.Date != "" {
			if t, err := time.Parse("2006-01-02", item.Start.Date); err == nil {
				event.Start = t
			}
		}
		for _, a := range item.Attendees {
			event.AttendeeEmails = append(event.AttendeeEmails, a.Email)
		}
		events = append(events, event)
	}
	return events, nil
}
