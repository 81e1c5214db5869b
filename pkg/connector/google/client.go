package google

import (
	"context"
	"net/http"
	"time"

	"modern-assistant-be/pkg/connector"

	"golang.org/x/oauth2"
)

const (
	scopeGmailReadonly    = "https://www.googleapis.com/auth/gmail.readonly"
	scopeCalendarReadonly = "https://www.googleapis.com/auth/calendar.readonly"

	gmailBaseURL    = "https://gmail.googleapis.com/gmail/v1"
	calendarBaseURL = "https://www.googleapis.com/calendar/v3"
)

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

func (c Credentials) configured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// Client exposes read-only Gmail and Calendar access over a single
// refresh-token grant.
type Client struct {
	creds      Credentials
	httpClient *http.Client
}

var (
	_ connector.EmailClient    = &Client{}
	_ connector.CalendarClient = &Client{}
)

func NewClient(creds Credentials) *Client {
	c := &Client{creds: creds}
	if !creds.configured() {
		return c
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     googleEndpoint,
		Scopes:       []string{scopeGmailReadonly, scopeCalendarReadonly},
	}
	token := &oauth2.Token{RefreshToken: creds.RefreshToken}

	c.httpClient = conf.Client(context.Background(), token)
	c.httpClient.Timeout = 15 * time.Second
	return c
}

func (c *Client) connected() bool {
	return c.httpClient != nil
}
