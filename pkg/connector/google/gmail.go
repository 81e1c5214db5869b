package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"modern-assistant-be/pkg/connector"
)

type gmailListResponse struct {
	Messages []struct {
		Id string `json:"id"`
	} `json:"messages"`
	ResultSizeEstimate int `json:"resultSizeEstimate"`
}

type gmailMessageResponse struct {
	Snippet string `json:"snippet"`
	Payload struct {
		Headers []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"headers"`
	} `json:"payload"`
	InternalDate string `json:"internalDate"`
}

func (c *Client) ListRecent(ctx context.Context, max int) ([]connector.EmailItem, error) {
	if !c.connected() {
		return nil, connector.ErrNotConnected
	}

	listURL := fmt.Sprintf("%s/users/me/messages?maxResults=%d", gmailBaseURL, max)
	var list gmailListResponse
	if err := c.getJSON(ctx, listURL, &list); err != nil {
		return nil, err
	}

	items := make([]connector.EmailItem, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msgURL := fmt.Sprintf(
			"%s/users/me/messages/%s?format=metadata&metadataHeaders=From&metadataHeaders=Subject",
			gmailBaseURL, url.PathEscape(ref.Id),
		)
		var msg gmailMessageResponse
		if err := c.getJSON(ctx, msgURL, &msg); err != nil {
			return nil, err
		}

		item := connector.EmailItem{Snippet: msg.Snippet}
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "From":
				item.From = h.Value
			case "Subject":
				item.Subject = h.Value
			}
		}
		if ms, err := parseMillis(msg.InternalDate); err == nil {
			item.Date = ms
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	if !c.connected() {
		return 0, connector.ErrNotConnected
	}

	countURL := gmailBaseURL + "/users/me/messages?q=" + url.QueryEscape("is:unread") + "&maxResults=1"
	var list gmailListResponse
	if err := c.getJSON(ctx, countURL, &list); err != nil {
		return 0, err
	}
	return list.ResultSizeEstimate, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("google api error, code %d, body %s", res.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

func parseMillis(s string) (time.Time, error) {
	var ms int64
	if _, err := fmt.Sscanf(s, "%d", &ms); err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
