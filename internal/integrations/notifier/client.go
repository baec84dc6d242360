// Package notifier posts appointment lifecycle events to an external
// notification endpoint. Delivery is best effort: the booking flow
// never fails because the endpoint is down.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the notification endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a notification client posting to url.
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send posts one event to the endpoint.
func (c *Client) Send(ctx context.Context, event *AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// Notify sends the event with graceful degradation. Failures are
// logged and come back as ErrServiceDegraded so callers can treat
// notification loss as non-fatal.
func (c *Client) Notify(ctx context.Context, event *AppointmentEvent) error {
	c.log.Info("Sending %s event for appointment id=%d", event.Type, event.AppointmentID)

	if err := c.Send(ctx, event); err != nil {
		c.log.Error("Notification endpoint unavailable, dropping %s event for appointment id=%d: %v",
			event.Type, event.AppointmentID, err)
		return fmt.Errorf("%w: type=%s, appointment_id=%d, error=%v",
			ErrServiceDegraded, event.Type, event.AppointmentID, err)
	}

	c.log.Info("Delivered %s event for appointment id=%d", event.Type, event.AppointmentID)
	return nil
}
