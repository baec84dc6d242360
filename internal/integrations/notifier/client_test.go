package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleEvent() *AppointmentEvent {
	return &AppointmentEvent{
		Type:          EventAppointmentBooked,
		AppointmentID: 42,
		Reference:     "6f1c2f6e-8f1a-4bb1-9a6e-0c2d3e4f5a6b",
		ServiceName:   "Consultation",
		Date:          "2024-06-10",
		StartTime:     "10:00",
		EndTime:       "10:30",
	}
}

func TestSend(t *testing.T) {
	var received AppointmentEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})
	require.NoError(t, client.Send(context.Background(), sampleEvent()))

	assert.Equal(t, EventAppointmentBooked, received.Type)
	assert.Equal(t, int64(42), received.AppointmentID)
	assert.Equal(t, "2024-06-10", received.Date)
}

func TestSend_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})
	err := client.Send(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNotify_DegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})
	err := client.Notify(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestNotify_Delivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})
	assert.NoError(t, client.Notify(context.Background(), sampleEvent()))
}
