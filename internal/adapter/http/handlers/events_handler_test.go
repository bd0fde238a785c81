package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// closeNotifyingRecorder satisfies http.CloseNotifier, which gin's Stream needs.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool { return r.closed }

// replaySubscriber hands out a channel pre-filled with events and closed
// afterwards, so the stream ends on its own.
type replaySubscriber struct {
	events       []entities.ChangeEvent
	unsubscribed bool
}

func (s *replaySubscriber) Subscribe() chan entities.ChangeEvent {
	ch := make(chan entities.ChangeEvent, len(s.events))
	for _, ev := range s.events {
		ch <- ev
	}
	close(ch)
	return ch
}

func (s *replaySubscriber) Unsubscribe(chan entities.ChangeEvent) { s.unsubscribed = true }

func TestEventsHandler_StreamChanges(t *testing.T) {
	sub := &replaySubscriber{events: []entities.ChangeEvent{
		{Collection: entities.CollectionRequests, Operation: entities.OperationAdd, EntityID: "req-101", At: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)},
		{Collection: entities.CollectionTeams, Operation: entities.OperationDelete, EntityID: "team-7", At: time.Date(2024, 3, 10, 9, 1, 0, 0, time.UTC)},
	}}
	h := NewEventsHandler(sub)

	r := gin.New()
	r.GET("/v1/events", h.StreamChanges)

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	w := &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
	r.ServeHTTP(w, req)

	body := w.Body.String()
	if got := strings.Count(body, "event:change"); got != 2 {
		t.Fatalf("expected 2 change events, got %d: %s", got, body)
	}
	if !strings.Contains(body, `"entity_id":"req-101"`) || !strings.Contains(body, `"entity_id":"team-7"`) {
		t.Fatalf("missing event payloads: %s", body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("expected event-stream content type, got %q", ct)
	}
	if !sub.unsubscribed {
		t.Fatal("expected subscriber to be released")
	}
}
