package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordStoreOp(t *testing.T) {
	c := storeOperations.WithLabelValues("teams", "add_member")
	before := testutil.ToFloat64(c)

	RecordStoreOp(entities.CollectionTeams, entities.OperationAddMember)
	RecordStoreOp(entities.CollectionTeams, entities.OperationAddMember)

	if got := testutil.ToFloat64(c) - before; got != 2 {
		t.Fatalf("expected 2 increments, got %v", got)
	}
}

func TestSetRecordCounts(t *testing.T) {
	SetRecordCounts(entities.Snapshot{
		Requests: []entities.Request{{ID: "req-1"}, {ID: "req-2"}},
		Teams:    []entities.Team{{ID: "team-1"}},
	})

	if got := testutil.ToFloat64(storeRecords.WithLabelValues("requests")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(storeRecords.WithLabelValues("vehicles")); got != 0 {
		t.Fatalf("expected 0 vehicles, got %v", got)
	}
}

func TestRecordEventPublished(t *testing.T) {
	okBefore := testutil.ToFloat64(eventsPublished.WithLabelValues("redis", "ok"))
	errBefore := testutil.ToFloat64(eventsPublished.WithLabelValues("redis", "error"))

	RecordEventPublished("redis", nil)
	RecordEventPublished("redis", errors.New("down"))
	ObserveSnapshot("save", time.Now(), nil)

	if testutil.ToFloat64(eventsPublished.WithLabelValues("redis", "ok"))-okBefore != 1 {
		t.Fatalf("expected one ok event")
	}
	if testutil.ToFloat64(eventsPublished.WithLabelValues("redis", "error"))-errBefore != 1 {
		t.Fatalf("expected one failed event")
	}
}

func TestHandler(t *testing.T) {
	RecordStoreOp(entities.CollectionRequests, entities.OperationAdd)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "marcenaria_store_operations_total") {
		t.Fatalf("expected store operations metric in output")
	}
}
