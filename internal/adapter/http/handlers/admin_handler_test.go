package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"

	"marcenaria_gestao/internal/adapter/http/handlers/mocks"
	"marcenaria_gestao/internal/usecase"

	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_PersistSnapshot(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISnapshotUseCase(ctrl)
		h := NewAdminHandler(uc)

		uc.EXPECT().Persist(gomock.Any()).Return(0, usecase.ErrSnapshotsDisabled)

		w := serve(http.MethodPost, "/v1/admin/snapshot", h.PersistSnapshot, "/v1/admin/snapshot", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "code").String(); got != "SNAPSHOTS_DISABLED" {
			t.Fatalf("expected SNAPSHOTS_DISABLED, got %s", got)
		}
	})

	t.Run("saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISnapshotUseCase(ctrl)
		h := NewAdminHandler(uc)

		uc.EXPECT().Persist(gomock.Any()).Return(42, nil)

		w := serve(http.MethodPost, "/v1/admin/snapshot", h.PersistSnapshot, "/v1/admin/snapshot", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if gjson.Get(body, "operation").String() != "snapshot" || gjson.Get(body, "records").Int() != 42 {
			t.Fatalf("unexpected body %s", body)
		}
	})
}

func TestAdminHandler_ResetStore(t *testing.T) {
	t.Run("seed failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISnapshotUseCase(ctrl)
		h := NewAdminHandler(uc)

		uc.EXPECT().Reset(gomock.Any()).Return(0, errors.New("bad seed"))

		var logs bytes.Buffer
		log.SetOutput(&logs)
		t.Cleanup(func() { log.SetOutput(os.Stderr) })

		w := serve(http.MethodPost, "/v1/admin/reset", h.ResetStore, "/v1/admin/reset", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "bad seed") {
			t.Fatalf("internal error leaked to client: %s", w.Body.String())
		}
		if !strings.Contains(logs.String(), "bad seed") || !strings.Contains(logs.String(), "/v1/admin/reset") {
			t.Fatalf("expected the cause to be logged, got %q", logs.String())
		}
	})

	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISnapshotUseCase(ctrl)
		h := NewAdminHandler(uc)

		uc.EXPECT().Reset(gomock.Any()).Return(17, nil)

		w := serve(http.MethodPost, "/v1/admin/reset", h.ResetStore, "/v1/admin/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "records").Int(); got != 17 {
			t.Fatalf("expected 17 records, got %d", got)
		}
	})
}
