package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/infrastructure/metrics"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var ErrInvalidPriority = errors.New("invalid priority")

// changeNotifier reports successful mutations. Publishing is best effort: a
// publisher failure is logged and never fails the mutation that caused it.
type changeNotifier struct {
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

func newChangeNotifier(publisher interfaces.IEventPublisher) changeNotifier {
	return changeNotifier{publisher: publisher, now: time.Now}
}

func (n changeNotifier) changed(ctx context.Context, collection entities.Collection, op entities.Operation, id string) {
	metrics.RecordStoreOp(collection, op)
	if n.publisher == nil {
		return
	}
	ev := entities.ChangeEvent{Collection: collection, Operation: op, EntityID: id, At: n.now().UTC()}
	if err := n.publisher.Publish(ctx, ev); err != nil {
		log.Printf("[%s][usecase] publish change failed operation=%s id=%s err=%v", collection, op, id, err)
	}
}

func (n changeNotifier) missed(collection entities.Collection, op entities.Operation, id string) {
	metrics.RecordStoreMiss(collection, op)
	log.Printf("[%s][usecase] %s target not found id=%s", collection, op, id)
}

// matchesQuery reports whether q is a case-insensitive substring of any field.
// An empty query matches everything.
func matchesQuery(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesID(want, got string) bool {
	return want == "" || want == got
}
