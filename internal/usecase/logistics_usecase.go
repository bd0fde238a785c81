package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var (
	ErrLogisticsEventNotFound      = errors.New("logistics event not found")
	ErrInvalidLogisticsEventID     = errors.New("invalid logistics event id")
	ErrInvalidLogisticsEventStatus = errors.New("invalid logistics event status")
	ErrInvalidLogisticsEventType   = errors.New("invalid logistics event type")
	ErrInvalidLogisticsEventInput  = errors.New("invalid logistics event input")
)

const timelineDateLayout = "2006-01-02"

type LogisticsEventFilter struct {
	Status    entities.LogisticsEventStatus
	Type      entities.LogisticsEventType
	ProjectID string
	TeamID    string
	VehicleID string
	Query     string
}

// TimelineDay groups the events scheduled on one calendar day (UTC).
type TimelineDay struct {
	Date   string                    `json:"date"`
	Events []entities.LogisticsEvent `json:"events"`
}

// ILogisticsUseCase exposes the logistics/history timeline operations.
type ILogisticsUseCase interface {
	List(ctx context.Context, filter LogisticsEventFilter) ([]entities.LogisticsEvent, error)
	GetByID(ctx context.Context, id string) (entities.LogisticsEvent, error)
	Create(ctx context.Context, in entities.NewLogisticsEvent) (entities.LogisticsEvent, error)
	Update(ctx context.Context, id string, patch entities.LogisticsEventPatch) (entities.LogisticsEvent, error)
	UpdateStatus(ctx context.Context, id string, status entities.LogisticsEventStatus) (entities.LogisticsEvent, error)
	Delete(ctx context.Context, id string) error
	Timeline(ctx context.Context, filter LogisticsEventFilter) ([]TimelineDay, error)
}

type LogisticsUseCase struct {
	store    interfaces.ILogisticsEventStore
	notifier changeNotifier
}

var _ ILogisticsUseCase = (*LogisticsUseCase)(nil)

func NewLogisticsUseCase(store interfaces.ILogisticsEventStore, publisher interfaces.IEventPublisher) *LogisticsUseCase {
	return &LogisticsUseCase{store: store, notifier: newChangeNotifier(publisher)}
}

func (u *LogisticsUseCase) List(_ context.Context, filter LogisticsEventFilter) ([]entities.LogisticsEvent, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidLogisticsEventStatus
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, ErrInvalidLogisticsEventType
	}
	out := make([]entities.LogisticsEvent, 0)
	for _, e := range u.store.LogisticsEvents() {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if !matchesID(filter.ProjectID, e.ProjectID) || !matchesID(filter.TeamID, e.TeamID) ||
			!matchesID(filter.VehicleID, e.VehicleID) {
			continue
		}
		if !matchesQuery(filter.Query, e.Title, e.Description, e.CreatedBy) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (u *LogisticsUseCase) GetByID(_ context.Context, id string) (entities.LogisticsEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventID
	}
	e, ok := u.store.GetLogisticsEvent(id)
	if !ok {
		return entities.LogisticsEvent{}, ErrLogisticsEventNotFound
	}
	return e, nil
}

func (u *LogisticsUseCase) Create(ctx context.Context, in entities.NewLogisticsEvent) (entities.LogisticsEvent, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.ScheduledDate.IsZero() {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventInput
	}
	if !in.Type.IsValid() {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventType
	}
	if in.Status == "" {
		in.Status = entities.LogisticsEventStatusAgendado
	}
	if !in.Status.IsValid() {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventStatus
	}
	if !validItems(in.Items) {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventInput
	}

	created := u.store.AddLogisticsEvent(in)
	u.notifier.changed(ctx, entities.CollectionLogisticsEvents, entities.OperationAdd, created.ID)
	return created, nil
}

func validItems(items []entities.LogisticsItem) bool {
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Quantity <= 0 {
			return false
		}
	}
	return true
}

func (u *LogisticsUseCase) Update(ctx context.Context, id string, patch entities.LogisticsEventPatch) (entities.LogisticsEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventID
	}
	switch {
	case patch.Status != nil && !patch.Status.IsValid():
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventStatus
	case patch.Type != nil && !patch.Type.IsValid():
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventType
	case patch.Title != nil && strings.TrimSpace(*patch.Title) == "":
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventInput
	case patch.ScheduledDate != nil && patch.ScheduledDate.IsZero():
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventInput
	case !validItems(patch.Items):
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventInput
	}

	updated, ok := u.store.UpdateLogisticsEvent(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionLogisticsEvents, entities.OperationUpdate, id)
		return entities.LogisticsEvent{}, ErrLogisticsEventNotFound
	}
	u.notifier.changed(ctx, entities.CollectionLogisticsEvents, entities.OperationUpdate, id)
	return updated, nil
}

func (u *LogisticsUseCase) UpdateStatus(ctx context.Context, id string, status entities.LogisticsEventStatus) (entities.LogisticsEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventID
	}
	if !status.IsValid() {
		return entities.LogisticsEvent{}, ErrInvalidLogisticsEventStatus
	}

	updated, ok := u.store.UpdateLogisticsEventStatus(id, status)
	if !ok {
		u.notifier.missed(entities.CollectionLogisticsEvents, entities.OperationUpdateStatus, id)
		return entities.LogisticsEvent{}, ErrLogisticsEventNotFound
	}
	u.notifier.changed(ctx, entities.CollectionLogisticsEvents, entities.OperationUpdateStatus, id)
	return updated, nil
}

func (u *LogisticsUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLogisticsEventID
	}
	if !u.store.DeleteLogisticsEvent(id) {
		u.notifier.missed(entities.CollectionLogisticsEvents, entities.OperationDelete, id)
		return ErrLogisticsEventNotFound
	}
	u.notifier.changed(ctx, entities.CollectionLogisticsEvents, entities.OperationDelete, id)
	return nil
}

// Timeline returns the filtered events grouped by scheduled day, oldest day
// first. Events inside a day are ordered by scheduled time.
func (u *LogisticsUseCase) Timeline(ctx context.Context, filter LogisticsEventFilter) ([]TimelineDay, error) {
	events, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return groupByDay(events), nil
}

func groupByDay(events []entities.LogisticsEvent) []TimelineDay {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b entities.LogisticsEvent) int {
		return a.ScheduledDate.Compare(b.ScheduledDate)
	})

	days := make([]TimelineDay, 0)
	for _, e := range sorted {
		key := dayKey(e.ScheduledDate)
		if n := len(days); n > 0 && days[n-1].Date == key {
			days[n-1].Events = append(days[n-1].Events, e)
			continue
		}
		days = append(days, TimelineDay{Date: key, Events: []entities.LogisticsEvent{e}})
	}
	return days
}

func dayKey(t time.Time) string {
	return t.UTC().Format(timelineDateLayout)
}
