package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrInvalidVehicleID        = errors.New("invalid vehicle id")
	ErrInvalidVehicleStatus    = errors.New("invalid vehicle status")
	ErrInvalidVehicleInput     = errors.New("invalid vehicle input")
	ErrInvalidMaintenanceInput = errors.New("invalid maintenance record")
	ErrInvalidMaintenanceDays  = errors.New("invalid maintenance window")
)

type VehicleFilter struct {
	Status entities.VehicleStatus
	TeamID string
	Query  string
}

// IVehicleUseCase exposes fleet (frota) operations.
type IVehicleUseCase interface {
	List(ctx context.Context, filter VehicleFilter) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Create(ctx context.Context, in entities.NewVehicle) (entities.Vehicle, error)
	Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, error)
	UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
	AddMaintenanceRecord(ctx context.Context, id string, in entities.NewMaintenanceRecord) (entities.Vehicle, error)
	MaintenanceDue(ctx context.Context, days int) ([]entities.Vehicle, error)
}

type VehicleUseCase struct {
	store    interfaces.IVehicleStore
	notifier changeNotifier
	now      func() time.Time
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(store interfaces.IVehicleStore, publisher interfaces.IEventPublisher) *VehicleUseCase {
	return &VehicleUseCase{store: store, notifier: newChangeNotifier(publisher), now: time.Now}
}

func (u *VehicleUseCase) List(_ context.Context, filter VehicleFilter) ([]entities.Vehicle, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidVehicleStatus
	}
	out := make([]entities.Vehicle, 0)
	for _, v := range u.store.Vehicles() {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if !matchesID(filter.TeamID, v.TeamID) {
			continue
		}
		if !matchesQuery(filter.Query, v.Plate, v.Model, v.Brand) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (u *VehicleUseCase) GetByID(_ context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, ok := u.store.GetVehicle(id)
	if !ok {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) Create(ctx context.Context, in entities.NewVehicle) (entities.Vehicle, error) {
	in.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	if in.Plate == "" || in.Odometer < 0 {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}
	if in.Status == "" {
		in.Status = entities.VehicleStatusDisponivel
	}
	if !in.Status.IsValid() {
		return entities.Vehicle{}, ErrInvalidVehicleStatus
	}

	created := u.store.AddVehicle(in)
	u.notifier.changed(ctx, entities.CollectionVehicles, entities.OperationAdd, created.ID)
	return created, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return entities.Vehicle{}, ErrInvalidVehicleStatus
	}
	if patch.Plate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*patch.Plate))
		if plate == "" {
			return entities.Vehicle{}, ErrInvalidVehicleInput
		}
		patch.Plate = &plate
	}
	if patch.Odometer != nil && *patch.Odometer < 0 {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	updated, ok := u.store.UpdateVehicle(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionVehicles, entities.OperationUpdate, id)
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	u.notifier.changed(ctx, entities.CollectionVehicles, entities.OperationUpdate, id)
	return updated, nil
}

func (u *VehicleUseCase) UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if !status.IsValid() {
		return entities.Vehicle{}, ErrInvalidVehicleStatus
	}

	updated, ok := u.store.UpdateVehicleStatus(id, status)
	if !ok {
		u.notifier.missed(entities.CollectionVehicles, entities.OperationUpdateStatus, id)
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	u.notifier.changed(ctx, entities.CollectionVehicles, entities.OperationUpdateStatus, id)
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	if !u.store.DeleteVehicle(id) {
		u.notifier.missed(entities.CollectionVehicles, entities.OperationDelete, id)
		return ErrVehicleNotFound
	}
	u.notifier.changed(ctx, entities.CollectionVehicles, entities.OperationDelete, id)
	return nil
}

// AddMaintenanceRecord appends a service to the vehicle history. A missing
// date means the service happened now.
func (u *VehicleUseCase) AddMaintenanceRecord(ctx context.Context, id string, in entities.NewMaintenanceRecord) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" || in.Cost < 0 || in.Odometer < 0 {
		return entities.Vehicle{}, ErrInvalidMaintenanceInput
	}
	if in.Date.IsZero() {
		in.Date = u.now().UTC()
	}

	log.Printf("[vehicle][usecase] add maintenance start id=%s type=%s cost=%.2f", id, in.Type, in.Cost)
	updated, ok := u.store.AddMaintenanceRecord(id, in)
	if !ok {
		u.notifier.missed(entities.CollectionVehicles, entities.OperationAddRecord, id)
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	u.notifier.changed(ctx, entities.CollectionVehicles, entities.OperationAddRecord, id)
	return updated, nil
}

// MaintenanceDue lists vehicles whose next maintenance falls within days from
// now, overdue ones included, soonest first.
func (u *VehicleUseCase) MaintenanceDue(_ context.Context, days int) ([]entities.Vehicle, error) {
	if days < 0 {
		return nil, ErrInvalidMaintenanceDays
	}
	return vehiclesDue(u.store.Vehicles(), u.now().AddDate(0, 0, days)), nil
}

func vehiclesDue(vehicles []entities.Vehicle, limit time.Time) []entities.Vehicle {
	out := make([]entities.Vehicle, 0)
	for _, v := range vehicles {
		if v.MaintenanceDue(limit) {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.Vehicle) int {
		return a.NextMaintenanceDate.Compare(b.NextMaintenanceDate)
	})
	return out
}
