package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"
)

func newVehicleUseCase() *VehicleUseCase {
	uc := NewVehicleUseCase(newTestStore(), nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestVehicleUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := newVehicleUseCase()

	if _, err := uc.Create(ctx, entities.NewVehicle{Plate: " "}); !errors.Is(err, ErrInvalidVehicleInput) {
		t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.NewVehicle{Plate: "ABC1D23", Status: "quebrado"}); !errors.Is(err, ErrInvalidVehicleStatus) {
		t.Fatalf("expected ErrInvalidVehicleStatus, got %v", err)
	}
	v, err := uc.Create(ctx, entities.NewVehicle{Plate: "abc1d23", Model: "Fiorino"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Plate != "ABC1D23" || v.Status != entities.VehicleStatusDisponivel {
		t.Fatalf("unexpected vehicle: %+v", v)
	}
}

func TestVehicleUseCase_Maintenance(t *testing.T) {
	ctx := context.Background()
	uc := newVehicleUseCase()
	v, _ := uc.Create(ctx, entities.NewVehicle{Plate: "ABC1D23", Odometer: 1000})

	t.Run("invalid record", func(t *testing.T) {
		if _, err := uc.AddMaintenanceRecord(ctx, v.ID, entities.NewMaintenanceRecord{Type: ""}); !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}
		if _, err := uc.AddMaintenanceRecord(ctx, v.ID, entities.NewMaintenanceRecord{Type: "revisao", Cost: -1}); !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		if _, err := uc.AddMaintenanceRecord(ctx, "veh-404", entities.NewMaintenanceRecord{Type: "revisao"}); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("date defaults to now", func(t *testing.T) {
		got, err := uc.AddMaintenanceRecord(ctx, v.ID, entities.NewMaintenanceRecord{Type: "troca de oleo", Cost: 250, Odometer: 1200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.MaintenanceHistory) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got.MaintenanceHistory))
		}
		rec := got.MaintenanceHistory[0]
		if !rec.Date.Equal(fixedNow) || rec.ID == "" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})
}

func TestVehicleUseCase_MaintenanceDue(t *testing.T) {
	ctx := context.Background()
	uc := newVehicleUseCase()
	_, _ = uc.Create(ctx, entities.NewVehicle{Plate: "LATE001", NextMaintenanceDate: fixedNow.AddDate(0, 0, -2)})
	_, _ = uc.Create(ctx, entities.NewVehicle{Plate: "SOON001", NextMaintenanceDate: fixedNow.AddDate(0, 0, 5)})
	_, _ = uc.Create(ctx, entities.NewVehicle{Plate: "LATER01", NextMaintenanceDate: fixedNow.AddDate(0, 1, 0)})
	_, _ = uc.Create(ctx, entities.NewVehicle{Plate: "NODATE1"})

	if _, err := uc.MaintenanceDue(ctx, -1); !errors.Is(err, ErrInvalidMaintenanceDays) {
		t.Fatalf("expected ErrInvalidMaintenanceDays, got %v", err)
	}
	due, err := uc.MaintenanceDue(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 vehicles due, got %d", len(due))
	}
	if due[0].Plate != "LATE001" || due[1].Plate != "SOON001" {
		t.Fatalf("expected soonest first, got %s, %s", due[0].Plate, due[1].Plate)
	}
}

func TestVehicleUseCase_UpdateFlows(t *testing.T) {
	ctx := context.Background()
	uc := newVehicleUseCase()
	v, _ := uc.Create(ctx, entities.NewVehicle{Plate: "ABC1D23", TeamID: "team-1"})

	if _, err := uc.Update(ctx, v.ID, entities.VehiclePatch{Odometer: ptr(-5)}); !errors.Is(err, ErrInvalidVehicleInput) {
		t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
	}
	got, err := uc.Update(ctx, v.ID, entities.VehiclePatch{Plate: ptr(" xyz9a88 ")})
	if err != nil || got.Plate != "XYZ9A88" {
		t.Fatalf("unexpected update: %+v err=%v", got, err)
	}
	got, err = uc.UpdateStatus(ctx, v.ID, entities.VehicleStatusManutencao)
	if err != nil || got.Status != entities.VehicleStatusManutencao {
		t.Fatalf("unexpected status: %+v err=%v", got, err)
	}
	list, _ := uc.List(ctx, VehicleFilter{Status: entities.VehicleStatusManutencao, TeamID: "team-1"})
	if len(list) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(list))
	}
	if err := uc.Delete(ctx, "veh-404"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
