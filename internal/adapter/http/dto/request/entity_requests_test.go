package request

import (
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func init() {
	if err := RegisterValidations(); err != nil {
		panic(err)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: " 2024-03-15 ", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2024-03-15T10:30:00-03:00", want: time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC)},
		{in: "15/03/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBindingValidation(t *testing.T) {
	t.Run("request create", func(t *testing.T) {
		ok := RequestCreate{Description: "armario", Priority: "alta", Deadline: "2024-04-01"}
		if err := binding.Validator.ValidateStruct(ok); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		bad := RequestCreate{Description: "armario", Deadline: "amanha"}
		if err := binding.Validator.ValidateStruct(bad); err == nil {
			t.Fatalf("expected isodate error")
		}
		bad = RequestCreate{Description: "armario", Priority: "maxima"}
		if err := binding.Validator.ValidateStruct(bad); err == nil {
			t.Fatalf("expected oneof error")
		}
	})

	t.Run("vehicle plate", func(t *testing.T) {
		for _, p := range []string{"ABC1D23", "abc-1234"} {
			if err := binding.Validator.ValidateStruct(VehicleCreate{Plate: p}); err != nil {
				t.Fatalf("expected %s to be valid: %v", p, err)
			}
		}
		if err := binding.Validator.ValidateStruct(VehicleCreate{Plate: "12ABC"}); err == nil {
			t.Fatalf("expected plate error")
		}
		bad := "XX"
		if err := binding.Validator.ValidateStruct(VehiclePatch{Plate: &bad}); err == nil {
			t.Fatalf("expected plate error on patch")
		}
	})

	t.Run("supply order", func(t *testing.T) {
		if err := binding.Validator.ValidateStruct(SupplyOrderCreate{Origin: "obra", Item: "MDF", Quantity: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := binding.Validator.ValidateStruct(SupplyOrderCreate{Origin: "deposito", Item: "MDF", Quantity: 2}); err == nil {
			t.Fatalf("expected origin error")
		}
		if err := binding.Validator.ValidateStruct(SupplyOrderCreate{Origin: "obra", Item: "MDF"}); err == nil {
			t.Fatalf("expected quantity error")
		}
	})

	t.Run("logistics items dive", func(t *testing.T) {
		in := LogisticsEventCreate{Type: "entrega", ScheduledDate: "2024-03-12", Title: "Entrega", Items: []LogisticsItem{{Name: "", Quantity: 1}}}
		if err := binding.Validator.ValidateStruct(in); err == nil {
			t.Fatalf("expected item name error")
		}
	})
}

func TestToEntity(t *testing.T) {
	t.Run("vehicle normalizes plate and dates", func(t *testing.T) {
		got, err := VehicleCreate{Plate: "abc-1d23", NextMaintenanceDate: "2024-04-10"}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Plate != "ABC1D23" {
			t.Fatalf("expected ABC1D23, got %s", got.Plate)
		}
		if !got.NextMaintenanceDate.Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date: %v", got.NextMaintenanceDate)
		}
		if !got.NextFuelDate.IsZero() {
			t.Fatalf("expected zero fuel date")
		}
	})

	t.Run("request patch keeps absent fields nil", func(t *testing.T) {
		prio := "urgente"
		got, err := RequestPatch{Priority: &prio}.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Priority == nil || *got.Priority != entities.PriorityUrgente {
			t.Fatalf("unexpected priority: %v", got.Priority)
		}
		if got.Description != nil || got.Status != nil || got.Deadline != nil || got.Attachments != nil {
			t.Fatalf("expected untouched fields to stay nil: %+v", got)
		}
	})

	t.Run("team members", func(t *testing.T) {
		got := TeamCreate{Name: "Azul", MemberList: []TeamMemberCreate{{Name: " Carlos ", Role: "Marceneiro"}}}.ToEntity()
		if len(got.MemberList) != 1 || got.MemberList[0].Name != "Carlos" {
			t.Fatalf("unexpected members: %+v", got.MemberList)
		}
	})

	t.Run("logistics event patch date", func(t *testing.T) {
		bad := "ontem"
		if _, err := (LogisticsEventPatch{ScheduledDate: &bad}).ToEntity(); err == nil {
			t.Fatalf("expected date error")
		}
	})
}
