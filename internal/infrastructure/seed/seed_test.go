package seed

import "testing"

func TestLoad(t *testing.T) {
	snap, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Requests) == 0 || len(snap.Projects) == 0 || len(snap.Teams) == 0 ||
		len(snap.Vehicles) == 0 || len(snap.SupplyOrders) == 0 || len(snap.LogisticsEvents) == 0 {
		t.Fatalf("expected every collection to be seeded, got %+v", snap)
	}

	for _, team := range snap.Teams {
		if team.Members() != len(team.MemberList) {
			t.Fatalf("team %s: members %d != roster %d", team.ID, team.Members(), len(team.MemberList))
		}
	}
	for _, r := range snap.Requests {
		if r.UpdatedAt.Before(r.CreatedAt) {
			t.Fatalf("request %s: updated_at before created_at", r.ID)
		}
		if !r.Status.IsValid() || !r.Priority.IsValid() {
			t.Fatalf("request %s: invalid enum values %+v", r.ID, r)
		}
	}
	if snap.Teams[0].ID != "team-1" || snap.Teams[0].Members() != 3 {
		t.Fatalf("unexpected first team: %+v", snap.Teams[0])
	}
}
