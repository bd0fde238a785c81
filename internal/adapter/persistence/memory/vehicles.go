package memory

import "marcenaria_gestao/internal/domain/entities"

func (s *EntityStore) Vehicles() []entities.Vehicle {
	return cloneAll(s.load().vehicles)
}

func (s *EntityStore) GetVehicle(id string) (entities.Vehicle, bool) {
	items := s.load().vehicles
	if i := indexOf(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return entities.Vehicle{}, false
}

func (s *EntityStore) AddVehicle(in entities.NewVehicle) entities.Vehicle {
	var created entities.Vehicle
	s.mutate(func(next *state) bool {
		created = entities.Vehicle{
			ID:                  s.ids.next(prefixVehicle),
			Plate:               in.Plate,
			Model:               in.Model,
			Brand:               in.Brand,
			Year:                in.Year,
			Color:               in.Color,
			Type:                in.Type,
			Status:              in.Status,
			TeamID:              in.TeamID,
			Odometer:            in.Odometer,
			NextMaintenanceDate: in.NextMaintenanceDate,
			NextFuelDate:        in.NextFuelDate,
			MaintenanceHistory:  []entities.MaintenanceRecord{},
		}
		next.vehicles = prepend(next.vehicles, created)
		return true
	})
	return created.Clone()
}

func (s *EntityStore) UpdateVehicle(id string, patch entities.VehiclePatch) (entities.Vehicle, bool) {
	return s.updateVehicle(id, patch.ApplyTo)
}

func (s *EntityStore) UpdateVehicleStatus(id string, status entities.VehicleStatus) (entities.Vehicle, bool) {
	return s.updateVehicle(id, func(v entities.Vehicle) entities.Vehicle {
		v.Status = status
		return v
	})
}

func (s *EntityStore) DeleteVehicle(id string) bool {
	return s.mutate(func(next *state) bool {
		var found bool
		next.vehicles, found = remove(next.vehicles, id)
		return found
	})
}

// AddMaintenanceRecord puts a record at the front of the vehicle's history.
// No other vehicle field changes.
func (s *EntityStore) AddMaintenanceRecord(vehicleID string, in entities.NewMaintenanceRecord) (entities.Vehicle, bool) {
	return s.updateVehicle(vehicleID, func(v entities.Vehicle) entities.Vehicle {
		rec := entities.MaintenanceRecord{
			ID:          s.ids.next(prefixMaintenance),
			Date:        in.Date,
			Type:        in.Type,
			Description: in.Description,
			Cost:        in.Cost,
			Odometer:    in.Odometer,
		}
		v.MaintenanceHistory = truncate(prepend(v.MaintenanceHistory, rec), s.historyLimit)
		return v
	})
}

func (s *EntityStore) updateVehicle(id string, change func(entities.Vehicle) entities.Vehicle) (entities.Vehicle, bool) {
	var updated entities.Vehicle
	ok := s.mutate(func(next *state) bool {
		var found bool
		next.vehicles, updated, found = update(next.vehicles, id, change)
		return found
	})
	return updated.Clone(), ok
}
