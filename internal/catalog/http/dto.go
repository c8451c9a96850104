package http

import "github.com/rnwgym/gym-booking-backend/internal/catalog"

type MuscleGroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewMuscleGroupResponse(g *catalog.MuscleGroup) MuscleGroupResponse {
	return MuscleGroupResponse{
		ID:   g.ID,
		Name: g.Name,
	}
}

type EquipmentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	MuscleGroupID int64  `json:"muscle_group_id"`
	Maintenance   bool   `json:"maintenance"`
}

func NewEquipmentResponse(e *catalog.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            e.ID,
		Name:          e.Name,
		MuscleGroupID: e.MuscleGroupID,
		Maintenance:   e.Maintenance,
	}
}

type TimeSlotResponse struct {
	ID    int64  `json:"id"`
	Slot  string `json:"slot"`
	Start int    `json:"start_minutes"`
	End   int    `json:"end_minutes"`
}

func NewTimeSlotResponse(t catalog.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:    t.ID,
		Slot:  t.Label(),
		Start: t.StartMinutes(),
		End:   t.EndMinutes(),
	}
}

type SetMaintenanceRequest struct {
	Maintenance *bool `json:"maintenance" binding:"required"`
}
