package http

type AlternativesRequest struct {
	MuscleGroup string `form:"muscle_group" binding:"required"`
	TimeSlotID  int64  `form:"time_slot_id" binding:"required"`
}

type QuoteResponse struct {
	Quote string `json:"quote"`
}
