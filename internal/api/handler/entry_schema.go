package handler

// Entry JSON uses the field names the browser client already sends; the
// transport types are separate from domain/ports so the wire contract is not
// coupled to internal changes.

type createEntryRequest struct {
	ActivityName string `json:"activityName" validate:"required"`
	Duration     int    `json:"duration"     validate:"required,gt=0"`
	Intensity    string `json:"intensity"    validate:"required"`
	ActivityDate string `json:"activityDate"`
}

// updateEntryRequest carries a partial update; absent fields stay unchanged.
// caloriesBurned sent by older clients is ignored — the server always derives
// it.
type updateEntryRequest struct {
	ActivityName *string `json:"activityName" validate:"omitempty,min=1"`
	Duration     *int    `json:"duration"     validate:"omitempty,gt=0"`
	Intensity    *string `json:"intensity"    validate:"omitempty,min=1"`
	ActivityDate *string `json:"activityDate"`
}

type entryResponse struct {
	ID             string `json:"id"`
	ActivityName   string `json:"activityName"`
	Duration       int    `json:"duration"`
	Intensity      string `json:"intensity"`
	CaloriesBurned int    `json:"caloriesBurned"`
	ActivityDate   string `json:"activityDate"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type deleteEntryResponse struct {
	Message string `json:"message"`
}
