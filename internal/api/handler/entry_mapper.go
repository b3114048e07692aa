package handler

import (
	"time"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
	"github.com/fittrack/fitness-tracker/internal/core/ports"
)

func toCreateInput(req createEntryRequest) ports.CreateEntryInput {
	return ports.CreateEntryInput{
		ActivityName: req.ActivityName,
		Duration:     req.Duration,
		Intensity:    req.Intensity,
		ActivityDate: req.ActivityDate,
	}
}

func toUpdateInput(req updateEntryRequest) ports.UpdateEntryInput {
	return ports.UpdateEntryInput{
		ActivityName: req.ActivityName,
		Duration:     req.Duration,
		Intensity:    req.Intensity,
		ActivityDate: req.ActivityDate,
	}
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:             e.ID,
		ActivityName:   e.ActivityName,
		Duration:       e.Duration,
		Intensity:      e.Intensity,
		CaloriesBurned: e.CaloriesBurned,
		ActivityDate:   e.ActivityDate.UTC().Format("2006-01-02"),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toEntryListResponse(entries []*domain.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}
