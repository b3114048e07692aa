package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
	"github.com/fittrack/fitness-tracker/internal/core/ports"
)

// EntryService implements ownership-scoped CRUD over workout entries. The
// userID on every operation comes from the auth gate; entries belonging to
// other users are indistinguishable from missing ones.
type EntryService struct {
	repo   ports.EntryRepository
	logger zerolog.Logger
}

func NewEntryService(repo ports.EntryRepository, logger zerolog.Logger) *EntryService {
	return &EntryService{repo: repo, logger: logger}
}

func (s *EntryService) Create(ctx context.Context, userID string, input ports.CreateEntryInput) (*domain.Entry, error) {
	if input.ActivityName == "" || input.Intensity == "" {
		return nil, fmt.Errorf("%w: activity name and intensity are required", domain.ErrInvalidEntry)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", domain.ErrInvalidEntry)
	}

	activityDate, err := parseActivityDate(input.ActivityDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.Entry{
		UserID:         userID,
		ActivityName:   input.ActivityName,
		Duration:       input.Duration,
		Intensity:      input.Intensity,
		CaloriesBurned: domain.CalculateCalories(input.ActivityName, input.Duration, input.Intensity),
		ActivityDate:   activityDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create entry")
		return nil, err
	}

	s.logger.Info().
		Str("entry_id", created.ID).
		Str("activity", created.ActivityName).
		Int("calories", created.CaloriesBurned).
		Msg("entry created")

	return created, nil
}

func (s *EntryService) List(ctx context.Context, userID string) ([]*domain.Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *EntryService) Get(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
	return s.repo.FindByID(ctx, userID, entryID)
}

// Update merges the partial input into the stored entry, re-derives calories
// and persists conditionally on the entry still belonging to userID.
func (s *EntryService) Update(ctx context.Context, userID, entryID string, input ports.UpdateEntryInput) (*domain.Entry, error) {
	entry, err := s.repo.FindByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if input.ActivityName != nil {
		if *input.ActivityName == "" {
			return nil, fmt.Errorf("%w: activity name cannot be empty", domain.ErrInvalidEntry)
		}
		entry.ActivityName = *input.ActivityName
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be a positive number of minutes", domain.ErrInvalidEntry)
		}
		entry.Duration = *input.Duration
	}
	if input.Intensity != nil {
		if *input.Intensity == "" {
			return nil, fmt.Errorf("%w: intensity cannot be empty", domain.ErrInvalidEntry)
		}
		entry.Intensity = *input.Intensity
	}
	if input.ActivityDate != nil {
		activityDate, err := parseActivityDate(*input.ActivityDate)
		if err != nil {
			return nil, err
		}
		entry.ActivityDate = activityDate
	}

	entry.CaloriesBurned = domain.CalculateCalories(entry.ActivityName, entry.Duration, entry.Intensity)
	entry.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("entry_id", updated.ID).Msg("entry updated")
	return updated, nil
}

func (s *EntryService) Delete(ctx context.Context, userID, entryID string) error {
	if err := s.repo.Delete(ctx, userID, entryID); err != nil {
		return err
	}
	s.logger.Info().Str("entry_id", entryID).Msg("entry deleted")
	return nil
}

// parseActivityDate accepts "2006-01-02" or RFC 3339. Empty defaults to the
// current day, matching the client's behavior when the date field is left
// blank.
func parseActivityDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: activity date must be YYYY-MM-DD or RFC 3339", domain.ErrInvalidEntry)
}
