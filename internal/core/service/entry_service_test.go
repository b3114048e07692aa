package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
	"github.com/fittrack/fitness-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubEntryRepo struct {
	entries map[string]*domain.Entry
	nextID  int
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{entries: make(map[string]*domain.Entry)}
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.Entry) (*domain.Entry, error) {
	r.nextID++
	clone := *e
	clone.ID = fmt.Sprintf("entry-%d", r.nextID)
	r.entries[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubEntryRepo) ListByUser(_ context.Context, userID string) ([]*domain.Entry, error) {
	var out []*domain.Entry
	for _, e := range r.entries {
		if e.UserID == userID {
			clone := *e
			out = append(out, &clone)
		}
	}
	// Mirror the Mongo sort: activity date descending.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ActivityDate.After(out[j].ActivityDate)
	})
	return out, nil
}

func (r *stubEntryRepo) FindByID(_ context.Context, userID, entryID string) (*domain.Entry, error) {
	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) Update(_ context.Context, e *domain.Entry) (*domain.Entry, error) {
	stored, ok := r.entries[e.ID]
	if !ok || stored.UserID != e.UserID {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	r.entries[e.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubEntryRepo) Delete(_ context.Context, userID, entryID string) error {
	e, ok := r.entries[entryID]
	if !ok || e.UserID != userID {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, entryID)
	return nil
}

func newEntryService(repo *stubEntryRepo) *EntryService {
	return NewEntryService(repo, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestEntryService_Create_DerivesCalories(t *testing.T) {
	svc := newEntryService(newStubEntryRepo())

	entry, err := svc.Create(context.Background(), "user-a", ports.CreateEntryInput{
		ActivityName: "Running",
		Duration:     30,
		Intensity:    "medium",
		ActivityDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.CaloriesBurned != 150 {
		t.Fatalf("expected 150 calories, got %d", entry.CaloriesBurned)
	}
	if entry.UserID != "user-a" {
		t.Fatalf("expected owner user-a, got %q", entry.UserID)
	}
	if got := entry.ActivityDate.Format("2006-01-02"); got != "2024-01-01" {
		t.Fatalf("expected activity date 2024-01-01, got %s", got)
	}
}

func TestEntryService_Create_IntenseCycling(t *testing.T) {
	svc := newEntryService(newStubEntryRepo())

	entry, err := svc.Create(context.Background(), "user-a", ports.CreateEntryInput{
		ActivityName: "Cycling",
		Duration:     20,
		Intensity:    "intense",
		ActivityDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.CaloriesBurned != 168 {
		t.Fatalf("expected 168 calories, got %d", entry.CaloriesBurned)
	}
}

func TestEntryService_Create_Validation(t *testing.T) {
	svc := newEntryService(newStubEntryRepo())

	cases := []struct {
		name  string
		input ports.CreateEntryInput
	}{
		{"missing activity", ports.CreateEntryInput{Duration: 30, Intensity: "medium"}},
		{"missing intensity", ports.CreateEntryInput{ActivityName: "Running", Duration: 30}},
		{"zero duration", ports.CreateEntryInput{ActivityName: "Running", Intensity: "medium"}},
		{"negative duration", ports.CreateEntryInput{ActivityName: "Running", Duration: -5, Intensity: "medium"}},
		{"bad date", ports.CreateEntryInput{ActivityName: "Running", Duration: 30, Intensity: "medium", ActivityDate: "01/02/2024"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "user-a", tc.input); !errors.Is(err, domain.ErrInvalidEntry) {
				t.Fatalf("expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestEntryService_Create_DefaultsDateToToday(t *testing.T) {
	svc := newEntryService(newStubEntryRepo())

	entry, err := svc.Create(context.Background(), "user-a", ports.CreateEntryInput{
		ActivityName: "Plank",
		Duration:     10,
		Intensity:    "slow",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.ActivityDate.IsZero() {
		t.Fatalf("expected defaulted activity date, got zero")
	}
}

// ---------------------------------------------------------------------------
// List / Get
// ---------------------------------------------------------------------------

func TestEntryService_List_OrderedAndScoped(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryService(repo)

	mustCreate(t, svc, "user-a", "Running", 30, "medium", "2024-01-01")
	mustCreate(t, svc, "user-a", "Cycling", 20, "intense", "2024-03-01")
	mustCreate(t, svc, "user-a", "Plank", 10, "slow", "2024-02-01")
	mustCreate(t, svc, "user-b", "Running", 60, "intense", "2024-04-01")

	entries, err := svc.List(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries for user-a, got %d", len(entries))
	}
	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	for i, e := range entries {
		if got := e.ActivityDate.Format("2006-01-02"); got != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got)
		}
	}
}

func TestEntryService_Get_CrossUserLooksMissing(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryService(repo)

	entry := mustCreate(t, svc, "user-a", "Running", 30, "medium", "2024-01-01")

	_, errOther := svc.Get(context.Background(), "user-b", entry.ID)
	_, errMissing := svc.Get(context.Background(), "user-b", "entry-999")
	if errOther != domain.ErrEntryNotFound || errMissing != domain.ErrEntryNotFound {
		t.Fatalf("cross-user (%v) and missing (%v) must both be ErrEntryNotFound", errOther, errMissing)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestEntryService_Update_MergesAndRecomputes(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryService(repo)

	entry := mustCreate(t, svc, "user-a", "Running", 30, "medium", "2024-01-01")

	duration := 60
	updated, err := svc.Update(context.Background(), "user-a", entry.ID, ports.UpdateEntryInput{
		Duration: &duration,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ActivityName != "Running" || updated.Intensity != "medium" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.Duration != 60 {
		t.Fatalf("expected duration 60, got %d", updated.Duration)
	}
	if updated.CaloriesBurned != 300 {
		t.Fatalf("expected recomputed calories 300, got %d", updated.CaloriesBurned)
	}
}

func TestEntryService_Update_CrossUser(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryService(repo)

	entry := mustCreate(t, svc, "user-a", "Running", 30, "medium", "2024-01-01")

	name := "Cycling"
	if _, err := svc.Update(context.Background(), "user-b", entry.ID, ports.UpdateEntryInput{ActivityName: &name}); err != domain.ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	// Owner's entry is untouched.
	stored, err := svc.Get(context.Background(), "user-a", entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ActivityName != "Running" {
		t.Fatalf("entry mutated by non-owner: %+v", stored)
	}
}

func TestEntryService_Update_RejectsInvalidPartial(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryService(repo)

	entry := mustCreate(t, svc, "user-a", "Running", 30, "medium", "2024-01-01")

	bad := -10
	if _, err := svc.Update(context.Background(), "user-a", entry.ID, ports.UpdateEntryInput{Duration: &bad}); !errors.Is(err, domain.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestEntryService_Delete(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryService(repo)

	entry := mustCreate(t, svc, "user-a", "Running", 30, "medium", "2024-01-01")

	if err := svc.Delete(context.Background(), "user-b", entry.ID); err != domain.ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-a", entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "user-a", entry.ID); err != domain.ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound after delete, got %v", err)
	}
}

func mustCreate(t *testing.T, svc *EntryService, userID, activity string, duration int, intensity, date string) *domain.Entry {
	t.Helper()
	entry, err := svc.Create(context.Background(), userID, ports.CreateEntryInput{
		ActivityName: activity,
		Duration:     duration,
		Intensity:    intensity,
		ActivityDate: date,
	})
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return entry
}
