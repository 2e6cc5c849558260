package journey

import (
	"context"
	"testing"

	"jornada/internal/database"
	"jornada/internal/models"
)

func intPtr(v int) *int { return &v }

func newTestService(t *testing.T) (*Service, database.JourneyTable) {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	table := database.NewJourneyTable(db)
	return NewService(table), table
}

func TestInitFromDBSeedsWhenEmpty(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	if err := svc.InitFromDB(ctx); err != nil {
		t.Fatalf("InitFromDB failed: %v", err)
	}

	count, err := table.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count == 0 {
		t.Fatal("empty table was not seeded")
	}
	if len(svc.Journeys()) != count {
		t.Errorf("Journeys len = %d, want %d", len(svc.Journeys()), count)
	}
	for _, j := range svc.Journeys() {
		if j.ID == "" {
			t.Error("seeded journey without id")
		}
		for _, s := range j.Steps {
			if s.JourneyID != j.ID {
				t.Errorf("step %s has JourneyID %q, want %q", s.ID, s.JourneyID, j.ID)
			}
		}
	}
}

func TestLoadJourneysSortsByOrderMissingIsZero(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	seed := []*models.Journey{
		{ID: "j1", Name: "two", Order: intPtr(2)},
		{ID: "j2", Name: "none"},
		{ID: "j3", Name: "one", Order: intPtr(1)},
	}
	if err := table.BulkPut(ctx, seed); err != nil {
		t.Fatalf("BulkPut failed: %v", err)
	}

	if err := svc.LoadJourneys(ctx); err != nil {
		t.Fatalf("LoadJourneys failed: %v", err)
	}

	got := svc.Journeys()
	want := []string{"j2", "j3", "j1"}
	if len(got) != len(want) {
		t.Fatalf("Journeys len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Journeys[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestAddJourney(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	journey := &models.Journey{
		Name:  "Support",
		Steps: []models.Step{{Title: "Open ticket"}},
		Order: intPtr(9),
	}
	if err := svc.AddJourney(ctx, journey); err != nil {
		t.Fatalf("AddJourney failed: %v", err)
	}

	got := svc.Journeys()
	if len(got) != 1 {
		t.Fatalf("Journeys len = %d, want 1", len(got))
	}
	if got[0].ID == "" {
		t.Error("journey id was not generated")
	}
	if len(got[0].Steps) != 1 || got[0].Steps[0].ID == "" {
		t.Errorf("step id was not generated: %+v", got[0].Steps)
	}
	if got[0].Steps[0].JourneyID != got[0].ID {
		t.Error("step not stamped with its journey id")
	}
}

func TestAddJourneyRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.AddJourney(context.Background(), &models.Journey{}); err != ErrEmptyName {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestAddStep(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	if err := svc.AddJourney(ctx, &models.Journey{ID: "j1", Name: "Buy"}); err != nil {
		t.Fatalf("AddJourney failed: %v", err)
	}
	if err := svc.AddStep(ctx, "j1", models.Step{Title: "Pay"}); err != nil {
		t.Fatalf("AddStep failed: %v", err)
	}

	got := svc.Journeys()[0]
	if len(got.Steps) != 1 || got.Steps[0].Title != "Pay" {
		t.Fatalf("Steps = %+v, want one 'Pay' step", got.Steps)
	}

	stored, err := table.Get(ctx, "j1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(stored.Steps) != 1 {
		t.Error("step not persisted")
	}
}

func TestAddStepUnknownJourneyIsNoop(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	if err := svc.AddStep(ctx, "ghost", models.Step{Title: "Pay"}); err != nil {
		t.Fatalf("AddStep failed: %v", err)
	}
	count, _ := table.Count(ctx)
	if count != 0 {
		t.Error("no-op touched storage")
	}
}

func TestAllStepsPreservesOrder(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	seed := []*models.Journey{
		{ID: "j2", Name: "second", Order: intPtr(2), Steps: []models.Step{
			{ID: "s3", Title: "c", JourneyID: "j2"},
		}},
		{ID: "j1", Name: "first", Order: intPtr(1), Steps: []models.Step{
			{ID: "s1", Title: "a", JourneyID: "j1"},
			{ID: "s2", Title: "b", JourneyID: "j1"},
		}},
	}
	if err := table.BulkPut(ctx, seed); err != nil {
		t.Fatalf("BulkPut failed: %v", err)
	}
	if err := svc.LoadJourneys(ctx); err != nil {
		t.Fatalf("LoadJourneys failed: %v", err)
	}

	steps := svc.AllSteps()
	want := []string{"s1", "s2", "s3"}
	if len(steps) != len(want) {
		t.Fatalf("AllSteps len = %d, want %d", len(steps), len(want))
	}
	for i, id := range want {
		if steps[i].ID != id {
			t.Errorf("AllSteps[%d] = %s, want %s", i, steps[i].ID, id)
		}
	}
}

func TestStepTitle(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	seed := []*models.Journey{
		{ID: "j1", Name: "Buy", Steps: []models.Step{
			{ID: "s1", Title: "Pay", JourneyID: "j1"},
		}},
	}
	if err := table.BulkPut(ctx, seed); err != nil {
		t.Fatalf("BulkPut failed: %v", err)
	}
	if err := svc.LoadJourneys(ctx); err != nil {
		t.Fatalf("LoadJourneys failed: %v", err)
	}

	if title, ok := svc.StepTitle("s1"); !ok || title != "Pay" {
		t.Errorf("StepTitle(s1) = %q, %v", title, ok)
	}
	if _, ok := svc.StepTitle("ghost"); ok {
		t.Error("StepTitle found a ghost step")
	}
}

func TestReplaceAll(t *testing.T) {
	svc, table := newTestService(t)
	ctx := context.Background()

	if err := svc.InitFromDB(ctx); err != nil {
		t.Fatalf("InitFromDB failed: %v", err)
	}

	next := []*models.Journey{{ID: "jx", Name: "imported"}}
	if err := svc.ReplaceAll(ctx, next); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	if len(svc.Journeys()) != 1 || svc.Journeys()[0].ID != "jx" {
		t.Errorf("Journeys = %+v, want [jx]", svc.Journeys())
	}
	count, _ := table.Count(ctx)
	if count != 1 {
		t.Errorf("stored count = %d, want 1", count)
	}
}

func TestResetAllReseeds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.ReplaceAll(ctx, []*models.Journey{{ID: "jx", Name: "imported"}}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}

	for _, j := range svc.Journeys() {
		if j.ID == "jx" {
			t.Error("imported journey survived ResetAll")
		}
	}
	if len(svc.Journeys()) == 0 {
		t.Error("ResetAll did not reseed")
	}
}
