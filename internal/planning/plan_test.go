package planning

import (
	"testing"
)

func TestBuildPlanNinetyMinutes(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		Theme:            "Vertrauen",
		Duration:         90,
		ParticipantCount: 12,
	})

	if plan.PlanID == "" {
		t.Error("expected a generated plan id")
	}
	if plan.Title != "Heimstunde: Vertrauen" {
		t.Errorf("title: got %q", plan.Title)
	}
	if plan.AgeGroup != "10-13" {
		t.Errorf("age group default: got %q", plan.AgeGroup)
	}
	if plan.Location != "indoor" {
		t.Errorf("location default: got %q", plan.Location)
	}

	if len(plan.Schedule) != 4 {
		t.Fatalf("expected 4 schedule items, got %d", len(plan.Schedule))
	}

	wantTypes := []string{"opening", "main_activity", "reflection", "closing"}
	wantDurations := []int{10, 56, 16, 8}
	wantStarts := []string{"19:00", "19:10", "20:06", "20:22"}

	total := 0
	for i, item := range plan.Schedule {
		if item.ActivityType != wantTypes[i] {
			t.Errorf("item %d type: got %q, want %q", i, item.ActivityType, wantTypes[i])
		}
		if item.Duration != wantDurations[i] {
			t.Errorf("item %d duration: got %d, want %d", i, item.Duration, wantDurations[i])
		}
		if item.StartTime != wantStarts[i] {
			t.Errorf("item %d start: got %q, want %q", i, item.StartTime, wantStarts[i])
		}
		total += item.Duration
	}
	if total != 90 {
		t.Errorf("schedule durations sum to %d, want 90", total)
	}
}

func TestBuildPlanThemeInMainActivity(t *testing.T) {
	plan := BuildPlan(PlanRequest{Theme: "Mut", Duration: 60, ParticipantCount: 10})

	var main *ScheduleItem
	for i := range plan.Schedule {
		if plan.Schedule[i].ActivityType == "main_activity" {
			main = &plan.Schedule[i]
		}
	}
	if main == nil {
		t.Fatal("expected a main activity")
	}
	if main.ActivityName != "Aktivität zum Thema 'Mut'" {
		t.Errorf("main activity name: got %q", main.ActivityName)
	}
}

func TestBuildPlanShortDuration(t *testing.T) {
	plan := BuildPlan(PlanRequest{Duration: 15, ParticipantCount: 8})

	if len(plan.Schedule) != 2 {
		t.Fatalf("expected opening and closing only, got %d items", len(plan.Schedule))
	}
	if plan.Schedule[0].ActivityType != "opening" || plan.Schedule[1].ActivityType != "closing" {
		t.Errorf("unexpected schedule: %+v", plan.Schedule)
	}
	if plan.Title != "Heimstunde" {
		t.Errorf("title fallback: got %q", plan.Title)
	}
}

func TestBuildPlanMaterialsDeduplicated(t *testing.T) {
	plan := BuildPlan(PlanRequest{Duration: 90, ParticipantCount: 12})

	seen := make(map[string]bool)
	for _, m := range plan.MaterialList {
		if seen[m] {
			t.Errorf("duplicate material %q", m)
		}
		seen[m] = true
	}
	if len(plan.MaterialList) == 0 {
		t.Error("expected aggregated materials")
	}
}

func TestPreparationNotesOutdoor(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		Duration:            60,
		ParticipantCount:    10,
		Location:            "outdoor",
		SpecialRequirements: "Ein Kind mit Gehbehinderung",
	})

	foundWeather := false
	foundSpecial := false
	for _, n := range plan.PreparationNotes {
		if n == "Wetterbericht prüfen und Backup-Plan für schlechtes Wetter" {
			foundWeather = true
		}
		if n == "Besondere Anforderungen beachten: Ein Kind mit Gehbehinderung" {
			foundSpecial = true
		}
	}
	if !foundWeather {
		t.Error("outdoor plan must include a weather note")
	}
	if !foundSpecial {
		t.Error("special requirements must appear in the preparation notes")
	}
}

func TestAddMinutesWrapsMidnight(t *testing.T) {
	if got := addMinutes("23:50", 20); got != "00:10" {
		t.Errorf("addMinutes(23:50, 20) = %q, want 00:10", got)
	}
}
