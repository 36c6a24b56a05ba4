package planning

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const defaultStartTime = "19:00"

// BuildPlan derives a structured Heimstunde plan skeleton from the
// request: opening, a theme-aware main block sized to roughly 70% of
// the remaining time, reflection, and closing, with aggregated
// materials and preparation notes. It is a pure function of its input
// apart from the generated plan id and timestamp.
func BuildPlan(req PlanRequest) Plan {
	schedule := buildSchedule(req)

	plan := Plan{
		PlanID:           uuid.NewString(),
		Title:            req.Title,
		Date:             req.Date,
		Duration:         req.Duration,
		ParticipantCount: req.ParticipantCount,
		AgeGroup:         req.AgeGroup,
		Theme:            req.Theme,
		Location:         req.Location,
		PedagogicalGoals: req.PedagogicalGoals,
		Schedule:         schedule,
		MaterialList:     collectMaterials(schedule),
		PreparationNotes: preparationNotes(req),
		CreatedAt:        time.Now().UTC(),
	}

	if plan.AgeGroup == "" {
		plan.AgeGroup = "10-13"
	}
	if plan.Location == "" {
		plan.Location = "indoor"
	}
	if plan.Title == "" {
		if req.Theme != "" {
			plan.Title = fmt.Sprintf("Heimstunde: %s", req.Theme)
		} else if req.Date != "" {
			plan.Title = fmt.Sprintf("Heimstunde %s", req.Date)
		} else {
			plan.Title = "Heimstunde"
		}
	}
	if plan.PedagogicalGoals == nil {
		plan.PedagogicalGoals = []string{}
	}

	return plan
}

func buildSchedule(req PlanRequest) []ScheduleItem {
	var schedule []ScheduleItem
	current := defaultStartTime
	remaining := req.Duration

	if remaining >= 10 {
		schedule = append(schedule, ScheduleItem{
			StartTime:    current,
			Duration:     10,
			ActivityName: "Begrüßung und Eröffnung",
			ActivityType: "opening",
			Description:  "Gemeinsame Begrüßung, kurze Runde zum Befinden",
			Materials:    []string{"Kluft", "eventuell Fahne"},
		})
		remaining -= 10
		current = addMinutes(current, 10)
	}

	mainTime := remaining * 7 / 10
	if mainTime >= 15 {
		name := "Teambuilding-Spiel"
		description := "Spiel zur Stärkung des Gruppengefühls"
		if req.Theme != "" {
			name = fmt.Sprintf("Aktivität zum Thema '%s'", req.Theme)
			description = fmt.Sprintf("Kreative Aktivität passend zum Thema %s", req.Theme)
		}
		schedule = append(schedule, ScheduleItem{
			StartTime:    current,
			Duration:     mainTime,
			ActivityName: name,
			ActivityType: "main_activity",
			Description:  description,
			Materials:    []string{"Je nach gewähltem Spiel"},
			Notes:        "Spiel an Gruppengröße anpassen",
		})
		remaining -= mainTime
		current = addMinutes(current, mainTime)
	}

	if remaining >= 10 {
		reflectionTime := remaining - 5
		if t := remaining * 7 / 10; t < reflectionTime {
			reflectionTime = t
		}
		schedule = append(schedule, ScheduleItem{
			StartTime:    current,
			Duration:     reflectionTime,
			ActivityName: "Reflexion und Gespräch",
			ActivityType: "reflection",
			Description:  "Gemeinsame Reflexion über die Aktivitäten und Erfahrungen",
			Materials:    []string{"Sitzkreis"},
		})
		remaining -= reflectionTime
		current = addMinutes(current, reflectionTime)
	}

	if remaining >= 5 {
		schedule = append(schedule, ScheduleItem{
			StartTime:    current,
			Duration:     remaining,
			ActivityName: "Abschluss",
			ActivityType: "closing",
			Description:  "Gemeinsamer Abschluss, Termine und Verabschiedung",
			Materials:    []string{},
		})
	}

	return schedule
}

// collectMaterials aggregates the unique materials across the schedule,
// preserving first-seen order.
func collectMaterials(schedule []ScheduleItem) []string {
	seen := make(map[string]bool)
	materials := []string{}
	for _, item := range schedule {
		for _, m := range item.Materials {
			if !seen[m] {
				seen[m] = true
				materials = append(materials, m)
			}
		}
	}
	return materials
}

func preparationNotes(req PlanRequest) []string {
	notes := []string{
		"Raum/Platz entsprechend der geplanten Aktivitäten vorbereiten",
		"Alle Materialien im Voraus bereitlegen",
		fmt.Sprintf("Aktivitäten für %d Teilnehmer anpassen", req.ParticipantCount),
	}
	if req.Location == "outdoor" {
		notes = append(notes, "Wetterbericht prüfen und Backup-Plan für schlechtes Wetter")
	}
	if req.SpecialRequirements != "" {
		notes = append(notes, fmt.Sprintf("Besondere Anforderungen beachten: %s", req.SpecialRequirements))
	}
	return notes
}

// addMinutes advances an HH:MM clock time, wrapping at midnight.
func addMinutes(clock string, minutes int) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}
