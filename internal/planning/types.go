package planning

import "time"

// PlanRequest describes the desired Heimstunde. Duration and
// participant count are the only required fields.
type PlanRequest struct {
	Title               string   `json:"title,omitempty"`
	Date                string   `json:"date,omitempty"` // YYYY-MM-DD
	Duration            int      `json:"duration"`       // total minutes
	ParticipantCount    int      `json:"participant_count"`
	AgeGroup            string   `json:"age_group,omitempty"`
	Theme               string   `json:"theme,omitempty"`
	Location            string   `json:"location,omitempty"` // indoor, outdoor, flexible
	PedagogicalGoals    []string `json:"pedagogical_goals,omitempty"`
	SpecialRequirements string   `json:"special_requirements,omitempty"`
}

// ScheduleItem is one block in the Heimstunde schedule.
type ScheduleItem struct {
	StartTime    string   `json:"start_time"` // HH:MM
	Duration     int      `json:"duration"`   // minutes
	ActivityName string   `json:"activity_name"`
	ActivityType string   `json:"activity_type"` // opening, main_activity, reflection, closing
	Description  string   `json:"description"`
	Materials    []string `json:"materials"`
	Notes        string   `json:"notes,omitempty"`
}

// Plan is a structured Heimstunde plan skeleton.
type Plan struct {
	PlanID           string         `json:"plan_id"`
	Title            string         `json:"title"`
	Date             string         `json:"date,omitempty"`
	Duration         int            `json:"duration"`
	ParticipantCount int            `json:"participant_count"`
	AgeGroup         string         `json:"age_group"`
	Theme            string         `json:"theme,omitempty"`
	Location         string         `json:"location"`
	PedagogicalGoals []string       `json:"pedagogical_goals"`
	Schedule         []ScheduleItem `json:"schedule"`
	MaterialList     []string       `json:"material_list"`
	PreparationNotes []string       `json:"preparation_notes"`
	CreatedAt        time.Time      `json:"created_at"`
}
