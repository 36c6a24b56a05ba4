package catalog

import (
	"fmt"
	"strings"
)

// Activity is one searchable entry in the activity catalog.
type Activity struct {
	ID                string   `json:"gameId" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Description       string   `json:"description" yaml:"description"`
	Materials         []string `json:"materials" yaml:"materials"`
	DurationMinutes   int      `json:"durationMinutes" yaml:"duration_minutes"`
	MinParticipants   int      `json:"minParticipants" yaml:"min_participants"`
	MaxParticipants   int      `json:"maxParticipants" yaml:"max_participants"`
	AgeGroup          string   `json:"ageGroup" yaml:"age_group"`
	Location          string   `json:"location" yaml:"location"`
	WeatherDependency string   `json:"weatherDependency" yaml:"weather_dependency"`
	Tags              []string `json:"tags" yaml:"tags"`
	PedagogicalValue  string   `json:"pedagogicalValue" yaml:"pedagogical_value"`
	SourceURL         string   `json:"sourceUrl,omitempty" yaml:"source_url,omitempty"`
	Rating            float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// EmbeddingText builds the canonical textual serialization used to
// embed an activity. Identical input text must always yield the same
// vector, so the field order here is fixed.
func (a Activity) EmbeddingText() string {
	parts := []string{
		a.Name,
		a.Description,
		a.PedagogicalValue,
		strings.Join(a.Tags, " "),
		fmt.Sprintf("Dauer: %d Minuten", a.DurationMinutes),
		fmt.Sprintf("Teilnehmer: %d-%d", a.MinParticipants, a.MaxParticipants),
		fmt.Sprintf("Ort: %s", a.Location),
		fmt.Sprintf("Materialien: %s", strings.Join(a.Materials, ", ")),
	}
	return strings.Join(parts, " ")
}
