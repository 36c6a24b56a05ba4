package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/planning"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/search"
)

// Result is a tool result: a field map, or an error marker produced by
// ErrorResult. Results live for one turn only.
type Result map[string]any

// ErrorResult builds a tool result carrying a human-readable error.
func ErrorResult(msg string) Result {
	return Result{"error": msg}
}

// IsError reports whether the result carries an error marker.
func (r Result) IsError() bool {
	_, ok := r["error"]
	return ok
}

// Dispatch validates and executes a tool call requested by the model.
// Model output is untrusted: unparsable arguments, unknown tool names
// and missing required parameters all come back as error results, never
// as a panic or error return.
func (r *Registry) Dispatch(ctx context.Context, call llm.ToolCall) Result {
	r.logger.Info().Str("tool", call.Name).Msg("executing tool call")

	switch call.Name {
	case ToolSearchGames:
		return r.dispatchSearch(ctx, call.Arguments)
	case ToolCreateHeimstundePlan:
		return r.dispatchPlan(call.Arguments)
	case ToolPfadfinderKnowledge:
		return r.dispatchKnowledge(ctx, call.Arguments)
	default:
		return ErrorResult(fmt.Sprintf("unknown tool: %s", call.Name))
	}
}

type searchGamesArgs struct {
	Query            string `json:"query"`
	DurationMax      int    `json:"duration_max"`
	ParticipantCount int    `json:"participant_count"`
	Location         string `json:"location"`
	AgeGroup         string `json:"age_group"`
}

func (r *Registry) dispatchSearch(ctx context.Context, rawArgs string) Result {
	var args searchGamesArgs
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return ErrorResult("invalid arguments")
	}
	if args.Query == "" {
		return ErrorResult("missing required parameter: query")
	}

	filters := search.Filters{
		DurationMax:      args.DurationMax,
		ParticipantCount: args.ParticipantCount,
		Location:         args.Location,
		AgeGroup:         args.AgeGroup,
	}
	result, err := r.search.Search(ctx, filters, args.Query, true, 10)
	if err != nil {
		r.logger.Error().Err(err).Msg("tool search failed")
		return ErrorResult("game search failed")
	}

	return Result{
		"games":           result.Activities,
		"query":           args.Query,
		"filters_applied": filters,
		"total_found":     result.TotalFound,
		"search_type":     result.Type,
	}
}

type planArgs struct {
	Theme            string   `json:"theme"`
	Duration         int      `json:"duration"`
	ParticipantCount int      `json:"participant_count"`
	Location         string   `json:"location"`
	PedagogicalGoals []string `json:"pedagogical_goals"`
}

func (r *Registry) dispatchPlan(rawArgs string) Result {
	var args planArgs
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return ErrorResult("invalid arguments")
	}
	if args.Duration <= 0 {
		return ErrorResult("missing required parameter: duration")
	}
	if args.ParticipantCount <= 0 {
		return ErrorResult("missing required parameter: participant_count")
	}

	plan := planning.BuildPlan(planning.PlanRequest{
		Theme:            args.Theme,
		Duration:         args.Duration,
		ParticipantCount: args.ParticipantCount,
		Location:         args.Location,
		PedagogicalGoals: args.PedagogicalGoals,
	})

	return Result{
		"plan_id":           plan.PlanID,
		"title":             plan.Title,
		"duration":          plan.Duration,
		"schedule":          plan.Schedule,
		"material_list":     plan.MaterialList,
		"preparation_notes": plan.PreparationNotes,
	}
}

type knowledgeArgs struct {
	Question       string `json:"question"`
	AgeAppropriate bool   `json:"age_appropriate"`
}

func (r *Registry) dispatchKnowledge(ctx context.Context, rawArgs string) Result {
	var args knowledgeArgs
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return ErrorResult("invalid arguments")
	}
	if args.Question == "" {
		return ErrorResult("missing required parameter: question")
	}

	answer := r.knowledge.Lookup(ctx, args.Question, args.AgeAppropriate)

	return Result{
		"answer":          answer.Answer,
		"sources":         answer.Sources,
		"age_appropriate": answer.AgeAppropriate,
	}
}
