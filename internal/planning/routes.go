package planning

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the planning API routes. The enabled flag is
// the feature toggle checked at this boundary only.
func RegisterRoutes(r chi.Router, enabled bool) {
	r.Route("/api/v1/planning", func(r chi.Router) {
		r.Post("/heimstunde", handleCreatePlan(enabled))
	})
}

func handleCreatePlan(enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, `{"error":"planning feature is disabled"}`, http.StatusNotImplemented)
			return
		}

		var req PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Duration <= 0 {
			http.Error(w, `{"error":"duration is required"}`, http.StatusBadRequest)
			return
		}
		if req.ParticipantCount <= 0 {
			http.Error(w, `{"error":"participant_count is required"}`, http.StatusBadRequest)
			return
		}

		plan := BuildPlan(req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(plan)
	}
}
