package games

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/catalog"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/search"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// RegisterRoutes mounts the game catalog and search routes.
func RegisterRoutes(r chi.Router, store *catalog.Store, searcher *search.Service, enabled bool) {
	r.Route("/api/v1/games", func(r chi.Router) {
		r.Get("/search", handleSearch(searcher, enabled))
		r.Get("/", handleList(store))
		r.Get("/{id}", handleGet(store))
		r.Get("/{id}/similar", handleSimilar(searcher, enabled))
	})
}

func handleSearch(searcher *search.Service, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, `{"error":"game search feature is disabled"}`, http.StatusNotImplemented)
			return
		}

		q := r.URL.Query()
		filters := search.Filters{
			Location: q.Get("location"),
			AgeGroup: q.Get("age_group"),
		}

		if v := q.Get("duration_max"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, `{"error":"duration_max must be a positive integer"}`, http.StatusBadRequest)
				return
			}
			filters.DurationMax = n
		}
		if v := q.Get("participant_count"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, `{"error":"participant_count must be a positive integer"}`, http.StatusBadRequest)
				return
			}
			filters.ParticipantCount = n
		}
		if v := q.Get("tags"); v != "" {
			for _, tag := range strings.Split(v, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					filters.Tags = append(filters.Tags, tag)
				}
			}
		}

		useSemantic := true
		if v := q.Get("semantic"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, `{"error":"semantic must be a boolean"}`, http.StatusBadRequest)
				return
			}
			useSemantic = b
		}

		limit := defaultLimit
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxLimit {
				http.Error(w, `{"error":"limit must be between 1 and 50"}`, http.StatusBadRequest)
				return
			}
			limit = n
		}

		result, err := searcher.Search(r.Context(), filters, q.Get("q"), useSemantic, limit)
		if err != nil {
			http.Error(w, `{"error":"search failed"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func handleList(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities := store.All()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"games": activities,
			"total": len(activities),
		})
	}
}

func handleGet(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		activity, ok := store.Get(id)
		if !ok {
			http.Error(w, `{"error":"Spiel nicht gefunden"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(activity)
	}
}

func handleSimilar(searcher *search.Service, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, `{"error":"game search feature is disabled"}`, http.StatusNotImplemented)
			return
		}

		id := chi.URLParam(r, "id")

		limit := 5
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxLimit {
				http.Error(w, `{"error":"limit must be between 1 and 50"}`, http.StatusBadRequest)
				return
			}
			limit = n
		}

		similar, err := searcher.GetSimilar(r.Context(), id, limit)
		if err != nil {
			http.Error(w, `{"error":"similarity search failed"}`, http.StatusInternalServerError)
			return
		}
		if similar == nil {
			http.Error(w, `{"error":"Spiel nicht gefunden"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"game_id":       id,
			"similar_games": similar,
			"total":         len(similar),
		})
	}
}
