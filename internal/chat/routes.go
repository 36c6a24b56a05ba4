package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/config"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
)

// ChatMessage is the wire form of one stored conversation turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RegisterRoutes mounts the chat API routes.
func RegisterRoutes(r chi.Router, orch *Orchestrator, gateway *llm.Gateway, cfg *config.Config) {
	r.Route("/api/v1/chat", func(r chi.Router) {
		r.Post("/", handleChat(orch, cfg.EnableChat))
		r.Get("/status", handleStatus(gateway, cfg))
		r.Get("/ws", handleWebSocket(orch, cfg.EnableChat))
		r.Get("/{id}/history", handleHistory(orch))
		r.Delete("/{id}", handleDelete(orch))
		r.Post("/{id}/export", handleExport(orch))
	})
}

func handleChat(orch *Orchestrator, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, `{"error":"chatbot feature is disabled"}`, http.StatusNotImplemented)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
			return
		}

		resp := orch.ProcessMessage(r.Context(), req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func handleStatus(gateway *llm.Gateway, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"azure_openai_available": gateway.IsAvailable(),
			"features_enabled": map[string]bool{
				"chatbot":     cfg.EnableChat,
				"game_search": cfg.EnableGameSearch,
				"planning":    cfg.EnablePlanning,
			},
			"deployment_info": map[string]any{
				"chat_model":          cfg.ChatDeployment,
				"embedding_model":     cfg.EmbeddingDeployment,
				"endpoint_configured": cfg.AzureOpenAIEndpoint != "",
				"api_key_configured":  cfg.AzureOpenAIAPIKey != "",
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func handleHistory(orch *Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		history := orch.History(id)

		messages := make([]ChatMessage, 0, len(history))
		for _, m := range history {
			messages = append(messages, ChatMessage{Role: string(m.Role), Content: m.Content})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messages)
	}
}

func handleDelete(orch *Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !orch.DeleteConversation(id) {
			http.Error(w, `{"error":"Unterhaltung nicht gefunden"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message":         "Unterhaltung erfolgreich gelöscht",
			"conversation_id": id,
		})
	}
}

func handleExport(orch *Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		history := orch.History(id)
		if len(history) == 0 {
			http.Error(w, `{"error":"Unterhaltung nicht gefunden oder leer"}`, http.StatusNotFound)
			return
		}

		messages := make([]ChatMessage, 0, len(history))
		for _, m := range history {
			messages = append(messages, ChatMessage{Role: string(m.Role), Content: m.Content})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"conversation_id": id,
			"exported_at":     time.Now().UTC().Format(time.RFC3339),
			"message_count":   len(messages),
			"messages":        messages,
		})
	}
}
