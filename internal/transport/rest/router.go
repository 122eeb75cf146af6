package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/config"
	"github.com/campusassist/campus-assist/internal/service"
	"github.com/campusassist/campus-assist/internal/transport/rest/handler"
	"github.com/campusassist/campus-assist/internal/transport/rest/middleware"
	"github.com/campusassist/campus-assist/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	ChatService *service.ChatService
	WSHub       *ws.Hub
	CORS        config.CORSConfig
	Logger      *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	chatHandler := handler.NewChatHandler(c.ChatService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.ChatService, c.Logger)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.RequestLogger(c.Logger))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/chat/message", chatHandler.SendMessage).Methods("POST", "OPTIONS")
	v1.HandleFunc("/chat/conversations/{id}", chatHandler.GetConversation).Methods("GET", "OPTIONS")
	v1.HandleFunc("/chat/conversations/{id}/context", chatHandler.ClearContext).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/chat/feedback", chatHandler.SubmitFeedback).Methods("POST", "OPTIONS")
	v1.HandleFunc("/chat/escalate", chatHandler.Escalate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/chat/languages", chatHandler.Languages).Methods("GET", "OPTIONS")
	v1.HandleFunc("/chat/translate", chatHandler.Translate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/chat/stats", chatHandler.Stats).Methods("GET", "OPTIONS")

	// WebSocket routes
	v1.HandleFunc("/ws/chat", wsHandler.ChatWS).Methods("GET")
	v1.HandleFunc("/ws/agents", wsHandler.AgentWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// OpenAPI document registered by the docs package
	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, `{"error":"api documentation not registered"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	return r
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
