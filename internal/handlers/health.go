package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse reports liveness plus basic load figures. Used for
// probing only, not part of the game protocol.
type HealthResponse struct {
	Status         string `json:"status"`
	Games          int    `json:"games"`
	WaitingPlayers int    `json:"waitingPlayers"`
	BotEnabled     bool   `json:"botEnabled"`
	Timestamp      string `json:"timestamp"`
}

// HandleHealth serves the liveness probe.
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{
		Status:         "ok",
		Games:          ctx.GameStore.Count(),
		WaitingPlayers: ctx.Queue.Depth(),
		BotEnabled:     true,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

// HandlePing answers connectivity checks.
func (ctx *Context) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
