package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontclickthat/server/internal/matchmaking"
	"github.com/dontclickthat/server/internal/models"
	"github.com/dontclickthat/server/internal/store"
)

func TestHandleHealthReportsCounts(t *testing.T) {
	gameStore := store.NewGameStore()
	queue := matchmaking.NewQueue(matchmaking.PolicyBotImmediate)
	ctx := &Context{GameStore: gameStore, Queue: queue}

	gameStore.Create(&models.Game{ID: "g1"})
	queue.Enqueue(models.WaitingEntry{ConnectionID: "c1", Identity: "alice"})

	rec := httptest.NewRecorder()
	ctx.HandleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 200, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Games)
	assert.Equal(t, 1, resp.WaitingPlayers)
	assert.True(t, resp.BotEnabled)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestHandlePing(t *testing.T) {
	ctx := &Context{}
	rec := httptest.NewRecorder()

	ctx.HandlePing(rec, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, "pong", rec.Body.String())
}
