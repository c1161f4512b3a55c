package handlers

import (
	"github.com/dontclickthat/server/internal/matchmaking"
	"github.com/dontclickthat/server/internal/store"
	"github.com/dontclickthat/server/internal/ws"
)

// Context holds shared application dependencies
type Context struct {
	Hub       *ws.Hub
	GameStore *store.GameStore
	Queue     *matchmaking.Queue
}
