package ws

import (
	"encoding/json"

	"github.com/dontclickthat/server/internal/models"
)

// InMessage is the envelope for client commands. Payloads are tagged
// by event name and validated before they reach core logic; anything
// malformed is dropped at the boundary.
type InMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// OutMessage is the envelope for server events.
type OutMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Inbound payloads.

type JoinGamePayload struct {
	StakeAmount float64 `json:"stakeAmount"`
	Identity    string  `json:"identity"`
	IsTestMode  bool    `json:"isTestMode"`
}

type RevealTilePayload struct {
	GameID string `json:"gameId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type ChatMessagePayload struct {
	GameID  string `json:"gameId"`
	Message string `json:"message"`
}

type AvatarReactionPayload struct {
	GameID   string `json:"gameId"`
	Reaction string `json:"reaction"`
}

// Outbound payloads.

type GameJoinedPayload struct {
	GameID      string          `json:"gameId"`
	Players     []models.Player `json:"players"`
	StakeAmount float64         `json:"stakeAmount"`
	IsTestMode  bool            `json:"isTestMode"`
}

type GameStartedPayload struct {
	GameID      string      `json:"gameId"`
	CurrentTurn string      `json:"currentTurnIdentity"`
	Grid        models.Grid `json:"grid"`
	Seed        int64       `json:"seed"`
}

type TileRevealedPayload struct {
	X           int                            `json:"x"`
	Y           int                            `json:"y"`
	Grid        models.Grid                    `json:"grid"`
	NextTurn    string                         `json:"nextTurnIdentity"`
	PlayerStats map[string]*models.PlayerStats `json:"playerStats"`
	HitMine     bool                           `json:"hitMine"`
}

type GameEndedPayload struct {
	Winner     string                         `json:"winnerIdentity"`
	FinalStats map[string]*models.PlayerStats `json:"finalStats"`
	Reason     string                         `json:"reason"`
}

type ChatBroadcastPayload struct {
	Sender    string `json:"senderIdentity"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	IsOwn     bool   `json:"isOwn"`
}

type AvatarReactionBroadcastPayload struct {
	Sender    string `json:"senderIdentity"`
	Reaction  string `json:"reaction"`
	Timestamp int64  `json:"timestamp"`
}
