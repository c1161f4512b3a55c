package models

import "time"

// PlayerStats holds per-game scoring for one player. SafeRevealed is
// monotonically non-decreasing while a game runs.
type PlayerStats struct {
	SafeRevealed int `json:"safeRevealed"`
}

// ChatMessage is one entry in a game's chat log.
type ChatMessage struct {
	Sender    string `json:"senderIdentity"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Game represents an active game session (ephemeral, in-memory only).
// While Status is playing, CurrentTurn names exactly one of the two
// players; once finished, CurrentTurn is frozen and Winner is set.
type Game struct {
	ID          string
	Players     [2]Player
	CurrentTurn string
	Grid        Grid
	Seed        int64
	Status      GameStatus
	StakeAmount float64
	IsTestMode  bool
	HasBot      bool
	PlayerStats map[string]*PlayerStats
	ChatLog     []ChatMessage
	Winner      string
	CreatedAt   time.Time
}

// Opponent returns the identity of the other player.
func (g *Game) Opponent(identity string) string {
	if g.Players[0].Identity == identity {
		return g.Players[1].Identity
	}
	return g.Players[0].Identity
}

// HasConnection reports whether the connection belongs to a participant.
func (g *Game) HasConnection(connID string) bool {
	return g.Players[0].ConnectionID == connID || g.Players[1].ConnectionID == connID
}

// PlayerByConnection resolves a participant by connection id.
func (g *Game) PlayerByConnection(connID string) (Player, bool) {
	for _, p := range g.Players {
		if p.ConnectionID == connID {
			return p, true
		}
	}
	return Player{}, false
}

// TotalRevealed sums safe reveals across both players.
func (g *Game) TotalRevealed() int {
	total := 0
	for _, stats := range g.PlayerStats {
		total += stats.SafeRevealed
	}
	return total
}
