package models

// Bot wire identifiers, kept stable for client compatibility.
const (
	BotConnectionID = "bot-player"
	BotIdentity     = "bot-player-ai"
)

// Player represents one participant in a game. Identity is a
// self-asserted opaque string; uniqueness per session is assumed,
// not enforced.
type Player struct {
	ConnectionID string  `json:"-"`
	Identity     string  `json:"identity"`
	StakeAmount  float64 `json:"stakeAmount"`
	IsBot        bool    `json:"isBot"`
}

// WaitingEntry is a player waiting in the matchmaking queue.
type WaitingEntry struct {
	ConnectionID string
	Identity     string
	StakeAmount  float64
	IsTestMode   bool
}

// BotWaitingEntry returns the synthetic entry used to pair a
// test-mode player with the bot.
func BotWaitingEntry() WaitingEntry {
	return WaitingEntry{
		ConnectionID: BotConnectionID,
		Identity:     BotIdentity,
		IsTestMode:   true,
	}
}
