package ws

// Event name constants for both directions of the protocol
const (
	EventJoinGame           = "joinGame"
	EventWaitingForOpponent = "waitingForOpponent"
	EventGameJoined         = "gameJoined"
	EventGameStarted        = "gameStarted"
	EventRevealTile         = "revealTile"
	EventTileRevealed       = "tileRevealed"
	EventGameEnded          = "gameEnded"
	EventChatMessage        = "chatMessage"
	EventAvatarReaction     = "avatarReaction"
)

// Reasons carried by gameEnded
const (
	ReasonMine       = "mine"
	ReasonCompletion = "completion"
	ReasonForfeit    = "forfeit"
)
