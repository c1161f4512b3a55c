package game

const (
	// DefaultGridWidth is the number of columns on a standard board
	DefaultGridWidth = 10

	// DefaultGridHeight is the number of rows on a standard board
	DefaultGridHeight = 10

	// DefaultMineCount is the number of mines on a standard board
	DefaultMineCount = 15

	// EvictionGraceSeconds is how long a finished game stays in the
	// store so late result queries can still be answered
	EvictionGraceSeconds = 30

	// MaxChatMessageLength is the chat message cap enforced at the
	// gateway boundary
	MaxChatMessageLength = 100
)
