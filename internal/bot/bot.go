package bot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dontclickthat/server/internal/models"
)

// Timing and behavior tuning. Vars rather than consts so tests can
// shrink the delays.
var (
	thinkDelayMin    = 1000 * time.Millisecond
	thinkDelayJitter = 1000 * time.Millisecond
	reactionDelay    = 500 * time.Millisecond
	replyDelayMin    = 1000 * time.Millisecond
	replyDelayJitter = 2000 * time.Millisecond

	reactionChance = 0.3
	replyChance    = 0.4
)

var reactions = []string{"🤖", "🎯", "💭", "⚡", "🔍"}

var cannedReplies = []string{
	"🤖 Beep boop!",
	"🎯 Good move!",
	"💭 Calculating...",
	"⚡ Nice try!",
	"🔍 Interesting choice",
	"🎮 Let's play!",
	"🚀 Game on!",
	"🧠 Processing...",
	"⭐ Well played!",
	"🎲 Random is fun!",
}

// ActionKind tags a deferred bot step.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionReaction
	ActionChat
)

// Action is a deferred bot step handed back to the gateway loop. The
// receiver must re-validate game state before applying it, since
// arbitrary time has passed while the timer ran.
type Action struct {
	Kind     ActionKind
	GameID   string
	Reaction string
	Message  string
}

// Controller schedules the bot's delayed behavior. It never mutates
// game state itself: every action is injected through the dispatch
// function so the gateway's single loop stays the only mutator.
type Controller struct {
	mu       sync.Mutex
	pending  map[string]*time.Timer
	dispatch func(Action)
}

// NewController creates a controller that hands fired actions to
// dispatch.
func NewController(dispatch func(Action)) *Controller {
	return &Controller{
		pending:  make(map[string]*time.Timer),
		dispatch: dispatch,
	}
}

// ScheduleMove arms the per-game thinking timer. At most one move is
// pending per game; rescheduling replaces the previous timer.
func (c *Controller) ScheduleMove(gameID string) {
	delay := thinkDelayMin + time.Duration(rand.Int63n(int64(thinkDelayJitter)))

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.pending[gameID]; ok {
		t.Stop()
	}
	c.pending[gameID] = time.AfterFunc(delay, func() {
		c.clearPending(gameID)
		c.dispatch(Action{Kind: ActionMove, GameID: gameID})
	})
}

// Cancel stops any pending move for the game. Called on forfeit and
// eviction so a dead game cannot receive a late bot move.
func (c *Controller) Cancel(gameID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.pending[gameID]; ok {
		t.Stop()
		delete(c.pending, gameID)
	}
}

func (c *Controller) clearPending(gameID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, gameID)
}

// MaybeReact rolls for a decorative reaction after a short delay.
func (c *Controller) MaybeReact(gameID string) {
	if rand.Float64() >= reactionChance {
		return
	}
	reaction := reactions[rand.Intn(len(reactions))]
	time.AfterFunc(reactionDelay, func() {
		c.dispatch(Action{Kind: ActionReaction, GameID: gameID, Reaction: reaction})
	})
}

// MaybeReply rolls for a canned chat response to a human message.
func (c *Controller) MaybeReply(gameID string) {
	if rand.Float64() >= replyChance {
		return
	}
	reply := cannedReplies[rand.Intn(len(cannedReplies))]
	delay := replyDelayMin + time.Duration(rand.Int63n(int64(replyDelayJitter)))
	time.AfterFunc(delay, func() {
		c.dispatch(Action{Kind: ActionChat, GameID: gameID, Message: reply})
	})
}

// ChooseMove picks the bot's next cell: an unrevealed corner if any,
// else an unrevealed edge, else any unrevealed cell, uniformly within
// the tier. A heuristic only; the bot has no knowledge of mine
// positions.
func ChooseMove(grid models.Grid) (x, y int, ok bool) {
	width, height := grid.Width(), grid.Height()

	var corners, edges, rest [][2]int
	for cy := 0; cy < height; cy++ {
		for cx := 0; cx < width; cx++ {
			if grid[cy][cx].Revealed {
				continue
			}
			onX := cx == 0 || cx == width-1
			onY := cy == 0 || cy == height-1
			switch {
			case onX && onY:
				corners = append(corners, [2]int{cx, cy})
			case onX || onY:
				edges = append(edges, [2]int{cx, cy})
			default:
				rest = append(rest, [2]int{cx, cy})
			}
		}
	}

	for _, tier := range [][][2]int{corners, edges, rest} {
		if len(tier) > 0 {
			pick := tier[rand.Intn(len(tier))]
			return pick[0], pick[1], true
		}
	}
	return 0, 0, false
}
