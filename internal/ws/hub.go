package ws

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dontclickthat/server/internal/bot"
	"github.com/dontclickthat/server/internal/game"
	"github.com/dontclickthat/server/internal/matchmaking"
	"github.com/dontclickthat/server/internal/models"
	"github.com/dontclickthat/server/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Options configures the boards the hub deals out.
type Options struct {
	GridWidth  int
	GridHeight int
	MineCount  int
}

type inbound struct {
	client *Client
	msg    InMessage
}

// Hub owns every live connection and serializes all game-state
// mutation on its Run goroutine. Timer continuations (bot moves,
// reactions, chat replies) re-enter through the actions channel, so
// no game is ever touched from two goroutines at once.
type Hub struct {
	opts  Options
	store *store.GameStore
	queue *matchmaking.Queue
	bot   *bot.Controller

	register   chan *Client
	unregister chan *Client
	inbound    chan inbound
	actions    chan bot.Action

	// rooms scopes broadcasts to one game's connections; sessions is
	// the connection directory mapping connection id to identity.
	rooms    map[string]map[*Client]bool
	sessions map[string]*models.Player
	clients  map[string]*Client
}

// NewHub wires the gateway to its store and matchmaking queue.
func NewHub(gameStore *store.GameStore, queue *matchmaking.Queue, opts Options) *Hub {
	if opts == (Options{}) {
		opts = Options{
			GridWidth:  game.DefaultGridWidth,
			GridHeight: game.DefaultGridHeight,
			MineCount:  game.DefaultMineCount,
		}
	}

	h := &Hub{
		opts:       opts,
		store:      gameStore,
		queue:      queue,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inbound, 64),
		actions:    make(chan bot.Action, 64),
		rooms:      make(map[string]map[*Client]bool),
		sessions:   make(map[string]*models.Player),
		clients:    make(map[string]*Client),
	}
	h.bot = bot.NewController(h.injectAction)
	return h
}

// Attach wraps an upgraded connection in a client, registers it and
// starts its pumps.
func (h *Hub) Attach(conn *websocket.Conn) *Client {
	c := newClient(h, conn)
	h.register <- c
	go c.writePump()
	go c.readPump()
	return c
}

// Run processes all hub events on a single goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c.ID] = c
			log.Printf("ws: client %s connected", c.ID)
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case in := <-h.inbound:
			h.handleInbound(in.client, in.msg)
		case a := <-h.actions:
			h.handleBotAction(a)
		}
	}
}

// injectAction feeds a fired bot timer back into the serialized loop.
func (h *Hub) injectAction(a bot.Action) {
	h.actions <- a
}

func (h *Hub) handleInbound(c *Client, msg InMessage) {
	// Idempotent upsert: inbound can race the register channel.
	h.clients[c.ID] = c

	switch msg.Event {
	case EventJoinGame:
		var p JoinGamePayload
		if decode(msg.Data, &p) {
			h.handleJoin(c, p)
		}
	case EventRevealTile:
		var p RevealTilePayload
		if decode(msg.Data, &p) {
			h.handleReveal(c, p)
		}
	case EventChatMessage:
		var p ChatMessagePayload
		if decode(msg.Data, &p) {
			h.handleChat(c, p)
		}
	case EventAvatarReaction:
		var p AvatarReactionPayload
		if decode(msg.Data, &p) {
			h.handleReaction(c, p)
		}
	default:
		if debug {
			log.Printf("ws: dropping unknown event %q from client %s", msg.Event, c.ID)
		}
	}
}

func decode(data json.RawMessage, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		if debug {
			log.Printf("ws: dropping payload that failed to decode: %v", err)
		}
		return false
	}
	return true
}

func (h *Hub) handleJoin(c *Client, p JoinGamePayload) {
	identity := p.Identity
	if identity == "" {
		identity = "guest-" + uuid.NewString()[:8]
	}

	h.sessions[c.ID] = &models.Player{
		ConnectionID: c.ID,
		Identity:     identity,
		StakeAmount:  p.StakeAmount,
	}

	entry := models.WaitingEntry{
		ConnectionID: c.ID,
		Identity:     identity,
		StakeAmount:  p.StakeAmount,
		IsTestMode:   p.IsTestMode,
	}

	match, paired := h.queue.Enqueue(entry)
	if !paired {
		log.Printf("ws: player %s waiting for opponent", identity)
		c.trySend(OutMessage{Event: EventWaitingForOpponent, Data: struct{}{}})
		return
	}
	h.startGame(match)
}

func (h *Hub) startGame(match matchmaking.Match) {
	g, err := h.newGame(match)
	if err != nil {
		log.Printf("ws: cannot create game: %v", err)
		return
	}
	h.store.Create(g)

	for _, e := range match.Entries {
		if cl, ok := h.clients[e.ConnectionID]; ok {
			cl.gameID = g.ID
			h.joinRoom(g.ID, cl)
		}
	}

	log.Printf("ws: game %s started: %s vs %s (stake %.2f, bot=%v)",
		g.ID, g.Players[0].Identity, g.Players[1].Identity, g.StakeAmount, g.HasBot)

	h.broadcast(g.ID, OutMessage{Event: EventGameJoined, Data: GameJoinedPayload{
		GameID:      g.ID,
		Players:     g.Players[:],
		StakeAmount: g.StakeAmount,
		IsTestMode:  g.IsTestMode,
	}})
	h.broadcast(g.ID, OutMessage{Event: EventGameStarted, Data: GameStartedPayload{
		GameID:      g.ID,
		CurrentTurn: g.CurrentTurn,
		Grid:        g.Grid,
		Seed:        g.Seed,
	}})

	// Humans always open bot games, so this only fires if move order
	// ever changes.
	if g.HasBot && g.CurrentTurn == models.BotIdentity {
		h.bot.ScheduleMove(g.ID)
	}
}

func (h *Hub) newGame(match matchmaking.Match) (*models.Game, error) {
	seed := time.Now().UnixMilli()
	grid, err := game.Generate(h.opts.GridWidth, h.opts.GridHeight, h.opts.MineCount, seed)
	if err != nil {
		return nil, err
	}

	var players [2]models.Player
	stats := make(map[string]*models.PlayerStats, 2)
	for i, e := range match.Entries {
		players[i] = models.Player{
			ConnectionID: e.ConnectionID,
			Identity:     e.Identity,
			StakeAmount:  e.StakeAmount,
			IsBot:        e.ConnectionID == models.BotConnectionID,
		}
		stats[e.Identity] = &models.PlayerStats{}
	}

	return &models.Game{
		ID:          uuid.NewString(),
		Players:     players,
		CurrentTurn: players[0].Identity,
		Grid:        grid,
		Seed:        seed,
		Status:      models.StatusPlaying,
		StakeAmount: match.Stake,
		IsTestMode:  match.TestMode,
		HasBot:      match.WithBot,
		PlayerStats: stats,
		CreatedAt:   time.Now(),
	}, nil
}

func (h *Hub) handleReveal(c *Client, p RevealTilePayload) {
	g, ok := h.store.Get(p.GameID)
	if !ok {
		return
	}
	player, ok := h.sessions[c.ID]
	if !ok {
		return
	}
	// Out-of-turn and wrong-status reveals are routine under network
	// races; drop them without a reply.
	if g.Status != models.StatusPlaying || g.CurrentTurn != player.Identity {
		return
	}
	if !g.Grid.InBounds(p.X, p.Y) {
		return
	}

	outcome := game.Reveal(g, p.X, p.Y, player.Identity)
	if !outcome.Valid {
		return
	}
	h.afterReveal(g, p.X, p.Y, outcome)
}

// afterReveal is the shared post-move path for human and bot moves.
func (h *Hub) afterReveal(g *models.Game, x, y int, outcome game.RevealOutcome) {
	h.broadcast(g.ID, OutMessage{Event: EventTileRevealed, Data: TileRevealedPayload{
		X:           x,
		Y:           y,
		Grid:        g.Grid,
		NextTurn:    g.CurrentTurn,
		PlayerStats: g.PlayerStats,
		HitMine:     outcome.HitMine,
	}})

	if outcome.Ended {
		reason := ReasonCompletion
		if outcome.HitMine {
			reason = ReasonMine
		}
		h.finishGame(g, reason)
		return
	}

	if g.HasBot && g.CurrentTurn == models.BotIdentity {
		h.bot.ScheduleMove(g.ID)
	}
}

// finishGame is the single termination site: it broadcasts the result,
// cancels any pending bot action and schedules eviction after the
// grace period.
func (h *Hub) finishGame(g *models.Game, reason string) {
	log.Printf("ws: game %s ended, winner %s (%s)", g.ID, g.Winner, reason)
	h.bot.Cancel(g.ID)
	h.broadcast(g.ID, OutMessage{Event: EventGameEnded, Data: GameEndedPayload{
		Winner:     g.Winner,
		FinalStats: g.PlayerStats,
		Reason:     reason,
	}})
	h.store.RemoveAfter(g.ID, game.EvictionGraceSeconds*time.Second)
}

func (h *Hub) handleChat(c *Client, p ChatMessagePayload) {
	g, ok := h.store.Get(p.GameID)
	if !ok {
		return
	}
	player, ok := h.sessions[c.ID]
	if !ok {
		return
	}

	text := truncate(p.Message, game.MaxChatMessageLength)
	entry := models.ChatMessage{
		Sender:    player.Identity,
		Message:   text,
		Timestamp: time.Now().UnixMilli(),
	}
	g.ChatLog = append(g.ChatLog, entry)

	for cl := range h.rooms[g.ID] {
		cl.trySend(OutMessage{Event: EventChatMessage, Data: ChatBroadcastPayload{
			Sender:    entry.Sender,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
			IsOwn:     cl == c,
		}})
	}

	if g.HasBot && g.Status == models.StatusPlaying {
		h.bot.MaybeReply(g.ID)
	}
}

func (h *Hub) handleReaction(c *Client, p AvatarReactionPayload) {
	g, ok := h.store.Get(p.GameID)
	if !ok {
		return
	}
	player, ok := h.sessions[c.ID]
	if !ok {
		return
	}
	// The bot has no observer, so reactions in bot games go nowhere.
	if g.HasBot {
		return
	}

	payload := AvatarReactionBroadcastPayload{
		Sender:    player.Identity,
		Reaction:  p.Reaction,
		Timestamp: time.Now().UnixMilli(),
	}
	for cl := range h.rooms[g.ID] {
		if cl != c {
			cl.trySend(OutMessage{Event: EventAvatarReaction, Data: payload})
		}
	}
}

func (h *Hub) handleBotAction(a bot.Action) {
	g, ok := h.store.Get(a.GameID)
	if !ok {
		return
	}

	switch a.Kind {
	case bot.ActionMove:
		// The game may have ended or the turn moved on while the
		// thinking timer ran; a stale move is dropped silently.
		if g.Status != models.StatusPlaying || g.CurrentTurn != models.BotIdentity {
			return
		}
		x, y, ok := bot.ChooseMove(g.Grid)
		if !ok {
			return
		}
		outcome := game.Reveal(g, x, y, models.BotIdentity)
		if !outcome.Valid {
			return
		}
		h.afterReveal(g, x, y, outcome)
		if !outcome.Ended {
			h.bot.MaybeReact(g.ID)
		}

	case bot.ActionReaction:
		h.broadcast(g.ID, OutMessage{Event: EventAvatarReaction, Data: AvatarReactionBroadcastPayload{
			Sender:    models.BotIdentity,
			Reaction:  a.Reaction,
			Timestamp: time.Now().UnixMilli(),
		}})

	case bot.ActionChat:
		entry := models.ChatMessage{
			Sender:    models.BotIdentity,
			Message:   a.Message,
			Timestamp: time.Now().UnixMilli(),
		}
		g.ChatLog = append(g.ChatLog, entry)
		h.broadcast(g.ID, OutMessage{Event: EventChatMessage, Data: ChatBroadcastPayload{
			Sender:    entry.Sender,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		}})
	}
}

// handleDisconnect tears down a connection: it leaves the queue, and
// the first playing game it participates in ends by forfeit for the
// remaining player.
func (h *Hub) handleDisconnect(c *Client) {
	h.queue.RemoveByConnection(c.ID)

	if g, ok := h.store.FindByConnection(c.ID); ok && g.Status == models.StatusPlaying {
		winner := g.Players[0]
		if winner.ConnectionID == c.ID {
			winner = g.Players[1]
		}
		g.Status = models.StatusFinished
		g.Winner = winner.Identity

		log.Printf("ws: game %s forfeited by disconnect, winner %s", g.ID, g.Winner)
		h.bot.Cancel(g.ID)
		payload := GameEndedPayload{
			Winner:     g.Winner,
			FinalStats: g.PlayerStats,
			Reason:     ReasonForfeit,
		}
		for cl := range h.rooms[g.ID] {
			if cl != c {
				cl.trySend(OutMessage{Event: EventGameEnded, Data: payload})
			}
		}
		h.store.RemoveAfter(g.ID, game.EvictionGraceSeconds*time.Second)
	}

	h.leaveRoom(c)
	delete(h.sessions, c.ID)
	delete(h.clients, c.ID)
	log.Printf("ws: client %s disconnected", c.ID)
}

func (h *Hub) joinRoom(gameID string, c *Client) {
	room, ok := h.rooms[gameID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[gameID] = room
	}
	room[c] = true
}

func (h *Hub) leaveRoom(c *Client) {
	if c.gameID == "" {
		return
	}
	if room, ok := h.rooms[c.gameID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.gameID)
		}
	}
}

// broadcast fans an event out to every connection in the game's room.
func (h *Hub) broadcast(gameID string, msg OutMessage) {
	for cl := range h.rooms[gameID] {
		cl.trySend(msg)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
