package matchmaking

import (
	"fmt"
	"sync"

	"github.com/dontclickthat/server/internal/models"
)

// Policy selects how test-mode joins are treated. Exactly one policy
// is active per deployment.
type Policy string

const (
	// PolicyBotImmediate pairs test-mode joins with the bot at once,
	// bypassing the queue, so a test player never waits.
	PolicyBotImmediate Policy = "bot-immediate"

	// PolicyPeerQueued queues test-mode joins separately from real
	// ones and pairs them human to human.
	PolicyPeerQueued Policy = "peer-queued"
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyBotImmediate, PolicyPeerQueued:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown matchmaking policy %q", s)
}

// Match holds the two entries selected for a new game, in move order.
type Match struct {
	Entries  [2]models.WaitingEntry
	Stake    float64
	WithBot  bool
	TestMode bool
}

// Queue pairs waiting players first-come-first-served. No skill
// matching: the two oldest compatible entries form a game.
type Queue struct {
	mu     sync.Mutex
	policy Policy
	real   []models.WaitingEntry
	test   []models.WaitingEntry
}

// NewQueue creates a queue with the given pairing policy.
func NewQueue(policy Policy) *Queue {
	return &Queue{policy: policy}
}

// Policy returns the active pairing policy.
func (q *Queue) Policy() Policy {
	return q.policy
}

// Enqueue adds a waiting player and reports whether a pairing
// happened. Under bot-immediate, test-mode entries never enter the
// queue at all.
func (q *Queue) Enqueue(e models.WaitingEntry) (Match, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if e.IsTestMode && q.policy == PolicyBotImmediate {
		return Match{
			Entries:  [2]models.WaitingEntry{e, models.BotWaitingEntry()},
			WithBot:  true,
			TestMode: true,
		}, true
	}

	bucket := &q.real
	if e.IsTestMode {
		bucket = &q.test
	}

	*bucket = append(*bucket, e)
	if len(*bucket) < 2 {
		return Match{}, false
	}

	first, second := (*bucket)[0], (*bucket)[1]
	*bucket = (*bucket)[2:]

	return Match{
		Entries:  [2]models.WaitingEntry{first, second},
		Stake:    max(first.StakeAmount, second.StakeAmount),
		TestMode: first.IsTestMode,
	}, true
}

// RemoveByConnection drops a waiting entry when its connection goes
// away. Returns true if an entry was removed.
func (q *Queue) RemoveByConnection(connID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if removeEntry(&q.real, connID) {
		return true
	}
	return removeEntry(&q.test, connID)
}

// Depth returns the total number of waiting players.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.real) + len(q.test)
}

func removeEntry(entries *[]models.WaitingEntry, connID string) bool {
	for i, e := range *entries {
		if e.ConnectionID == connID {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return true
		}
	}
	return false
}
