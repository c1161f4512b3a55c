package game

import "github.com/dontclickthat/server/internal/models"

// RevealOutcome reports how a reveal affected the game. Valid is false
// when the cell was already revealed; that case mutates nothing and is
// expected noise under network races, not an error.
type RevealOutcome struct {
	Valid   bool
	HitMine bool
	Ended   bool
}

// Reveal applies one reveal action for the acting player. The caller
// must already have checked that the game is playing, the actor is on
// turn and (x, y) is in bounds. Side effects are confined to g; all
// broadcasting is the gateway's job.
func Reveal(g *models.Game, x, y int, identity string) RevealOutcome {
	cell := &g.Grid[y][x]
	if cell.Revealed {
		return RevealOutcome{}
	}
	cell.Revealed = true

	if cell.IsMine {
		g.Status = models.StatusFinished
		g.Winner = g.Opponent(identity)
		return RevealOutcome{Valid: true, HitMine: true, Ended: true}
	}

	g.PlayerStats[identity].SafeRevealed++

	if g.TotalRevealed() >= g.Grid.SafeCellCount() {
		g.Status = models.StatusFinished
		g.Winner = completionWinner(g, identity)
		return RevealOutcome{Valid: true, Ended: true}
	}

	g.CurrentTurn = g.Opponent(identity)
	return RevealOutcome{Valid: true}
}

// completionWinner resolves the winner once every safe cell is
// revealed: the higher reveal count wins, and an exact tie goes to the
// player who made the final move.
func completionWinner(g *models.Game, lastMover string) string {
	first, second := g.Players[0].Identity, g.Players[1].Identity
	firstScore := g.PlayerStats[first].SafeRevealed
	secondScore := g.PlayerStats[second].SafeRevealed

	switch {
	case firstScore > secondScore:
		return first
	case secondScore > firstScore:
		return second
	default:
		return lastMover
	}
}
