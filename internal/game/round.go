package game

// Round is the engine's position within a game. It only advances, except for
// the reset to NewHand after a fold.
type Round int

const (
	NewGame Round = iota
	NewHand
	Preflop
	FlopDeal
	Flop
	TurnDeal
	Turn
	RiverDeal
	River
	Showdown
	End
)

func (r Round) String() string {
	return [...]string{
		"new-game", "new-hand", "preflop", "flop-deal", "flop",
		"turn-deal", "turn", "river-deal", "river", "showdown", "end",
	}[r]
}

// IsBetting reports whether actions are accepted in r.
func (r Round) IsBetting() bool {
	switch r {
	case Preflop, Flop, Turn, River:
		return true
	}
	return false
}

// IsDeal reports whether r reveals board cards.
func (r Round) IsDeal() bool {
	return r == FlopDeal || r == TurnDeal || r == RiverDeal
}

// boardTarget is the board size a deal round fills up to.
func (r Round) boardTarget() int {
	switch r {
	case FlopDeal:
		return 3
	case TurnDeal:
		return 4
	case RiverDeal:
		return 5
	}
	return 0
}

// canStartHand reports whether NewHand may be called from r.
func (r Round) canStartHand() bool {
	return r == NewGame || r == NewHand || r == Showdown
}

// Seat identifies one of the two players.
type Seat int

const (
	Player Seat = iota
	Agent
)

func (s Seat) String() string {
	if s == Agent {
		return "agent"
	}
	return "player"
}

// Opponent returns the other seat.
func (s Seat) Opponent() Seat {
	return 1 - s
}
