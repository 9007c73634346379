package game

import "fmt"

// ActionKind is what a seat chooses to do on its turn.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (k ActionKind) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[k]
}

// Action is a kind plus, for Bet and Raise, the increment on top of the
// amount owed.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case Bet, Raise:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	}
	return a.Kind.String()
}

// Legal describes the actions open to the seat on turn.
type Legal struct {
	Check bool
	Call  bool
	Bet   bool
	Raise bool
	Fold  bool
	AllIn bool

	ToCall int
	// MinRaise is the smallest Bet/Raise increment short of going all-in.
	MinRaise int
	// MaxRaise is the largest increment the stack allows.
	MaxRaise int
}

// Allows reports whether kind is open.
func (l Legal) Allows(kind ActionKind) bool {
	switch kind {
	case Fold:
		return l.Fold
	case Check:
		return l.Check
	case Call:
		return l.Call
	case Bet:
		return l.Bet
	case Raise:
		return l.Raise
	case AllIn:
		return l.AllIn
	}
	return false
}

// Passive returns Check when it is free and Call otherwise.
func (l Legal) Passive() Action {
	if l.Check {
		return Action{Kind: Check}
	}
	return Action{Kind: Call}
}

// Aggressive returns the minimum Bet or Raise, or false if neither is open.
func (l Legal) Aggressive() (Action, bool) {
	switch {
	case l.Bet:
		return Action{Kind: Bet, Amount: l.MinRaise}, true
	case l.Raise:
		return Action{Kind: Raise, Amount: l.MinRaise}, true
	}
	return Action{}, false
}
