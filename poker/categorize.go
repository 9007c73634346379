package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77+, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if !card1.Valid() || !card2.Valid() || card1 == card2 {
		return CategoryUnknown
	}

	small, big := rankValue(card1.Rank()), rankValue(card2.Rank())
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit() == card2.Suit()
	pair := small == big

	switch {
	case pair && small >= 11, small == 13 && big == 14:
		return CategoryPremium
	case pair && small == 10, big == 14 && (small == 12 || small == 11):
		return CategoryStrong
	case pair && small >= 7, suited && small >= 10:
		return CategoryMedium
	case pair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// CategorizeHand categorizes a two-card hole hand.
func CategorizeHand(hole Hand) HoleCardCategory {
	cards := hole.Cards()
	if len(cards) != 2 {
		return CategoryUnknown
	}
	return CategorizeHoleCards(cards[0], cards[1])
}

// rankValue maps ranks 0-12 onto 2-14.
func rankValue(rank uint8) int {
	return int(rank) + 2
}
