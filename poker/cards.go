package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card is a single playing card encoded as one bit of a uint64.
// Bit position is suit*13 + rank, so a set of cards is just an OR.
type Card uint64

// Hand is a set of cards. It holds hole cards, a board, or a combined
// 5-7 card holding for evaluation.
type Hand uint64

// Suits.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

// Ranks, deuce through ace.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"

	// FullDeck has all 52 card bits set.
	FullDeck Hand = (1 << 52) - 1
)

// NewCard creates a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*13 + rank)
}

// Index returns the bit position of the card (0-51), or 255 for the zero card.
func (c Card) Index() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	idx := c.Index()
	if idx == 255 {
		return 255
	}
	return idx % 13
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	idx := c.Index()
	if idx == 255 {
		return 255
	}
	return idx / 13
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && c&(c-1) == 0 && Hand(c)&^FullDeck == 0
}

// String returns the two-character form, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}
	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a run of cards such as "AsKd" or "As Kd 2c".
func ParseCards(s string) (Hand, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return 0, fmt.Errorf("invalid card list: %q", s)
	}
	var h Hand
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return 0, err
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("duplicate card: %s", c)
		}
		h.AddCard(c)
	}
	return h, nil
}

// MustParseCards is ParseCards for tests and fixtures; it panics on error.
func MustParseCards(s string) Hand {
	h, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return h
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// NewHand creates a hand from cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the hand contains c.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// Overlaps reports whether h and other share any card.
func (h Hand) Overlaps(other Hand) bool {
	return h&other != 0
}

// Cards returns the cards in ascending bit order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		out = append(out, Card(rest&-rest))
	}
	return out
}

// GetSuitMask returns the ranks held in one suit as a 13-bit mask.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16((h >> (suit * 13)) & 0x1FFF)
}

// String renders the cards separated by spaces.
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
