package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// ErrEmptyDeck is returned when a card is drawn from an exhausted deck.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is the set of undealt cards for one hand. It only shrinks.
type Deck struct {
	remaining Hand
	rng       *rand.Rand
}

// NewDeck creates a full 52-card deck drawing from rng.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	return &Deck{remaining: FullDeck, rng: rng}
}

// DrawRandom removes and returns a card chosen uniformly from the remaining cards.
func (d *Deck) DrawRandom() (Card, error) {
	n := d.remaining.CountCards()
	if n == 0 {
		return 0, ErrEmptyDeck
	}
	return d.take(d.rng.IntN(n)), nil
}

// take removes the i-th remaining card in bit order.
func (d *Deck) take(i int) Card {
	rest := uint64(d.remaining)
	for ; i > 0; i-- {
		rest &= rest - 1
	}
	c := Card(uint64(1) << bits.TrailingZeros64(rest))
	d.remaining &^= Hand(c)
	return c
}

// DrawN draws n cards, failing with ErrEmptyDeck if the deck runs out.
func (d *Deck) DrawN(n int) (Hand, error) {
	var h Hand
	for range n {
		c, err := d.DrawRandom()
		if err != nil {
			return h, fmt.Errorf("draw %d cards: %w", n, err)
		}
		h.AddCard(c)
	}
	return h, nil
}

// Remove takes specific cards out of the deck.
func (d *Deck) Remove(cards Hand) error {
	if missing := cards &^ d.remaining; missing != 0 {
		return fmt.Errorf("cards not in deck: %s", missing)
	}
	d.remaining &^= cards
	return nil
}

// Contains reports whether c is still in the deck.
func (d *Deck) Contains(c Card) bool {
	return d.remaining.HasCard(c)
}

// Remaining returns the undealt cards.
func (d *Deck) Remaining() Hand {
	return d.remaining
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return d.remaining.CountCards()
}
