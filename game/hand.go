package game

import "strings"

// Hand holds one party's cards for a round.
//
// Aces start soft (11). DemoteAce re-values one more ace to 1; which aces are
// demoted is derived from their order in the hand rather than stored per card.
type Hand struct {
	Cards   []Rank
	demoted int
}

func NewHand(cards ...Rank) Hand {
	h := Hand{}
	h.Add(cards...)
	return h
}

func (h *Hand) Add(cards ...Rank) {
	h.Cards = append(h.Cards, cards...)
}

// Total sums face values, counting soft aces as 11 and demoted aces as 1.
func (h Hand) Total() int {
	total := 0
	for _, c := range h.Cards {
		total += c.Value()
	}
	return total - 10*h.demoted
}

// DemoteAce re-values one soft ace as 1. It reports false when no soft ace is left.
func (h *Hand) DemoteAce() bool {
	if h.demoted >= h.Aces() {
		return false
	}
	h.demoted++
	return true
}

func (h Hand) Aces() int {
	aces := 0
	for _, c := range h.Cards {
		if c == Ace {
			aces++
		}
	}
	return aces
}

// Soft reports whether at least one ace is still counted as 11.
func (h Hand) Soft() bool {
	return h.demoted < h.Aces()
}

// IsDemoted reports whether the card at index i is an ace that has been re-valued to 1.
// The earliest aces in the hand are demoted first.
func (h Hand) IsDemoted(i int) bool {
	if h.Cards[i] != Ace {
		return false
	}
	seen := 0
	for _, c := range h.Cards[:i] {
		if c == Ace {
			seen++
		}
	}
	return seen < h.demoted
}

// UpCard is the first card dealt, the one a dealer shows.
func (h Hand) UpCard() Rank {
	if len(h.Cards) == 0 {
		panic("empty hand has no up card")
	}
	return h.Cards[0]
}

func (h Hand) String() string {
	names := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		names[i] = c.String()
		if h.IsDemoted(i) {
			names[i] += "."
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
