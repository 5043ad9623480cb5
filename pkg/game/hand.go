package game

import (
	"fmt"

	"seotda-server/pkg/deck"
)

// handNames are the modulo-10 hand labels, indexed by score
var handNames = [...]string{"망통", "1끗", "2끗", "3끗", "4끗", "5끗", "6끗", "7끗", "8끗", "9끗"}

// noHandName is returned when a hand cannot be evaluated
const noHandName = "없음"

type specialHand struct {
	months [2]int
	value  int
	name   string
}

// specialHands are the fixed high-ranking month pairs, strongest first.
// The pair matches in either order.
var specialHands = []specialHand{
	{[2]int{1, 2}, 100, "12땡"},
	{[2]int{1, 4}, 99, "14땡"},
	{[2]int{1, 9}, 98, "19땡"},
	{[2]int{1, 10}, 97, "110땡"},
	{[2]int{4, 10}, 96, "410땡"},
	{[2]int{4, 6}, 95, "46땡"},
}

// EvaluateHand returns the rank and display name of a two-card Seotda hand.
// Special pairs rank highest, then doubles (땡) at 90+month, then the sum of
// the two months modulo 10. Anything other than two cards evaluates to (0, 없음).
func EvaluateHand(cards []*deck.Card) (int, string) {
	if len(cards) != 2 {
		return 0, noHandName
	}

	m1, m2 := cards[0].Month, cards[1].Month

	for _, sh := range specialHands {
		if (m1 == sh.months[0] && m2 == sh.months[1]) || (m1 == sh.months[1] && m2 == sh.months[0]) {
			return sh.value, sh.name
		}
	}

	if m1 == m2 {
		return 90 + m1, fmt.Sprintf("%d땡", m1)
	}

	total := (m1 + m2) % 10
	return total, handNames[total]
}

// CompareHands compares two hands and returns
// 1 if hand1 wins, -1 if hand2 wins, 0 if they tie
func CompareHands(hand1, hand2 []*deck.Card) int {
	v1, _ := EvaluateHand(hand1)
	v2, _ := EvaluateHand(hand2)

	if v1 > v2 {
		return 1
	}
	if v1 < v2 {
		return -1
	}
	return 0
}
