package deck

import (
	"fmt"
)

// Type represents a hwatu card category
type Type string

// card type constants
const (
	Bright Type = "bright"
	Animal Type = "animal"
	Ribbon Type = "ribbon"
	Junk   Type = "junk"
)

// Card is an individual hwatu (flower) card
type Card struct {
	Month int    `json:"month"`
	Type  Type   `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (c *Card) String() string {
	return fmt.Sprintf("%d월 %s", c.Month, c.Name)
}

// Equal returns true if the cards are the same physical card
func (c *Card) Equal(card *Card) bool {
	return c.Month == card.Month && c.Name == card.Name
}

// hwatuCards is the full 36-card deck, three cards per month.
// Names and point values follow the standard Korean set.
var hwatuCards = [...]Card{
	// 1월 (소나무)
	{1, Bright, "송학", 20},
	{1, Ribbon, "송패", 5},
	{1, Junk, "송끌", 1},
	// 2월 (매화)
	{2, Animal, "매조", 10},
	{2, Ribbon, "매패", 5},
	{2, Junk, "매끌", 1},
	// 3월 (벚꽃)
	{3, Bright, "벚광", 20},
	{3, Ribbon, "벚패", 5},
	{3, Junk, "벚끌", 1},
	// 4월 (등나무)
	{4, Animal, "등새", 10},
	{4, Ribbon, "등패", 5},
	{4, Junk, "등끌", 1},
	// 5월 (창포)
	{5, Animal, "창다리", 10},
	{5, Ribbon, "창패", 5},
	{5, Junk, "창끌", 1},
	// 6월 (모란)
	{6, Animal, "모란나비", 10},
	{6, Ribbon, "모란패", 5},
	{6, Junk, "모란끌", 1},
	// 7월 (싸리)
	{7, Animal, "싸리멧돼지", 10},
	{7, Ribbon, "싸리패", 5},
	{7, Junk, "싸리끌", 1},
	// 8월 (억새)
	{8, Bright, "억새달", 20},
	{8, Animal, "억새기러기", 10},
	{8, Junk, "억새끌", 1},
	// 9월 (국화)
	{9, Animal, "국화술잔", 10},
	{9, Ribbon, "국화패", 5},
	{9, Junk, "국화끌", 1},
	// 10월 (단풍)
	{10, Animal, "단풍사슴", 10},
	{10, Ribbon, "단풍패", 5},
	{10, Junk, "단풍끌", 1},
	// 11월 (오동)
	{11, Bright, "오동광", 20},
	{11, Junk, "오동끌1", 1},
	{11, Junk, "오동끌2", 1},
	// 12월 (비)
	{12, Bright, "비광", 20},
	{12, Animal, "비제비", 10},
	{12, Junk, "비끌", 1},
}
