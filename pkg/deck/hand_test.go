package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	var hand Hand
	hand.AddCard(CardFromString("9c"))
	hand.AddCard(CardFromString("14s"))

	a.Equal(2, hand.Len())
	a.Equal("9c,14s", hand.String())
}

func TestHand_HasCard(t *testing.T) {
	a := assert.New(t)

	hand := HandFromString("9c,10c,11s")
	a.True(hand.HasCard(CardFromString("10c")))
	a.False(hand.HasCard(CardFromString("10d")))
}

func TestHand_Discard(t *testing.T) {
	a := assert.New(t)

	hand := HandFromString("9c,10c,11s")
	a.True(hand.Discard(CardFromString("10c")))
	a.Equal("9c,11s", hand.String())

	a.False(hand.Discard(CardFromString("10c")))
	a.Equal("9c,11s", hand.String())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := HandFromString("9c,10c")
	clone := hand.Clone()
	clone.AddCard(CardFromString("11s"))

	a.Equal(2, hand.Len())
	a.Equal(3, clone.Len())
}

func TestHand_Sort(t *testing.T) {
	a := assert.New(t)

	hand := HandFromString("14s,9c,11h,10c")
	sort.Sort(hand)
	a.Equal("9c,10c,11h,14s", hand.String())
}
