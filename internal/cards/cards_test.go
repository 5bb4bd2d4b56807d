package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankValues(t *testing.T) {
	tests := []struct {
		rank  Rank
		long  int
		short int
		str   string
	}{
		{Num(1), 1, 1, "A"},
		{Num(7), 7, 7, "7"},
		{Num(10), 10, 10, "10"},
		{RankJack, 11, 8, "J"},
		{RankKnight, 12, 9, "N"},
		{RankKing, 13, 10, "K"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.long, tt.rank.Value())
			assert.Equal(t, tt.short, tt.rank.ShortValue())
			assert.Equal(t, tt.str, tt.rank.String())
		})
	}
}

func TestSuitColors(t *testing.T) {
	assert.Equal(t, Red, Coins.Color())
	assert.Equal(t, Red, Swords.Color())
	assert.Equal(t, Black, Cups.Color())
	assert.Equal(t, Black, Clubs.Color())

	assert.True(t, MustNew(Coins, 5).SameColor(MustNew(Swords, 6)))
	assert.False(t, MustNew(Coins, 5).SameColor(MustNew(Clubs, 6)))
}

func TestNewCard(t *testing.T) {
	c, err := New(Cups, 13)
	require.NoError(t, err)
	assert.True(t, c.IsKing())
	assert.Equal(t, "Kcu", c.String())

	c, err = New(Clubs, 1)
	require.NoError(t, err)
	assert.True(t, c.IsAce())

	_, err = New(Clubs, 0)
	assert.Error(t, err)
	_, err = New(Clubs, 14)
	assert.Error(t, err)
}

func TestDeckEnds(t *testing.T) {
	a, b, c := MustNew(Coins, 1), MustNew(Coins, 2), MustNew(Coins, 3)
	d := NewDeck(a, b)

	top, ok := d.Top()
	require.True(t, ok)
	assert.Equal(t, b, top)
	bottom, ok := d.Bottom()
	require.True(t, ok)
	assert.Equal(t, a, bottom)

	d.PushToBottom(c)
	assert.Equal(t, []Card{c, a, b}, d.Cards())

	got, ok := d.TakeFromBottom()
	require.True(t, ok)
	assert.Equal(t, c, got)
	got, ok = d.TakeFromTop()
	require.True(t, ok)
	assert.Equal(t, b, got)
	assert.Equal(t, 1, d.Len())

	empty := NewDeck()
	_, ok = empty.TakeFromTop()
	assert.False(t, ok)
	_, ok = empty.TakeFromBottom()
	assert.False(t, ok)
	assert.True(t, empty.IsEmpty())
}

func TestMoveAllTo(t *testing.T) {
	a, b, c := MustNew(Cups, 1), MustNew(Cups, 2), MustNew(Cups, 3)
	src := NewDeck(a, b)
	dst := NewDeck(c)

	src.MoveAllTo(dst)
	assert.True(t, src.IsEmpty())
	assert.Equal(t, []Card{b, a, c}, dst.Cards())
}

func TestOrderedSizes(t *testing.T) {
	assert.Equal(t, 40, Short.Size())
	assert.Equal(t, 52, Long.Size())
	assert.Equal(t, 40, Ordered(Short).Len())
	assert.Equal(t, 52, Ordered(Long).Len())
}

func TestShuffledIsPermutation(t *testing.T) {
	for _, k := range []Kind{Short, Long} {
		t.Run(string(k), func(t *testing.T) {
			d := Shuffled(rand.New(rand.NewSource(7)), k)
			seen := make(map[Card]bool)
			for _, c := range d.Cards() {
				assert.False(t, seen[c], "duplicate card %s", c)
				seen[c] = true
			}
			assert.Len(t, seen, k.Size())
			assert.ElementsMatch(t, Ordered(k).Cards(), d.Cards())
		})
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := Shuffled(rand.New(rand.NewSource(42)), Long)
	b := Shuffled(rand.New(rand.NewSource(42)), Long)
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("short")
	require.NoError(t, err)
	assert.Equal(t, Short, k)

	_, err = ParseKind("tarot")
	assert.Error(t, err)
}
