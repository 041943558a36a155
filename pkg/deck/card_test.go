package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♥", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♦", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("3c")
	a.NoError(err)
	a.Equal(Card{Rank: 3, Suit: Clubs}, card)

	card, err = ParseCard("14S")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = ParseCard("qh")
	a.NoError(err)
	a.Equal(Card{Rank: Queen, Suit: Hearts}, card)

	for _, bad := range []string{"", "1c", "15d", "3x", "10"} {
		_, err = ParseCard(bad)
		a.True(errors.Is(err, ErrInvalidCard), bad)
	}
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("3c,10d,14s")
	assert.Equal(t, "3c,10d,14s", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))

	assert.Panics(t, func() {
		CardFromString("zz")
	})
}

func TestCard_UnmarshalJSON(t *testing.T) {
	a := assert.New(t)

	var cards []Card
	a.NoError(json.Unmarshal([]byte(`["3c", {"rank": 14, "suit": "spades"}]`), &cards))
	a.Equal([]Card{{Rank: 3, Suit: Clubs}, {Rank: Ace, Suit: Spades}}, cards)

	a.Error(json.Unmarshal([]byte(`["3x"]`), &cards))
	a.Error(json.Unmarshal([]byte(`[{"rank": 1, "suit": "spades"}]`), &cards))

	b, err := json.Marshal(Card{Rank: 3, Suit: Clubs})
	a.NoError(err)
	a.JSONEq(`{"rank": 3, "suit": "clubs"}`, string(b))
}
