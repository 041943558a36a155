package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Symbol returns the glyph for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}

	panic("unknown suit")
}

// Order is the position of the suit in deck order (clubs first)
func (s Suit) Order() int {
	for i, suit := range Suits {
		if suit == s {
			return i
		}
	}

	return -1
}

// Card is an individual playing card
// Cards are values, two cards are the same card if suit and rank match
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Valid returns true if the card exists in a standard deck
func (c Card) Valid() bool {
	return c.Rank >= 2 && c.Rank <= Ace && c.Suit.Order() >= 0
}

// UnmarshalJSON accepts either the object form or the short string form ("3c")
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		card, err := ParseCard(s)
		if err != nil {
			return err
		}

		*c = card
		return nil
	}

	type plain Card
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	if !Card(p).Valid() {
		return fmt.Errorf("%w: %d of %s", ErrInvalidCard, p.Rank, p.Suit)
	}

	*c = Card(p)
	return nil
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[jqka])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 (or J, Q, K, A) and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a comma separated list of cards
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but panics on bad input
// Intended for tests and fixtures
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	return fmt.Sprintf("%d%c", card.Rank, string(card.Suit)[0])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
