package president

import (
	"errors"
	"fmt"
)

// ErrInsufficientPlayers is returned when a game is created with fewer than two participants
var ErrInsufficientPlayers = errors.New("need at least two players")

// ErrDuplicatePlayer is returned when the same participant is listed twice
var ErrDuplicatePlayer = errors.New("duplicate players detected")

// ErrInvalidRoundLimit is returned when the round limit is not positive
var ErrInvalidRoundLimit = errors.New("round limit must be at least 1")

// ErrUnknownPlayer is returned when the player is not part of this game
var ErrUnknownPlayer = errors.New("player is not in this game")

// ErrInvalidPhase is returned when an operation is attempted in the wrong phase
var ErrInvalidPhase = errors.New("action not allowed in the current phase")

// ErrNotYourTurn is returned when it's not the player's turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrEmptySelection is returned when a play has no cards
var ErrEmptySelection = errors.New("select at least one card")

// ErrTooManyCards is returned when more than two cards are played
var ErrTooManyCards = errors.New("you can only play a single card or a pair")

// ErrDuplicateCard is returned when the same card is selected twice
var ErrDuplicateCard = errors.New("you cannot select the same card twice")

// ErrCardsNotOwned is returned when a selected card is not in the player's hand
var ErrCardsNotOwned = errors.New("you do not have these cards")

// ErrRankMismatch is returned when a pair is made of two different ranks
var ErrRankMismatch = errors.New("a pair must be two cards of the same rank")

// ErrQuantityMismatch is returned when the play does not match the number of cards on the table
var ErrQuantityMismatch = errors.New("you must play the same number of cards as the trick")

// ErrRankTooLow is returned when the play does not beat the trick
var ErrRankTooLow = errors.New("you must play a higher rank than the trick")

// ErrCannotPassOnEmptyTrick is returned when the player to lead tries to pass
var ErrCannotPassOnEmptyTrick = errors.New("the table is clear, you must lead")

// ErrInsufficientHandSize is returned when a party of the exchange has fewer than two cards
var ErrInsufficientHandSize = errors.New("not enough cards to exchange")

// ErrStaleState is returned when an action was made against an outdated version of the game
var ErrStaleState = errors.New("game state has changed, refresh and try again")

// ErrUnknownAction is returned for an action the game does not understand
var ErrUnknownAction = errors.New("unknown action")

// playersLimit is the most players a single deck supports while still leaving room for the exchange
const playersLimit = 8

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected 2–%d players, got %d", playersLimit, int(p))
}

// Is lets callers match any player count problem against ErrInsufficientPlayers
func (p PlayerCountError) Is(target error) bool {
	return target == ErrInsufficientPlayers && int(p) < 2
}
