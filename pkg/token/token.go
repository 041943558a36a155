package token

import (
	"regexp"
	"strings"

	"president-server/internal/rng"
)

// RoomCodeLength is the number of letters in a room code
const RoomCodeLength = 4

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var roomCodeRx = regexp.MustCompile(`^[A-Z]{4}\z`)

// RoomCode returns a short code players can type to join a room, like "QXEB"
func RoomCode(gen rng.Generator) string {
	var sb strings.Builder
	sb.Grow(RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		sb.WriteByte(roomCodeAlphabet[gen.Intn(len(roomCodeAlphabet))])
	}

	return sb.String()
}

// NormalizeRoomCode upper-cases the input and reports whether it looks like a room code
func NormalizeRoomCode(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	return code, roomCodeRx.MatchString(code)
}
