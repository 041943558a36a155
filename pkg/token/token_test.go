package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"president-server/internal/rng"
)

func TestRoomCode(t *testing.T) {
	a := assert.New(t)

	code := RoomCode(rng.Crypto{})
	a.Regexp(`^[A-Z]{4}$`, code)

	a.Equal(RoomCode(rng.NewSeeded(3)), RoomCode(rng.NewSeeded(3)))
	a.NotEqual(RoomCode(rng.NewSeeded(3)), RoomCode(rng.NewSeeded(4)))
}

func TestNormalizeRoomCode(t *testing.T) {
	tests := []struct {
		in   string
		code string
		ok   bool
	}{
		{"ABCD", "ABCD", true},
		{" qxeb ", "QXEB", true},
		{"ABC", "ABC", false},
		{"AB1D", "AB1D", false},
		{"ABCDE", "ABCDE", false},
	}

	for _, tt := range tests {
		code, ok := NormalizeRoomCode(tt.in)
		assert.Equal(t, tt.code, code)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
