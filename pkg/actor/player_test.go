package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Cosmonaut")
	assert.Equal(t, "Cosmonaut", p.Name)
	assert.Equal(t, DefaultOutfit, p.Wearing)
	assert.Equal(t, float64(StartingSleep), p.Sleep)
	assert.Zero(t, p.Inventory.Len())
}

func TestPlayer_SetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"plain", "Yuri", "Yuri", true},
		{"trimmed", "  Valentina ", "Valentina", true},
		{"blank keeps old name", "   ", "Cosmonaut", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Cosmonaut")
			assert.Equal(t, tt.changed, p.SetName(tt.input))
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestPlayer_TireAndRest(t *testing.T) {
	p := NewPlayer("Cosmonaut")
	for i := 0; i < 3; i++ {
		p.Tire()
	}
	assert.False(t, p.Tired(), "8 is not above the threshold")

	p.Tire()
	assert.True(t, p.Tired())
	assert.Equal(t, 9.0, p.Rest())
	assert.Zero(t, p.Sleep)
}
