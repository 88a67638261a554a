package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	fields := map[string]string{"name": "Asha", "room": "12"}

	assert.Equal(t, "Hi Asha, room 12", Render("Hi {name}, room {room}", fields))
}

func TestRenderMissingFieldBecomesEmpty(t *testing.T) {
	fields := map[string]string{"name": "Asha"}

	got := Render("Hi {name}, room {room}", fields)

	assert.Equal(t, "Hi Asha, room ", got)
	assert.NotContains(t, got, "{room}")
}

func TestRenderNilFields(t *testing.T) {
	assert.Equal(t, "Hi , due ", Render("Hi {name}, due {date}", nil))
}

func TestRenderNoTokens(t *testing.T) {
	assert.Equal(t, "plain message", Render("plain message", map[string]string{"name": "x"}))
}

func TestRenderRepeatedToken(t *testing.T) {
	got := Render("{name} {name}", map[string]string{"name": "Asha"})
	assert.Equal(t, "Asha Asha", got)
}

func TestTokens(t *testing.T) {
	got := Tokens("Hi {name}, room {room}, bye {name}")
	assert.Equal(t, []string{"name", "room"}, got)
}
