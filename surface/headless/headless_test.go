package headless_test

import (
	"testing"

	"github.com/plus3/shapewars/game"
	"github.com/plus3/shapewars/surface/headless"
	"github.com/stretchr/testify/assert"
)

var _ game.Surface = (*headless.Surface)(nil)

func TestPollDrainsQueue(t *testing.T) {
	s := headless.New(800, 600)
	s.Push(game.Pressed(game.KeyUp), game.Released(game.KeyUp))

	assert.Equal(t, []game.Event{game.Pressed(game.KeyUp), game.Released(game.KeyUp)}, s.PollEvents())
	assert.Empty(t, s.PollEvents())
	assert.Equal(t, 2, s.Polls)
}

func TestFrameIsPublishedOnDisplay(t *testing.T) {
	s := headless.New(800, 600)

	s.Clear()
	s.Draw(game.Drawable{Tag: "player"})
	assert.Empty(t, s.Frame)

	s.Display()
	assert.Len(t, s.Frame, 1)
	assert.Equal(t, 1, s.Presented)

	s.Clear()
	s.Display()
	assert.Empty(t, s.Frame)
	assert.Equal(t, 2, s.Presented)

	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.NoError(t, s.Close())
}
