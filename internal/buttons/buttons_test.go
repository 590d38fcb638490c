package buttons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	var st State

	st = st.With(Up).With(A)

	assert.True(t, st.Held(Up))
	assert.True(t, st.Held(A))
	assert.False(t, st.Held(Down))
	assert.Equal(t, "up+a", st.String())

	st = st.Without(Up)
	assert.False(t, st.Held(Up))
	assert.Equal(t, "a", st.String())
	assert.Equal(t, "", State(0).String())
}

func TestButton_String(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "unknown", Button(0).String())
}

func TestParseState(t *testing.T) {
	t.Run("Combination", func(t *testing.T) {
		st, err := ParseState(" Down + a ")

		require.NoError(t, err)
		assert.Equal(t, State(0).With(Down).With(A), st)
	})

	t.Run("Empty", func(t *testing.T) {
		st, err := ParseState("")

		require.NoError(t, err)
		assert.Equal(t, State(0), st)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseState("b")

		assert.Error(t, err)
	})

	t.Run("Round trip", func(t *testing.T) {
		want := State(0).With(Left).With(Start)

		got, err := ParseState(want.String())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestScript(t *testing.T) {
	t.Run("Replays frames then quits", func(t *testing.T) {
		// Given: a script with three frames
		s, err := ParseScript("a,,right+a")
		require.NoError(t, err)
		require.NoError(t, s.Start(context.Background()))
		assert.Equal(t, 3, s.Len())

		// When/Then: each poll returns the next frame
		st, ok := s.Poll()
		assert.True(t, ok)
		assert.Equal(t, State(A), st)

		st, ok = s.Poll()
		assert.True(t, ok)
		assert.Equal(t, State(0), st)

		st, ok = s.Poll()
		assert.True(t, ok)
		assert.Equal(t, State(0).With(Right).With(A), st)

		// Then: after the last frame it keeps asking to quit
		for i := 0; i < 2; i++ {
			st, ok = s.Poll()
			assert.True(t, ok)
			assert.True(t, st.Held(Quit))
		}
		assert.NoError(t, s.Stop())
	})

	t.Run("Empty script quits immediately", func(t *testing.T) {
		s, err := ParseScript("  ")
		require.NoError(t, err)

		st, ok := s.Poll()

		assert.True(t, ok)
		assert.Equal(t, State(Quit), st)
	})

	t.Run("Bad frame", func(t *testing.T) {
		_, err := ParseScript("a,jump")

		assert.ErrorIs(t, err, ErrBadScript)
	})

	t.Run("NewScript copies frames", func(t *testing.T) {
		frames := []State{State(Up)}
		s := NewScript(frames...)
		frames[0] = State(Down)

		st, _ := s.Poll()

		assert.Equal(t, State(Up), st)
	})
}

func TestNoopButtons(t *testing.T) {
	b := NewNoopButtons()
	require.NoError(t, b.Start(context.Background()))

	_, ok := b.Poll()

	assert.False(t, ok)
	assert.NoError(t, b.Stop())
}
