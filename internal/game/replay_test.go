package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayNavigation(t *testing.T) {
	replay := NewReplay()
	for i := 1; i <= 5; i++ {
		replay.Record(&GameState{Round: i})
	}
	assert.Equal(t, 5, replay.Len())

	replay.Start()

	state := replay.Next()
	require.NotNil(t, state)
	assert.Equal(t, 1, state.Round)

	state = replay.Next()
	require.NotNil(t, state)
	assert.Equal(t, 2, state.Round)

	state = replay.Previous()
	require.NotNil(t, state)
	assert.Equal(t, 2, state.Round)

	state = replay.Previous()
	require.NotNil(t, state)
	assert.Equal(t, 1, state.Round)

	assert.Nil(t, replay.Previous())

	state = replay.Skip(3)
	require.NotNil(t, state)
	assert.Equal(t, 4, state.Round)

	assert.Nil(t, replay.Skip(10))
}

func TestEngineRecordsReplay(t *testing.T) {
	replay := NewReplay()
	e := newTestEngine(t, WithReplay(replay))

	dealRound(t, e)
	require.Equal(t, 1, replay.Len())

	completeInitialFlips(t, e)
	assert.Equal(t, 5, replay.Len())

	// An ignored click records nothing.
	require.NoError(t, e.Tick(InputFrame{}))
	assert.Equal(t, 5, replay.Len())

	// Recorded snapshots are isolated from later engine mutation.
	replay.Start()
	first := replay.Next()
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Players[0].FaceUpCount())
}
