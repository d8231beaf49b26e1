package game

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	dealRound(t, e)
	completeInitialFlips(t, e)

	data, err := e.Snapshot()
	require.NoError(t, err)

	restored := newTestEngine(t)
	require.NoError(t, restored.Restore(data))

	assert.Equal(t, canonical(e.State()), canonical(restored.State()))
}

// TestRestoredEngineReplaysIdentically snapshots mid-SelectFromPile and
// checks that the restored engine matches the original transition-for-
// transition under the same input events. No randomness is consumed
// between deals, so mid-round state is sufficient to resume.
func TestRestoredEngineReplaysIdentically(t *testing.T) {
	original := newTestEngine(t)
	dealRound(t, original)
	completeInitialFlips(t, original)

	data, err := original.Snapshot()
	require.NoError(t, err)

	restored := newTestEngine(t)
	require.NoError(t, restored.Restore(data))

	script := func(e *Engine) []string {
		var states []string
		steps := []InputFrame{
			ClickOn(Target{Kind: TargetDeck}),
			ClickOn(Target{Kind: TargetDiscard}),
		}
		for _, frame := range steps {
			require.NoError(t, e.Tick(frame))
			states = append(states, canonical(e.State()))
		}
		// Flip the first face-down card of whoever is active.
		idx := firstFaceDown(e.State().ActivePlayer())
		require.NoError(t, e.Tick(ClickOn(HandTarget(e.State().Current, idx))))
		return append(states, canonical(e.State()))
	}

	assert.Equal(t, script(original), script(restored))
}

func TestRestoreRejectsCorruptedSnapshot(t *testing.T) {
	e := newTestEngine(t)
	dealRound(t, e)

	data, err := e.Snapshot()
	require.NoError(t, err)

	corrupted := append([]byte(nil), data...)
	corrupted[len(corrupted)/2] ^= 0xff

	assert.Error(t, newTestEngine(t).Restore(corrupted))
}

func TestRestoreRejectsChecksumMismatch(t *testing.T) {
	e := newTestEngine(t)
	dealRound(t, e)

	env := snapshotEnvelope{
		Version: snapshotVersion,
		State:   e.State().Clone(),
		Hash:    "not-a-real-hash",
	}
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(env))

	assert.ErrorIs(t, newTestEngine(t).Restore(buf.Bytes()), ErrChecksumMismatch)
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	e := newTestEngine(t)
	dealRound(t, e)

	env := snapshotEnvelope{
		Version: snapshotVersion + 1,
		State:   e.State().Clone(),
		Hash:    checksum(e.State()),
	}
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(env))

	assert.ErrorIs(t, newTestEngine(t).Restore(buf.Bytes()), ErrSnapshotVersion)
}

func TestChecksumTracksGameplayFields(t *testing.T) {
	e := newTestEngine(t)
	dealRound(t, e)

	before := checksum(e.State())
	require.NoError(t, e.Tick(ClickOn(HandTarget(0, 0))))
	assert.NotEqual(t, before, checksum(e.State()))
}
