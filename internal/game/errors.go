package game

import "errors"

var (
	// ErrEmptyDeck is returned when a draw or move is attempted from an
	// empty collection. With a correctly dealt round the deck never runs
	// dry, so callers treat this as a precondition violation rather than
	// a playable outcome.
	ErrEmptyDeck = errors.New("draw from empty deck")

	// ErrInvalidSelection is returned when a selection event references
	// an index outside the addressed collection.
	ErrInvalidSelection = errors.New("selection outside addressed collection")

	// ErrWrongPhase is returned when an operation is not legal in the
	// current phase.
	ErrWrongPhase = errors.New("operation not valid in current phase")

	// ErrChecksumMismatch is returned when a restored snapshot fails
	// checksum verification.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrSnapshotVersion is returned when a snapshot was written by an
	// incompatible serialization version.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)
