package disk

import "errors"

// Every message is prefixed with "disk: ". Callers match with errors.Is;
// context is added by wrapping with fmt.Errorf("%w: ...").
var (
	// ErrInvalidLightCount is returned by NewRow when lightCount < 1.
	ErrInvalidLightCount = errors.New("disk: light count must be at least 1")

	// ErrIndexOutOfRange is the panic value (wrapped) of Get and Swap
	// when the index does not address a position (or an adjacent pair).
	ErrIndexOutOfRange = errors.New("disk: index out of range")

	// ErrBadToken indicates a display token other than "D" or "L".
	ErrBadToken = errors.New("disk: unknown disk token")

	// ErrUnbalanced indicates a parsed row that is empty, has odd length,
	// or holds a different number of dark and light disks.
	ErrUnbalanced = errors.New("disk: row must hold an equal, non-zero number of dark and light disks")

	// ErrRowNotEmpty is returned by UnmarshalText when the receiver already
	// holds disks; a built row only changes through Swap.
	ErrRowNotEmpty = errors.New("disk: cannot decode into a non-empty row")
)
