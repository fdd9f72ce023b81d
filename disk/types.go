package disk

import "fmt"

// Disk is the state of one disk: Dark or Light.
type Disk uint8

const (
	// Dark disks belong in the lower half of a sorted row.
	Dark Disk = iota

	// Light disks belong in the upper half of a sorted row.
	Light
)

// Display tokens used by String and ParseRow.
const (
	darkToken  = "D"
	lightToken = "L"
)

// String returns "D" for Dark and "L" for Light.
func (d Disk) String() string {
	switch d {
	case Dark:
		return darkToken
	case Light:
		return lightToken
	default:
		return fmt.Sprintf("Disk(%d)", uint8(d))
	}
}

// parseDisk maps a display token back to a Disk.
func parseDisk(tok string) (Disk, error) {
	switch tok {
	case darkToken:
		return Dark, nil
	case lightToken:
		return Light, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
}
