package disk

import (
	"fmt"
	"strings"
)

// Row is an ordered, fixed-length sequence of disks.
//
// The length never changes after construction and the only mutation is
// Swap of an adjacent pair, so the number of dark and light disks is
// always equal (Len() == 2*LightCount()).
//
// A Row is not safe for concurrent mutation; each sweep works on its own
// Clone.
type Row struct {
	disks []Disk
}

// NewRow returns the alternating row for lightCount light disks:
// dark at every even index, light at every odd index, size 2*lightCount.
//
// Returns ErrInvalidLightCount when lightCount < 1.
//
// Complexity: O(n) time and memory.
func NewRow(lightCount int) (*Row, error) {
	if lightCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLightCount, lightCount)
	}
	disks := make([]Disk, 2*lightCount) // zero value is Dark
	for i := 1; i < len(disks); i += 2 {
		disks[i] = Light
	}

	return &Row{disks: disks}, nil
}

// ParseRow parses the display form produced by String, e.g. "D L D L".
// Tokens may be separated by any run of whitespace.
//
// Errors:
//   - ErrBadToken   — a token other than "D" or "L".
//   - ErrUnbalanced — empty input, odd length, or unequal dark/light counts.
func ParseRow(s string) (*Row, error) {
	fields := strings.Fields(s)
	disks := make([]Disk, len(fields))
	lights := 0
	for i, tok := range fields {
		d, err := parseDisk(tok)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		if d == Light {
			lights++
		}
		disks[i] = d
	}
	if len(disks) == 0 || 2*lights != len(disks) {
		return nil, fmt.Errorf("%w: %d disks, %d light", ErrUnbalanced, len(disks), lights)
	}

	return &Row{disks: disks}, nil
}

// Len returns the total number of disks.
func (r *Row) Len() int { return len(r.disks) }

// LightCount returns the number of light disks, always Len()/2.
func (r *Row) LightCount() int { return r.Len() / 2 }

// DarkCount returns the number of dark disks, always Len()/2.
func (r *Row) DarkCount() int { return r.LightCount() }

// IsIndex reports whether i addresses a position of the row.
func (r *Row) IsIndex(i int) bool { return i >= 0 && i < r.Len() }

// Get returns the disk at index i.
// It panics with an error wrapping ErrIndexOutOfRange if !IsIndex(i).
func (r *Row) Get(i int) Disk {
	if !r.IsIndex(i) {
		panic(fmt.Errorf("%w: get %d of %d", ErrIndexOutOfRange, i, r.Len()))
	}

	return r.disks[i]
}

// Swap exchanges the disks at left and left+1.
// It panics with an error wrapping ErrIndexOutOfRange unless both
// positions exist.
func (r *Row) Swap(left int) {
	if !r.IsIndex(left) || !r.IsIndex(left+1) {
		panic(fmt.Errorf("%w: swap %d,%d of %d", ErrIndexOutOfRange, left, left+1, r.Len()))
	}
	r.disks[left], r.disks[left+1] = r.disks[left+1], r.disks[left]
}

// IsAlternating reports whether every even index holds Dark and every
// odd index holds Light.
func (r *Row) IsAlternating() bool {
	for i, d := range r.disks {
		if (i%2 == 0) != (d == Dark) {
			return false
		}
	}

	return true
}

// IsSorted reports whether indices [0, Len()/2) are all Dark and
// [Len()/2, Len()) are all Light.
func (r *Row) IsSorted() bool {
	half := r.Len() / 2
	for i, d := range r.disks {
		if (i < half) != (d == Dark) {
			return false
		}
	}

	return true
}

// Inversions counts pairs (i < j) with a light disk at i and a dark disk
// at j. Every productive adjacent swap removes exactly one, so the count
// is both the termination measure of a sweep and its exact swap total.
//
// Complexity: O(n).
func (r *Row) Inversions() int {
	var lights, inv int
	for _, d := range r.disks {
		if d == Light {
			lights++
		} else {
			inv += lights
		}
	}

	return inv
}

// Equal reports whether r and other have the same length and the same
// disk at every index. Two nil rows are equal.
func (r *Row) Equal(other *Row) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Len() != other.Len() {
		return false
	}
	for i := range r.disks {
		if r.disks[i] != other.disks[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of r.
func (r *Row) Clone() *Row {
	disks := make([]Disk, len(r.disks))
	copy(disks, r.disks)

	return &Row{disks: disks}
}

// String renders the row as space-separated tokens, e.g. "D L D L".
func (r *Row) String() string {
	var sb strings.Builder
	sb.Grow(2 * r.Len())
	for i, d := range r.disks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.String())
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (r *Row) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see ParseRow.
// The receiver must be a zero Row, otherwise ErrRowNotEmpty is returned
// and r is left untouched.
func (r *Row) UnmarshalText(text []byte) error {
	if r.Len() != 0 {
		return fmt.Errorf("%w: has %d disks", ErrRowNotEmpty, r.Len())
	}
	parsed, err := ParseRow(string(text))
	if err != nil {
		return err
	}
	r.disks = parsed.disks

	return nil
}
