// Package disk models one row of the alternating disks puzzle.
//
// 🚀 What is a Row?
//
//	A fixed-length sequence of two-valued markers, Dark or Light.
//	A freshly built row alternates, dark at every even index:
//
//	  D L D L D L
//
//	A sorted row keeps every dark disk left of every light disk:
//
//	  D D D L L L
//
// ✨ Key features:
//   - NewRow builds the alternating row for a light count L ≥ 1 (size 2L)
//   - Swap is the only mutation: exchange positions i and i+1
//   - IsAlternating / IsSorted predicates, Inversions as progress measure
//   - String / ParseRow round-trip the "D L D L" display form
//
// ⚙️ Usage:
//
//	row, err := disk.NewRow(3)
//	if err != nil {
//	  // ErrInvalidLightCount
//	}
//	row.Swap(1)
//	fmt.Println(row) // D D L L D L
//
// Contract violations (Get or Swap out of bounds) panic with an error
// wrapping ErrIndexOutOfRange. Everything else returns sentinel errors.
package disk
