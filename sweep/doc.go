// Package sweep sorts an alternating row of disks using adjacent swaps
// and counts the swaps it performs.
//
// 🚀 Algorithms
//
//	LeftToRight — repeat a forward pass (i = 0..n-2) swapping every
//	(light, dark) pair until the row is sorted.
//
//	Lawnmower — each iteration runs the forward pass and then a backward
//	pass (i = n-1..1) swapping every (light, dark) pair met while moving
//	left, so dark disks travel left in the same iteration that light
//	disks travel right.
//
// Both remove exactly one light-before-dark inversion per swap, so on an
// alternating row of L light disks they perform L(L-1)/2 swaps. The
// lawnmower needs about half as many outer iterations (Result.Passes).
//
// ⚙️ Usage:
//
//	before, _ := disk.NewRow(4)
//	res, err := sweep.Lawnmower(before, sweep.WithLogger(logger))
//	if err != nil {
//	  // ErrNilRow, ErrNotAlternating, ErrOptionViolation or ErrPassLimit
//	}
//	fmt.Println(res.After(), res.Swaps, res.Passes)
//
// Complexity: O(n²) time, O(n) memory for a row of n disks.
package sweep
