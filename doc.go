// Package alterdisks solves the alternating disks puzzle: a row of 2n
// disks alternating dark and light (dark first) is rearranged so every
// dark disk sits left of every light disk, using only adjacent swaps.
//
// 🚀 What is inside?
//
//	disk/  — Disk marker, Row (Get, Swap, IsAlternating, IsSorted, String)
//	sweep/ — LeftToRight and Lawnmower algorithms, Result, Options & hooks
//
// Quick ASCII example (L = 3):
//
//	D L D L D L   →   D D D L L L   (3 swaps)
//
// Both algorithms perform exactly L(L-1)/2 swaps on an alternating row;
// the lawnmower's backward pass halves the number of outer iterations.
//
//	go get github.com/katalvlaran/alterdisks
package alterdisks
