package disk_test

import (
	"testing"

	"github.com/katalvlaran/alterdisks/disk"
)

// BenchmarkRow_IsSorted measures the sortedness predicate on an alternating row,
// which fails at index 1.
func BenchmarkRow_IsSorted(b *testing.B) {
	row, err := disk.NewRow(1000)
	if err != nil {
		b.Fatalf("NewRow failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = row.IsSorted()
	}
}

// BenchmarkRow_IsAlternating scans the whole 2000-disk row.
func BenchmarkRow_IsAlternating(b *testing.B) {
	row, err := disk.NewRow(1000)
	if err != nil {
		b.Fatalf("NewRow failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = row.IsAlternating()
	}
}

// BenchmarkRow_String renders the display form.
func BenchmarkRow_String(b *testing.B) {
	row, err := disk.NewRow(1000)
	if err != nil {
		b.Fatalf("NewRow failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = row.String()
	}
}
