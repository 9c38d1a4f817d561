package profile

import (
	"math"
	"testing"
)

func TestDetectOutliersIQRFence(t *testing.T) {
	// Q1=2, Q3=4, IQR=2, fence [-1, 7]: only 100 falls outside.
	c := col("v", "1", "2", "3", "4", "100")
	count, idx := detectOutliers(c, DefaultOptions())
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if len(idx) != 1 || idx[0] != 4 {
		t.Fatalf("indices = %v, want [4]", idx)
	}
}

func TestDetectOutliersConstantColumn(t *testing.T) {
	c := col("v", "7", "7", "7", "7")
	count, idx := detectOutliers(c, DefaultOptions())
	if count != 0 || idx != nil {
		t.Fatalf("constant column: count=%d idx=%v, want 0 and nil", count, idx)
	}
}

func TestDetectOutliersZeroIQRNonConstant(t *testing.T) {
	// Quartiles collapse (Q1 = Q3 = 1) even though one value differs.
	c := col("v", "1", "1", "1", "1", "100")
	count, idx := detectOutliers(c, DefaultOptions())
	if count != 0 || idx != nil {
		t.Fatalf("zero IQR: count=%d idx=%v, want 0 and nil", count, idx)
	}
}

func TestDetectOutliersSkipsNulls(t *testing.T) {
	c := col("v", "1", "<null>", "2", "3", "4", "100")
	count, idx := detectOutliers(c, DefaultOptions())
	if count != 1 || len(idx) != 1 || idx[0] != 5 {
		t.Fatalf("count=%d idx=%v, want 1 and [5]", count, idx)
	}
}

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	if q := quantile(sorted, 0.25); !almostEqual(q, 1.75, 1e-9) {
		t.Fatalf("q1 = %f, want 1.75", q)
	}
	if q := quantile(sorted, 0.5); !almostEqual(q, 2.5, 1e-9) {
		t.Fatalf("median = %f, want 2.5", q)
	}
	if q := quantile(sorted, 1); q != 4 {
		t.Fatalf("q100 = %f, want 4", q)
	}
	if q := quantile(nil, 0.5); q != 0 {
		t.Fatalf("empty quantile = %f, want 0", q)
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
