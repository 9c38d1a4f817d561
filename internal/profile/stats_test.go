package profile

import (
	"math"
	"testing"
)

func TestSummarizeBasics(t *testing.T) {
	s := summarize(col("v", "1", "2", "3", "4", "5"))
	if s == nil {
		t.Fatal("nil stats")
	}
	if s.Count != 5 {
		t.Fatalf("count = %d, want 5", s.Count)
	}
	if !almostEqual(s.Mean, 3, 1e-9) || s.Min != 1 || s.Max != 5 {
		t.Fatalf("mean/min/max = %f/%f/%f", s.Mean, s.Min, s.Max)
	}
	if s.Std == nil || !almostEqual(*s.Std, math.Sqrt(2.5), 1e-9) {
		t.Fatalf("std = %v, want sqrt(2.5)", s.Std)
	}
	if s.Skewness == nil || !almostEqual(*s.Skewness, 0, 1e-9) {
		t.Fatalf("skewness = %v, want 0", s.Skewness)
	}
	// Bias-corrected excess kurtosis of 1..5 is exactly -1.2.
	if s.Kurtosis == nil || !almostEqual(*s.Kurtosis, -1.2, 1e-9) {
		t.Fatalf("kurtosis = %v, want -1.2", s.Kurtosis)
	}
}

func TestSummarizeSmallCounts(t *testing.T) {
	s := summarize(col("v", "3"))
	if s == nil || s.Count != 1 {
		t.Fatalf("stats = %#v", s)
	}
	if s.Std != nil || s.Skewness != nil || s.Kurtosis != nil {
		t.Fatalf("single value must leave std/skew/kurtosis undefined: %#v", s)
	}

	s = summarize(col("v", "3", "5"))
	if s.Std == nil || !almostEqual(*s.Std, math.Sqrt2, 1e-9) {
		t.Fatalf("std = %v, want sqrt(2)", s.Std)
	}
	if s.Skewness != nil || s.Kurtosis != nil {
		t.Fatalf("two values must leave skew/kurtosis undefined: %#v", s)
	}

	s = summarize(col("v", "1", "2", "4"))
	if s.Skewness == nil {
		t.Fatal("three values should define skewness")
	}
	if s.Kurtosis != nil {
		t.Fatal("three values must leave kurtosis undefined")
	}
}

func TestSummarizeConstantColumn(t *testing.T) {
	s := summarize(col("v", "7", "7", "7", "7", "7"))
	if s.Std == nil || *s.Std != 0 {
		t.Fatalf("std = %v, want 0", s.Std)
	}
	// Zero second moment makes the standardized moments degenerate.
	if s.Skewness != nil || s.Kurtosis != nil {
		t.Fatalf("constant column skew/kurtosis must be undefined: %#v", s)
	}
}

func TestSummarizeSkewnessSign(t *testing.T) {
	s := summarize(col("v", "1", "2", "3", "10"))
	if s.Skewness == nil || *s.Skewness <= 0 {
		t.Fatalf("right-tailed column should have positive skewness: %v", s.Skewness)
	}
}

func TestSummarizeNoNumericValues(t *testing.T) {
	if s := summarize(col("v", "<null>", "<null>")); s != nil {
		t.Fatalf("all-null column stats = %#v, want nil", s)
	}
}
