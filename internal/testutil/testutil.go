// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability. Geometry tests lean
// on the tolerance helpers because mesh-derived dimensions are approximate.
package testutil

import (
	"math"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertInDelta checks that got is within delta of want.
func AssertInDelta(t *testing.T, got, want, delta float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > delta {
		t.Errorf("value = %v, want %v (±%v)", got, want, delta)
	}
}

// AssertBetween checks that got lies in the closed interval [lo, hi].
func AssertBetween(t *testing.T, got, lo, hi float64) {
	t.Helper()
	if math.IsNaN(got) || got < lo || got > hi {
		t.Errorf("value = %v, want within [%v, %v]", got, lo, hi)
	}
}

// AssertRelative checks that got is within frac (e.g. 0.05 for 5%) of want.
// Useful for mesh-derived dimensions where exact equality is unrealistic.
func AssertRelative(t *testing.T, got, want, frac float64) {
	t.Helper()
	if want == 0 {
		AssertInDelta(t, got, want, frac)
		return
	}
	if math.IsNaN(got) || math.Abs(got-want)/math.Abs(want) > frac {
		t.Errorf("value = %v, want %v (±%v%%)", got, want, frac*100)
	}
}
