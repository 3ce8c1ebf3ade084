package character

import (
	"errors"
	"math"
	"testing"
)

func TestNewValidates(t *testing.T) {
	cases := []struct {
		name     string
		power    float64
		maxPower float64
		ok       bool
	}{
		{"empty", 0, 100, true},
		{"full", 100, 100, true},
		{"zero capacity", 0, 0, false},
		{"negative capacity", 5, -1, false},
		{"nan power", math.NaN(), 10, false},
		{"inf capacity", 1, math.Inf(1), false},
	}
	for _, tc := range cases {
		c, err := New("disciple", tc.power, tc.maxPower)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			if c.Cultivation.MaxSpiritualPower != tc.maxPower {
				t.Fatalf("%s: capacity %v, want %v", tc.name, c.Cultivation.MaxSpiritualPower, tc.maxPower)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidCultivationState) {
			t.Fatalf("%s: expected ErrInvalidCultivationState, got %v", tc.name, err)
		}
	}
}

func TestValidateMissingRecord(t *testing.T) {
	var nilChar *Character
	if err := nilChar.Validate(); !errors.Is(err, ErrInvalidCultivationState) {
		t.Fatalf("nil character: got %v", err)
	}
	c := &Character{Name: "mortal"}
	if err := c.Validate(); !errors.Is(err, ErrInvalidCultivationState) {
		t.Fatalf("missing record: got %v", err)
	}
}

func TestAbsorbCapsAtCapacity(t *testing.T) {
	cv := &Cultivation{SpiritualPower: 90, MaxSpiritualPower: 100}
	if got := cv.Absorb(4); got != 4 {
		t.Fatalf("absorbed %v, want 4", got)
	}
	if got := cv.Absorb(50); got != 6 {
		t.Fatalf("absorbed %v, want 6", got)
	}
	if !cv.Full() {
		t.Fatal("expected record to be full")
	}
	if got := cv.Absorb(1); got != 0 {
		t.Fatalf("absorbed %v past capacity", got)
	}
	if got := cv.Absorb(-3); got != 0 || cv.SpiritualPower != 100 {
		t.Fatalf("negative absorb changed state: got %v power %v", got, cv.SpiritualPower)
	}
}
