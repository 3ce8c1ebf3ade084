package ui

import (
	"errors"
	"math"
	"testing"

	"cultivation/internal/core/logtest"
	"cultivation/pkg/character"
)

func TestPercentExamples(t *testing.T) {
	cases := []struct {
		power, max float64
		want       int
	}{
		{45, 100, 45},
		{1, 3, 33},
		{2, 3, 66},
		{29, 100, 29},
		{57, 100, 57},
		{0, 7, 0},
		{7, 7, 100},
		{0.5, 1, 50},
		{150, 100, 100},
		{-5, 100, 0},
	}
	for _, tc := range cases {
		got, err := Percent(&character.Cultivation{SpiritualPower: tc.power, MaxSpiritualPower: tc.max})
		if err != nil {
			t.Fatalf("%v/%v: unexpected error %v", tc.power, tc.max, err)
		}
		if got != tc.want {
			t.Fatalf("%v/%v: got %d, want %d", tc.power, tc.max, got, tc.want)
		}
	}
}

func TestPercentMatchesFloorFormula(t *testing.T) {
	for max := 1; max <= 120; max++ {
		for power := 0; power <= max; power++ {
			got, err := Percent(&character.Cultivation{SpiritualPower: float64(power), MaxSpiritualPower: float64(max)})
			if err != nil {
				t.Fatalf("%d/%d: %v", power, max, err)
			}
			want := (100 * power) / max
			if got != want {
				t.Fatalf("%d/%d: got %d, want %d", power, max, got, want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("%d/%d: %d out of range", power, max, got)
			}
		}
	}
}

func TestPercentInvalid(t *testing.T) {
	bad := []*character.Cultivation{
		nil,
		{SpiritualPower: 10, MaxSpiritualPower: 0},
		{SpiritualPower: 0, MaxSpiritualPower: 0},
		{SpiritualPower: 1, MaxSpiritualPower: -4},
		{SpiritualPower: math.Inf(1), MaxSpiritualPower: 10},
		{SpiritualPower: 1, MaxSpiritualPower: math.NaN()},
	}
	for _, cv := range bad {
		got, err := Percent(cv)
		if !errors.Is(err, character.ErrInvalidCultivationState) {
			t.Fatalf("%+v: expected invalid state, got %v", cv, err)
		}
		if got != 0 {
			t.Fatalf("%+v: got %d alongside error", cv, got)
		}
	}
}

func TestCultivationBarUpdate(t *testing.T) {
	rec := &logtest.Recorder{}
	bar := NewCultivationBar(rec)

	if _, ok := bar.Progress(); ok {
		t.Fatal("fresh bar must not report a valid progress")
	}
	if !bar.Visible() {
		t.Fatal("bar should start visible")
	}

	c := &character.Character{Name: "Wei", Cultivation: &character.Cultivation{SpiritualPower: 45, MaxSpiritualPower: 100}}
	if err := bar.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if p, ok := bar.Progress(); !ok || p != 45 {
		t.Fatalf("progress %d ok=%v, want 45", p, ok)
	}
	if bar.Label() != "Wei  45%" {
		t.Fatalf("label %q", bar.Label())
	}
	if !rec.Contains("Wei cultivation 45%") {
		t.Fatalf("missing progress log: %v", rec.Lines)
	}

	rec.Reset()
	bar.Update(c)
	if len(rec.Lines) != 0 {
		t.Fatalf("unchanged progress should not log again: %v", rec.Lines)
	}

	c.Cultivation.MaxSpiritualPower = 0
	err := bar.Update(c)
	if !errors.Is(err, character.ErrInvalidCultivationState) {
		t.Fatalf("zero capacity: got %v", err)
	}
	if p, ok := bar.Progress(); ok || p != 0 {
		t.Fatalf("invalid update left progress %d ok=%v", p, ok)
	}
	if bar.Label() != "--" {
		t.Fatalf("label %q after invalid update", bar.Label())
	}
	bar.Update(c)
	if len(rec.Lines) != 1 {
		t.Fatalf("invalid state should be logged once per streak, got %v", rec.Lines)
	}

	if err := bar.Update(nil); !errors.Is(err, character.ErrInvalidCultivationState) {
		t.Fatalf("nil character: got %v", err)
	}
	if err := bar.Update(&character.Character{Name: "mortal"}); !errors.Is(err, character.ErrInvalidCultivationState) {
		t.Fatalf("missing record: got %v", err)
	}

	c.Cultivation.MaxSpiritualPower = 3
	c.Cultivation.SpiritualPower = 1
	if err := bar.Update(c); err != nil {
		t.Fatalf("recovery update: %v", err)
	}
	if p, ok := bar.Progress(); !ok || p != 33 {
		t.Fatalf("progress %d ok=%v, want 33", p, ok)
	}
}

func TestCultivationBarVisibility(t *testing.T) {
	bar := NewCultivationBar(nil)
	bar.SetVisible(false)
	if bar.Visible() {
		t.Fatal("SetVisible(false) ignored")
	}
	bar.UpdateView()
	bar.Render(nil)

	var missing *CultivationBar
	if missing.Visible() {
		t.Fatal("nil bar cannot be visible")
	}
	if err := missing.Update(nil); err != nil {
		t.Fatalf("nil bar update: %v", err)
	}
	if _, ok := missing.Progress(); ok {
		t.Fatal("nil bar has no progress")
	}
	missing.UpdateView()
}

func TestCultivationBarReportsMissingRecordOnce(t *testing.T) {
	rec := &logtest.Recorder{}
	bar := NewCultivationBar(rec)
	for _, c := range []*character.Character{nil, {Name: "mortal"}, {Name: "mortal"}} {
		if err := bar.Update(c); !errors.Is(err, character.ErrInvalidCultivationState) {
			t.Fatalf("update %v: got %v", c, err)
		}
		if _, ok := bar.Progress(); ok {
			t.Fatal("progress should be invalid")
		}
	}
	if len(rec.Lines) != 1 || !rec.Contains("missing cultivation record") {
		t.Fatalf("expected one missing-record line, got %q", rec.Lines)
	}
}
