package character

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCultivationState reports a cultivation record that cannot be
// turned into a progress value: missing, zero or negative capacity, or
// non-finite numbers.
var ErrInvalidCultivationState = errors.New("invalid cultivation state")

// Cultivation tracks a character's spiritual power against its capacity.
type Cultivation struct {
	SpiritualPower    float64
	MaxSpiritualPower float64
}

// Character is the subject of cultivation sessions and the HUD bar.
type Character struct {
	Name        string
	Cultivation *Cultivation
}

// New constructs a validated Character.
func New(name string, power, maxPower float64) (*Character, error) {
	c := &Character{
		Name:        name,
		Cultivation: &Cultivation{SpiritualPower: power, MaxSpiritualPower: maxPower},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the cultivation sub-record.
func (c *Character) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil character", ErrInvalidCultivationState)
	}
	if c.Cultivation == nil {
		return fmt.Errorf("%w: %q has no cultivation record", ErrInvalidCultivationState, c.Name)
	}
	return c.Cultivation.Validate()
}

// Validate checks that capacity is positive and both values are finite.
func (cv *Cultivation) Validate() error {
	if cv == nil {
		return fmt.Errorf("%w: missing cultivation record", ErrInvalidCultivationState)
	}
	if !finite(cv.MaxSpiritualPower) || cv.MaxSpiritualPower <= 0 {
		return fmt.Errorf("%w: max spiritual power %v", ErrInvalidCultivationState, cv.MaxSpiritualPower)
	}
	if !finite(cv.SpiritualPower) {
		return fmt.Errorf("%w: spiritual power %v", ErrInvalidCultivationState, cv.SpiritualPower)
	}
	return nil
}

// Absorb adds amount to the current spiritual power, capped at capacity, and
// returns how much was actually absorbed. Non-positive amounts are ignored.
func (cv *Cultivation) Absorb(amount float64) float64 {
	if cv == nil || !finite(amount) || amount <= 0 {
		return 0
	}
	room := cv.MaxSpiritualPower - cv.SpiritualPower
	if room <= 0 {
		return 0
	}
	if amount > room {
		amount = room
	}
	cv.SpiritualPower += amount
	return amount
}

// Full reports whether spiritual power has reached capacity.
func (cv *Cultivation) Full() bool {
	return cv != nil && cv.SpiritualPower >= cv.MaxSpiritualPower
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
