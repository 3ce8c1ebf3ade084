package cultivation

import "strconv"

// Config controls the cultivation scene.
type Config struct {
	// Rate is the spiritual power absorbed per second of cultivation.
	Rate float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rate: 5}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Rate = parsed
		}
	}
	return c
}
