package town

import "strings"

// Config lists the roster a town is populated with.
type Config struct {
	NPCs  []NPC
	Shops []Shop
}

// DefaultConfig returns the starter roster.
func DefaultConfig() Config {
	return Config{
		NPCs: []NPC{
			{ID: "elder", Name: "Elder Mo", Greeting: "Breathe slowly, disciple."},
			{ID: "smith", Name: "Smith Han", Greeting: "Blades are half off today."},
		},
		Shops: []Shop{
			{ID: "pills", Name: "Pill Pavilion"},
			{ID: "forge", Name: "Iron Forge"},
		},
	}
}

// FromMap populates the config from a string map. "npcs" holds
// semicolon-separated id:name:greeting entries and "shops" holds id:name
// entries. A present key replaces the default list for that kind.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["npcs"]; ok {
		c.NPCs = nil
		for _, fields := range splitEntries(v, 3) {
			c.NPCs = append(c.NPCs, NPC{ID: fields[0], Name: fields[1], Greeting: fields[2]})
		}
	}
	if v, ok := cfg["shops"]; ok {
		c.Shops = nil
		for _, fields := range splitEntries(v, 2) {
			c.Shops = append(c.Shops, Shop{ID: fields[0], Name: fields[1]})
		}
	}
	return c
}

// splitEntries parses "a:b;c:d" into rows of exactly n fields. Missing
// trailing fields are left empty, entries without an id are dropped and the
// last field keeps any extra colons.
func splitEntries(v string, n int) [][]string {
	var rows [][]string
	for _, entry := range strings.Split(v, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", n)
		fields := make([]string, n)
		for i, p := range parts {
			fields[i] = strings.TrimSpace(p)
		}
		if fields[0] == "" {
			continue
		}
		if fields[1] == "" {
			fields[1] = fields[0]
		}
		rows = append(rows, fields)
	}
	return rows
}
