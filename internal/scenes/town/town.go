package town

import (
	"time"

	"cultivation/internal/core"
)

// Name is the registry key of the town scene.
const Name = "town"

// NPC is a townsperson the player can talk to.
type NPC struct {
	ID       string
	Name     string
	Greeting string
}

// Shop is a storefront the player can enter.
type Shop struct {
	ID   string
	Name string
}

// Town is the hub scene holding NPCs and shops.
type Town struct {
	*core.Lifecycle
	log core.Logger

	npcs  []NPC
	shops []Shop

	currentShop  *Shop
	interactions map[string]int
	elapsed      time.Duration
}

// New returns an inactive, empty town.
func New(log core.Logger) *Town {
	t := &Town{log: core.OrNop(log), interactions: map[string]int{}}
	t.Lifecycle = core.NewLifecycle(Name, t.log, t.setup, t.teardown)
	return t
}

func (t *Town) setup() {
	t.elapsed = 0
	t.log.Printf("%s: %d npcs, %d shops", Name, len(t.npcs), len(t.shops))
}

func (t *Town) teardown() {
	t.currentShop = nil
}

// Update advances the town clock while active.
func (t *Town) Update(delta time.Duration) {
	if !t.Active() {
		return
	}
	if delta < 0 {
		delta = 0
	}
	t.elapsed += delta
}

// Elapsed returns the time spent in the town during the current activation.
func (t *Town) Elapsed() time.Duration { return t.elapsed }

// AddNPC appends an NPC, keeping insertion order.
func (t *Town) AddNPC(n NPC) { t.npcs = append(t.npcs, n) }

// AddShop appends a shop, keeping insertion order.
func (t *Town) AddShop(s Shop) { t.shops = append(t.shops, s) }

// NPCs returns a copy of the NPC list in insertion order.
func (t *Town) NPCs() []NPC { return append([]NPC(nil), t.npcs...) }

// Shops returns a copy of the shop list in insertion order.
func (t *Town) Shops() []Shop { return append([]Shop(nil), t.shops...) }

// InteractWithNPC talks to the NPC with the given id. Unknown ids are logged
// and reported with ok=false.
func (t *Town) InteractWithNPC(id string) (NPC, bool) {
	for _, n := range t.npcs {
		if n.ID != id {
			continue
		}
		t.interactions[id]++
		t.log.Printf("%s: %s says %q", Name, n.Name, n.Greeting)
		return n, true
	}
	t.log.Printf("%s: no npc %q", Name, id)
	return NPC{}, false
}

// Interactions returns how many times the NPC with id was talked to.
func (t *Town) Interactions(id string) int { return t.interactions[id] }

// EnterShop makes the shop with the given id current. Unknown ids are logged
// and reported with ok=false, leaving the current shop unchanged.
func (t *Town) EnterShop(id string) (Shop, bool) {
	for i := range t.shops {
		if t.shops[i].ID != id {
			continue
		}
		s := t.shops[i]
		t.currentShop = &s
		t.log.Printf("%s: entered %s", Name, s.Name)
		return s, true
	}
	t.log.Printf("%s: no shop %q", Name, id)
	return Shop{}, false
}

// LeaveShop clears the current shop.
func (t *Town) LeaveShop() {
	if t.currentShop == nil {
		return
	}
	t.log.Printf("%s: left %s", Name, t.currentShop.Name)
	t.currentShop = nil
}

// CurrentShop returns the shop the player is in, if any.
func (t *Town) CurrentShop() (Shop, bool) {
	if t.currentShop == nil {
		return Shop{}, false
	}
	return *t.currentShop, true
}

func init() {
	core.Register(Name, func(log core.Logger, cfg map[string]string) core.Scene {
		c := FromMap(cfg)
		t := New(log)
		for _, n := range c.NPCs {
			t.AddNPC(n)
		}
		for _, s := range c.Shops {
			t.AddShop(s)
		}
		return t
	})
}
