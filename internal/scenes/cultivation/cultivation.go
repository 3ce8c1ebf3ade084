package cultivation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cultivation/internal/core"
	"cultivation/pkg/character"

	"github.com/looplab/fsm"
)

// Name is the registry key of the cultivation scene.
const Name = "cultivation"

// Session states.
const (
	SessionIdle        = "idle"
	SessionCultivating = "cultivating"
	SessionComplete    = "complete"
)

const (
	eventStart    = "start"
	eventComplete = "complete"
	eventStop     = "stop"
)

// Scene is where a character meditates to absorb spiritual power.
type Scene struct {
	*core.Lifecycle
	log core.Logger
	cfg Config

	session  *fsm.FSM
	subject  *character.Character
	absorbed float64
}

// New returns an inactive cultivation scene.
func New(log core.Logger, cfg Config) *Scene {
	s := &Scene{log: core.OrNop(log), cfg: cfg}
	s.Lifecycle = core.NewLifecycle(Name, s.log, nil, s.StopCultivation)
	s.session = fsm.NewFSM(
		SessionIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{SessionIdle, SessionCultivating, SessionComplete}, Dst: SessionCultivating},
			{Name: eventComplete, Src: []string{SessionCultivating}, Dst: SessionComplete},
			{Name: eventStop, Src: []string{SessionCultivating, SessionComplete}, Dst: SessionIdle},
		},
		fsm.Callbacks{},
	)
	return s
}

// StartCultivation begins a session for c, replacing any running session.
func (s *Scene) StartCultivation(c *character.Character) error {
	if err := c.Validate(); err != nil {
		s.log.Printf("%s: cannot start: %v", Name, err)
		return fmt.Errorf("start cultivation: %w", err)
	}
	if err := s.transition(eventStart); err != nil {
		return err
	}
	s.subject = c
	s.absorbed = 0
	s.log.Printf("%s: %s begins cultivating at %.0f/%.0f", Name, c.Name,
		c.Cultivation.SpiritualPower, c.Cultivation.MaxSpiritualPower)
	if c.Cultivation.Full() {
		s.finish()
	}
	return nil
}

// StopCultivation ends the current session, if any.
func (s *Scene) StopCultivation() {
	if s.session.Is(SessionIdle) {
		return
	}
	if err := s.transition(eventStop); err != nil {
		s.log.Printf("%s: stop: %v", Name, err)
		return
	}
	if s.subject != nil {
		s.log.Printf("%s: %s stops after absorbing %.1f", Name, s.subject.Name, s.absorbed)
	}
	s.subject = nil
}

// Update absorbs spiritual power for the elapsed time while active.
func (s *Scene) Update(delta time.Duration) {
	if !s.Active() || !s.session.Is(SessionCultivating) || s.subject == nil {
		return
	}
	if delta <= 0 {
		return
	}
	cv := s.subject.Cultivation
	s.absorbed += cv.Absorb(s.cfg.Rate * delta.Seconds())
	if cv.Full() {
		s.finish()
	}
}

// Session returns the session state name.
func (s *Scene) Session() string { return s.session.Current() }

// Subject returns the character being cultivated, or nil.
func (s *Scene) Subject() *character.Character { return s.subject }

// Absorbed returns the spiritual power gained in the current session.
func (s *Scene) Absorbed() float64 { return s.absorbed }

func (s *Scene) finish() {
	if err := s.transition(eventComplete); err != nil {
		s.log.Printf("%s: complete: %v", Name, err)
		return
	}
	s.log.Printf("%s: %s reached full spiritual power", Name, s.subject.Name)
}

func (s *Scene) transition(event string) error {
	err := s.session.Event(context.Background(), event)
	var same fsm.NoTransitionError
	if errors.As(err, &same) && same.Err == nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s session %s: %w", Name, event, err)
	}
	return nil
}

func init() {
	core.Register(Name, func(log core.Logger, cfg map[string]string) core.Scene {
		return New(log, FromMap(cfg))
	})
}
