package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// Lifecycle states and events.
const (
	StateInactive = "inactive"
	StateActive   = "active"

	EventCreate = "create"
	EventExit   = "exit"
)

var (
	// ErrAlreadyActive is returned by Create on a scene that is already active.
	ErrAlreadyActive = errors.New("scene already active")
	// ErrNotActive is returned by Exit on a scene that is not active.
	ErrNotActive = errors.New("scene not active")
)

// Lifecycle is the inactive -> active -> inactive state machine shared by all
// scenes. Embed it and pass the scene's setup and teardown hooks.
type Lifecycle struct {
	name    string
	log     Logger
	machine *fsm.FSM
}

// NewLifecycle builds an inactive lifecycle. onCreate runs after each
// create transition, onExit after each exit transition; either may be nil.
func NewLifecycle(name string, log Logger, onCreate, onExit func()) *Lifecycle {
	l := &Lifecycle{name: name, log: OrNop(log)}
	l.machine = fsm.NewFSM(
		StateInactive,
		fsm.Events{
			{Name: EventCreate, Src: []string{StateInactive}, Dst: StateActive},
			{Name: EventExit, Src: []string{StateActive}, Dst: StateInactive},
		},
		fsm.Callbacks{
			"after_" + EventCreate: func(context.Context, *fsm.Event) {
				if onCreate != nil {
					onCreate()
				}
			},
			"after_" + EventExit: func(context.Context, *fsm.Event) {
				if onExit != nil {
					onExit()
				}
			},
		},
	)
	return l
}

// Name returns the scene identity.
func (l *Lifecycle) Name() string { return l.name }

// Create moves the scene to active.
func (l *Lifecycle) Create() error {
	if l.machine.Cannot(EventCreate) {
		l.log.Printf("%s: create ignored, scene is %s", l.name, l.machine.Current())
		return fmt.Errorf("%s: %w", l.name, ErrAlreadyActive)
	}
	if err := l.machine.Event(context.Background(), EventCreate); err != nil {
		return fmt.Errorf("%s: create: %w", l.name, err)
	}
	l.log.Printf("%s: created", l.name)
	return nil
}

// Exit moves the scene back to inactive.
func (l *Lifecycle) Exit() error {
	if l.machine.Cannot(EventExit) {
		return fmt.Errorf("%s: %w", l.name, ErrNotActive)
	}
	if err := l.machine.Event(context.Background(), EventExit); err != nil {
		return fmt.Errorf("%s: exit: %w", l.name, err)
	}
	l.log.Printf("%s: exited", l.name)
	return nil
}

// Active reports whether the scene is between Create and Exit.
func (l *Lifecycle) Active() bool { return l.machine.Is(StateActive) }

// State returns the current lifecycle state name.
func (l *Lifecycle) State() string { return l.machine.Current() }
