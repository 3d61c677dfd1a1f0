package entity

import "fmt"

// PhysicsClass controls gravity and pushability of an actor
type PhysicsClass int

const (
	ClassStatic PhysicsClass = iota // never moved by the resolver or by bodies
	ClassActor                      // falls, can be carried
	ClassFlyer                      // ignores gravity, can be carried
)

// String returns the string representation of the class
func (c PhysicsClass) String() string {
	switch c {
	case ClassStatic:
		return "static"
	case ClassActor:
		return "actor"
	case ClassFlyer:
		return "flyer"
	default:
		return "unknown"
	}
}

// ParsePhysicsClass maps a config name to a class
func ParsePhysicsClass(name string) (PhysicsClass, error) {
	switch name {
	case "static":
		return ClassStatic, nil
	case "actor", "":
		return ClassActor, nil
	case "flyer":
		return ClassFlyer, nil
	}
	return ClassStatic, fmt.Errorf("unknown physics class %q", name)
}

// HasGravity reports whether gravity applies
func (c PhysicsClass) HasGravity() bool { return c == ClassActor }

// Movable reports whether the motion resolver advances this class
func (c PhysicsClass) Movable() bool { return c != ClassStatic }

// Pushable reports whether a moving tile body may carry this class
func (c PhysicsClass) Pushable() bool { return c != ClassStatic }

// Actor is the per-entity simulation state paired with a Rect.
// PreciseX/PreciseY hold the sub-pixel position; the Rect holds the
// rounded integer position and the two are resynced on every contact.
type Actor struct {
	PreciseX, PreciseY float64
	VX, VY             float64 // pixels per tick

	Grounded bool
	Crushed  bool
	Class    PhysicsClass
}

// NewActor creates an actor whose accumulator matches r
func NewActor(r Rect, class PhysicsClass) Actor {
	return Actor{
		PreciseX: float64(r.X),
		PreciseY: float64(r.Y),
		Class:    class,
	}
}

// Sync snaps the accumulator to the rect position, dropping any fraction
func (a *Actor) Sync(r Rect) {
	a.PreciseX = float64(r.X)
	a.PreciseY = float64(r.Y)
}
