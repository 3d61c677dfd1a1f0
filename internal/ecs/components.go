package ecs

import "fmt"

// PathMode defines what a body does after reaching its last waypoint
type PathMode int

const (
	PathLoop     PathMode = iota // jump back to the first waypoint
	PathPingPong                 // reverse direction
	PathOnce                     // stop
)

// String returns the string representation of the path mode
func (m PathMode) String() string {
	switch m {
	case PathLoop:
		return "loop"
	case PathPingPong:
		return "pingpong"
	case PathOnce:
		return "once"
	default:
		return "unknown"
	}
}

// ParsePathMode maps a stage file mode name to a PathMode.
// An empty name means PathLoop.
func ParsePathMode(name string) (PathMode, error) {
	switch name {
	case "", "loop":
		return PathLoop, nil
	case "pingpong":
		return PathPingPong, nil
	case "once":
		return PathOnce, nil
	default:
		return PathLoop, fmt.Errorf("unknown path mode %q", name)
	}
}

// PathPoint is a world-space waypoint for a body origin (pixels)
type PathPoint struct {
	X, Y int
}

// BodyPath drives a tile body along a polyline
type BodyPath struct {
	Points []PathPoint
	Speed  int // pixels per tick, per axis
	Mode   PathMode

	// State
	Next int  // index of the waypoint being approached
	Dir  int  // +1 or -1 (pingpong)
	Done bool // PathOnce reached its end
}

// NewBodyPath creates a path heading for its first waypoint
func NewBodyPath(points []PathPoint, speed int, mode PathMode) BodyPath {
	return BodyPath{
		Points: points,
		Speed:  speed,
		Mode:   mode,
		Dir:    1,
	}
}

// Target returns the waypoint being approached
func (p *BodyPath) Target() PathPoint {
	return p.Points[p.Next]
}

// advance selects the waypoint after the current one
func (p *BodyPath) advance() {
	n := len(p.Points)
	if n <= 1 {
		p.Done = p.Mode == PathOnce
		return
	}

	switch p.Mode {
	case PathLoop:
		p.Next = (p.Next + 1) % n
	case PathPingPong:
		if p.Dir == 0 {
			p.Dir = 1
		}
		if next := p.Next + p.Dir; next < 0 || next >= n {
			p.Dir = -p.Dir
		}
		p.Next += p.Dir
	case PathOnce:
		if p.Next == n-1 {
			p.Done = true
			return
		}
		p.Next++
	}
}
