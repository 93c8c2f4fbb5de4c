package robot

import (
	"math"

	"robotscene/hal"
	"robotscene/quarkgl"
)

// Per-tick rotation increments in radians. They are applied per frame, not
// per unit of time, so the spin speed follows the display refresh rate.
const (
	RobotSpin = -0.005
	StarSpin  = 0.01
)

// Scheduler runs a callback on the next display refresh.
type Scheduler interface {
	Schedule(func()) hal.FrameHandle
	Cancel(hal.FrameHandle)
}

// Loop rotates the robot and star roots once per tick and then draws.
//
// The angles are accumulated in float64 and written to the nodes reduced
// modulo 2π.
type Loop struct {
	sched Scheduler
	robot *quarkgl.Node
	stars *quarkgl.Node
	draw  func()

	robotY  float64
	starXYZ float64

	handle  hal.FrameHandle
	running bool
	stopped bool
	ticks   uint64
}

// NewLoop returns a stopped loop. draw may be nil.
func NewLoop(sched Scheduler, robot, stars *quarkgl.Node, draw func()) *Loop {
	return &Loop{sched: sched, robot: robot, stars: stars, draw: draw}
}

// Start schedules the first tick. It does nothing once the loop was stopped.
func (l *Loop) Start() {
	if l.running || l.stopped || l.sched == nil {
		return
	}
	l.running = true
	l.handle = l.sched.Schedule(l.Tick)
}

// Tick re-arms the next tick, advances both rotations and draws once.
func (l *Loop) Tick() {
	if l.stopped {
		return
	}
	if l.running {
		l.handle = l.sched.Schedule(l.Tick)
	}

	l.robotY += RobotSpin
	l.starXYZ += StarSpin
	if l.robot != nil {
		l.robot.Rotation.Y = wrapAngle(l.robotY)
	}
	if l.stars != nil {
		a := wrapAngle(l.starXYZ)
		l.stars.Rotation = quarkgl.Euler{X: a, Y: a, Z: a}
	}
	l.ticks++

	if l.draw != nil {
		l.draw()
	}
}

// Stop cancels the pending tick and prevents any further scheduling.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.running = false
	if l.handle != 0 && l.sched != nil {
		l.sched.Cancel(l.handle)
	}
	l.handle = 0
}

func (l *Loop) Ticks() uint64   { return l.ticks }
func (l *Loop) Running() bool   { return l.running }
func (l *Loop) Stopped() bool   { return l.stopped }
func (l *Loop) RobotY() float64 { return l.robotY }

// StarAngle is the shared X, Y and Z rotation of the star root.
func (l *Loop) StarAngle() float64 { return l.starXYZ }

func wrapAngle(a float64) float32 {
	return float32(math.Mod(a, 2*math.Pi))
}
