// Package physics integrates the continuous-time dynamics of a simulated
// DC motor.
//
// State is kept in degrees and degrees per second so values cross the
// firmware boundary without unit conversion; readings the firmware should
// see exactly (a motor resting at 180.0°) stay exact.
package physics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// maxStep bounds the RK4 substep length so a 5 ms lookahead stays accurate
// without ever making a Simulate call expensive.
const maxStep = 1e-3

// Params describe a permanent-magnet DC motor plus gear train driven by a
// signed duty cycle.
type Params struct {
	// Inertia of the rotor and gear train, kg·m².
	Inertia float64
	// Damping is the viscous friction coefficient, N·m·s/rad.
	Damping float64
	// Torque produced per unit of duty cycle, N·m.
	Torque float64
}

// Validate ensures the parameters describe a physically meaningful motor.
func (p Params) Validate() error {
	if p.Inertia <= 0 {
		return errors.New("motor inertia must be positive")
	}
	if p.Damping <= 0 {
		return errors.New("motor damping must be positive")
	}
	if p.Torque <= 0 {
		return errors.New("motor torque constant must be positive")
	}
	return nil
}

// A SimulatedMotor holds the integrated state of one motor. It is exclusively
// owned by its port; the motor driver writes it and the counter reads it.
type SimulatedMotor struct {
	params Params
	now    float64       // seconds
	state  *mat.VecDense // angle deg, speed deg/s
}

// NewSimulatedMotor returns a motor seeded at time t0 with the given angle
// and speed, in degrees and degrees per second.
func NewSimulatedMotor(params Params, t0, angleDeg, speedDeg float64) (*SimulatedMotor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	state := mat.NewVecDense(2, []float64{angleDeg, speedDeg})
	return &SimulatedMotor{params: params, now: t0, state: state}, nil
}

// Simulate advances the integrated state to endTime (seconds) holding u as a
// constant duty-cycle input over the whole interval. Calls with endTime at or
// before the current model time leave the state untouched, which makes
// repeated identical actuation calls idempotent.
func (m *SimulatedMotor) Simulate(endTime, u float64) {
	if endTime <= m.now {
		return
	}
	span := endTime - m.now
	steps := int(math.Ceil(span / maxStep))
	h := span / float64(steps)
	for i := 0; i < steps; i++ {
		m.state = m.step(u, h)
	}
	m.now = endTime
}

// LatestOutput returns the angle and speed as of the most recent Simulate
// call, in degrees and degrees per second.
func (m *SimulatedMotor) LatestOutput() (angleDeg, speedDeg float64) {
	return m.state.AtVec(0), m.state.AtVec(1)
}

// Time returns the model time of the latest output, in seconds.
func (m *SimulatedMotor) Time() float64 {
	return m.now
}

// derive evaluates the motor ODE: the angle integrates the speed, and the
// speed follows applied torque against viscous friction. Torque and damping
// are SI; the torque term carries the single rad→deg factor.
func (m *SimulatedMotor) derive(x *mat.VecDense, u float64) *mat.VecDense {
	omega := x.AtVec(1)
	alpha := (m.params.Torque*u*(180/math.Pi) - m.params.Damping*omega) / m.params.Inertia
	return mat.NewVecDense(2, []float64{omega, alpha})
}

// step performs one classical RK4 step of length h under constant input u.
func (m *SimulatedMotor) step(u, h float64) *mat.VecDense {
	x := m.state
	xt := mat.NewVecDense(2, nil)

	k1 := m.derive(x, u)
	xt.AddScaledVec(x, h/2, k1)
	k2 := m.derive(xt, u)
	xt.AddScaledVec(x, h/2, k2)
	k3 := m.derive(xt, u)
	xt.AddScaledVec(x, h, k3)
	k4 := m.derive(xt, u)

	sum := mat.NewVecDense(2, nil)
	sum.AddScaledVec(k1, 2, k2)
	sum.AddScaledVec(sum, 2, k3)
	sum.AddVec(sum, k4)

	next := mat.NewVecDense(2, nil)
	next.AddScaledVec(x, h/6, sum)
	return next
}
