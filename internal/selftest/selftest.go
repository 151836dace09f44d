// Package selftest runs a fixed set of vector and quaternion scenarios and
// reports whether the math core produces the expected numbers. Hosts run
// it on startup to catch a broken build before scripts rely on it.
package selftest

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/forkscript/pkg/math"
)

// Check is the outcome of one scenario.
type Check struct {
	Name string
	Got  string
	Want string
	Pass bool
}

// Report collects the checks of one run.
type Report struct {
	Checks []Check
}

// Failed returns the checks that did not pass.
func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Pass {
			failed = append(failed, c)
		}
	}
	return failed
}

// Err returns nil if every check passed.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, c := range failed {
		names[i] = c.Name
	}
	return fmt.Errorf("%d of %d checks failed: %s", len(failed), len(r.Checks), strings.Join(names, ", "))
}

// Log writes one entry per check. Passing checks go to passLevel,
// failures always go to error.
func (r Report) Log(log *zap.Logger, passLevel zapcore.Level) {
	for _, c := range r.Checks {
		lvl := passLevel
		msg := "check passed"
		if !c.Pass {
			lvl = zapcore.ErrorLevel
			msg = "check failed"
		}
		if ce := log.Check(lvl, msg); ce != nil {
			ce.Write(
				zap.String("check", c.Name),
				zap.String("got", c.Got),
				zap.String("want", c.Want),
			)
		}
	}
	log.Info("self-check finished",
		zap.Int("checks", len(r.Checks)),
		zap.Int("failed", len(r.Failed())),
	)
}

// Run executes every scenario with the given per-component tolerance.
func Run(tolerance float32) Report {
	s := &suite{tol: tolerance}

	a := math.Vec3{X: 1, Y: 2, Z: -0.5}
	b := math.Vec3{X: 3, Y: 0.5, Z: 2}
	sum := a.Add(b)
	s.vec3("vec3 add", sum, math.Vec3{X: 4, Y: 2.5, Z: 1.5})

	n := sum
	n.Normalize()
	s.scalar("vec3 normalize length", n.Length(), 1)

	s.vec3("vec3 cross", math.Cross(math.Vec3{Z: 1}, math.Vec3{X: 1}), math.Vec3{Y: 1})
	s.scalar("vec3 dot", math.DotVec3(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 4, Y: 5, Z: 6}), 32)

	c := math.Cross(a, b)
	s.scalar("cross orthogonal to a", math.DotVec3(c, a), 0)
	s.scalar("cross orthogonal to b", math.DotVec3(c, b), 0)

	s.vec3("vec3 sub/add round trip", a.Sub(b).Add(b), a)
	s.scalar("dot equals length squared", math.DotVec3(a, a), a.LengthSq())

	r := a
	r.Resize(3)
	s.scalar("vec3 resize", r.Length(), 3)

	q := math.QuatIdentity()
	q.EulerRotation(0, 0, 0)
	s.quat("euler zero is identity", q, math.QuatIdentity())

	q1 := math.QuatFromEuler(0.3, -1.2, 0.7)
	q2 := math.QuatFromEuler(2.1, 0.4, -0.9)
	q3 := math.QuatFromEuler(-0.6, 1.5, 0.05)
	s.quat("quat mul associative", q1.Mul(q2).Mul(q3), q1.Mul(q2.Mul(q3)))

	return Report{Checks: s.checks}
}

type suite struct {
	tol    float32
	checks []Check
}

func (s *suite) add(name string, got, want any, pass bool) {
	s.checks = append(s.checks, Check{
		Name: name,
		Got:  fmt.Sprintf("%v", got),
		Want: fmt.Sprintf("%v", want),
		Pass: pass,
	})
}

func (s *suite) scalar(name string, got, want float32) {
	s.add(name, got, want, math.Equal(got, want, s.tol))
}

func (s *suite) vec3(name string, got, want math.Vec3) {
	s.add(name, got, want, got.ApproxEqual(want, s.tol))
}

func (s *suite) quat(name string, got, want math.Quat) {
	s.add(name, got, want, got.ApproxEqual(want, s.tol))
}
