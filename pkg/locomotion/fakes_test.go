package locomotion

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/decker502/clickwalk/pkg/animator"
	"github.com/decker502/clickwalk/pkg/config"
	"github.com/decker502/clickwalk/pkg/sim"
)

type fakeTransform struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func (f *fakeTransform) Position() mgl64.Vec3 { return f.pos }
func (f *fakeTransform) SetPosition(p mgl64.Vec3) { f.pos = p }
func (f *fakeTransform) Rotation() mgl64.Quat { return f.rot }
func (f *fakeTransform) SetRotation(q mgl64.Quat) { f.rot = q }

type fakePathfinder struct {
	pending          bool
	desired          mgl64.Vec3
	remaining        float64
	stoppingDistance float64

	stopped        bool
	updateRotation bool
	velocity       mgl64.Vec3
	destinations   []mgl64.Vec3
}

func (f *fakePathfinder) SetDestination(p mgl64.Vec3) bool {
	f.destinations = append(f.destinations, p)
	return true
}
func (f *fakePathfinder) IsStopped() bool { return f.stopped }
func (f *fakePathfinder) SetStopped(stopped bool) { f.stopped = stopped }
func (f *fakePathfinder) SetVelocity(v mgl64.Vec3) { f.velocity = v }
func (f *fakePathfinder) SetUpdateRotation(enabled bool) { f.updateRotation = enabled }
func (f *fakePathfinder) PathPending() bool { return f.pending }
func (f *fakePathfinder) DesiredVelocity() mgl64.Vec3 { return f.desired }
func (f *fakePathfinder) RemainingDistance() float64 { return f.remaining }
func (f *fakePathfinder) StoppingDistance() float64 { return f.stoppingDistance }

type fakeNavMesh struct {
	result mgl64.Vec3
	ok     bool
	calls  int
	radius float64
}

func (f *fakeNavMesh) SamplePosition(p mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool) {
	f.calls++
	f.radius = maxDistance
	return f.result, f.ok
}

type floatWrite struct {
	param           animator.Hash
	value, damp, dt float64
}

type fakeAnimator struct {
	tag    animator.Hash
	delta  mgl64.Vec3
	writes []floatWrite
}

func (f *fakeAnimator) SetFloatDamped(param animator.Hash, value, dampTime, dt float64) {
	f.writes = append(f.writes, floatWrite{param: param, value: value, damp: dampTime, dt: dt})
}
func (f *fakeAnimator) CurrentStateTag(layer int) animator.Hash { return f.tag }
func (f *fakeAnimator) DeltaPosition() mgl64.Vec3 { return f.delta }

type fakeInteractable struct {
	anchor Anchor
	calls  int
}

func (f *fakeInteractable) InteractionLocation() Anchor { return f.anchor }
func (f *fakeInteractable) Interact() { f.calls++ }

type testRig struct {
	ctrl      *Controller
	transform *fakeTransform
	path      *fakePathfinder
	nav       *fakeNavMesh
	anim      *fakeAnimator
	clock     *sim.ManualClock
	scheduler *sim.Scheduler
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	clock := sim.NewManualClock(time.Unix(0, 0))
	r := &testRig{
		transform: &fakeTransform{pos: mgl64.Vec3{1, 0, 1}, rot: mgl64.QuatIdent()},
		path:      &fakePathfinder{stoppingDistance: 1, updateRotation: true},
		nav:       &fakeNavMesh{},
		anim:      &fakeAnimator{tag: animator.LocomotionTag},
		clock:     clock,
		scheduler: sim.NewScheduler(clock, nil),
	}
	ctrl, err := NewController(config.DefaultLocomotionConfig(), Deps{
		Transform:  r.transform,
		Pathfinder: r.path,
		NavMesh:    r.nav,
		Animator:   r.anim,
		Scheduler:  r.scheduler,
	})
	require.NoError(t, err)
	r.ctrl = ctrl
	return r
}

// arriveAtInteractable 走到物体并触发交互锁
func (r *testRig) arriveAtInteractable(target *fakeInteractable) {
	r.ctrl.RequestMoveToInteractable(target)
	r.path.remaining = 0.05
	r.ctrl.Tick(1.0 / 60)
}

func (r *testRig) lastWrite() floatWrite {
	return r.anim.writes[len(r.anim.writes)-1]
}
