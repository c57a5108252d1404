package locomotion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/clickwalk/pkg/config"
	"github.com/decker502/clickwalk/pkg/sim"
	"github.com/decker502/clickwalk/pkg/utils"
)

func TestNewControllerInitialState(t *testing.T) {
	r := newTestRig(t)

	assert.False(t, r.path.updateRotation, "寻路代理的自动转向应被关闭")
	assert.Equal(t, mgl64.Vec3{1, 0, 1}, r.ctrl.Destination(), "目标点默认为出生位置")
	assert.Nil(t, r.ctrl.CurrentInteractable())
	assert.False(t, r.ctrl.IsLocked())
	assert.Equal(t, LockUnlocked, r.ctrl.LockPhase())
}

func TestNewControllerValidation(t *testing.T) {
	full := func() Deps {
		return Deps{
			Transform:  &fakeTransform{},
			Pathfinder: &fakePathfinder{},
			Animator:   &fakeAnimator{},
			Scheduler:  sim.NewScheduler(nil, nil),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Deps)
		wantErr error
	}{
		{"missing transform", func(d *Deps) { d.Transform = nil }, ErrNilTransform},
		{"missing pathfinder", func(d *Deps) { d.Pathfinder = nil }, ErrNilPathfinder},
		{"missing animator", func(d *Deps) { d.Animator = nil }, ErrNilAnimator},
		{"missing scheduler", func(d *Deps) { d.Scheduler = nil }, ErrNilScheduler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full()
			tt.mutate(&deps)
			_, err := NewController(config.DefaultLocomotionConfig(), deps)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nil navmesh allowed", func(t *testing.T) {
		_, err := NewController(config.DefaultLocomotionConfig(), full())
		assert.NoError(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.DefaultLocomotionConfig()
		cfg.StopDistanceProportion = 2
		_, err := NewController(cfg, full())
		assert.ErrorIs(t, err, config.ErrInvalidLocomotionConfig)
	})
}

func TestGroundClickUsesSampledPoint(t *testing.T) {
	r := newTestRig(t)
	r.nav.ok = true
	r.nav.result = mgl64.Vec3{3, 0, 4}
	r.path.stopped = true

	r.ctrl.OnGroundClick(HitResult{Point: mgl64.Vec3{3, 1.5, 4.2}})

	assert.Equal(t, 1, r.nav.calls)
	assert.Equal(t, 4.0, r.nav.radius, "使用配置的采样半径")
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, r.ctrl.Destination())
	assert.Equal(t, []mgl64.Vec3{{3, 0, 4}}, r.path.destinations)
	assert.False(t, r.path.stopped, "新指令应解除停止状态")
}

func TestGroundClickFallsBackToRawPoint(t *testing.T) {
	r := newTestRig(t)
	r.nav.ok = false

	raw := mgl64.Vec3{50, 0, 50}
	r.ctrl.RequestMoveToPoint(HitResult{Point: raw})

	assert.Equal(t, raw, r.ctrl.Destination())
	assert.Equal(t, []mgl64.Vec3{raw}, r.path.destinations)
}

func TestGroundClickWithoutNavMesh(t *testing.T) {
	path := &fakePathfinder{}
	ctrl, err := NewController(config.DefaultLocomotionConfig(), Deps{
		Transform:  &fakeTransform{rot: mgl64.QuatIdent()},
		Pathfinder: path,
		Animator:   &fakeAnimator{},
		Scheduler:  sim.NewScheduler(nil, nil),
	})
	require.NoError(t, err)

	ctrl.RequestMoveToPoint(HitResult{Point: mgl64.Vec3{2, 0, 2}})
	assert.Equal(t, mgl64.Vec3{2, 0, 2}, ctrl.Destination())
}

func TestInteractableClick(t *testing.T) {
	r := newTestRig(t)
	target := &fakeInteractable{anchor: Anchor{Position: mgl64.Vec3{5, 0, 5}, Rotation: utils.YawRotation(90)}}
	r.path.stopped = true

	r.ctrl.OnInteractableClick(target)

	assert.Same(t, target, r.ctrl.CurrentInteractable())
	assert.Equal(t, mgl64.Vec3{5, 0, 5}, r.ctrl.Destination())
	assert.Equal(t, []mgl64.Vec3{{5, 0, 5}}, r.path.destinations)
	assert.False(t, r.path.stopped)
	assert.Equal(t, 0, r.nav.calls, "交互锚点不经过导航网格采样")
}

func TestInteractableClickNilIgnored(t *testing.T) {
	r := newTestRig(t)
	r.ctrl.RequestMoveToInteractable(nil)
	assert.Empty(t, r.path.destinations)
}

func TestGroundClickClearsInteractable(t *testing.T) {
	r := newTestRig(t)
	r.ctrl.RequestMoveToInteractable(&fakeInteractable{})
	r.ctrl.RequestMoveToPoint(HitResult{Point: mgl64.Vec3{2, 0, 2}})
	assert.Nil(t, r.ctrl.CurrentInteractable())
}

func TestLastCommandWins(t *testing.T) {
	r := newTestRig(t)
	a := &fakeInteractable{anchor: Anchor{Position: mgl64.Vec3{5, 0, 5}}}
	b := &fakeInteractable{anchor: Anchor{Position: mgl64.Vec3{-5, 0, 5}}}

	r.ctrl.RequestMoveToInteractable(a)
	r.ctrl.RequestMoveToInteractable(b)
	assert.Same(t, b, r.ctrl.CurrentInteractable())
	assert.Equal(t, mgl64.Vec3{-5, 0, 5}, r.ctrl.Destination())

	r.ctrl.RequestMoveToPoint(HitResult{Point: mgl64.Vec3{7, 0, 7}})
	r.ctrl.RequestMoveToInteractable(a)
	assert.Same(t, a, r.ctrl.CurrentInteractable())
	assert.Equal(t, mgl64.Vec3{5, 0, 5}, r.ctrl.Destination())
	assert.Len(t, r.path.destinations, 4, "没有排队，每条指令立即覆盖")
}

func TestRepeatedCommandIsIdempotent(t *testing.T) {
	r := newTestRig(t)
	hit := HitResult{Point: mgl64.Vec3{2, 0, 3}}

	r.ctrl.RequestMoveToPoint(hit)
	first := r.ctrl.Destination()
	r.ctrl.RequestMoveToPoint(hit)

	assert.Equal(t, first, r.ctrl.Destination())
	assert.Nil(t, r.ctrl.CurrentInteractable())
	assert.False(t, r.path.stopped)
}

func TestCommandsIgnoredWhileLocked(t *testing.T) {
	r := newTestRig(t)
	target := &fakeInteractable{anchor: Anchor{Position: mgl64.Vec3{5, 0, 5}, Rotation: mgl64.QuatIdent()}}
	r.anim.tag = 0
	r.arriveAtInteractable(target)
	require.True(t, r.ctrl.IsLocked())

	dest := r.ctrl.Destination()
	calls := len(r.path.destinations)
	other := &fakeInteractable{anchor: Anchor{Position: mgl64.Vec3{-5, 0, -5}}}

	commands := []func(){
		func() { r.ctrl.RequestMoveToPoint(HitResult{Point: mgl64.Vec3{9, 0, 9}}) },
		func() { r.ctrl.OnGroundClick(HitResult{Point: mgl64.Vec3{-9, 0, 9}}) },
		func() { r.ctrl.RequestMoveToInteractable(other) },
		func() { r.ctrl.OnInteractableClick(target) },
	}
	for _, cmd := range commands {
		cmd()
		assert.Equal(t, dest, r.ctrl.Destination())
		assert.Nil(t, r.ctrl.CurrentInteractable())
	}
	assert.Len(t, r.path.destinations, calls, "锁定期间不应发出寻路请求")
	assert.Equal(t, 0, r.nav.calls)
	assert.True(t, r.path.stopped, "锁定期间不应解除停止状态")
}
