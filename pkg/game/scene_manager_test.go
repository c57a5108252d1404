package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}

	// 没有场景时 Update/Draw 不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %f", mockScene.deltaTime)
	}

	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Restart(); err == nil {
		t.Error("Restart without factory should fail")
	}

	created := 0
	sm.SetSceneFactory(func() (Scene, error) {
		created++
		return &MockScene{}, nil
	})
	if err := sm.Restart(); err != nil {
		t.Fatalf("Restart() error: %v", err)
	}
	first := sm.GetCurrentScene()
	if err := sm.Restart(); err != nil {
		t.Fatalf("Restart() error: %v", err)
	}
	if created != 2 || sm.GetCurrentScene() == first {
		t.Errorf("expected a fresh scene on each restart, created=%d", created)
	}

	// 创建失败时保留当前场景
	current := sm.GetCurrentScene()
	sm.SetSceneFactory(func() (Scene, error) { return nil, errors.New("boom") })
	if err := sm.Restart(); err == nil {
		t.Error("expected factory error")
	}
	if sm.GetCurrentScene() != current {
		t.Error("failed restart should keep the current scene")
	}
}
