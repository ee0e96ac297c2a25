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
	updateErr    error
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) error {
	m.updateCalled = true
	m.deltaTime = deltaTime
	return m.updateErr
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	if sm.GetCurrentScene() != first {
		t.Error("SwitchTo did not set the current scene correctly")
	}

	sm.SwitchTo(second)
	if err := sm.Update(0.03); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if first.updateCalled {
		t.Error("Previous scene should not be updated after switching")
	}
	if !second.updateCalled {
		t.Error("New scene was not updated")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.03
	if err := sm.Update(deltaTime); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateError verifies that scene errors are passed through.
func TestSceneManagerUpdateError(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockScene{updateErr: ebiten.Termination})

	if err := sm.Update(0.03); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Update(0.03); err != nil {
		t.Errorf("Expected nil error without scene, got %v", err)
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)
}

// terminableScene is a MockScene that also owns session state.
type terminableScene struct {
	MockScene
	terminated int
}

func (s *terminableScene) Terminate() {
	s.terminated++
}

// TestSceneManagerTerminate verifies Terminate reaches scenes that implement Terminator
// and is a no-op otherwise.
func TestSceneManagerTerminate(t *testing.T) {
	sm := NewSceneManager()
	sm.Terminate()

	sm.SwitchTo(&MockScene{})
	sm.Terminate()

	scene := &terminableScene{}
	sm.SwitchTo(scene)
	sm.Terminate()
	if scene.terminated != 1 {
		t.Errorf("Terminate called %d times, want 1", scene.terminated)
	}
}
