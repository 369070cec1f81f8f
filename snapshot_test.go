package scrollkit

import (
	"encoding/json"
	"testing"
)

func TestSnapshotReflectsState(t *testing.T) {
	_, el, c, _ := bound(t)

	el.SetOffset(100, 400)

	s := c.Snapshot()
	if s.State != "running" {
		t.Errorf("state = %q, want running", s.State)
	}
	if s.ScrollTop != 400 || s.ScrollLeft != 100 {
		t.Errorf("offsets = %v,%v, want 100,400", s.ScrollLeft, s.ScrollTop)
	}
	if s.ScrollBottom != 400 || s.ScrollRight != 700 {
		t.Errorf("derived = right %v bottom %v, want 700/400", s.ScrollRight, s.ScrollBottom)
	}
	if !s.Scrolling {
		t.Error("snapshot must report an open episode")
	}
	if !s.ScrollEnabled {
		t.Error("snapshot must report scrolling enabled")
	}
}

func TestSnapshotStringIsJSON(t *testing.T) {
	_, _, c, _ := bound(t)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(c.Snapshot().String()), &decoded); err != nil {
		t.Fatalf("snapshot string is not valid JSON: %v", err)
	}
	for _, key := range []string{"state", "scrollTop", "scrollBottom", "axis", "scrollEnabled"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
}

func TestProgressHelpers(t *testing.T) {
	s := Snapshot{
		ContainerWidth:  200,
		ContainerHeight: 200,
		ScrollWidth:     1000,
		ScrollHeight:    1000,
		ScrollLeft:      400,
		ScrollTop:       800,
	}
	if got := s.VerticalProgress(); got != 1 {
		t.Errorf("VerticalProgress = %v, want 1", got)
	}
	if got := s.HorizontalProgress(); got != 0.5 {
		t.Errorf("HorizontalProgress = %v, want 0.5", got)
	}
}

func TestProgressWithNoRange(t *testing.T) {
	s := Snapshot{
		ContainerWidth:  500,
		ContainerHeight: 500,
		ScrollWidth:     300,
		ScrollHeight:    500,
	}
	if got := s.VerticalProgress(); got != 0 {
		t.Errorf("VerticalProgress = %v, want 0 with no range", got)
	}
	if got := s.HorizontalProgress(); got != 0 {
		t.Errorf("HorizontalProgress = %v, want 0 with no range", got)
	}
}
