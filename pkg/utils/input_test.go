package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakePointerSource 可编程的输入源
type fakePointerSource struct {
	justPressed  []ebiten.TouchID
	touches      map[ebiten.TouchID][2]int
	mousePressed bool
	cursorX      int
	cursorY      int
}

func (f *fakePointerSource) JustPressedTouchIDs() []ebiten.TouchID {
	ids := f.justPressed
	f.justPressed = nil
	return ids
}

func (f *fakePointerSource) TouchIDs() []ebiten.TouchID {
	ids := make([]ebiten.TouchID, 0, len(f.touches))
	for id := range f.touches {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakePointerSource) TouchPosition(id ebiten.TouchID) (int, int) {
	p := f.touches[id]
	return p[0], p[1]
}

func (f *fakePointerSource) MousePressed() bool         { return f.mousePressed }
func (f *fakePointerSource) CursorPosition() (int, int) { return f.cursorX, f.cursorY }

func newTestTracker(src *fakePointerSource) *PointerTracker {
	return &PointerTracker{source: src, touchID: -1}
}

// TestPointerTrackerMouseLifecycle 鼠标按下 -> 按住 -> 释放 -> 空闲
func TestPointerTrackerMouseLifecycle(t *testing.T) {
	src := &fakePointerSource{touches: map[ebiten.TouchID][2]int{}}
	pt := newTestTracker(src)

	if s := pt.Poll(); s.Phase != PointerIdle {
		t.Fatalf("初始应为 PointerIdle, got %v", s.Phase)
	}

	src.mousePressed = true
	src.cursorX, src.cursorY = 10, 20
	if s := pt.Poll(); s.Phase != PointerJustPressed || s.X != 10 || s.Y != 20 {
		t.Fatalf("期望 JustPressed(10,20), got %+v", s)
	}

	src.cursorX = 40
	if s := pt.Poll(); s.Phase != PointerHeld || s.X != 40 {
		t.Fatalf("期望 Held(40), got %+v", s)
	}

	src.mousePressed = false
	if s := pt.Poll(); s.Phase != PointerJustReleased || s.Pressed() {
		t.Fatalf("期望 JustReleased, got %+v", s)
	}

	if s := pt.Poll(); s.Phase != PointerIdle {
		t.Fatalf("释放后应回到 Idle, got %+v", s)
	}
}

// TestPointerTrackerTouchReleaseKeepsLastPosition 触摸释放返回最后记录的位置
func TestPointerTrackerTouchReleaseKeepsLastPosition(t *testing.T) {
	src := &fakePointerSource{touches: map[ebiten.TouchID][2]int{}}
	pt := newTestTracker(src)

	src.justPressed = []ebiten.TouchID{7}
	src.touches[7] = [2]int{100, 5}
	if s := pt.Poll(); s.Phase != PointerJustPressed || !s.IsTouch || s.X != 100 {
		t.Fatalf("期望触摸 JustPressed(100), got %+v", s)
	}

	src.touches[7] = [2]int{130, 5}
	if s := pt.Poll(); s.Phase != PointerHeld || s.X != 130 {
		t.Fatalf("期望触摸 Held(130), got %+v", s)
	}

	delete(src.touches, 7)
	s := pt.Poll()
	if s.Phase != PointerJustReleased || s.X != 130 || s.Y != 5 {
		t.Fatalf("期望在 (130,5) 释放, got %+v", s)
	}
}

// TestPointerTrackerIgnoresSecondTouch 锁定的触摸未释放前忽略鼠标
func TestPointerTrackerIgnoresSecondTouch(t *testing.T) {
	src := &fakePointerSource{touches: map[ebiten.TouchID][2]int{}}
	pt := newTestTracker(src)

	src.justPressed = []ebiten.TouchID{1}
	src.touches[1] = [2]int{5, 5}
	pt.Poll()

	src.mousePressed = true
	src.cursorX = 300
	s := pt.Poll()
	if s.X != 5 || !s.IsTouch {
		t.Fatalf("应继续跟踪触摸 1, got %+v", s)
	}
}
