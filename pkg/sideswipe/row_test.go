package sideswipe

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

type lifecycleRecorder struct {
	mu     sync.Mutex
	begins []SwipeSide
	ends   int
}

func (l *lifecycleRecorder) begin(side SwipeSide) {
	l.mu.Lock()
	l.begins = append(l.begins, side)
	l.mu.Unlock()
}

func (l *lifecycleRecorder) end() {
	l.mu.Lock()
	l.ends++
	l.mu.Unlock()
}

func (l *lifecycleRecorder) snapshot() ([]SwipeSide, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]SwipeSide(nil), l.begins...), l.ends
}

func newTestRow(t *testing.T, opts RowOptions) (*Row, *lifecycleRecorder) {
	t.Helper()
	rec := &lifecycleRecorder{}
	opts.Haptics = NoopHaptics{}
	opts.OnSwipeBegin = rec.begin
	opts.OnSwipeEnd = rec.end

	row, err := NewRow(opts)
	require.NoError(t, err)
	row.SetBounds(sdl.Rect{X: 0, Y: 0, W: 640, H: 100})
	return row, rec
}

func twoSidedOptions() RowOptions {
	return RowOptions{
		LeftActions:  []ActionDescriptor{DeleteAction(noopHandler), ArchiveAction(noopHandler)},
		RightActions: []ActionDescriptor{EditAction(noopHandler)},
	}
}

func pumpRow(t *testing.T, r *Row) {
	t.Helper()
	for i := 0; i < 600 && r.Update(); i++ {
	}
}

// drag runs a full gesture from fromX to toX at mid-row height.
func drag(r *Row, fromX, toX float32) {
	r.PointerDown(fromX, 50)
	mid := fromX + (toX-fromX)/2
	r.PointerMove(mid, 50)
	r.PointerMove(toX, 50)
	r.PointerUp(toX, 50)
}

func TestRowOpensPastThreshold(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	drag(row, 100, 420) // 320 raw, 160 after friction, past the 80 threshold
	pumpRow(t, row)

	begins, ends := rec.snapshot()
	assert.Equal(t, []SwipeSide{SideLeft}, begins)
	assert.Zero(t, ends)
	assert.Equal(t, SideLeft, row.OpenSide())
	assert.InDelta(t, 240, row.Offset(), 0.001) // two buttons at 120 each
}

func TestRowReleaseBelowThresholdStaysClosed(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	drag(row, 100, 200) // 50 after friction, below the threshold
	pumpRow(t, row)

	begins, ends := rec.snapshot()
	assert.Empty(t, begins)
	assert.Zero(t, ends)
	assert.Equal(t, SideNone, row.OpenSide())
	assert.Zero(t, row.Offset())
}

func TestRowEmptySideNeverOpens(t *testing.T) {
	row, rec := newTestRow(t, RowOptions{
		LeftActions: []ActionDescriptor{DeleteAction(noopHandler)},
	})

	drag(row, 500, 100) // leftwards, towards the empty right side
	pumpRow(t, row)

	begins, _ := rec.snapshot()
	assert.Empty(t, begins)
	assert.Equal(t, SideNone, row.OpenSide())
	assert.Zero(t, row.Offset())
}

func TestRowLifecyclePairing(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	drag(row, 100, 420)
	pumpRow(t, row)
	require.Equal(t, SideLeft, row.OpenSide())

	row.Close()
	pumpRow(t, row)

	begins, ends := rec.snapshot()
	assert.Equal(t, []SwipeSide{SideLeft}, begins)
	assert.Equal(t, 1, ends)
	assert.Equal(t, SideNone, row.OpenSide())

	// Closing an already-closed row fires nothing.
	row.Close()
	pumpRow(t, row)
	_, ends = rec.snapshot()
	assert.Equal(t, 1, ends)
}

func TestRowSnapToOppositeSide(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	drag(row, 100, 420)
	pumpRow(t, row)
	require.Equal(t, SideLeft, row.OpenSide())

	// Drag far enough leftwards to pull the offset from the open-left rest
	// position (240) through zero and past the threshold on the right.
	drag(row, 700, 20)
	pumpRow(t, row)

	begins, ends := rec.snapshot()
	assert.Equal(t, []SwipeSide{SideLeft, SideRight}, begins)
	assert.Equal(t, 1, ends) // the left cycle ended as the right one began
	assert.Equal(t, SideRight, row.OpenSide())
	assert.InDelta(t, -120, row.Offset(), 0.001)
}

func TestRowPointerCancelNeverOpens(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	row.PointerDown(100, 50)
	row.PointerMove(500, 50) // far past the threshold
	row.PointerCancel()
	pumpRow(t, row)

	begins, _ := rec.snapshot()
	assert.Empty(t, begins)
	assert.Equal(t, SideNone, row.OpenSide())
	assert.Zero(t, row.Offset())
}

func TestRowProgrammaticOpen(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	row.Open(SideRight)
	pumpRow(t, row)

	begins, _ := rec.snapshot()
	assert.Equal(t, []SwipeSide{SideRight}, begins)
	assert.Equal(t, SideRight, row.OpenSide())

	// Opening an empty side is ignored.
	rowLeftOnly, recLeftOnly := newTestRow(t, RowOptions{
		LeftActions: []ActionDescriptor{DeleteAction(noopHandler)},
	})
	rowLeftOnly.Open(SideRight)
	pumpRow(t, rowLeftOnly)

	begins, _ = recLeftOnly.snapshot()
	assert.Empty(t, begins)
	assert.Equal(t, SideNone, rowLeftOnly.OpenSide())
}

func TestRowTapActivatesRevealedAction(t *testing.T) {
	activated := make(chan struct{}, 1)
	opts := twoSidedOptions()
	opts.LeftActions[0] = DeleteAction(func() error {
		activated <- struct{}{}
		return nil
	})
	row, _ := newTestRow(t, opts)

	drag(row, 100, 420)
	pumpRow(t, row)
	require.Equal(t, SideLeft, row.OpenSide())

	// Tap inside the first left button (x 0..120).
	row.PointerDown(60, 50)
	row.PointerUp(60, 50)

	select {
	case <-activated:
	case <-time.After(time.Second):
		t.Fatal("tapped action never ran")
	}

	// The row stays open after a plain activation.
	pumpRow(t, row)
	assert.Equal(t, SideLeft, row.OpenSide())
}

func TestRowTapOnContentCloses(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	drag(row, 100, 420)
	pumpRow(t, row)
	require.Equal(t, SideLeft, row.OpenSide())

	// Tap to the right of the revealed buttons, on the row content.
	row.PointerDown(500, 50)
	row.PointerUp(500, 50)
	pumpRow(t, row)

	_, ends := rec.snapshot()
	assert.Equal(t, 1, ends)
	assert.Equal(t, SideNone, row.OpenSide())
}

func TestRowCloseOnActivate(t *testing.T) {
	done := make(chan struct{}, 1)
	opts := RowOptions{
		LeftActions: []ActionDescriptor{DeleteAction(func() error {
			done <- struct{}{}
			return nil
		})},
		CloseOnActivate: true,
	}
	row, _ := newTestRow(t, opts)

	drag(row, 100, 420)
	pumpRow(t, row)
	require.Equal(t, SideLeft, row.OpenSide())

	row.PointerDown(60, 50)
	row.PointerUp(60, 50)
	<-done

	require.Eventually(t, func() bool {
		row.Update()
		return row.OpenSide() == SideNone
	}, time.Second, time.Millisecond)
}

func TestRowCallbackMayCloseRow(t *testing.T) {
	var row *Row
	closed := false
	opts := twoSidedOptions()
	opts.Haptics = NoopHaptics{}
	opts.OnSwipeBegin = func(SwipeSide) {
		// Reject the swipe from inside the lifecycle callback.
		if !closed {
			closed = true
			row.Close()
		}
	}

	var err error
	row, err = NewRow(opts)
	require.NoError(t, err)
	row.SetBounds(sdl.Rect{X: 0, Y: 0, W: 640, H: 100})

	drag(row, 100, 420)
	pumpRow(t, row)

	assert.Equal(t, SideNone, row.OpenSide())
	assert.Zero(t, row.Offset())
}

func TestRowIgnoresPointerOutsideBounds(t *testing.T) {
	row, rec := newTestRow(t, twoSidedOptions())

	row.PointerDown(100, 300) // below the row
	row.PointerMove(420, 300)
	row.PointerUp(420, 300)
	pumpRow(t, row)

	begins, _ := rec.snapshot()
	assert.Empty(t, begins)
	assert.Zero(t, row.Offset())
}

func TestNewRowRejectsInvalidDescriptor(t *testing.T) {
	_, err := NewRow(RowOptions{
		LeftActions: []ActionDescriptor{
			DeleteAction(noopHandler),
			{Type: ActionCustom, Handler: noopHandler}, // missing label, icon, color
		},
	})

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "left action 1")
}

func TestRowHandleEventMouse(t *testing.T) {
	row, _ := newTestRow(t, twoSidedOptions())

	down := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 100, Y: 50}
	motion := &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 420, Y: 50}
	up := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 420, Y: 50}

	assert.True(t, row.HandleEvent(down))
	assert.True(t, row.HandleEvent(motion))
	assert.True(t, row.HandleEvent(up))
	pumpRow(t, row)

	assert.Equal(t, SideLeft, row.OpenSide())

	right := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 100, Y: 50}
	assert.False(t, row.HandleEvent(right))
}

func TestRowHandleEventTouchNeedsScreenSize(t *testing.T) {
	row, _ := newTestRow(t, twoSidedOptions())

	finger := &sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, X: 0.2, Y: 0.5}
	assert.False(t, row.HandleEvent(finger))

	row.SetScreenSize(640, 100)
	assert.True(t, row.HandleEvent(finger))
}
