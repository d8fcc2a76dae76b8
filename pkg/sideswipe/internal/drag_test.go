package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dragRecorder struct {
	willOpen []DragSide
	opened   []DragSide
	closed   int
}

func newTestTracker(cfg DragConfig) (*DragTracker, *dragRecorder) {
	rec := &dragRecorder{}
	tracker := NewDragTracker(cfg, DragCallbacks{
		OnWillOpen: func(side DragSide) { rec.willOpen = append(rec.willOpen, side) },
		OnOpened:   func(side DragSide) { rec.opened = append(rec.opened, side) },
		OnClosed:   func() { rec.closed++ },
	})
	return tracker, rec
}

func bothSidesConfig() DragConfig {
	return DragConfig{
		Threshold:   80,
		Friction:    2,
		LeftExtent:  120,
		RightExtent: 240,
	}
}

func settle(t *testing.T, tracker *DragTracker) {
	t.Helper()
	for i := 0; i < 600 && tracker.Settling(); i++ {
		tracker.Update()
	}
	require.False(t, tracker.Settling(), "spring did not converge within 600 frames")
}

func TestMoveAppliesFriction(t *testing.T) {
	tracker, _ := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(100)

	assert.InDelta(t, 50, tracker.Offset(), 0.001)
}

func TestMoveTowardsEmptySideStaysClosed(t *testing.T) {
	cfg := bothSidesConfig()
	cfg.RightExtent = 0
	tracker, rec := newTestTracker(cfg)

	tracker.Begin(0)
	tracker.Move(-400)
	assert.Zero(t, tracker.Offset())

	tracker.Release()
	settle(t, tracker)

	assert.Empty(t, rec.willOpen)
	assert.Equal(t, DragSideNone, tracker.RestSide())
}

func TestMoveClampsAtExtent(t *testing.T) {
	tracker, _ := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(400)

	assert.InDelta(t, 120, tracker.Offset(), 0.001)
}

func TestMoveOvershootsWhenAllowed(t *testing.T) {
	cfg := bothSidesConfig()
	cfg.OvershootLeft = true
	tracker, _ := newTestTracker(cfg)

	tracker.Begin(0)
	tracker.Move(400)

	assert.InDelta(t, 200, tracker.Offset(), 0.001)
}

func TestReleaseBelowThresholdSettlesClosed(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(100) // offset 50, below the threshold of 80
	tracker.Release()
	settle(t, tracker)

	assert.Empty(t, rec.willOpen)
	assert.Equal(t, 1, rec.closed)
	assert.Equal(t, DragSideNone, tracker.RestSide())
	assert.Zero(t, tracker.Offset())
}

func TestReleaseAtThresholdOpens(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(160) // offset 80, exactly at the threshold
	tracker.Release()

	require.Equal(t, []DragSide{DragSideLeft}, rec.willOpen)

	settle(t, tracker)

	assert.Equal(t, []DragSide{DragSideLeft}, rec.opened)
	assert.Equal(t, DragSideLeft, tracker.RestSide())
	assert.InDelta(t, 120, tracker.Offset(), 0.001)
}

func TestReleaseTowardsRightOpensRight(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.Begin(300)
	tracker.Move(100) // offset -100
	tracker.Release()
	settle(t, tracker)

	assert.Equal(t, []DragSide{DragSideRight}, rec.willOpen)
	assert.Equal(t, DragSideRight, tracker.RestSide())
	assert.InDelta(t, -240, tracker.Offset(), 0.001)
}

func TestWillOpenFiresOncePerCycle(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(200)
	tracker.Release()
	settle(t, tracker)
	require.Len(t, rec.willOpen, 1)

	// Grabbing and re-releasing the already-open row must not re-announce.
	tracker.Begin(500)
	tracker.Move(501)
	tracker.Release()
	settle(t, tracker)
	assert.Len(t, rec.willOpen, 1)

	// A full close-then-reopen cycle announces again.
	tracker.SettleClosed()
	settle(t, tracker)
	require.Equal(t, 1, rec.closed)

	tracker.Begin(0)
	tracker.Move(200)
	tracker.Release()
	settle(t, tracker)
	assert.Len(t, rec.willOpen, 2)
}

func TestCancelNeverOpens(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(400) // far past the threshold
	tracker.Cancel()
	settle(t, tracker)

	assert.Empty(t, rec.willOpen)
	assert.Empty(t, rec.opened)
	assert.Equal(t, DragSideNone, tracker.RestSide())
	assert.Zero(t, tracker.Offset())
}

func TestBeginInterruptsSettle(t *testing.T) {
	tracker, _ := newTestTracker(bothSidesConfig())

	tracker.Begin(0)
	tracker.Move(200)
	tracker.Release()
	tracker.Update() // one frame into the settle
	require.True(t, tracker.Settling())

	tracker.Begin(60)
	assert.True(t, tracker.Dragging())
	assert.False(t, tracker.Settling())
}

func TestSettleOpenIgnoresEmptySide(t *testing.T) {
	cfg := bothSidesConfig()
	cfg.RightExtent = 0
	tracker, rec := newTestTracker(cfg)

	tracker.SettleOpen(DragSideRight)
	settle(t, tracker)

	assert.Empty(t, rec.willOpen)
	assert.Equal(t, DragSideNone, tracker.RestSide())
}

func TestSettleOpenAnnouncesAndOpens(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.SettleOpen(DragSideLeft)
	settle(t, tracker)

	assert.Equal(t, []DragSide{DragSideLeft}, rec.willOpen)
	assert.Equal(t, []DragSide{DragSideLeft}, rec.opened)
	assert.InDelta(t, 120, tracker.Offset(), 0.001)
}

func TestSettleClosedWhileClosedIsImmediate(t *testing.T) {
	tracker, rec := newTestTracker(bothSidesConfig())

	tracker.SettleClosed()

	assert.False(t, tracker.Settling())
	assert.Equal(t, 1, rec.closed)
}

func TestProgressReportsDraggedSide(t *testing.T) {
	var lastSide DragSide
	var lastProgress float32
	tracker := NewDragTracker(bothSidesConfig(), DragCallbacks{
		OnProgress: func(side DragSide, progress float32) {
			lastSide = side
			lastProgress = progress
		},
	})

	tracker.Begin(0)
	tracker.Move(120) // offset 60 of 120

	assert.Equal(t, DragSideLeft, lastSide)
	assert.InDelta(t, 0.5, lastProgress, 0.001)
}
