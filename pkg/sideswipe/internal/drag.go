package internal

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
)

// DragSide identifies which edge of the row a drag reveals.
type DragSide int

const (
	DragSideNone DragSide = iota
	DragSideLeft
	DragSideRight
)

func (s DragSide) String() string {
	switch s {
	case DragSideLeft:
		return "left"
	case DragSideRight:
		return "right"
	default:
		return "none"
	}
}

// DragConfig holds the gesture tuning for one row. Extents are the total
// widths of the action groups; an extent of zero disables that side entirely.
type DragConfig struct {
	Threshold      float32
	Friction       float32
	LeftExtent     float32
	RightExtent    float32
	OvershootLeft  bool
	OvershootRight bool
}

// DragCallbacks receive the tracker's discrete signals. OnWillOpen fires once
// per closed-to-open cycle when a release commits past the threshold.
// OnOpened and OnClosed fire when the settle spring comes to rest. All
// callbacks are invoked synchronously from Begin/Move/Release/Cancel/Update.
type DragCallbacks struct {
	OnProgress func(side DragSide, progress float32)
	OnWillOpen func(side DragSide)
	OnOpened   func(side DragSide)
	OnClosed   func()
}

// DragTracker turns continuous horizontal pointer movement into the discrete
// will-open / opened / closed signals a swipe row reacts to. Positive offsets
// reveal the left action group, negative offsets the right one.
type DragTracker struct {
	cfg DragConfig
	cb  DragCallbacks

	spring   harmonica.Spring
	offset   float64
	velocity float64
	target   float64

	dragging   bool
	settling   bool
	startX     float64
	baseOffset float64

	restSide   DragSide // side the row currently rests open at
	announced  DragSide // side whose opening was announced via OnWillOpen
	settleSide DragSide // rest side once the active settle finishes
}

func NewDragTracker(cfg DragConfig, cb DragCallbacks) *DragTracker {
	if cfg.Threshold <= 0 {
		cfg.Threshold = constants.DefaultThreshold
	}
	if cfg.Friction < 1 {
		cfg.Friction = 1
	}
	return &DragTracker{
		cfg:    cfg,
		cb:     cb,
		spring: harmonica.NewSpring(harmonica.FPS(60), constants.SpringFrequency, constants.SpringDamping),
	}
}

// Begin starts tracking a drag at pointer position x. Grabbing the row
// mid-settle interrupts the animation and continues from the current offset.
func (t *DragTracker) Begin(x float32) {
	t.settling = false
	t.dragging = true
	t.startX = float64(x)
	t.baseOffset = t.offset
}

// Move updates the offset from the current pointer position, applying
// friction and the overshoot policy, and emits a progress signal.
func (t *DragTracker) Move(x float32) {
	if !t.dragging {
		return
	}
	delta := (float64(x) - t.startX) / float64(t.cfg.Friction)
	t.offset = t.clamp(t.baseOffset + delta)
	t.emitProgress()
}

// Release ends the drag and decides commit or cancel: a release at or past
// the threshold settles the row open on the dragged side, anything else
// settles it closed.
func (t *DragTracker) Release() {
	if !t.dragging {
		return
	}
	t.dragging = false

	side, open := t.commitDecision()
	if !open {
		t.beginSettle(0, DragSideNone)
		return
	}
	if t.announced != side {
		t.announced = side
		if t.cb.OnWillOpen != nil {
			t.cb.OnWillOpen(side)
		}
	}
	t.beginSettle(t.signedExtent(side), side)
}

// Cancel aborts an interrupted gesture. It is equivalent to a release below
// the threshold: the row settles closed and no open is announced.
func (t *DragTracker) Cancel() {
	t.dragging = false
	t.beginSettle(0, DragSideNone)
}

// SettleOpen animates the row open on the given side without a gesture.
// A side with no extent is ignored.
func (t *DragTracker) SettleOpen(side DragSide) {
	if side == DragSideNone || t.extent(side) <= 0 || t.dragging {
		return
	}
	if t.announced != side {
		t.announced = side
		if t.cb.OnWillOpen != nil {
			t.cb.OnWillOpen(side)
		}
	}
	t.beginSettle(t.signedExtent(side), side)
}

// SettleClosed animates the row back to its closed rest position.
func (t *DragTracker) SettleClosed() {
	if t.dragging {
		return
	}
	t.beginSettle(0, DragSideNone)
}

// Update advances the settle spring by one fixed 60fps step. It returns true
// while the animation is still in flight. Rest-state callbacks (OnOpened,
// OnClosed) fire from here once the spring converges.
func (t *DragTracker) Update() bool {
	if t.dragging || !t.settling {
		return false
	}

	t.offset, t.velocity = t.spring.Update(t.offset, t.velocity, t.target)
	t.emitProgress()

	if math.Abs(t.offset-t.target) < 0.5 && math.Abs(t.velocity) < 0.5 {
		t.offset = t.target
		t.velocity = 0
		t.settling = false
		t.finishSettle()
		return false
	}
	return true
}

// Offset returns the current reveal offset in points. Positive values reveal
// the left action group, negative values the right one.
func (t *DragTracker) Offset() float32 {
	return float32(t.offset)
}

// RestSide returns the side the row currently rests open at, or DragSideNone.
func (t *DragTracker) RestSide() DragSide {
	return t.restSide
}

// Dragging reports whether a pointer drag is in progress.
func (t *DragTracker) Dragging() bool {
	return t.dragging
}

// Settling reports whether the settle spring is in flight.
func (t *DragTracker) Settling() bool {
	return t.settling
}

func (t *DragTracker) beginSettle(target float64, side DragSide) {
	t.target = target
	t.settleSide = side
	if t.offset == target {
		t.settling = false
		t.finishSettle()
		return
	}
	t.settling = true
}

func (t *DragTracker) finishSettle() {
	if t.settleSide == DragSideNone {
		t.restSide = DragSideNone
		t.announced = DragSideNone
		if t.cb.OnClosed != nil {
			t.cb.OnClosed()
		}
		return
	}
	t.restSide = t.settleSide
	if t.cb.OnOpened != nil {
		t.cb.OnOpened(t.settleSide)
	}
}

func (t *DragTracker) commitDecision() (DragSide, bool) {
	switch {
	case t.offset > 0:
		return DragSideLeft, t.cfg.LeftExtent > 0 && t.offset >= float64(t.cfg.Threshold)
	case t.offset < 0:
		return DragSideRight, t.cfg.RightExtent > 0 && -t.offset >= float64(t.cfg.Threshold)
	default:
		return DragSideNone, false
	}
}

func (t *DragTracker) clamp(raw float64) float64 {
	switch {
	case raw > 0:
		if t.cfg.LeftExtent <= 0 {
			return 0
		}
		if !t.cfg.OvershootLeft && raw > float64(t.cfg.LeftExtent) {
			return float64(t.cfg.LeftExtent)
		}
	case raw < 0:
		if t.cfg.RightExtent <= 0 {
			return 0
		}
		if !t.cfg.OvershootRight && -raw > float64(t.cfg.RightExtent) {
			return -float64(t.cfg.RightExtent)
		}
	}
	return raw
}

func (t *DragTracker) extent(side DragSide) float32 {
	switch side {
	case DragSideLeft:
		return t.cfg.LeftExtent
	case DragSideRight:
		return t.cfg.RightExtent
	default:
		return 0
	}
}

func (t *DragTracker) signedExtent(side DragSide) float64 {
	if side == DragSideRight {
		return -float64(t.cfg.RightExtent)
	}
	return float64(t.cfg.LeftExtent)
}

func (t *DragTracker) emitProgress() {
	if t.cb.OnProgress == nil {
		return
	}
	switch {
	case t.offset > 0:
		t.cb.OnProgress(DragSideLeft, float32(t.offset)/t.cfg.LeftExtent)
	case t.offset < 0:
		t.cb.OnProgress(DragSideRight, float32(-t.offset)/t.cfg.RightExtent)
	default:
		t.cb.OnProgress(DragSideNone, 0)
	}
}
