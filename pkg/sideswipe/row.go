package sideswipe

import (
	"fmt"
	"math"
	"sync"

	"github.com/felixgeelhaar/statekit"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// SwipeSide identifies which edge of a row is revealed or being revealed.
type SwipeSide int

const (
	SideNone SwipeSide = iota
	SideLeft
	SideRight
)

func (s SwipeSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// RowOptions configures a swipeable row. The zero value of each field means
// "use the default"; a row's configuration is fixed once built, so treat a
// config change as a new row rather than a mutation of gesture state.
type RowOptions struct {
	LeftActions  []ActionDescriptor // revealed by dragging right; empty disables the side
	RightActions []ActionDescriptor // revealed by dragging left; empty disables the side

	Threshold      float32 // drag distance (points, after friction) a release must reach to open; default 80
	Friction       float32 // drag resistance divisor; default 2
	AllowOvershoot bool    // permit dragging past the action group's extent
	ActionWidth    int32   // width of each action button; default 120

	Haptics         Haptics // feedback engine; nil uses the engine from Init (noop if unavailable)
	CloseOnActivate bool    // settle the row closed once a tapped action's handler returns

	OnSwipeBegin func(side SwipeSide) // fired once per closed -> opening transition
	OnSwipeEnd   func()               // fired once per return to closed after a begin
	OnError      func(err error)      // handler failures; nil routes them to the logger
}

// Row state machine vocabulary.
const (
	stateClosed       statekit.StateID = "closed"
	stateOpeningLeft  statekit.StateID = "opening_left"
	stateOpenLeft     statekit.StateID = "open_left"
	stateOpeningRight statekit.StateID = "opening_right"
	stateOpenRight    statekit.StateID = "open_right"

	eventWillOpenLeft  statekit.EventType = "WILL_OPEN_LEFT"
	eventWillOpenRight statekit.EventType = "WILL_OPEN_RIGHT"
	eventOpenedLeft    statekit.EventType = "OPENED_LEFT"
	eventOpenedRight   statekit.EventType = "OPENED_RIGHT"
	eventClosed        statekit.EventType = "CLOSED"
)

type rowContext struct{}

type rowSettings struct {
	threshold       float32
	friction        float32
	allowOvershoot  bool
	actionWidth     int32
	closeOnActivate bool

	onSwipeBegin func(side SwipeSide)
	onSwipeEnd   func()
	onError      func(error)
}

func defaultRowSettings() rowSettings {
	return rowSettings{
		threshold:   constants.DefaultThreshold,
		friction:    constants.DefaultFriction,
		actionWidth: constants.DefaultActionWidth,
	}
}

// Row is a swipeable list row. It owns the open/closed state machine, the
// drag tracker, and the action buttons for both sides. All pointer input is
// funneled through PointerDown/Move/Up (or HandleEvent); the host render
// loop calls Update each frame to drive the settle animation and Render to
// draw the revealed actions.
//
// A Row's methods are safe to call from the host loop and the touch reader
// goroutine; lifecycle callbacks run outside the row's lock and must treat
// the row as live (calling Close from OnSwipeBegin is allowed).
type Row struct {
	settings rowSettings

	left  []*ActionButton
	right []*ActionButton

	tracker *internal.DragTracker
	machine *statekit.Interpreter[rowContext]

	openSide *atomic.Int32

	mu     sync.Mutex
	notify []func()

	pointerActive bool
	pointerMoved  bool
	pressX        float32
	pressY        float32

	bounds           sdl.Rect
	screenW, screenH int32

	cache *internal.TextureCache
}

// NewRow validates every descriptor and builds the row. Any invalid
// descriptor (custom without full overrides, missing handler) makes the
// whole row fail construction; nothing renders with substituted visuals.
func NewRow(opts RowOptions) (*Row, error) {
	settings := defaultRowSettings()
	if opts.Threshold > 0 {
		settings.threshold = opts.Threshold
	}
	if opts.Friction > 0 {
		settings.friction = opts.Friction
	}
	if opts.ActionWidth > 0 {
		settings.actionWidth = opts.ActionWidth
	}
	settings.allowOvershoot = opts.AllowOvershoot
	settings.closeOnActivate = opts.CloseOnActivate
	settings.onSwipeBegin = opts.OnSwipeBegin
	settings.onSwipeEnd = opts.OnSwipeEnd
	settings.onError = opts.OnError

	haptics := opts.Haptics
	if haptics == nil {
		haptics = defaultHapticsEngine()
	}

	r := &Row{
		settings: settings,
		openSide: atomic.NewInt32(int32(SideNone)),
		cache:    internal.NewTextureCache(),
	}

	var err error
	if r.left, err = r.buildButtons(opts.LeftActions, haptics, "left"); err != nil {
		return nil, err
	}
	if r.right, err = r.buildButtons(opts.RightActions, haptics, "right"); err != nil {
		return nil, err
	}

	r.tracker = internal.NewDragTracker(internal.DragConfig{
		Threshold:      settings.threshold,
		Friction:       settings.friction,
		LeftExtent:     float32(int32(len(r.left)) * settings.actionWidth),
		RightExtent:    float32(int32(len(r.right)) * settings.actionWidth),
		OvershootLeft:  settings.allowOvershoot,
		OvershootRight: settings.allowOvershoot,
	}, internal.DragCallbacks{
		OnWillOpen: r.onTrackerWillOpen,
		OnOpened:   r.onTrackerOpened,
		OnClosed:   r.onTrackerClosed,
	})

	if r.machine, err = r.buildMachine(); err != nil {
		return nil, NewConfigurationError("new_row", err)
	}
	r.machine.Start()

	return r, nil
}

func (r *Row) buildButtons(descriptors []ActionDescriptor, haptics Haptics, side string) ([]*ActionButton, error) {
	buttons := make([]*ActionButton, 0, len(descriptors))
	for i, d := range descriptors {
		button, err := newActionButton(d, haptics, r.settings.onError)
		if err != nil {
			return nil, fmt.Errorf("%s action %d: %w", side, i, err)
		}
		if r.settings.closeOnActivate {
			button.onSettled = r.Close
		}
		buttons = append(buttons, button)
	}
	return buttons, nil
}

// buildMachine centralizes every state transition of the row. Empty-side
// suppression is a guard, so open(side) is unreachable when that side has no
// actions; the swipeBegin/swipeEnd pairing is enforced by the transition
// actions: exactly one begin per closed -> opening transition (or side snap)
// and exactly one end per path back out of an engaged side.
func (r *Row) buildMachine() (*statekit.Interpreter[rowContext], error) {
	config, err := statekit.NewMachine[rowContext]("swipe_row").
		WithInitial(stateClosed).
		WithGuard("has_left", func(rowContext, statekit.Event) bool {
			return len(r.left) > 0
		}).
		WithGuard("has_right", func(rowContext, statekit.Event) bool {
			return len(r.right) > 0
		}).
		WithAction("begin_left", func(*rowContext, statekit.Event) {
			r.enqueueBegin(SideLeft)
		}).
		WithAction("begin_right", func(*rowContext, statekit.Event) {
			r.enqueueBegin(SideRight)
		}).
		WithAction("end", func(*rowContext, statekit.Event) {
			r.enqueueEnd()
		}).
		WithAction("at_closed", func(*rowContext, statekit.Event) {
			r.openSide.Store(int32(SideNone))
		}).
		WithAction("at_transitional", func(*rowContext, statekit.Event) {
			r.openSide.Store(int32(SideNone))
		}).
		WithAction("at_open_left", func(*rowContext, statekit.Event) {
			r.openSide.Store(int32(SideLeft))
		}).
		WithAction("at_open_right", func(*rowContext, statekit.Event) {
			r.openSide.Store(int32(SideRight))
		}).
		State(stateClosed).
		OnEntry("at_closed").
		On(eventWillOpenLeft).Target(stateOpeningLeft).Guard("has_left").Do("begin_left").
		On(eventWillOpenRight).Target(stateOpeningRight).Guard("has_right").Do("begin_right").
		Done().
		State(stateOpeningLeft).
		OnEntry("at_transitional").
		On(eventOpenedLeft).Target(stateOpenLeft).
		On(eventClosed).Target(stateClosed).Do("end").
		On(eventWillOpenRight).Target(stateOpeningRight).Guard("has_right").Do("end").Do("begin_right").
		Done().
		State(stateOpenLeft).
		OnEntry("at_open_left").
		On(eventClosed).Target(stateClosed).Do("end").
		On(eventWillOpenRight).Target(stateOpeningRight).Guard("has_right").Do("end").Do("begin_right").
		Done().
		State(stateOpeningRight).
		OnEntry("at_transitional").
		On(eventOpenedRight).Target(stateOpenRight).
		On(eventClosed).Target(stateClosed).Do("end").
		On(eventWillOpenLeft).Target(stateOpeningLeft).Guard("has_left").Do("end").Do("begin_left").
		Done().
		State(stateOpenRight).
		OnEntry("at_open_right").
		On(eventClosed).Target(stateClosed).Do("end").
		On(eventWillOpenLeft).Target(stateOpeningLeft).Guard("has_left").Do("end").Do("begin_left").
		Done().
		Build()
	if err != nil {
		return nil, err
	}
	return statekit.NewInterpreter(config), nil
}

// Tracker callbacks run while the row lock is held; they only advance the
// machine and enqueue user notifications for delivery after unlock.

func (r *Row) onTrackerWillOpen(side internal.DragSide) {
	if side == internal.DragSideLeft {
		r.machine.Send(statekit.Event{Type: eventWillOpenLeft})
	} else {
		r.machine.Send(statekit.Event{Type: eventWillOpenRight})
	}
}

func (r *Row) onTrackerOpened(side internal.DragSide) {
	if side == internal.DragSideLeft {
		r.machine.Send(statekit.Event{Type: eventOpenedLeft})
	} else {
		r.machine.Send(statekit.Event{Type: eventOpenedRight})
	}
}

func (r *Row) onTrackerClosed() {
	r.machine.Send(statekit.Event{Type: eventClosed})
}

func (r *Row) enqueueBegin(side SwipeSide) {
	if cb := r.settings.onSwipeBegin; cb != nil {
		r.notify = append(r.notify, func() { cb(side) })
	}
}

func (r *Row) enqueueEnd() {
	if cb := r.settings.onSwipeEnd; cb != nil {
		r.notify = append(r.notify, cb)
	}
}

// flushNotifications delivers queued lifecycle callbacks. Must be called
// without the lock held; callbacks may call back into the row.
func (r *Row) flushNotifications() {
	for {
		r.mu.Lock()
		if len(r.notify) == 0 {
			r.mu.Unlock()
			return
		}
		pending := r.notify
		r.notify = nil
		r.mu.Unlock()

		for _, fn := range pending {
			fn()
		}
	}
}

// PointerDown starts a drag at the given position. Positions are absolute
// screen coordinates; only the horizontal axis drives the gesture.
func (r *Row) PointerDown(x, y float32) {
	r.mu.Lock()
	if r.bounds.H > 0 && (int32(y) < r.bounds.Y || int32(y) >= r.bounds.Y+r.bounds.H) {
		r.mu.Unlock()
		return
	}
	r.pointerActive = true
	r.pointerMoved = false
	r.pressX, r.pressY = x, y
	r.tracker.Begin(x)
	r.mu.Unlock()
	r.flushNotifications()
}

// PointerMove continues an active drag.
func (r *Row) PointerMove(x, y float32) {
	r.mu.Lock()
	if !r.pointerActive {
		r.mu.Unlock()
		return
	}
	if abs32(x-r.pressX) > constants.DefaultTapSlop || abs32(y-r.pressY) > constants.DefaultTapSlop {
		r.pointerMoved = true
	}
	r.tracker.Move(x)
	r.mu.Unlock()
	r.flushNotifications()
}

// PointerUp ends an active drag. A release that never moved past the tap
// slop counts as a tap: on an action button it activates that action, on the
// row content while a side is open it closes the row. Anything else is a
// commit-or-cancel decision by the tracker.
func (r *Row) PointerUp(x, y float32) {
	r.mu.Lock()
	if !r.pointerActive {
		r.mu.Unlock()
		return
	}
	r.pointerActive = false

	var tapped *ActionButton
	if !r.pointerMoved && SwipeSide(r.openSide.Load()) != SideNone {
		for _, b := range r.sideButtons(SwipeSide(r.openSide.Load())) {
			if b.contains(x, y) {
				tapped = b
				break
			}
		}
		if tapped == nil {
			// Tap on the row content while open closes the row.
			r.tracker.Cancel()
			r.mu.Unlock()
			r.flushNotifications()
			return
		}
	}
	r.tracker.Release()
	r.mu.Unlock()
	r.flushNotifications()

	if tapped != nil {
		// A rejected activation is rapid-tap flow control, not an error.
		_ = tapped.Activate()
	}
}

// PointerCancel aborts an interrupted gesture. The row settles closed and no
// action is ever invoked for a cancelled gesture.
func (r *Row) PointerCancel() {
	r.mu.Lock()
	r.pointerActive = false
	r.pointerMoved = false
	r.tracker.Cancel()
	r.mu.Unlock()
	r.flushNotifications()
}

// Update advances the settle animation by one fixed frame step. Call it once
// per rendered frame; it returns true while the row is still animating.
func (r *Row) Update() bool {
	r.mu.Lock()
	animating := r.tracker.Update()
	r.mu.Unlock()
	r.flushNotifications()
	return animating
}

// Close settles the row back to its closed position. A no-op when the row is
// already closed and at rest.
func (r *Row) Close() {
	r.mu.Lock()
	r.tracker.SettleClosed()
	r.mu.Unlock()
	r.flushNotifications()
}

// Open reveals the given side without a gesture, as if a drag had committed.
// Ignored for SideNone or a side with no configured actions.
func (r *Row) Open(side SwipeSide) {
	r.mu.Lock()
	switch side {
	case SideLeft:
		r.tracker.SettleOpen(internal.DragSideLeft)
	case SideRight:
		r.tracker.SettleOpen(internal.DragSideRight)
	}
	r.mu.Unlock()
	r.flushNotifications()
}

// OpenSide returns the side the row currently rests open at. During drags
// and settle animations it reports SideNone.
func (r *Row) OpenSide() SwipeSide {
	return SwipeSide(r.openSide.Load())
}

// Offset returns the current reveal offset in points: positive while the
// left side shows, negative for the right. Hosts translate the row content
// by this amount.
func (r *Row) Offset() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker.Offset()
}

// SetBounds places the row on screen and lays out the action button hit
// rects. Must be called before pointer input or rendering.
func (r *Row) SetBounds(bounds sdl.Rect) {
	r.mu.Lock()
	r.bounds = bounds
	r.layoutButtons()
	r.mu.Unlock()
}

// SetScreenSize provides the pixel dimensions used to translate normalized
// SDL touch events in HandleEvent.
func (r *Row) SetScreenSize(w, h int32) {
	r.mu.Lock()
	r.screenW, r.screenH = w, h
	r.mu.Unlock()
}

// HandleEvent adapts SDL mouse and touch events onto the pointer methods.
// It returns true when the event was consumed. Touch events require
// SetScreenSize to have been called.
func (r *Row) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return false
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			r.PointerDown(float32(e.X), float32(e.Y))
			return true
		case sdl.MOUSEBUTTONUP:
			r.PointerUp(float32(e.X), float32(e.Y))
			return true
		}

	case *sdl.MouseMotionEvent:
		r.PointerMove(float32(e.X), float32(e.Y))
		return true

	case *sdl.TouchFingerEvent:
		r.mu.Lock()
		w, h := r.screenW, r.screenH
		r.mu.Unlock()
		if w == 0 || h == 0 {
			return false
		}
		x, y := e.X*float32(w), e.Y*float32(h)
		switch e.Type {
		case sdl.FINGERDOWN:
			r.PointerDown(x, y)
			return true
		case sdl.FINGERMOTION:
			r.PointerMove(x, y)
			return true
		case sdl.FINGERUP:
			r.PointerUp(x, y)
			return true
		}
	}
	return false
}

// sideButtons returns the buttons for a side. Callers hold the lock or use
// the result immediately for hit testing only.
func (r *Row) sideButtons(side SwipeSide) []*ActionButton {
	switch side {
	case SideLeft:
		return r.left
	case SideRight:
		return r.right
	default:
		return nil
	}
}

// layoutButtons computes the fully-open hit rect of every button: equal
// widths in insertion order, the left group anchored to the row's left edge
// and the right group to its right edge. Called with the lock held.
func (r *Row) layoutButtons() {
	w := r.settings.actionWidth

	for i, b := range r.left {
		b.setBounds(sdl.Rect{
			X: r.bounds.X + int32(i)*w,
			Y: r.bounds.Y,
			W: w,
			H: r.bounds.H,
		})
	}

	rightExtent := int32(len(r.right)) * w
	for i, b := range r.right {
		b.setBounds(sdl.Rect{
			X: r.bounds.X + r.bounds.W - rightExtent + int32(i)*w,
			Y: r.bounds.Y,
			W: w,
			H: r.bounds.H,
		})
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
