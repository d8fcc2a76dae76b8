package sideswipe

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// ActionButton is the tappable surface for one resolved action. It owns the
// activation sequence: haptic feedback first, then exactly one handler
// invocation, with repeated activations ignored until the handler settles.
type ActionButton struct {
	descriptor ActionDescriptor

	haptics   Haptics
	onError   func(error) // handler failures; falls back to the logger
	onSettled func()      // set by the owning row (close-on-activate)

	pending atomic.Bool

	bounds sdl.Rect // hit rect, maintained by the owning row's layout
}

// newActionButton validates the descriptor and builds a button for it.
// An invalid descriptor is refused here, before anything renders.
func newActionButton(d ActionDescriptor, haptics Haptics, onError func(error)) (*ActionButton, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if haptics == nil {
		haptics = NoopHaptics{}
	}
	return &ActionButton{
		descriptor: d,
		haptics:    haptics,
		onError:    onError,
	}, nil
}

// Descriptor returns the configuration this button was built from.
func (b *ActionButton) Descriptor() ActionDescriptor {
	return b.descriptor
}

// Resolved recomputes the render-ready attributes for this button.
func (b *ActionButton) Resolved() ResolvedAction {
	return Resolve(b.descriptor)
}

// Pending reports whether an activation is still settling.
func (b *ActionButton) Pending() bool {
	return b.pending.Load()
}

// Activate runs the action: haptic feedback at the resolved intensity, then
// the handler, both off the input path. It returns ErrActivationInFlight when
// a previous activation has not settled yet, guaranteeing at most one
// concurrent handler invocation per button no matter how fast the user taps.
func (b *ActionButton) Activate() error {
	if !b.pending.CompareAndSwap(false, true) {
		internal.GetInternalLogger().Debug("activation ignored, handler still pending",
			"action", b.descriptor.Type.String())
		return ErrActivationInFlight
	}
	go b.run()
	return nil
}

func (b *ActionButton) run() {
	// The pending lock clears once the handler settles, success or
	// failure, so the user can retry after an error.
	defer b.pending.Store(false)

	if !b.descriptor.DisableHaptics {
		intensity := b.Resolved().Haptic
		if err := b.haptics.Play(intensity); err != nil {
			// Best effort: a missing or failing motor never blocks the action.
			internal.GetInternalLogger().Debug("haptic playback failed",
				"intensity", intensity.String(), "error", err)
		}
	}

	if err := b.descriptor.Handler(); err != nil {
		if b.onError != nil {
			b.onError(err)
		} else {
			internal.GetLogger().Error("action handler failed",
				"action", b.descriptor.Type.String(), "error", err)
		}
	}

	if b.onSettled != nil {
		b.onSettled()
	}
}

func (b *ActionButton) setBounds(bounds sdl.Rect) {
	b.bounds = bounds
}

func (b *ActionButton) contains(x, y float32) bool {
	return int32(x) >= b.bounds.X && int32(x) < b.bounds.X+b.bounds.W &&
		int32(y) >= b.bounds.Y && int32(y) < b.bounds.Y+b.bounds.H
}
