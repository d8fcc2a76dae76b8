package internal

import (
	"errors"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
)

// ErrNoTouchDevice indicates no touch panel was found among the input devices.
var ErrNoTouchDevice = errors.New("no touch input device found")

// PointerCallbacks receive translated touch events in screen coordinates.
type PointerCallbacks struct {
	OnDown func(x, y float32)
	OnMove func(x, y float32)
	OnUp   func(x, y float32)
}

// TouchReader reads a touch panel through evdev and translates its absolute
// events into pointer callbacks. Some CFW kernels route the panel straight
// to /dev/input without exposing it to SDL, which is what this covers.
type TouchReader struct {
	device *evdev.InputDevice
	cb     PointerCallbacks

	wg        sync.WaitGroup
	closeOnce sync.Once

	x, y int32
	down bool
}

// FindTouchDevice returns the path of the first input device that reports
// both absolute axes and key events, which on the supported handhelds is the
// touch panel. SIDESWIPE_TOUCH_DEVICE overrides detection.
func FindTouchDevice() (string, error) {
	if path := os.Getenv(constants.TouchDeviceEnvVar); path != "" {
		return path, nil
	}

	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", err
	}

	for _, p := range paths {
		device, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}

		hasAbs, hasKey := false, false
		for _, t := range device.CapableTypes() {
			switch t {
			case evdev.EV_ABS:
				hasAbs = true
			case evdev.EV_KEY:
				hasKey = true
			}
		}
		device.Close()

		if hasAbs && hasKey {
			GetInternalLogger().Debug("touch panel found", "path", p.Path, "name", p.Name)
			return p.Path, nil
		}
	}

	return "", ErrNoTouchDevice
}

// NewTouchReader opens the device at path and starts the read loop.
func NewTouchReader(path string, cb PointerCallbacks) (*TouchReader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	reader := &TouchReader{device: device, cb: cb}
	reader.wg.Add(1)
	go reader.loop()
	return reader, nil
}

func (t *TouchReader) loop() {
	defer t.wg.Done()

	for {
		event, err := t.device.ReadOne()
		if err != nil {
			// Close unblocks the read with an error; treat any read
			// failure as end of input.
			GetInternalLogger().Debug("touch read loop stopped", "error", err)
			return
		}

		switch event.Type {
		case evdev.EV_ABS:
			switch event.Code {
			case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
				t.x = event.Value
			case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
				t.y = event.Value
			}

		case evdev.EV_KEY:
			if event.Code != evdev.BTN_TOUCH {
				continue
			}
			if event.Value != 0 {
				t.down = true
				if t.cb.OnDown != nil {
					t.cb.OnDown(float32(t.x), float32(t.y))
				}
			} else {
				t.down = false
				if t.cb.OnUp != nil {
					t.cb.OnUp(float32(t.x), float32(t.y))
				}
			}

		case evdev.EV_SYN:
			if t.down && t.cb.OnMove != nil {
				t.cb.OnMove(float32(t.x), float32(t.y))
			}
		}
	}
}

// Close stops the read loop and releases the device.
func (t *TouchReader) Close() {
	t.closeOnce.Do(func() {
		t.device.Close()
		t.wg.Wait()
	})
}
