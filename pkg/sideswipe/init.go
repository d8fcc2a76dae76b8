// Package sideswipe provides swipe-to-reveal action rows for SDL applications
// on embedded Linux devices, particularly handheld gaming consoles running
// custom firmware like NextUI or Cannoli.
//
// A Row owns the gesture state machine for one list row: dragging reveals
// action buttons behind either edge, a release past the threshold settles the
// row open on a spring, and tapping a revealed button resolves its descriptor
// (label, icon, role color, haptic) and runs the handler at most once at a
// time. The package handles SDL haptic setup, evdev touch input, theming, and
// localized preset labels.
package sideswipe

import (
	"log/slog"
	"os"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/platform/cannoli"
)

// Default Cannoli system font locations.
const (
	defaultFontPath     = "/mnt/SDCARD/System/fonts/Cannoli.ttf"
	defaultIconFontPath = "/mnt/SDCARD/System/fonts/materialdesignicons-webfont.ttf"
)

// Options configures the sideswipe library initialization.
type Options struct {
	LogPath   string // Full path for log file including filename (creates parent directories)
	ThemeFile string // Path to a Cannoli theme TOML file; the SIDESWIPE_THEME env var takes precedence

	FontPath      string // Label font; defaults to the Cannoli system font
	IconFontPath  string // Icon glyph font; defaults to the MDI webfont
	LabelFontSize int    // Point size for action labels; default 18
	IconFontSize  int    // Point size for glyph icons; default 40

	DisableHaptics   bool     // Skip haptic device setup; rows default to NoopHaptics
	TranslationFiles []string // TOML message files for localized preset labels
	Locales          []string // Preferred locales in order (e.g. "de", "en-GB")
}

var (
	hapticsMu      sync.RWMutex
	packageHaptics Haptics = NoopHaptics{}
	rumbleEngine   *internal.RumbleEngine
)

// Init initializes logging, theming, fonts, and the haptic subsystem.
// Must be called before building rows. SDL itself (video, events) is the
// host application's responsibility.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := loadTheme(options)
	internal.SetTheme(theme)

	for _, file := range options.TranslationFiles {
		if err := LoadTranslations(file); err != nil {
			internal.GetLogger().Warn("failed to load translations", "path", file, "error", err)
		}
	}
	if len(options.Locales) > 0 {
		SetLocales(options.Locales...)
	}

	labelSize := options.LabelFontSize
	if labelSize == 0 {
		labelSize = constants.DefaultLabelFontSize
	}
	iconSize := options.IconFontSize
	if iconSize == 0 {
		iconSize = constants.DefaultIconFontSize
	}
	if err := internal.InitFonts(theme.FontPath, theme.IconFontPath, labelSize, iconSize); err != nil {
		return NewConfigurationError("init", err)
	}

	if !options.DisableHaptics {
		initHaptics()
	}

	return nil
}

func loadTheme(options Options) internal.Theme {
	theme := cannoli.InitCannoliTheme(defaultFontPath, defaultIconFontPath)

	themePath := os.Getenv(constants.ThemePathEnvVar)
	if themePath == "" {
		themePath = options.ThemeFile
	}
	if themePath != "" {
		loaded, err := cannoli.LoadTheme(themePath)
		if err != nil {
			internal.GetLogger().Warn("failed to load theme, using defaults", "path", themePath, "error", err)
		} else {
			theme = loaded
			if theme.FontPath == "" {
				theme.FontPath = defaultFontPath
			}
			if theme.IconFontPath == "" {
				theme.IconFontPath = defaultIconFontPath
			}
		}
	}

	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.IconFontPath != "" {
		theme.IconFontPath = options.IconFontPath
	}

	return theme
}

func initHaptics() {
	if err := sdl.InitSubSystem(sdl.INIT_HAPTIC); err != nil {
		internal.GetInternalLogger().Debug("haptic subsystem unavailable", "error", err)
		return
	}

	engine, err := internal.OpenRumble()
	if err != nil {
		internal.GetInternalLogger().Debug("no rumble device, haptics disabled", "error", err)
		return
	}

	hapticsMu.Lock()
	rumbleEngine = engine
	packageHaptics = &rumbleHaptics{engine: engine}
	hapticsMu.Unlock()
}

// Close releases the haptic device, fonts, and log file. Call before
// program exit.
func Close() {
	hapticsMu.Lock()
	if rumbleEngine != nil {
		rumbleEngine.Close()
		rumbleEngine = nil
		packageHaptics = NoopHaptics{}
	}
	hapticsMu.Unlock()

	internal.CloseFonts()
	internal.CloseLogger()
}

// DefaultHaptics returns the feedback engine Init set up: the device rumble
// engine when one was found, NoopHaptics otherwise. Rows built without an
// explicit Haptics use this.
func DefaultHaptics() Haptics {
	return defaultHapticsEngine()
}

func defaultHapticsEngine() Haptics {
	hapticsMu.RLock()
	defer hapticsMu.RUnlock()
	return packageHaptics
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// TouchInput streams evdev touch events into a row. Stop it with Close
// before destroying the row.
type TouchInput struct {
	reader *internal.TouchReader
}

// StartTouchInput opens the device's touchscreen (or the path named by the
// SIDESWIPE_TOUCH_DEVICE env var) and feeds its events to the row. Hosts
// that route SDL events themselves should use Row.HandleEvent instead.
func StartTouchInput(row *Row) (*TouchInput, error) {
	path, err := internal.FindTouchDevice()
	if err != nil {
		return nil, err
	}

	reader, err := internal.NewTouchReader(path, internal.PointerCallbacks{
		OnDown: row.PointerDown,
		OnMove: row.PointerMove,
		OnUp:   row.PointerUp,
	})
	if err != nil {
		return nil, err
	}

	return &TouchInput{reader: reader}, nil
}

// Close stops the touch reader and releases the input device.
func (t *TouchInput) Close() {
	t.reader.Close()
}
