// Package app wires the strikeward subsystems together: settings,
// logging, the draft-mode gate, the input handler, the scratch buffer,
// the status line, and the optional Lua hook script. The terminal host
// in cmd/strikeward drives it with key events and paints its state.
package app

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/strikeward/internal/config"
	"github.com/dshills/strikeward/internal/engine/buffer"
	"github.com/dshills/strikeward/internal/event"
	"github.com/dshills/strikeward/internal/input"
	"github.com/dshills/strikeward/internal/input/key"
	"github.com/dshills/strikeward/internal/input/mode"
	applog "github.com/dshills/strikeward/internal/log"
	luaplugin "github.com/dshills/strikeward/internal/plugin/lua"
	"github.com/dshills/strikeward/internal/renderer/statusline"
	"github.com/dshills/strikeward/internal/strike"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// quitChord exits the application.
var quitChord = key.Event{Key: key.KeyRune, Rune: 'q', Modifiers: key.ModCtrl}

// Options configures application startup.
type Options struct {
	// ConfigPath overrides the default settings file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Watch enables live reload of the settings file.
	Watch bool
}

// App owns the application state and coordinates the subsystems.
type App struct {
	opts     Options
	cfgPath  string
	settings config.Settings

	logger  *zap.Logger
	bus     *event.Bus
	gate    *mode.Gate
	buf     *buffer.Buffer
	handler *input.Handler
	status  *statusline.StatusLine

	script  *luaplugin.Engine
	watcher *config.Watcher
}

// View is what the host paints each frame.
type View struct {
	Line    string
	Cursor  int
	Status  *statusline.StatusLine
	Engaged bool
}

// New creates the application: loads settings, builds the logger, and
// wires the input pipeline.
func New(opts Options) (*App, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logCfg := applog.Config{
		Level:  settings.Logging.Level,
		Format: settings.Logging.Format,
		File:   settings.Logging.File,
	}
	if opts.LogLevel != "" {
		logCfg.Level = opts.LogLevel
	}
	logger, err := applog.New(logCfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		opts:     opts,
		cfgPath:  cfgPath,
		settings: settings,
		logger:   logger,
		bus:      event.NewBus(),
		gate:     mode.NewGate(settings.Mode.Enabled),
		buf:      buffer.New(),
		status:   statusline.New(),
	}
	a.handler = input.NewHandler(
		handlerConfig(settings),
		a.gate,
		a.buf,
		strike.New(markerFromSettings(settings)),
		a.bus,
		logger,
	)

	a.status.SetEngaged(a.gate.Engaged())
	a.wireEvents()

	if settings.Script.Path != "" {
		if err := a.loadScript(settings.Script.Path); err != nil {
			// A broken hook script is reported, not fatal.
			a.logger.Warn("hook script failed", zap.Error(err))
			a.status.SetMessage(fmt.Sprintf("script error: %v", err))
		}
	}

	if opts.Watch {
		w, err := config.NewWatcher(cfgPath, a.onConfigReload)
		if err != nil {
			a.logger.Warn("config watcher unavailable", zap.Error(err))
		} else {
			a.watcher = w
		}
	}

	logger.Info("strikeward started",
		zap.String("config", cfgPath),
		zap.Bool("draft", a.gate.Engaged()))
	return a, nil
}

// wireEvents connects bus topics to the status line and settings
// persistence.
func (a *App) wireEvents() {
	a.bus.Subscribe(event.TopicModeChanged, func(ev event.Event) {
		if mc, ok := ev.Payload.(event.ModeChanged); ok {
			a.status.SetEngaged(mc.Engaged)
		}
	})
	a.bus.Subscribe(event.TopicBufferEdited, func(ev event.Event) {
		if be, ok := ev.Payload.(event.BufferEdited); ok {
			a.status.SetCursor(be.Cursor)
		}
	})

	// Persist the gate state across restarts when configured to.
	a.gate.OnChange(func(engaged bool) {
		if !a.settings.Mode.Persist {
			return
		}
		a.settings.Mode.Enabled = engaged
		if err := config.Save(a.cfgPath, a.settings); err != nil {
			a.logger.Warn("persisting mode flag failed", zap.Error(err))
		}
	})
}

// loadScript starts the Lua engine and runs the hook script.
func (a *App) loadScript(path string) error {
	eng := luaplugin.NewEngine()
	eng.SetMarkerFunc(func(open, close string) {
		a.handler.SetResolver(strike.New(strike.Marker{Open: open, Close: close}))
		a.logger.Info("marker overridden by script",
			zap.String("open", open), zap.String("close", close))
	})
	if err := eng.LoadFile(path); err != nil {
		eng.Close()
		return err
	}
	a.script = eng
	a.handler.OnStrike(func(word, line string, cursor int) {
		if err := eng.NotifyStrike(word, line, cursor); err != nil {
			a.logger.Warn("on_strike hook failed", zap.Error(err))
		}
	})
	return nil
}

// onConfigReload applies freshly loaded settings.
func (a *App) onConfigReload(s config.Settings, err error) {
	if err != nil {
		a.logger.Warn("config reload failed", zap.Error(err))
		a.status.SetMessage(fmt.Sprintf("config error: %v", err))
		return
	}
	a.settings = s
	a.handler.SetConfig(handlerConfig(s))
	a.handler.SetResolver(strike.New(markerFromSettings(s)))
	a.status.SetMessage("config reloaded")
	a.bus.Publish(event.TopicConfigReloaded, event.ConfigReloaded{Path: a.cfgPath})
	a.logger.Info("config reloaded", zap.String("path", a.cfgPath))
}

// ProcessKey handles one key event. Returns ErrQuit on the quit chord;
// any other outcome is nil.
func (a *App) ProcessKey(ev key.Event) error {
	if quitChord.Matches(ev) {
		return ErrQuit
	}

	switch a.handler.HandleKey(ev) {
	case input.DecisionPass:
		a.applyDefault(ev)
	case input.DecisionStruck, input.DecisionToggled, input.DecisionConsumed:
		// Handler already did everything observable.
	}
	a.status.SetCursor(a.buf.Cursor())
	return nil
}

// applyDefault performs a key's ordinary editing effect. Only reached
// when the handler passed the event through (gate disengaged, or an
// unfiltered key in draft mode).
func (a *App) applyDefault(ev key.Event) {
	switch {
	case ev.IsChar() && !ev.IsModified():
		if _, err := a.buf.InsertRune(ev.Rune); err != nil {
			a.logger.Error("insert failed", zap.Error(err))
		}
	case ev.Key == key.KeyEnter:
		// Scratch surface: Enter starts a fresh line.
		a.resetLine()
	case ev.Key == key.KeyBackspace:
		a.deleteBack()
	case ev.Key == key.KeyLeft:
		a.moveCursor(-1)
	case ev.Key == key.KeyRight:
		a.moveCursor(1)
	case ev.Key == key.KeyHome:
		_ = a.buf.SetCursor(0)
	case ev.Key == key.KeyEnd:
		_ = a.buf.SetCursor(a.buf.Len())
	}
}

// resetLine clears the scratch buffer.
func (a *App) resetLine() {
	snap := a.buf.Snapshot()
	if snap.Line == "" {
		return
	}
	if _, err := a.buf.Apply(buffer.NewDelete(0, len(snap.Line))); err != nil {
		a.logger.Error("clear line failed", zap.Error(err))
	}
}

// deleteBack removes the rune before the cursor.
func (a *App) deleteBack() {
	snap := a.buf.Snapshot()
	if snap.Cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(snap.Line[:snap.Cursor])
	if _, err := a.buf.Apply(buffer.NewDelete(snap.Cursor-size, snap.Cursor)); err != nil {
		a.logger.Error("delete failed", zap.Error(err))
	}
}

// moveCursor shifts the cursor by one rune in either direction.
func (a *App) moveCursor(dir int) {
	snap := a.buf.Snapshot()
	var target int
	if dir < 0 {
		if snap.Cursor == 0 {
			return
		}
		_, size := utf8.DecodeLastRuneInString(snap.Line[:snap.Cursor])
		target = snap.Cursor - size
	} else {
		if snap.Cursor >= len(snap.Line) {
			return
		}
		_, size := utf8.DecodeRuneInString(snap.Line[snap.Cursor:])
		target = snap.Cursor + size
	}
	_ = a.buf.SetCursor(target)
}

// View returns the current paintable state.
func (a *App) View() View {
	snap := a.buf.Snapshot()
	return View{
		Line:    snap.Line,
		Cursor:  snap.Cursor,
		Status:  a.status,
		Engaged: a.gate.Engaged(),
	}
}

// Settings returns the active settings.
func (a *App) Settings() config.Settings {
	return a.settings
}

// Shutdown releases resources. Safe to call once at exit.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.script != nil {
		a.script.Close()
	}
	_ = a.logger.Sync()
}

// handlerConfig converts settings to the handler's key bindings.
func handlerConfig(s config.Settings) input.Config {
	return input.Config{
		Trigger: s.TriggerEvent(),
		Toggle:  s.ToggleEvent(),
	}
}

// markerFromSettings converts the marker override, falling back to the
// default pair when unset.
func markerFromSettings(s config.Settings) strike.Marker {
	return strike.Marker{Open: s.Marker.Open, Close: s.Marker.Close}
}
