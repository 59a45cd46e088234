package input

import (
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/strikeward/internal/engine/buffer"
	"github.com/dshills/strikeward/internal/event"
	"github.com/dshills/strikeward/internal/input/key"
	"github.com/dshills/strikeward/internal/input/mode"
	"github.com/dshills/strikeward/internal/strike"
)

// Decision describes what the handler did with a key event.
type Decision uint8

const (
	// DecisionPass means the host should apply the key's default effect.
	DecisionPass Decision = iota

	// DecisionConsumed means the key was suppressed with no effect.
	DecisionConsumed

	// DecisionStruck means a strike edit was applied to the buffer.
	DecisionStruck

	// DecisionToggled means the draft-mode gate flipped.
	DecisionToggled
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecisionPass:
		return "pass"
	case DecisionConsumed:
		return "consumed"
	case DecisionStruck:
		return "struck"
	case DecisionToggled:
		return "toggled"
	default:
		return "unknown"
	}
}

// Config holds the handler's key bindings.
type Config struct {
	// Trigger is the strike-last-word chord.
	Trigger key.Event

	// Toggle flips draft mode.
	Toggle key.Event
}

// StrikeHook is invoked after each successful strike with the word that
// was struck, the resulting line, and the new cursor offset.
type StrikeHook func(word, line string, cursor int)

// Handler is the input entry point. It consults the gate, matches the
// trigger and toggle chords, runs the resolver, and applies edits to
// the buffer. Safe for concurrent use, though the host delivers events
// from a single goroutine.
type Handler struct {
	mu       sync.RWMutex
	cfg      Config
	resolver *strike.Resolver
	hooks    []StrikeHook

	gate   *mode.Gate
	filter *mode.Filter
	buf    *buffer.Buffer
	bus    *event.Bus
	logger *zap.Logger
}

// NewHandler creates a handler. A nil logger disables logging.
func NewHandler(cfg Config, gate *mode.Gate, buf *buffer.Buffer, resolver *strike.Resolver, bus *event.Bus, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		cfg:      cfg,
		resolver: resolver,
		gate:     gate,
		filter:   mode.NewFilter(gate),
		buf:      buf,
		bus:      bus,
		logger:   logger,
	}
}

// SetConfig swaps the key bindings, used on config reload.
func (h *Handler) SetConfig(cfg Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cfg = cfg
}

// SetResolver swaps the resolver, used when a script overrides the
// marker pair.
func (h *Handler) SetResolver(r *strike.Resolver) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resolver = r
}

// OnStrike registers a hook invoked after each successful strike.
func (h *Handler) OnStrike(hook StrikeHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// HandleKey processes one key event and returns what was done with it.
// The trigger chord is always consumed while the gate is engaged, even
// when the resolver decides there is nothing to mark: repeated
// triggering on an already-marked word is a silent no-op.
func (h *Handler) HandleKey(ev key.Event) Decision {
	h.mu.RLock()
	cfg := h.cfg
	resolver := h.resolver
	h.mu.RUnlock()

	if cfg.Toggle.Matches(ev) {
		engaged := h.gate.Toggle()
		h.logger.Info("draft mode toggled", zap.Bool("engaged", engaged))
		h.bus.Publish(event.TopicModeChanged, event.ModeChanged{Engaged: engaged})
		return DecisionToggled
	}

	if !h.gate.Engaged() {
		return DecisionPass
	}

	if cfg.Trigger.Matches(ev) {
		if h.strikeLastWord(resolver) {
			return DecisionStruck
		}
		return DecisionConsumed
	}

	if h.filter.Blocked(ev) {
		h.logger.Debug("blocked key in draft mode", zap.Stringer("key", ev))
		return DecisionConsumed
	}

	return DecisionPass
}

// strikeLastWord runs the resolver against the buffer and applies the
// resulting edit. Returns false for a no-op, which leaves the buffer
// and cursor alone.
func (h *Handler) strikeLastWord(resolver *strike.Resolver) bool {
	snap := h.buf.Snapshot()

	res, ok := resolver.Resolve(snap.Line, snap.Cursor)
	if !ok {
		h.logger.Debug("strike no-op",
			zap.String("line", snap.Line),
			zap.Int("cursor", snap.Cursor))
		return false
	}

	word := snap.Line[res.Start:res.End]
	edit := buffer.NewEdit(buffer.Range{Start: res.Start, End: res.End}, res.Text)
	if _, err := h.buf.Apply(edit); err != nil {
		// Host rejected the mutation; document stays unchanged.
		h.logger.Error("strike edit rejected", zap.Error(err), zap.Stringer("edit", edit))
		return false
	}

	after := h.buf.Snapshot()
	h.logger.Debug("struck word",
		zap.String("word", word),
		zap.Int("cursor", after.Cursor))
	h.bus.Publish(event.TopicBufferEdited, event.BufferEdited{
		Word:   word,
		Line:   after.Line,
		Cursor: after.Cursor,
	})

	h.mu.RLock()
	hooks := make([]StrikeHook, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.RUnlock()
	for _, hook := range hooks {
		hook(word, after.Line, after.Cursor)
	}
	return true
}
