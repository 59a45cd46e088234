package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/strikeward/internal/app"
	"github.com/dshills/strikeward/internal/input/key"
)

// terminal paints the application state with tcell and feeds key
// events back into it.
type terminal struct {
	screen tcell.Screen
}

func newTerminal() (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	return &terminal{screen: screen}, nil
}

// Interrupt wakes the event loop, used by the signal handler.
func (t *terminal) Interrupt() {
	t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Close restores the terminal. Safe to call more than once.
func (t *terminal) Close() {
	t.screen.Fini()
}

// Run drives the application until quit or interrupt.
func (t *terminal) Run(a *app.App) error {
	for {
		t.draw(a)

		switch tev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			ev, ok := translateKey(tev)
			if !ok {
				continue
			}
			if err := a.ProcessKey(ev); err != nil {
				return err
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventInterrupt:
			return app.ErrQuit
		case nil:
			return app.ErrQuit
		}
	}
}

// draw paints the scratch line and the status row.
func (t *terminal) draw(a *app.App) {
	width, height := t.screen.Size()
	t.screen.Clear()

	v := a.View()
	drawText(t.screen, 0, 0, tcell.StyleDefault, v.Line)

	if height > 1 {
		style := tcell.StyleDefault.Reverse(true)
		if v.Engaged {
			style = tcell.StyleDefault.
				Background(tcell.ColorDarkRed).
				Foreground(tcell.ColorWhite).
				Bold(true)
		}
		drawText(t.screen, 0, height-1, style, v.Status.Render(width))
	}

	t.screen.ShowCursor(cellOffset(v.Line, v.Cursor), 0)
	t.screen.Show()
}

// drawText writes a string starting at (x, y).
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, ru := range text {
		s.SetContent(col, y, ru, nil, style)
		col++
	}
}

// cellOffset converts a byte offset into a screen column.
func cellOffset(line string, cursor int) int {
	col := 0
	for i := range line {
		if i >= cursor {
			break
		}
		col++
	}
	if cursor >= len(line) {
		col = len([]rune(line))
	}
	return col
}

// translateKey converts a tcell key event to the input layer's model.
func translateKey(tev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(tev.Modifiers())

	switch tev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(tev.Rune(), mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5, tcell.KeyF6,
		tcell.KeyF7, tcell.KeyF8, tcell.KeyF9, tcell.KeyF10, tcell.KeyF11, tcell.KeyF12:
		fn := key.Key(int(key.KeyF1) + int(tev.Key()-tcell.KeyF1))
		return key.NewSpecialEvent(fn, mods), true
	}

	// tcell reports Ctrl+letter as dedicated key codes.
	if k := tev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		ru := rune('a' + int(k-tcell.KeyCtrlA))
		return key.NewRuneEvent(ru, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	return mods
}
