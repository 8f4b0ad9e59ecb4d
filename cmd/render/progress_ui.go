package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pathtracer/renderer"
)

// progressUI is a minimal tcell front-end that polls Engine.Progress and
// redraws a percentage bar. It only reads already-exposed Engine state.
type progressUI struct {
	screen tcell.Screen
	engine *renderer.Engine
	done   chan struct{}
}

func newProgressUI(engine *renderer.Engine) (*progressUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	return &progressUI{screen: screen, engine: engine, done: make(chan struct{})}, nil
}

func (ui *progressUI) run() {
	defer ui.screen.Fini()

	events := make(chan tcell.Event)
	go ui.screen.ChannelEvents(events, ui.done)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ui.done:
			return
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
					return
				}
			}
		case <-ticker.C:
			ui.draw()
		}
	}
}

func (ui *progressUI) draw() {
	done, total := ui.engine.Progress()
	ui.screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	label := "rendering..."
	if total > 0 {
		label = fmt.Sprintf("tiles: %d/%d", done, total)
	}
	drawText(ui.screen, 0, 0, style, label)

	const barWidth = 40
	filled := 0
	if total > 0 {
		filled = barWidth * done / total
	}
	bar := "["
	for i := 0; i < barWidth; i++ {
		if i < filled {
			bar += "#"
		} else {
			bar += "-"
		}
	}
	bar += "]"
	drawText(ui.screen, 0, 1, style, bar)

	ui.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (ui *progressUI) stop() {
	close(ui.done)
}
