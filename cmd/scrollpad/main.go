// Command scrollpad is a terminal pager built on the scroll controller.
// It binds a controller to an in-memory viewport over a text buffer and
// maps keys to animated moves, so every controller feature (episodes,
// axis tracking, stoppers, observers) is visible interactively.
//
// Keys:
//
//	j / k, arrows   scroll one line (animated)
//	h / l           scroll horizontally
//	PgUp / PgDn     scroll one page
//	g / G           jump to top / bottom
//	s               toggle a scroll stopper
//	c               cancel the in-flight animation
//	q / Esc         quit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	scrollkit "github.com/dshills/scrollkit"
	"github.com/dshills/scrollkit/internal/memhost"
)

func main() {
	configPath := flag.String("config", "", "optional TOML/YAML options file")
	flag.Parse()

	lines, err := loadLines(flag.Arg(0))
	if err != nil {
		log.Fatalf("scrollpad: %v", err)
	}

	opts := scrollkit.Options{
		Duration:     120 * time.Millisecond,
		IdleDebounce: 300 * time.Millisecond,
	}
	if *configPath != "" {
		opts, _, err = scrollkit.LoadOptions(*configPath)
		if err != nil {
			log.Fatalf("scrollpad: %v", err)
		}
	}

	if err := run(lines, opts); err != nil {
		log.Fatalf("scrollpad: %v", err)
	}
}

// loadLines reads the file at path, or returns generated sample text
// when no path is given.
func loadLines(path string) ([]string, error) {
	if path == "" {
		return sampleLines(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}

func sampleLines() []string {
	lines := make([]string, 0, 400)
	for i := 0; i < 400; i++ {
		lines = append(lines, fmt.Sprintf("%4d  %s", i+1, strings.Repeat("lorem ipsum dolor sit amet ", 1+i%8)))
	}
	return lines
}

func contentSize(lines []string) (float64, float64) {
	maxW := 0
	for _, ln := range lines {
		if len(ln) > maxW {
			maxW = len(ln)
		}
	}
	return float64(maxW), float64(len(lines))
}

func run(lines []string, opts scrollkit.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	w, h := screen.Size()
	contentW, contentH := contentSize(lines)

	env := memhost.NewEnv()
	pad := memhost.NewElement(float64(w), float64(h-1), contentW, contentH)
	env.Register("#pad", pad)

	c := scrollkit.New(env.HostEnv(), opts)
	defer c.Destroy()
	if err := c.Bind("#pad"); err != nil {
		return err
	}

	// Animation frames land on a background goroutine; wake the event
	// loop so the new offset is drawn.
	pad.OnScroll(func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	c.On(scrollkit.EventScrollEnd, func(scrollkit.Event) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	var stopper scrollkit.StopperToken

	for {
		draw(screen, lines, pad, c)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			nw, nh := ev.Size()
			pad.Resize(float64(nw), float64(max(1, nh-1)))
			screen.Sync()

		case *tcell.EventInterrupt:
			// Redrawn at the top of the loop.

		case *tcell.EventKey:
			quit, err := handleKey(ev, c, pad, &stopper)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// handleKey maps one key event to a controller operation.
func handleKey(ev *tcell.EventKey, c *scrollkit.Controller, pad *memhost.Element, stopper *scrollkit.StopperToken) (bool, error) {
	_, viewH := pad.ViewportSize()

	move := func(dx, dy float64) error {
		_, err := c.MoveBy(dx, dy)
		if err != nil && err != scrollkit.ErrMissingContainer {
			return err
		}
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		return false, move(0, -1)
	case tcell.KeyDown:
		return false, move(0, 1)
	case tcell.KeyLeft:
		return false, move(-4, 0)
	case tcell.KeyRight:
		return false, move(4, 0)
	case tcell.KeyPgUp:
		return false, move(0, -viewH)
	case tcell.KeyPgDn:
		return false, move(0, viewH)
	}

	switch ev.Rune() {
	case 'q':
		return true, nil
	case 'k':
		return false, move(0, -1)
	case 'j':
		return false, move(0, 1)
	case 'h':
		return false, move(-4, 0)
	case 'l':
		return false, move(4, 0)
	case 'g':
		_, err := c.MoveToTop()
		return false, err
	case 'G':
		_, err := c.MoveToBottom()
		return false, err
	case 'c':
		c.CancelScroll()
	case 's':
		if *stopper == "" {
			tok := scrollkit.NewStopperToken()
			if err := c.PushScrollStopper(tok); err != nil {
				return false, err
			}
			*stopper = tok
		} else {
			if err := c.RemoveScrollStopper(*stopper); err != nil {
				return false, err
			}
			*stopper = ""
		}
	}
	return false, nil
}

func draw(screen tcell.Screen, lines []string, pad *memhost.Element, c *scrollkit.Controller) {
	screen.Clear()
	w, h := screen.Size()
	left, top := pad.Offset()

	for row := 0; row < h-1; row++ {
		idx := int(top) + row
		if idx < 0 || idx >= len(lines) {
			continue
		}
		line := lines[idx]
		col := int(left)
		if col >= len(line) {
			continue
		}
		for x, r := range line[col:] {
			if x >= w {
				break
			}
			screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		}
	}

	drawStatus(screen, w, h-1, c.Snapshot())
	screen.Show()
}

func drawStatus(screen tcell.Screen, w, row int, s scrollkit.Snapshot) {
	state := s.State
	if s.Scrolling {
		state += " scrolling"
	}
	if !s.ScrollEnabled {
		state += " locked"
	}
	status := fmt.Sprintf(" %s | y %.0f/%.0f x %.0f | axis %s dir %s | %3.0f%% ",
		state, s.ScrollTop, s.ScrollHeight, s.ScrollLeft, s.Axis, s.LastDirection,
		s.VerticalProgress()*100)

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		screen.SetContent(x, row, r, nil, style)
	}
}
