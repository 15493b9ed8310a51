package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/katalvlaran/stepviz/snapshot"
)

const clearScreen = "\033[H\033[2J"

// Renderer writes frames to an output stream.
type Renderer struct {
	w       io.Writer
	colour  bool
	clear   bool
	palette map[snapshot.Status]*color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor turns ANSI colour on or off. Off by default.
func WithColor(on bool) Option {
	return func(r *Renderer) {
		r.colour = on
	}
}

// WithClear makes Frame clear the screen before each frame.
func WithClear(on bool) Option {
	return func(r *Renderer) {
		r.clear = on
	}
}

// New returns a Renderer writing to w. Panics on nil w.
func New(w io.Writer, opts ...Option) *Renderer {
	if w == nil {
		panic("render: New(nil writer)")
	}
	r := &Renderer{w: w}
	for _, opt := range opts {
		opt(r)
	}
	r.palette = newPalette(r.colour)

	return r
}

func newPalette(enabled bool) map[snapshot.Status]*color.Color {
	attrs := map[snapshot.Status][]color.Attribute{
		snapshot.Default:    {color.FgWhite},
		snapshot.Wall:       {color.FgHiBlack, color.BgHiBlack},
		snapshot.Weight:     {color.FgYellow},
		snapshot.Visited:    {color.FgBlue},
		snapshot.Processing: {color.FgHiYellow, color.Bold},
		snapshot.Path:       {color.FgHiGreen, color.Bold},
		snapshot.Start:      {color.FgHiCyan, color.Bold},
		snapshot.Target:     {color.FgHiRed, color.Bold},
		snapshot.Comparing:  {color.FgHiYellow},
		snapshot.Swapping:   {color.FgHiRed},
		snapshot.Sorted:     {color.FgGreen},
		snapshot.Pivot:      {color.FgMagenta, color.Bold},
		snapshot.Found:      {color.FgHiGreen, color.Bold},
		snapshot.Discarded:  {color.FgHiBlack},
		snapshot.Completed:  {color.FgGreen},
		snapshot.Traversing: {color.FgCyan},
		snapshot.Faded:      {color.FgHiBlack},
	}
	out := make(map[snapshot.Status]*color.Color, len(attrs))
	for s, a := range attrs {
		c := color.New(a...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		out[s] = c
	}

	return out
}

// paint colours text by status; unknown statuses are left plain.
func (r *Renderer) paint(s snapshot.Status, text string) string {
	if c, ok := r.palette[s]; ok {
		return c.Sprint(text)
	}

	return text
}

// Frame writes one frame, clearing the screen first when configured.
func (r *Renderer) Frame(content string) error {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.w, b.String())

	return err
}

// Status writes a status line.
func (r *Renderer) Status(msg string) error {
	_, err := fmt.Fprintln(r.w, r.paint(snapshot.Traversing, "» ")+msg)

	return err
}

// Summary formats the closing line of a run.
func Summary(algorithm, outcome string, steps int, elapsed time.Duration) string {
	return fmt.Sprintf("%s: %s in %s, %s steps", algorithm, outcome,
		humanize.SIWithDigits(elapsed.Seconds(), 2, "s"), humanize.Comma(int64(steps)))
}
