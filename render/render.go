// Package render prints the steps of a water-sort solution, either as
// one line per step or with the bottles drawn upright.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/watersort/puzzle"
)

// StartAction labels the root step, which has no action of its own.
const StartAction = "start"

// Step is one state on a solution path and the action that produced it.
type Step struct {
	State  puzzle.State
	Action string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor enables ANSI coloring of layers regardless of terminal detection.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// WithBottles draws every state as upright bottles below its header line.
func WithBottles(enabled bool) Option {
	return func(r *Renderer) { r.bottles = enabled }
}

// palette is assigned to colors in order of first appearance.
var palette = []color.Attribute{
	color.FgRed, color.FgGreen, color.FgYellow, color.FgBlue,
	color.FgMagenta, color.FgCyan, color.FgHiRed, color.FgHiGreen,
	color.FgHiYellow, color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan,
}

// Renderer writes steps to w. It is not safe for concurrent use.
type Renderer struct {
	w       io.Writer
	color   bool
	bottles bool
	colors  map[puzzle.Layer]*color.Color
}

// New returns a Renderer writing plain, uncolored lines unless configured.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, colors: make(map[puzzle.Layer]*color.Color)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Steps writes every step in order.
func (r *Renderer) Steps(steps []Step) error {
	for _, s := range steps {
		if err := r.Step(s); err != nil {
			return err
		}
	}
	return nil
}

// Step writes "State: <encoding> | Action: <action>" and, when enabled,
// the bottle drawing followed by a blank line.
func (r *Renderer) Step(s Step) error {
	action := s.Action
	if action == "" {
		action = StartAction
	}
	if _, err := fmt.Fprintf(r.w, "State: %s | Action: %s\n", s.State, action); err != nil {
		return err
	}
	if !r.bottles {
		return nil
	}
	if err := r.State(s.State); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, "\n")
	return err
}

// State draws s upright: surface at the top row, indices below.
func (r *Renderer) State(s puzzle.State) error {
	if len(s) == 0 {
		return nil
	}
	var sb strings.Builder
	cells := make([]string, len(s))
	for k := s[0].Capacity() - 1; k >= 0; k-- {
		for i, b := range s {
			cells[i] = "|" + r.layer(b.Slot(k)) + "|"
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	for i := range cells {
		cells[i] = "+-+"
	}
	sb.WriteString(strings.Join(cells, " "))
	sb.WriteByte('\n')
	for i := range cells {
		cells[i] = fmt.Sprintf("%2d ", i)
	}
	sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	sb.WriteByte('\n')

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// layer renders one slot as a single visible column.
func (r *Renderer) layer(l puzzle.Layer) string {
	if l == puzzle.Empty {
		return " "
	}
	sym := string(l.Symbol())
	if !r.color {
		return sym
	}
	c, ok := r.colors[l]
	if !ok {
		c = color.New(palette[len(r.colors)%len(palette)], color.Bold)
		c.EnableColor()
		r.colors[l] = c
	}
	return c.Sprint(sym)
}
