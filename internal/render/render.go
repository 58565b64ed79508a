// Package render is the console stand-in for the in-vehicle UI. It consumes
// blocked-function sets and produces the driver-facing view.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/driveaware/restrictwatch/internal/model"
	"github.com/driveaware/restrictwatch/internal/text"
)

// Renderer writes the restriction view to an output stream.
type Renderer struct {
	out           io.Writer
	maxLength     int
	allClearLabel string
}

// New creates a renderer. maxLength bounds display text while long text is
// blocked; allClearLabel is shown when nothing is blocked.
func New(out io.Writer, maxLength int, allClearLabel string) *Renderer {
	return &Renderer{out: out, maxLength: maxLength, allClearLabel: allClearLabel}
}

// Render writes the view for one blocked set.
func (r *Renderer) Render(blocked model.BlockedSet) {
	fmt.Fprint(r.out, r.Format(blocked))
}

// Format returns the view for one blocked set as a string.
func (r *Renderer) Format(blocked model.BlockedSet) string {
	var b strings.Builder

	ts := time.Now().UTC().Format("15:04:05")
	if blocked.Empty() {
		fmt.Fprintf(&b, "[%s] OK    %s\n", ts, r.allClearLabel)
		return b.String()
	}

	fmt.Fprintf(&b, "[%s] BLOCK %s\n", ts, strings.Join(blocked.Labels(), ", "))
	return b.String()
}

// DisplayText bounds display text when long text is blocked; otherwise it
// passes through unchanged.
func (r *Renderer) DisplayText(blocked model.BlockedSet, s string) string {
	if blocked.Has(model.FuncLimitStringLength) {
		return text.Truncate(s, r.maxLength)
	}
	return s
}
