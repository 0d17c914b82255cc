// Package generator drafts blog content from a title. The production
// deployment fronts a third-party completion API behind the same port;
// this composer is the deterministic fallback shipped with the server.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// Composer produces a short multi-paragraph draft for a title.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

var paragraphTemplates = []string{
	"%s is a subject that rewards a closer look. Behind the familiar surface sits a mix of history, craft and perspective that most introductions skip past, and that gap is exactly where a good piece of writing can live.",
	"Start with what drew you to %s in the first place. A single concrete moment, a question you could not shake, a detail nobody else seemed to notice: readers follow specifics far more willingly than summaries.",
	"From there, widen the frame. How did %s come to matter, and to whom? Tracing that arc gives the piece a spine, and it leaves room for your own observations to carry the argument rather than decorate it.",
	"Close by returning to the present. What does %s look like today, and what would you tell someone encountering it for the first time? End on the detail you would want to be remembered by.",
}

// Generate composes a deterministic draft. It never fails; the error
// return satisfies the port for implementations that call out over the
// network.
func (c *Composer) Generate(_ context.Context, title string) (*ports.GeneratedPost, error) {
	title = strings.TrimSpace(title)

	paragraphs := make([]string, 0, len(paragraphTemplates))
	for _, tmpl := range paragraphTemplates {
		paragraphs = append(paragraphs, fmt.Sprintf(tmpl, title))
	}

	return &ports.GeneratedPost{
		Content:     strings.Join(paragraphs, "\n\n"),
		Description: fmt.Sprintf("An article about %s", title),
		Source:      "fallback",
	}, nil
}
