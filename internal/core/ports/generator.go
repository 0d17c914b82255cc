package ports

import "context"

// GeneratedPost is a draft produced from a title.
type GeneratedPost struct {
	Content     string
	Description string
	Source      string
}

// ContentGenerator drafts blog content for a title. The production
// deployment fronts a third-party completion API; the bundled
// implementation composes a deterministic draft.
type ContentGenerator interface {
	Generate(ctx context.Context, title string) (*GeneratedPost, error)
}
