package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// AboutRepository persists the About-page singleton and the ordered
// team member list.
type AboutRepository interface {
	// GetContent returns the saved content merged over the defaults,
	// seeding the singleton document on first read.
	GetContent(ctx context.Context) (*domain.AboutContent, error)
	// UpdateSection replaces one named section of the singleton with
	// the given value (upserting the document when absent).
	UpdateSection(ctx context.Context, section string, content any) error

	CreateTeamMember(ctx context.Context, m *domain.TeamMember) error
	ListTeamMembers(ctx context.Context, includeInactive bool) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (bool, error)
	DeleteTeamMember(ctx context.Context, id string) (bool, error)
	// ReorderTeamMembers assigns Order = index for each id in order.
	ReorderTeamMembers(ctx context.Context, orderedIDs []string) error
}
