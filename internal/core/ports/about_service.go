package ports

import (
	"context"

	"github.com/bloghub/bloghub-api/internal/core/domain"
)

// AboutPage bundles the singleton content with its team members.
type AboutPage struct {
	Content     domain.AboutContent
	TeamMembers []domain.TeamMember
}

// CreateTeamMemberInput carries a validated member creation request.
type CreateTeamMemberInput struct {
	Name        string
	Position    string
	Bio         string
	ImageURL    string
	Email       string
	SocialLinks domain.SocialLinks
	Order       int
}

type AboutService interface {
	// Page returns the public view (active members only) or the admin
	// view (all members) of the About page.
	Page(ctx context.Context, includeInactive bool) (*AboutPage, error)
	UpdateSection(ctx context.Context, section string, content any) error
	CreateTeamMember(ctx context.Context, in CreateTeamMemberInput) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error
	ReorderTeamMembers(ctx context.Context, orderedIDs []string) error
}
