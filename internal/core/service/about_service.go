package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// Sections of the About singleton that admins may replace.
var editableSections = map[string]struct{}{
	"hero":       {},
	"stats":      {},
	"mission":    {},
	"features":   {},
	"milestones": {},
	"team":       {},
}

// AboutService implements the About-page CMS: the singleton content
// document and the ordered team member list.
type AboutService struct {
	repo   ports.AboutRepository
	logger zerolog.Logger
}

func NewAboutService(repo ports.AboutRepository, logger zerolog.Logger) *AboutService {
	return &AboutService{repo: repo, logger: logger}
}

// Page returns the content plus team members. The public view filters
// to active members; the admin view sees everything.
func (s *AboutService) Page(ctx context.Context, includeInactive bool) (*ports.AboutPage, error) {
	content, err := s.repo.GetContent(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.ListTeamMembers(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return &ports.AboutPage{Content: *content, TeamMembers: members}, nil
}

// UpdateSection replaces one named section of the singleton.
func (s *AboutService) UpdateSection(ctx context.Context, section string, content any) error {
	if _, ok := editableSections[section]; !ok {
		return domain.NewFieldErrors("Validation failed", map[string]string{"section": "Unknown section"})
	}
	if err := s.repo.UpdateSection(ctx, section, content); err != nil {
		return err
	}
	s.logger.Info().Str("section", section).Msg("about section updated")
	return nil
}

// CreateTeamMember adds an active member.
func (s *AboutService) CreateTeamMember(ctx context.Context, in ports.CreateTeamMemberInput) (*domain.TeamMember, error) {
	now := time.Now().UTC()
	member := &domain.TeamMember{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Position:    in.Position,
		Bio:         in.Bio,
		ImageURL:    in.ImageURL,
		Email:       in.Email,
		SocialLinks: in.SocialLinks,
		Order:       in.Order,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if member.ImageURL == "" {
		member.ImageURL = "/images/default-avatar.png"
	}
	if err := s.repo.CreateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateTeamMember applies a partial update and returns the result.
func (s *AboutService) UpdateTeamMember(ctx context.Context, id string, upd domain.TeamMemberUpdate) (*domain.TeamMember, error) {
	updated, err := s.repo.UpdateTeamMember(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrTeamMemberNotFound
	}

	members, err := s.repo.ListTeamMembers(ctx, true)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, domain.ErrTeamMemberNotFound
}

// DeleteTeamMember removes a member outright.
func (s *AboutService) DeleteTeamMember(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteTeamMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTeamMemberNotFound
	}
	return nil
}

// ReorderTeamMembers rewrites the display order to match orderedIDs.
func (s *AboutService) ReorderTeamMembers(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return domain.NewFieldErrors("Validation failed", map[string]string{"orderedIds": "Ordered IDs array is required"})
	}
	return s.repo.ReorderTeamMembers(ctx, orderedIDs)
}
