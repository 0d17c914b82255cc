package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

type stubAboutRepo struct {
	content  *domain.AboutContent
	members  map[string]*domain.TeamMember
	sections map[string]any
}

func newStubAboutRepo() *stubAboutRepo {
	return &stubAboutRepo{
		members:  make(map[string]*domain.TeamMember),
		sections: make(map[string]any),
	}
}

func (r *stubAboutRepo) GetContent(_ context.Context) (*domain.AboutContent, error) {
	if r.content == nil {
		c := domain.DefaultAboutContent()
		r.content = &c
	}
	clone := *r.content
	return &clone, nil
}

func (r *stubAboutRepo) UpdateSection(_ context.Context, section string, content any) error {
	r.sections[section] = content
	return nil
}

func (r *stubAboutRepo) CreateTeamMember(_ context.Context, m *domain.TeamMember) error {
	clone := *m
	r.members[m.ID] = &clone
	return nil
}

func (r *stubAboutRepo) ListTeamMembers(_ context.Context, includeInactive bool) ([]domain.TeamMember, error) {
	var out []domain.TeamMember
	for _, m := range r.members {
		if !includeInactive && !m.IsActive {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *stubAboutRepo) UpdateTeamMember(_ context.Context, id string, upd domain.TeamMemberUpdate) (bool, error) {
	m, ok := r.members[id]
	if !ok {
		return false, nil
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Position != nil {
		m.Position = *upd.Position
	}
	if upd.Bio != nil {
		m.Bio = *upd.Bio
	}
	if upd.ImageURL != nil {
		m.ImageURL = *upd.ImageURL
	}
	if upd.Email != nil {
		m.Email = *upd.Email
	}
	if upd.SocialLinks != nil {
		m.SocialLinks = *upd.SocialLinks
	}
	if upd.Order != nil {
		m.Order = *upd.Order
	}
	if upd.IsActive != nil {
		m.IsActive = *upd.IsActive
	}
	return true, nil
}

func (r *stubAboutRepo) DeleteTeamMember(_ context.Context, id string) (bool, error) {
	if _, ok := r.members[id]; !ok {
		return false, nil
	}
	delete(r.members, id)
	return true, nil
}

func (r *stubAboutRepo) ReorderTeamMembers(_ context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		if m, ok := r.members[id]; ok {
			m.Order = i
		}
	}
	return nil
}

func TestAboutService_Page_FiltersInactive(t *testing.T) {
	repo := newStubAboutRepo()
	svc := NewAboutService(repo, zerolog.Nop())

	m1, err := svc.CreateTeamMember(context.Background(), ports.CreateTeamMemberInput{Name: "Ada", Position: "Founder"})
	if err != nil {
		t.Fatalf("CreateTeamMember returned error: %v", err)
	}
	if _, err := svc.CreateTeamMember(context.Background(), ports.CreateTeamMemberInput{Name: "Ben", Position: "Engineer", Order: 1}); err != nil {
		t.Fatalf("CreateTeamMember returned error: %v", err)
	}

	inactive := false
	if _, err := svc.UpdateTeamMember(context.Background(), m1.ID, domain.TeamMemberUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("UpdateTeamMember returned error: %v", err)
	}

	public, err := svc.Page(context.Background(), false)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if len(public.TeamMembers) != 1 || public.TeamMembers[0].Name != "Ben" {
		t.Fatalf("expected only active members in public view, got %+v", public.TeamMembers)
	}

	adminView, err := svc.Page(context.Background(), true)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if len(adminView.TeamMembers) != 2 {
		t.Fatalf("expected all members in admin view, got %d", len(adminView.TeamMembers))
	}

	if adminView.Content.Hero.Title == "" {
		t.Fatalf("expected seeded default content")
	}
}

func TestAboutService_CreateTeamMember_Defaults(t *testing.T) {
	svc := NewAboutService(newStubAboutRepo(), zerolog.Nop())

	m, err := svc.CreateTeamMember(context.Background(), ports.CreateTeamMemberInput{Name: "Cia", Position: "Designer"})
	if err != nil {
		t.Fatalf("CreateTeamMember returned error: %v", err)
	}
	if !m.IsActive {
		t.Fatalf("new members start active")
	}
	if m.ImageURL != "/images/default-avatar.png" {
		t.Fatalf("expected default avatar, got %q", m.ImageURL)
	}
}

func TestAboutService_UpdateSection(t *testing.T) {
	repo := newStubAboutRepo()
	svc := NewAboutService(repo, zerolog.Nop())

	if err := svc.UpdateSection(context.Background(), "hero", map[string]string{"title": "New"}); err != nil {
		t.Fatalf("UpdateSection returned error: %v", err)
	}
	if _, ok := repo.sections["hero"]; !ok {
		t.Fatalf("expected hero section stored")
	}

	err := svc.UpdateSection(context.Background(), "footer", "nope")
	var fe *domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors for unknown section, got %v", err)
	}
}

func TestAboutService_Reorder(t *testing.T) {
	repo := newStubAboutRepo()
	svc := NewAboutService(repo, zerolog.Nop())

	a, _ := svc.CreateTeamMember(context.Background(), ports.CreateTeamMemberInput{Name: "A", Position: "x", Order: 0})
	b, _ := svc.CreateTeamMember(context.Background(), ports.CreateTeamMemberInput{Name: "B", Position: "x", Order: 1})

	if err := svc.ReorderTeamMembers(context.Background(), []string{b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderTeamMembers returned error: %v", err)
	}

	members, _ := repo.ListTeamMembers(context.Background(), true)
	if members[0].Name != "B" || members[1].Name != "A" {
		t.Fatalf("expected reordered members, got %+v", members)
	}

	if err := svc.ReorderTeamMembers(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty id list")
	}
}

func TestAboutService_DeleteTeamMember(t *testing.T) {
	svc := NewAboutService(newStubAboutRepo(), zerolog.Nop())

	m, _ := svc.CreateTeamMember(context.Background(), ports.CreateTeamMemberInput{Name: "Dan", Position: "x"})
	if err := svc.DeleteTeamMember(context.Background(), m.ID); err != nil {
		t.Fatalf("DeleteTeamMember returned error: %v", err)
	}
	if err := svc.DeleteTeamMember(context.Background(), m.ID); !errors.Is(err, domain.ErrTeamMemberNotFound) {
		t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
	}
}
