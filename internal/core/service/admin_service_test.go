package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

func newAdminFixture(t *testing.T) (*AdminService, *stubUserRepo, *stubPostRepo, *stubSessionRepo) {
	t.Helper()
	users := newStubUserRepo()
	posts := newStubPostRepo()
	sessions := newStubSessionRepo()
	sessionSvc := NewSessionService(sessions, time.Hour, zerolog.Nop())
	svc := NewAdminService(users, posts, sessionSvc, bcrypt.MinCost, zerolog.Nop())
	return svc, users, posts, sessions
}

func TestAdminService_ListUsers_Pagination(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		seedUser(t, users, id, false)
	}

	page, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 {
		t.Fatalf("expected 5 users over 3 pages, got %d/%d", page.Total, page.TotalPages)
	}
	if !page.HasNext || page.HasPrev {
		t.Fatalf("first page should have next only, got next=%v prev=%v", page.HasNext, page.HasPrev)
	}
	if len(page.Users) != 2 {
		t.Fatalf("expected 2 users on page, got %d", len(page.Users))
	}

	last, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Page: 3, Limit: 2})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if last.HasNext || !last.HasPrev {
		t.Fatalf("last page should have prev only, got next=%v prev=%v", last.HasNext, last.HasPrev)
	}
	if len(last.Users) != 1 {
		t.Fatalf("expected 1 user on last page, got %d", len(last.Users))
	}
}

func TestAdminService_ListUsers_Search(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	seedUser(t, users, "alpha", false)
	seedUser(t, users, "beta", false)

	page, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Search: "ALPHA"})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if page.Total != 1 || page.Users[0].ID != "alpha" {
		t.Fatalf("expected the alpha user only, got %+v", page.Users)
	}
}

func TestAdminService_ListUsers_Defaults(t *testing.T) {
	svc, _, _, _ := newAdminFixture(t)

	page, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", page.Page)
	}
}

func TestAdminService_CreateUser(t *testing.T) {
	svc, _, _, _ := newAdminFixture(t)

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username:    "mina",
		Email:       "mina@example.com",
		PhoneNumber: "5512121212",
		Gender:      domain.GenderFemale,
		Password:    "pass123",
		IsAdmin:     true,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if !user.IsAdmin {
		t.Fatalf("expected admin flag to stick")
	}

	_, err = svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username:    "Mina",
		Email:       "mina2@example.com",
		PhoneNumber: "5534343434",
		Gender:      domain.GenderFemale,
		Password:    "pass123",
	})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAdminService_DeleteUser_Cascades(t *testing.T) {
	svc, users, posts, sessions := newAdminFixture(t)
	boss := seedUser(t, users, "boss", true)
	seedUser(t, users, "victim", false)

	_ = posts.Create(context.Background(), &domain.BlogPost{ID: "p1", AuthorID: "victim"})
	_ = sessions.Create(context.Background(), &domain.Session{Token: "tok1", UserID: "victim", CreatedAt: time.Now()})

	if err := svc.DeleteUser(context.Background(), boss, "victim"); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), "victim"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user to be gone, got %v", err)
	}
	if len(posts.posts) != 0 {
		t.Fatalf("expected posts cascaded, %d remain", len(posts.posts))
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected sessions cascaded, %d remain", len(sessions.sessions))
	}
}

func TestAdminService_DeleteUser_Refusals(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	boss := seedUser(t, users, "boss", true)
	seedUser(t, users, "peer", true)

	if err := svc.DeleteUser(context.Background(), boss, "boss"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for self-deletion, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), boss, "peer"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin target, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), boss, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_ToggleAdmin(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	boss := seedUser(t, users, "boss", true)
	seedUser(t, users, "plain", false)

	user, err := svc.ToggleAdmin(context.Background(), boss, "plain")
	if err != nil {
		t.Fatalf("ToggleAdmin returned error: %v", err)
	}
	if !user.IsAdmin {
		t.Fatalf("expected admin flag set")
	}

	user, err = svc.ToggleAdmin(context.Background(), boss, "plain")
	if err != nil {
		t.Fatalf("ToggleAdmin returned error: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("expected admin flag cleared on second toggle")
	}

	if _, err := svc.ToggleAdmin(context.Background(), boss, "boss"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for self-toggle, got %v", err)
	}
}

func TestAdminService_UpdateUser_Conflict(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	seedUser(t, users, "one", false)
	seedUser(t, users, "two", false)

	taken := "u-one"
	if _, err := svc.UpdateUser(context.Background(), "two", domain.UserUpdate{Username: &taken}); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	fresh := "renamed"
	user, err := svc.UpdateUser(context.Background(), "two", domain.UserUpdate{Username: &fresh})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if user.Username != "renamed" {
		t.Fatalf("expected renamed user, got %s", user.Username)
	}
}

func TestAdminService_Posts_BypassOwnership(t *testing.T) {
	svc, _, posts, _ := newAdminFixture(t)
	_ = posts.Create(context.Background(), &domain.BlogPost{ID: "p1", AuthorID: "someone", Title: "old"})

	title := "moderated"
	if err := svc.UpdatePost(context.Background(), "p1", domain.PostUpdate{Title: &title}); err != nil {
		t.Fatalf("UpdatePost returned error: %v", err)
	}
	got, _ := posts.FindByID(context.Background(), "p1")
	if got.Title != "moderated" {
		t.Fatalf("expected title replaced, got %q", got.Title)
	}

	if err := svc.DeletePost(context.Background(), "p1"); err != nil {
		t.Fatalf("DeletePost returned error: %v", err)
	}
	if err := svc.DeletePost(context.Background(), "p1"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
