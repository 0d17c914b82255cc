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

func newAuthFixture(t *testing.T) (*AuthService, *stubUserRepo, *stubSessionRepo, *stubPostRepo) {
	t.Helper()
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	posts := newStubPostRepo()
	sessionSvc := NewSessionService(sessions, time.Hour, zerolog.Nop())
	// Minimum cost keeps the hashing fast in tests.
	svc := NewAuthService(users, sessionSvc, posts, bcrypt.MinCost, zerolog.Nop())
	return svc, users, sessions, posts
}

func signupInput(username, email, phone string) ports.SignupInput {
	return ports.SignupInput{
		Username:    username,
		Email:       email,
		PhoneNumber: phone,
		Gender:      domain.GenderOther,
		Password:    "s3cret!",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t)

	user, session, err := svc.Signup(context.Background(), signupInput("alice", "alice@example.com", "5512345678"))
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if user.PasswordHash == "s3cret!" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("self sign-up must never grant admin")
	}
	if session == nil || session.UserID != user.ID {
		t.Fatalf("expected initial session for new user, got %+v", session)
	}
	if _, ok := sessions.sessions[session.Token]; !ok {
		t.Fatalf("expected session to be persisted")
	}
}

func TestAuthService_Signup_InvalidGender(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	in := signupInput("bob", "bob@example.com", "5512345678")
	in.Gender = "unknown"

	_, _, err := svc.Signup(context.Background(), in)
	var fe *domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fe.Fields["gender"]; !ok {
		t.Fatalf("expected gender field error, got %+v", fe.Fields)
	}
}

func TestAuthService_Signup_DuplicateIdentity(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	if _, _, err := svc.Signup(context.Background(), signupInput("carol", "carol@example.com", "5511111111")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	// Username conflicts are case-insensitive.
	if _, _, err := svc.Signup(context.Background(), signupInput("CAROL", "other@example.com", "5522222222")); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), signupInput("carol2", "Carol@Example.com", "5522222222")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), signupInput("carol2", "carol2@example.com", "5511111111")); !errors.Is(err, domain.ErrPhoneTaken) {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
}

func TestAuthService_Login_ByEmailAndUsername(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	if _, _, err := svc.Signup(context.Background(), signupInput("dave", "dave@example.com", "5533333333")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	user, session, err := svc.Login(context.Background(), "dave@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
	if user.Username != "dave" || session == nil {
		t.Fatalf("unexpected login result: %+v / %+v", user, session)
	}

	user, session, err = svc.Login(context.Background(), "dave", "s3cret!")
	if err != nil {
		t.Fatalf("login by username failed: %v", err)
	}
	if user.Username != "dave" || session == nil {
		t.Fatalf("unexpected login result: %+v / %+v", user, session)
	}
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	var fe *domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe.Code != 401 {
		t.Fatalf("expected 401 credential failure, got %d", fe.Code)
	}
	if fe.Fields["emailOrUsername"] != "No account found with this email" {
		t.Fatalf("unexpected field message: %+v", fe.Fields)
	}

	_, _, err = svc.Login(context.Background(), "nobody", "whatever")
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe.Fields["emailOrUsername"] != "No account found with this username" {
		t.Fatalf("unexpected field message: %+v", fe.Fields)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	if _, _, err := svc.Signup(context.Background(), signupInput("erin", "erin@example.com", "5544444444")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "erin", "wrong")
	var fe *domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe.Code != 401 || fe.Fields["password"] != "Incorrect password" {
		t.Fatalf("unexpected credential failure: %+v", fe)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t)

	_, session, err := svc.Signup(context.Background(), signupInput("finn", "finn@example.com", "5555555555"))
	if err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, ok := sessions.sessions[session.Token]; ok {
		t.Fatalf("expected session to be deleted on logout")
	}

	// Absent token is a no-op, not an error.
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-token logout returned error: %v", err)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	svc, users, sessions, posts := newAuthFixture(t)

	user, session, err := svc.Signup(context.Background(), signupInput("gail", "gail@example.com", "5566666666"))
	if err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := posts.Create(context.Background(), &domain.BlogPost{ID: "p" + string(rune('0'+i)), AuthorID: user.ID}); err != nil {
			t.Fatalf("seed post failed: %v", err)
		}
	}

	stored, _ := users.FindByID(context.Background(), user.ID)

	deleted, err := svc.DeleteAccount(context.Background(), stored, "s3cret!")
	if err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 posts deleted, got %d", deleted)
	}
	if _, err := users.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user record to be gone, got %v", err)
	}
	if _, ok := sessions.sessions[session.Token]; ok {
		t.Fatalf("expected sessions to be cascaded")
	}
	if len(posts.posts) != 0 {
		t.Fatalf("expected posts to be cascaded, %d remain", len(posts.posts))
	}
}

func TestAuthService_DeleteAccount_WrongPassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	user, _, err := svc.Signup(context.Background(), signupInput("hank", "hank@example.com", "5577777777"))
	if err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}
	stored, _ := users.FindByID(context.Background(), user.ID)

	_, err = svc.DeleteAccount(context.Background(), stored, "wrong")
	var fe *domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, stillThere := users.users[user.ID]; !stillThere {
		t.Fatalf("account must survive a failed password check")
	}
}

func TestAuthService_DeleteAccount_AdminRefused(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	admin := seedUser(t, users, "root", true)
	if _, err := svc.DeleteAccount(context.Background(), admin, "anything"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin self-deletion, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	user, _, err := svc.Signup(context.Background(), signupInput("iris", "iris@example.com", "5588888888"))
	if err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	newEmail := "iris+new@example.com"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, domain.UserUpdate{Email: &newEmail})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Email != newEmail {
		t.Fatalf("expected updated email, got %s", updated.Email)
	}

	// Re-submitting your own current username is not a conflict.
	same := "iris"
	if _, err := svc.UpdateProfile(context.Background(), user.ID, domain.UserUpdate{Username: &same}); err != nil {
		t.Fatalf("own-value update should not conflict: %v", err)
	}

	// The admin flag cannot be self-assigned.
	wantAdmin := true
	if _, err := svc.UpdateProfile(context.Background(), user.ID, domain.UserUpdate{Email: &newEmail, IsAdmin: &wantAdmin}); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if users.users[user.ID].IsAdmin {
		t.Fatalf("profile update must not grant admin")
	}
}

func TestAuthService_UpdateProfile_Conflict(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	if _, _, err := svc.Signup(context.Background(), signupInput("jack", "jack@example.com", "5599999999")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}
	user, _, err := svc.Signup(context.Background(), signupInput("jill", "jill@example.com", "5500000000"))
	if err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	taken := "JACK"
	if _, err := svc.UpdateProfile(context.Background(), user.ID, domain.UserUpdate{Username: &taken}); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}
