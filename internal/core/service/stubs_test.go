package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// In-memory stand-ins for the Mongo repositories, shared by the
// service tests in this package.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return domain.ErrUsernameTaken
		}
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
		if user.PhoneNumber != "" && u.PhoneNumber == user.PhoneNumber {
			return domain.ErrPhoneTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, in ports.ListUsersInput) ([]domain.User, int64, error) {
	var matched []domain.User
	for _, u := range r.users {
		if in.Search != "" {
			s := strings.ToLower(in.Search)
			if !strings.Contains(strings.ToLower(u.Username), s) && !strings.Contains(strings.ToLower(u.Email), s) {
				continue
			}
		}
		matched = append(matched, *u)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Username < matched[j].Username })

	total := int64(len(matched))
	start := (in.Page - 1) * in.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + in.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd domain.UserUpdate) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.PhoneNumber != nil {
		u.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.IsAdmin != nil {
		u.IsAdmin = *upd.IsAdmin
	}
	if upd.ProfilePicture != nil {
		u.ProfilePicture = *upd.ProfilePicture
	}
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type stubSessionRepo struct {
	sessions map[string]*domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	clone := *s
	r.sessions[s.Token] = &clone
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := r.sessions[token]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) (bool, error) {
	if _, ok := r.sessions[token]; !ok {
		return false, nil
	}
	delete(r.sessions, token)
	return true, nil
}

func (r *stubSessionRepo) FindByUser(_ context.Context, userID string) ([]domain.Session, error) {
	var out []domain.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for token, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}

type stubPostRepo struct {
	posts map[string]*domain.BlogPost
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.BlogPost)}
}

func clonePost(p *domain.BlogPost) *domain.BlogPost {
	clone := *p
	clone.Likes = append([]string(nil), p.Likes...)
	clone.Comments = append([]domain.Comment(nil), p.Comments...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.BlogPost) error {
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.BlogPost, error) {
	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]domain.BlogPost, error) {
	out := make([]domain.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, upd domain.PostUpdate) (bool, error) {
	p, ok := r.posts[id]
	if !ok {
		return false, nil
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	return true, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

func (r *stubPostRepo) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	var n int64
	for id, p := range r.posts {
		if p.AuthorID == authorID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) AddComment(_ context.Context, postID string, c domain.Comment) (bool, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	p.Comments = append(p.Comments, c)
	return true, nil
}

func (r *stubPostRepo) RemoveComment(_ context.Context, postID, commentID string) (bool, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPostRepo) AddLike(_ context.Context, postID, userID string) (bool, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	for _, id := range p.Likes {
		if id == userID {
			return false, nil
		}
	}
	p.Likes = append(p.Likes, userID)
	return true, nil
}

func (r *stubPostRepo) RemoveLike(_ context.Context, postID, userID string) (bool, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
