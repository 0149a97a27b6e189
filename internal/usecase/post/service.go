package post

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	authdomain "tijaniyah/backend/internal/domain/auth"
	domain "tijaniyah/backend/internal/domain/post"

	"github.com/google/uuid"
)

// Service encapsulates community post use cases.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a post service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for post creation.
type CreateInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Slug  string `json:"slug"`
}

// UpdateInput encapsulates partial post updates.
type UpdateInput struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
	Slug  *string `json:"slug"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Create stores a new post for the given author after validation. When no
// slug is supplied one is derived from the title.
func (s *Service) Create(ctx context.Context, authorID string, input CreateInput) (*domain.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Body = strings.TrimSpace(input.Body)
	input.Slug = strings.TrimSpace(strings.ToLower(input.Slug))
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", authdomain.ErrInvalidInput)
	}
	if input.Body == "" {
		return nil, fmt.Errorf("%w: body is required", authdomain.ErrInvalidInput)
	}
	if input.Slug == "" {
		input.Slug = Slugify(input.Title)
	}
	if !slugPattern.MatchString(input.Slug) {
		return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", authdomain.ErrInvalidInput)
	}

	if _, err := s.repo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domain.ErrDuplicateSlug
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.nowFunc().UTC()
	post := &domain.Post{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Slug:      input.Slug,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get retrieves a post by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: post id is required", authdomain.ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

// List returns all posts newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. Only the author or an admin may modify a
// post.
func (s *Service) Update(ctx context.Context, actor *authdomain.User, id string, input UpdateInput) (*domain.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID && actor.Role != authdomain.RoleAdmin {
		return nil, domain.ErrNotAuthor
	}

	if input.Slug != nil {
		slug := strings.TrimSpace(strings.ToLower(*input.Slug))
		if !slugPattern.MatchString(slug) {
			return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", authdomain.ErrInvalidInput)
		}
		if slug != post.Slug {
			if _, err := s.repo.GetBySlug(ctx, slug); err == nil {
				return nil, domain.ErrDuplicateSlug
			} else if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
		input.Slug = &slug
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", authdomain.ErrInvalidInput)
	}

	post.Update(input.Title, input.Body, input.Slug)
	post.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the author or an admin may delete it.
func (s *Service) Delete(ctx context.Context, actor *authdomain.User, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID && actor.Role != authdomain.RoleAdmin {
		return domain.ErrNotAuthor
	}
	return s.repo.Delete(ctx, post.ID)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
