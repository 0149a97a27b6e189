package post

import (
	"context"
	"sync"
	"testing"

	authdomain "tijaniyah/backend/internal/domain/auth"
	domain "tijaniyah/backend/internal/domain/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]*domain.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[string]*domain.Post{}}
}

func (r *memPostRepo) Create(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	copy := *post
	r.posts[post.ID] = &copy
	return nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *memPostRepo) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			copy := *p
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memPostRepo) List(ctx context.Context) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Post
	for _, p := range r.posts {
		copy := *p
		out = append(out, &copy)
	}
	return out, nil
}

func (r *memPostRepo) Update(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrNotFound
	}
	copy := *post
	r.posts[post.ID] = &copy
	return nil
}

func (r *memPostRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func member(id string) *authdomain.User {
	return &authdomain.User{ID: id, Role: authdomain.RoleUser}
}

func admin() *authdomain.User {
	return &authdomain.User{ID: "admin-1", Role: authdomain.RoleAdmin}
}

func TestCreate_DerivesSlug(t *testing.T) {
	t.Parallel()
	svc := NewService(newMemPostRepo())

	post, err := svc.Create(context.Background(), "author-1", CreateInput{
		Title: "Jumu'ah Reminder: Friday Prayer!",
		Body:  "Gather early.",
	})
	require.NoError(t, err)
	assert.Equal(t, "jumu-ah-reminder-friday-prayer", post.Slug)
	assert.Equal(t, "author-1", post.AuthorID)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	svc := NewService(newMemPostRepo())

	_, err := svc.Create(context.Background(), "author-1", CreateInput{Body: "text"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), "author-1", CreateInput{Title: "t", Body: "b", Slug: "Not Valid!"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidInput)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	t.Parallel()
	svc := NewService(newMemPostRepo())

	_, err := svc.Create(context.Background(), "author-1", CreateInput{Title: "Eid Mubarak", Body: "b"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "author-2", CreateInput{Title: "Other", Body: "b", Slug: "eid-mubarak"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
}

func TestUpdate_Ownership(t *testing.T) {
	t.Parallel()
	svc := NewService(newMemPostRepo())

	post, err := svc.Create(context.Background(), "author-1", CreateInput{Title: "Original", Body: "b"})
	require.NoError(t, err)

	newTitle := "Edited"
	_, err = svc.Update(context.Background(), member("someone-else"), post.ID, UpdateInput{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrNotAuthor)

	updated, err := svc.Update(context.Background(), member("author-1"), post.ID, UpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)

	adminTitle := "Moderated"
	updated, err = svc.Update(context.Background(), admin(), post.ID, UpdateInput{Title: &adminTitle})
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)
}

func TestDelete_Ownership(t *testing.T) {
	t.Parallel()
	svc := NewService(newMemPostRepo())

	post, err := svc.Create(context.Background(), "author-1", CreateInput{Title: "Original", Body: "b"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), member("someone-else"), post.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthor)

	require.NoError(t, svc.Delete(context.Background(), member("author-1"), post.ID))

	_, err = svc.Get(context.Background(), post.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSlugify(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Hello World":          "hello-world",
		"  Trim -- me  ":       "trim-me",
		"Ramadan 2026 Begins!": "ramadan-2026-begins",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in))
	}
}
