package post

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a post could not be located.
	ErrNotFound = errors.New("post not found")
	// ErrDuplicateSlug signals slug uniqueness constraint breaches.
	ErrDuplicateSlug = errors.New("post with slug already exists")
	// ErrNotAuthor indicates the caller does not own the post.
	ErrNotAuthor = errors.New("only the author may modify this post")
)

// Post captures a community post authored by a member.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Update applies arbitrary field updates to the post.
func (p *Post) Update(title, body, slug *string) {
	if title != nil {
		p.Title = *title
	}
	if body != nil {
		p.Body = *body
	}
	if slug != nil {
		p.Slug = *slug
	}
	p.UpdatedAt = time.Now().UTC()
}
