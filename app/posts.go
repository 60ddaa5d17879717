package app

import (
	"context"

	"github.com/CrestNiraj12/postboard/domain"
)

// PostService lists blog posts from the backend.
type PostService interface {
	// ListPosts returns all posts in the order the API sends them.
	// token is sent as-is; an empty token is still sent.
	ListPosts(ctx context.Context, token string) ([]domain.Post, error)
}
