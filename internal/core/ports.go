package core

import (
	"context"
	"quill/internal/repository"
	tokenIssuer "quill/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreatePost(ctx context.Context, post *repository.Post) error
	GetPostByID(ctx context.Context, id uint) (repository.Post, error)
	ListPosts(ctx context.Context) ([]repository.Post, error)
}

type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

type Sanitizer interface {
	Sanitize(content string) string
}
