package core

import (
	"context"
	"errors"
	"fmt"
	"quill/internal/repository"
	tokenIssuer "quill/pkg/jwt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrPostNotFound error = errors.New("post not found")
var ErrEmptyContent error = errors.New("content is empty after sanitization")

// tokenExpiration is the token validity window in hours.
const tokenExpiration = 1

// decoyHash is compared against when the username is unknown so both login
// failures cost one bcrypt comparison.
const decoyHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// Blog implements credential verification, identity resolution and the post
// store operations behind the http handlers.
type Blog struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	sanitizer Sanitizer
}

// NewBlog is a constructor function for the Blog type.
func NewBlog(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, sanitizer Sanitizer) *Blog {
	return &Blog{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		sanitizer: sanitizer,
	}
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it issues a signed token for the user.
func (b *Blog) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := b.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(decoyHash), []byte(msg.Password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(msg.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserID:     user.ID,
		UserName:   user.Username,
		Role:       user.Role,
		Expiration: tokenExpiration,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	b.logs.Infow("user authenticated", "user_id", user.ID, "username", user.Username)
	return signed, nil
}

// ResolveIdentity verifies token and rebuilds the identity it asserts. Any
// verification failure yields false.
func (b *Blog) ResolveIdentity(token string) (Identity, bool) {
	if token == "" {
		return Identity{}, false
	}

	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		b.logs.Debugw("token rejected", "error", err)
		return Identity{}, false
	}

	id, ok := claims["id"].(float64)
	if !ok || id < 1 {
		return Identity{}, false
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return Identity{
		ID:       uint(id),
		Username: username,
		Role:     role,
	}, true
}

// ListPosts retrieves every stored post, newest first.
func (b *Blog) ListPosts(ctx context.Context) ([]PostRecord, error) {
	posts, err := b.repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	records := make([]PostRecord, len(posts))
	for i, post := range posts {
		records[i] = postToRecord(post)
	}
	return records, nil
}

// GetPost retrieves a single post by id.
func (b *Blog) GetPost(ctx context.Context, id uint) (PostRecord, error) {
	post, err := b.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("get post by id: %w", err)
	}

	return postToRecord(post), nil
}

// SubmitPost sanitizes the content of an already validated post and stores it.
// Content that sanitizes down to nothing is rejected with ErrEmptyContent.
func (b *Blog) SubmitPost(ctx context.Context, msg PostMessage) (PostRecord, error) {
	content := b.sanitizer.Sanitize(msg.Content)
	if strings.TrimSpace(content) == "" {
		return PostRecord{}, ErrEmptyContent
	}

	post := repository.Post{
		Title:     msg.Title,
		Content:   content,
		ImagePath: msg.ImagePath,
	}

	if err := b.repo.CreatePost(ctx, &post); err != nil {
		return PostRecord{}, fmt.Errorf("create post: %w", err)
	}

	b.logs.Infow("post submitted", "post_id", post.ID, "image_path", post.ImagePath)
	return postToRecord(post), nil
}

func postToRecord(post repository.Post) PostRecord {
	return PostRecord{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		ImagePath: post.ImagePath,
		CreatedAt: post.CreatedAt,
	}
}
