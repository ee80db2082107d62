package repository

import (
	"context"
	"errors"
	"fmt"
	"quill/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrPostNotFound error = errors.New("post not found")

type BlogRepository struct {
	db Storage
}

func NewBlogRepository(db Storage) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Post{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser is only used by the provisioning command.
func (r *BlogRepository) CreateUser(ctx context.Context, user *User) error {
	if err := r.db.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BlogRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BlogRepository) CreatePost(ctx context.Context, post *Post) error {
	if err := r.db.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *BlogRepository) GetPostByID(ctx context.Context, id uint) (Post, error) {
	var post Post

	err := r.db.GetOneBy(ctx, "id", id, &post)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("get post by id: %w", err)
	}

	return post, nil
}

// ListPosts returns every post, newest first.
func (r *BlogRepository) ListPosts(ctx context.Context) ([]Post, error) {
	posts := []Post{}

	err := r.db.GetAllOrdered(ctx, "created_at desc", &posts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}
