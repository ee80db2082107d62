package main

import (
	"context"
	"errors"
	"fmt"
	"quill/internal/repository"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultRole = "admin"
	hashCost    = 10
)

var errMissingCredentials error = errors.New("username and password are required")

type UserCreator interface {
	CreateUser(ctx context.Context, user *repository.User) error
}

// provisionUser hashes password and stores a new user.
func provisionUser(ctx context.Context, users UserCreator, username, password, role string) (repository.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return repository.User{}, errMissingCredentials
	}
	if role == "" {
		role = defaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return repository.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	if err := users.CreateUser(ctx, &user); err != nil {
		return repository.User{}, err
	}

	return user, nil
}
