package handler

import (
	"context"
	"net/http"
	"quill/internal/core"
	"quill/internal/http/payload"
	"quill/internal/upload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BlogService . BlogService
type BlogService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ResolveIdentity(token string) (core.Identity, bool)
	ListPosts(ctx context.Context) ([]core.PostRecord, error)
	GetPost(ctx context.Context, id uint) (core.PostRecord, error)
	SubmitPost(ctx context.Context, msg core.PostMessage) (core.PostRecord, error)
}

type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request) (payload.AuthRequest, error)
	DecodeSubmission(r *http.Request, images payload.ImageStore) (payload.SubmitRequest, upload.Result, error)
}
