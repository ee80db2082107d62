package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"quill/internal/core"
	"quill/internal/http/handler/middleware"
	"quill/internal/http/payload"
	"quill/internal/upload"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var (
	Home    = "GET /{$}"
	Post    = "GET /post/{id}"
	NewPost = "GET /new-post"
	AboutMe = "GET /about-me"
	Login   = "GET /login"
	Auth    = "POST /login"
	Logout  = "GET /logout"
	Submit  = "POST /submit"
)

const (
	// tokenMaxAge matches the token validity window.
	tokenMaxAge = 3600
	// maxSubmitBody leaves room for the text fields next to a full size image.
	maxSubmitBody = upload.MaxSize + 2<<20
)

type BlogHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	blog             BlogService
	images           payload.ImageStore
	pages            *Pages
	secureCookie     bool
}

func NewBlogHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, blog BlogService, images payload.ImageStore, secureCookie bool) (*BlogHandler, error) {
	pages, err := loadPages()
	if err != nil {
		return nil, err
	}

	return &BlogHandler{
		logs:             logger,
		requestValidator: requestValidator,
		blog:             blog,
		images:           images,
		pages:            pages,
		secureCookie:     secureCookie,
	}, nil
}

type postView struct {
	ID        uint
	Title     string
	Content   template.HTML
	ImagePath string
	CreatedAt time.Time
}

type pageData struct {
	User  *core.Identity
	Posts []postView
	Post  postView
}

func newPageData(id core.Identity, ok bool) pageData {
	if !ok {
		return pageData{}
	}
	return pageData{User: &id}
}

// toView marks stored content as safe markup. Content only reaches the store
// through SubmitPost, which sanitizes it.
func toView(post core.PostRecord) postView {
	return postView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   template.HTML(post.Content),
		ImagePath: post.ImagePath,
		CreatedAt: post.CreatedAt,
	}
}

func (h *BlogHandler) HandleHome(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool) {
	requestId := middleware.GetRequestID(r)

	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		h.respondText(w, loadPostsErrorMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to list posts",
			"error", err,
			"handler", Home,
			"request_id", requestId)
		return
	}

	data := newPageData(id, ok)
	data.Posts = make([]postView, len(posts))
	for i, post := range posts {
		data.Posts[i] = toView(post)
	}

	h.render(w, h.pages.Home, data, Home, requestId)
}

func (h *BlogHandler) HandlePost(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool) {
	requestId := middleware.GetRequestID(r)

	postID, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil || postID == 0 {
		h.respondText(w, postNotFoundMsg, http.StatusNotFound)
		return
	}

	post, err := h.blog.GetPost(r.Context(), uint(postID))
	if err != nil {
		if errors.Is(err, core.ErrPostNotFound) {
			h.respondText(w, postNotFoundMsg, http.StatusNotFound)
			return
		}
		h.respondText(w, postServerErrorMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to get post",
			"error", err,
			"post_id", postID,
			"handler", Post,
			"request_id", requestId)
		return
	}

	data := newPageData(id, ok)
	data.Post = toView(post)
	h.render(w, h.pages.Post, data, Post, requestId)
}

func (h *BlogHandler) HandleNewPost(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool) {
	h.render(w, h.pages.NewPost, newPageData(id, ok), NewPost, middleware.GetRequestID(r))
}

func (h *BlogHandler) HandleAboutMe(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool) {
	h.render(w, h.pages.AboutMe, newPageData(id, ok), AboutMe, middleware.GetRequestID(r))
}

func (h *BlogHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool) {
	h.render(w, h.pages.Login, newPageData(id, ok), Login, middleware.GetRequestID(r))
}

// HandleAuthenticate answers unknown users, wrong passwords and empty
// credentials with the same 401 body.
func (h *BlogHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r)

	authReq, err := h.requestValidator.DecodeAndValidateForm(r)
	if err != nil {
		loginAttempts.WithLabelValues("invalid").Inc()
		h.respondText(w, invalidCredentialsMsg, http.StatusUnauthorized)
		h.logs.Infow("login payload rejected",
			"error", err,
			"handler", Auth,
			"request_id", requestId)
		return
	}

	token, err := h.blog.Authenticate(r.Context(), authReq.ToCoreAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			loginAttempts.WithLabelValues("invalid").Inc()
			h.respondText(w, invalidCredentialsMsg, http.StatusUnauthorized)
			h.logs.Infow("login failed",
				"handler", Auth,
				"request_id", requestId)
			return
		}

		loginAttempts.WithLabelValues("error").Inc()
		h.respondText(w, loginServerErrorMsg, http.StatusInternalServerError)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Auth,
			"request_id", requestId)
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	http.SetCookie(w, h.authCookie(token, tokenMaxAge))
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout only clears the cookie. The token itself stays valid until it
// expires.
func (h *BlogHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.authCookie("", -1))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *BlogHandler) HandleSubmit(w http.ResponseWriter, r *http.Request, id core.Identity) {
	requestId := middleware.GetRequestID(r)
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBody)

	submitReq, image, err := h.requestValidator.DecodeSubmission(r, h.images)
	if err != nil {
		var bodyTooLarge *http.MaxBytesError
		if errors.Is(err, payload.ErrSaveImage) && !errors.As(err, &bodyTooLarge) {
			h.respondText(w, saveErrorMsg, http.StatusInternalServerError)
			h.logs.Errorw("failed to store uploaded image",
				"error", err,
				"handler", Submit,
				"request_id", requestId)
			return
		}
		h.respondText(w, malformedFormMsg, http.StatusBadRequest)
		h.logs.Infow("malformed submission",
			"error", err,
			"handler", Submit,
			"request_id", requestId)
		return
	}

	switch image.Status {
	case upload.TooLarge:
		h.respondText(w, fileTooLargeMsg, http.StatusBadRequest)
		return
	case upload.BadType:
		h.respondText(w, fileTypeMsg, http.StatusBadRequest)
		return
	case upload.Unexpected:
		h.respondText(w, unexpectedFileMsg, http.StatusBadRequest)
		return
	}

	if err := submitReq.Validate(); err != nil {
		h.discardImage(image, requestId)
		h.respondJSON(w, ValidationResponse{Errors: payload.FieldErrors(err)}, http.StatusBadRequest, requestId)
		return
	}

	if image.Status != upload.Accepted {
		h.respondText(w, missingFieldsMsg, http.StatusBadRequest)
		return
	}

	post, err := h.blog.SubmitPost(r.Context(), submitReq.ToCorePostMessage(image.Path))
	if err != nil {
		h.discardImage(image, requestId)
		if errors.Is(err, core.ErrEmptyContent) {
			h.respondText(w, missingFieldsMsg, http.StatusBadRequest)
			return
		}
		h.respondText(w, saveErrorMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to save post",
			"error", err,
			"handler", Submit,
			"request_id", requestId)
		return
	}

	postsSubmitted.Inc()
	h.logs.Infow("post created",
		"post_id", post.ID,
		"user_id", id.ID,
		"handler", Submit,
		"request_id", requestId)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *BlogHandler) discardImage(image upload.Result, requestId string) {
	if image.Status != upload.Accepted {
		return
	}
	if err := h.images.Remove(image.Path); err != nil {
		h.logs.Errorw("failed to remove orphaned image",
			"error", err,
			"path", image.Path,
			"request_id", requestId)
	}
}

func (h *BlogHandler) authCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *BlogHandler) render(w http.ResponseWriter, page *template.Template, data pageData, route, requestId string) {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.respondText(w, renderErrorMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *BlogHandler) respondText(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

func (h *BlogHandler) respondJSON(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
