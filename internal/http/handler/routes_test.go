package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"quill/internal/core"
	coreFake "quill/internal/core/fake"
	"quill/internal/http/handler"
	"quill/internal/http/handler/middleware"
	"quill/internal/http/payload"
	"quill/internal/repository"
	"quill/internal/upload"
	tokenIssuer "quill/pkg/jwt"
	"quill/pkg/sanitize"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Routes", func() {
	var (
		mux      *http.ServeMux
		repo     *coreFake.Repository
		jwtSvc   *tokenIssuer.JWTService
		stored   []repository.Post
		imageDir string
		tokenFor func(offset time.Duration) string
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		jwtSvc = tokenIssuer.NewJWTService([]byte("test-secret"))

		hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		stored = nil
		repo = new(coreFake.Repository)
		repo.GetUserByUsernameStub = func(_ context.Context, username string) (repository.User, error) {
			if username != "admin" {
				return repository.User{}, repository.ErrUserNotFound
			}
			return repository.User{ID: 1, Username: "admin", Password: string(hash), Role: "admin"}, nil
		}
		repo.CreatePostStub = func(_ context.Context, post *repository.Post) error {
			post.ID = uint(len(stored) + 1)
			post.CreatedAt = time.Now()
			stored = append(stored, *post)
			return nil
		}
		repo.GetPostByIDStub = func(_ context.Context, id uint) (repository.Post, error) {
			if id == 0 || int(id) > len(stored) {
				return repository.Post{}, repository.ErrPostNotFound
			}
			return stored[id-1], nil
		}

		blog := core.NewBlog(logger, repo, jwtSvc, sanitize.NewHTMLSanitizer())
		imageDir = GinkgoT().TempDir()
		store, err := upload.NewStore(imageDir, "/uploads", upload.MaxSize)
		Expect(err).NotTo(HaveOccurred())

		bh, err := handler.NewBlogHandler(logger, payload.DecodeValidator{}, blog, store, false)
		Expect(err).NotTo(HaveOccurred())
		gate := middleware.NewAuthGate(logger, blog)

		mux = http.NewServeMux()
		mux.HandleFunc(handler.Post, gate.Optional(bh.HandlePost))
		mux.HandleFunc(handler.Auth, bh.HandleAuthenticate)
		mux.HandleFunc(handler.Logout, bh.HandleLogout)
		mux.HandleFunc(handler.Submit, gate.Required(bh.HandleSubmit))

		tokenFor = func(offset time.Duration) string {
			tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(offset) }
			defer func() { tokenIssuer.TimeNow = time.Now }()

			token, err := jwtSvc.Sign(jwtSvc.Generate(tokenIssuer.TokenInfo{UserID: 1, UserName: "admin", Role: "admin", Expiration: 1}))
			Expect(err).NotTo(HaveOccurred())
			return token
		}
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	jpeg := &image{contentType: "image/jpeg", body: []byte("jpeg-bytes")}

	It("should reject an anonymous submission before storing anything", func() {
		rec := serve(submitRequest("A fine title", validContent, jpeg))

		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(rec.Body.String()).To(Equal("Access denied!"))
		Expect(repo.CreatePostCallCount()).To(BeZero())
	})

	It("should treat an expired token as anonymous", func() {
		req := submitRequest("A fine title", validContent, jpeg)
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: tokenFor(-61 * time.Minute)})

		rec := serve(req)

		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should log in, publish and show a sanitized post", func() {
		login := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=admin&password=correct-horse"))
		login.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		loginRec := serve(login)
		Expect(loginRec.Code).To(Equal(http.StatusFound))
		cookie := loginRec.Result().Cookies()[0]

		content := `<p>safe</p><script>alert(1)</script>` + validContent
		req := submitRequest("A fine title", content, jpeg)
		req.AddCookie(cookie)
		Expect(serve(req).Code).To(Equal(http.StatusFound))

		rec := serve(httptest.NewRequest(http.MethodGet, "/post/1", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("<p>safe</p>"))
		Expect(rec.Body.String()).NotTo(ContainSubstring("<script>alert(1)</script>"))
		Expect(stored[0].Content).NotTo(ContainSubstring("<script"))
		Expect(stored[0].ImagePath).To(HaveSuffix(".jpg"))
	})

	It("should give unknown users and wrong passwords the same answer", func() {
		wrong := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=admin&password=nope"))
		wrong.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		unknown := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=ghost&password=nope"))
		unknown.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		wrongRec, unknownRec := serve(wrong), serve(unknown)

		Expect(wrongRec.Code).To(Equal(http.StatusUnauthorized))
		Expect(unknownRec.Code).To(Equal(http.StatusUnauthorized))
		Expect(wrongRec.Body.String()).To(Equal(unknownRec.Body.String()))
	})

	It("should keep accepting a copied token after logout", func() {
		token := tokenFor(0)

		logoutRec := serve(httptest.NewRequest(http.MethodGet, "/logout", nil))
		Expect(logoutRec.Code).To(Equal(http.StatusFound))

		req := submitRequest("A fine title", validContent, jpeg)
		req.Header.Set("Authorization", "Bearer "+token)
		Expect(serve(req).Code).To(Equal(http.StatusFound))
	})

	It("should refuse content that sanitizes to nothing", func() {
		content := "<script>" + strings.Repeat("x", 1000) + "</script>"
		req := submitRequest("A fine title", content, jpeg)
		req.Header.Set("Authorization", "Bearer "+tokenFor(0))

		rec := serve(req)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(Equal("Title, content and image are required!"))
		Expect(stored).To(BeEmpty())
		Expect(filesIn(imageDir)).To(BeZero())
	})

	It("should return 404 for unknown and non numeric ids", func() {
		Expect(serve(httptest.NewRequest(http.MethodGet, "/post/99", nil)).Code).To(Equal(http.StatusNotFound))
		Expect(serve(httptest.NewRequest(http.MethodGet, "/post/abc", nil)).Code).To(Equal(http.StatusNotFound))
	})
})
