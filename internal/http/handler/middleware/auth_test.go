package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"quill/internal/core"
	"quill/internal/http/handler/fake"
	"quill/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Auth gate", func() {
	var (
		resolver *fake.BlogService
		req      *http.Request
		admin    core.Identity
	)

	BeforeEach(func() {
		admin = core.Identity{ID: 1, Username: "admin", Role: "admin"}
		resolver = new(fake.BlogService)
		resolver.ResolveIdentityStub = func(token string) (core.Identity, bool) {
			if token == "good-token" {
				return admin, true
			}
			return core.Identity{}, false
		}
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	})

	Describe("ResolveIdentity", func() {
		It("should treat a request without a token as anonymous", func() {
			_, ok := middleware.ResolveIdentity(req, resolver)
			Expect(ok).To(BeFalse())
			Expect(resolver.ResolveIdentityCallCount()).To(BeZero())
		})

		It("should read a bearer token", func() {
			req.Header.Set("Authorization", "Bearer good-token")

			id, ok := middleware.ResolveIdentity(req, resolver)
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal(admin))
		})

		It("should read the auth cookie", func() {
			req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "good-token"})

			id, ok := middleware.ResolveIdentity(req, resolver)
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal(admin))
		})

		It("should prefer the header over the cookie", func() {
			req.Header.Set("Authorization", "Bearer bad-token")
			req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "good-token"})

			_, ok := middleware.ResolveIdentity(req, resolver)
			Expect(ok).To(BeFalse())
			Expect(resolver.ResolveIdentityArgsForCall(0)).To(Equal("bad-token"))
		})

		It("should ignore other authorization schemes", func() {
			req.Header.Set("Authorization", "Basic good-token")

			_, ok := middleware.ResolveIdentity(req, resolver)
			Expect(ok).To(BeFalse())
			Expect(resolver.ResolveIdentityCallCount()).To(BeZero())
		})
	})

	Describe("RequireIdentity", func() {
		It("should reject an absent identity", func() {
			_, err := middleware.RequireIdentity(core.Identity{}, false)
			Expect(err).To(MatchError(middleware.ErrUnauthorized))
		})

		It("should pass a present identity through", func() {
			id, err := middleware.RequireIdentity(admin, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(admin))
		})
	})

	Describe("AuthGate", func() {
		var (
			gate *middleware.AuthGate
			w    *httptest.ResponseRecorder
		)

		BeforeEach(func() {
			gate = middleware.NewAuthGate(zap.NewNop().Sugar(), resolver)
			w = httptest.NewRecorder()
		})

		It("should pass anonymous requests to optional handlers", func() {
			called := false
			gate.Optional(func(w http.ResponseWriter, r *http.Request, id core.Identity, ok bool) {
				called = true
				Expect(ok).To(BeFalse())
			})(w, req)

			Expect(called).To(BeTrue())
		})

		It("should answer 401 for anonymous requests to protected handlers", func() {
			called := false
			gate.Required(func(w http.ResponseWriter, r *http.Request, id core.Identity) {
				called = true
			})(w, req)

			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(Equal(middleware.AccessDeniedMsg))
		})

		It("should hand the identity to protected handlers", func() {
			req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "good-token"})

			var got core.Identity
			gate.Required(func(w http.ResponseWriter, r *http.Request, id core.Identity) {
				got = id
			})(w, req)

			Expect(got).To(Equal(admin))
		})
	})
})
