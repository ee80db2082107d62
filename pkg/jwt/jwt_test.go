package jwt_test

import (
	"time"

	tokenIssuer "quill/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserID:     7,
			UserName:   "admin",
			Role:       "admin",
			Expiration: 1,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("should embed the identity and a one hour expiry", func() {
			now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
			tokenIssuer.TimeNow = func() time.Time { return now }

			token := service.Generate(info)
			claims := token.Claims.(jwt.MapClaims)

			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
			Expect(claims["id"]).To(Equal(uint(7)))
			Expect(claims["username"]).To(Equal("admin"))
			Expect(claims["role"]).To(Equal("admin"))
			Expect(claims["iat"]).To(Equal(now.Unix()))
			Expect(claims["exp"]).To(Equal(now.Add(time.Hour).Unix()))
		})
	})

	Describe("Validate", func() {
		var (
			signed string
			claims jwt.MapClaims
			err    error
		)

		JustBeforeEach(func() {
			claims, err = service.Validate(signed)
		})

		When("the token is fresh", func() {
			BeforeEach(func() {
				signed, err = service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the claims", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["id"]).To(BeNumerically("==", 7))
				Expect(claims["username"]).To(Equal("admin"))
				Expect(claims["role"]).To(Equal("admin"))
			})
		})

		When("the token is older than its validity window", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-61 * time.Minute) }
				signed, err = service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				tokenIssuer.TimeNow = time.Now
			})

			It("should reject it as expired", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(claims).To(BeNil())
			})
		})

		When("the clock moves past the expiry", func() {
			BeforeEach(func() {
				signed, err = service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(61 * time.Minute) }
			})

			It("should reject it as expired", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(claims).To(BeNil())
			})
		})

		When("the token carries no expiry", func() {
			BeforeEach(func() {
				token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"id": 7})
				signed, err = token.SignedString([]byte("test-secret"))
				Expect(err).NotTo(HaveOccurred())
			})

			It("should reject it as not valid", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token was signed with another secret", func() {
			BeforeEach(func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err = other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())
			})

			It("should reject it as not valid", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is malformed", func() {
			BeforeEach(func() {
				signed = "not.a.token"
			})

			It("should reject it as not valid", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token uses the none algorithm", func() {
			BeforeEach(func() {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"id":  1,
					"exp": time.Now().Add(time.Hour).Unix(),
				})
				signed, err = token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
