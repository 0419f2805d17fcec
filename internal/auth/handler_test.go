package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/auth"
	authPostgres "github.com/veiligwerk/toolbox-tracker/internal/auth/postgres"
	userDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/user"
)

var _ = Describe("Auth Handler Integration", func() {
	var (
		db      *gorm.DB
		service *auth.Service
		handler *auth.Handler
		router  *chi.Mux
	)

	registerBody := `{"username":"jdoe","email":"jdoe@example.com","password":"secret123","name":"Jan de Vries"}`

	doRequest := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	login := func(username, password string) (auth.TokenResponse, *httptest.ResponseRecorder) {
		w := doRequest(http.MethodPost, "/auth/login",
			`{"username":"`+username+`","password":"`+password+`"}`, "")
		var tokens auth.TokenResponse
		if w.Code == http.StatusOK {
			Expect(json.NewDecoder(w.Body).Decode(&tokens)).To(Succeed())
		}
		return tokens, w
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())

		repo := authPostgres.NewRepository(db)
		tokenGen := auth.NewJWTTokenGenerator("test-secret-at-least-32-characters-long", time.Hour)
		service = auth.NewService(repo, tokenGen, nil, nil, 4)
		handler = auth.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/auth/register", handler.Register)
		router.Post("/auth/login", handler.Login)
		router.Group(func(r chi.Router) {
			r.Use(handler.AuthMiddleware)
			r.Get("/auth/me", handler.Me)
			r.Post("/auth/logout", handler.Logout)
			r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(apperrors.ActorIDFromContext(r.Context())))
			})
			r.Group(func(ar chi.Router) {
				ar.Use(handler.RequireAdmin)
				ar.Get("/admin-only", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNoContent)
				})
			})
		})
	})

	Describe("POST /auth/register", func() {
		It("should create the account and never echo the password", func() {
			w := doRequest(http.MethodPost, "/auth/register", registerBody, "")

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).NotTo(ContainSubstring("secret123"))
			Expect(w.Body.String()).NotTo(ContainSubstring("password_hash"))

			var created auth.User
			Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())
			Expect(created.Username).To(Equal("jdoe"))
			Expect(created.Role).To(Equal(auth.RoleEmployee))
		})

		It("should reject a duplicate registration", func() {
			Expect(doRequest(http.MethodPost, "/auth/register", registerBody, "").Code).To(Equal(http.StatusCreated))

			w := doRequest(http.MethodPost, "/auth/register", registerBody, "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject malformed JSON", func() {
			w := doRequest(http.MethodPost, "/auth/register", `{"username":`, "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /auth/login", func() {
		BeforeEach(func() {
			Expect(doRequest(http.MethodPost, "/auth/register", registerBody, "").Code).To(Equal(http.StatusCreated))
		})

		It("should return a bearer token for valid credentials", func() {
			tokens, w := login("jdoe", "secret123")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.TokenType).To(Equal("bearer"))
			Expect(tokens.User.Username).To(Equal("jdoe"))
		})

		It("should reject wrong credentials with 401", func() {
			_, w := login("jdoe", "wrong")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("GET /auth/me", func() {
		BeforeEach(func() {
			Expect(doRequest(http.MethodPost, "/auth/register", registerBody, "").Code).To(Equal(http.StatusCreated))
		})

		It("should return the authenticated user", func() {
			tokens, _ := login("jdoe", "secret123")

			w := doRequest(http.MethodGet, "/auth/me", "", tokens.AccessToken)

			Expect(w.Code).To(Equal(http.StatusOK))
			var me auth.User
			Expect(json.Unmarshal(w.Body.Bytes(), &me)).To(Succeed())
			Expect(me.Username).To(Equal("jdoe"))
		})

		It("should reject a request without a token", func() {
			w := doRequest(http.MethodGet, "/auth/me", "", "")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a garbage token", func() {
			w := doRequest(http.MethodGet, "/auth/me", "", "not.a.token")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should stamp the actor id on the request context", func() {
			tokens, _ := login("jdoe", "secret123")

			w := doRequest(http.MethodGet, "/whoami", "", tokens.AccessToken)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal(tokens.User.ID))
			Expect(w.Body.String()).NotTo(BeEmpty())
		})

		It("should reject a token for a deactivated user", func() {
			tokens, _ := login("jdoe", "secret123")
			Expect(db.Model(&userDatamodel.User{}).
				Where("username = ?", "jdoe").
				Update("is_active", false).Error).NotTo(HaveOccurred())

			w := doRequest(http.MethodGet, "/auth/me", "", tokens.AccessToken)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("POST /auth/logout", func() {
		It("should acknowledge with a valid token", func() {
			Expect(doRequest(http.MethodPost, "/auth/register", registerBody, "").Code).To(Equal(http.StatusCreated))
			tokens, _ := login("jdoe", "secret123")

			w := doRequest(http.MethodPost, "/auth/logout", "", tokens.AccessToken)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Successfully logged out"))
		})
	})

	Describe("admin gating", func() {
		BeforeEach(func() {
			Expect(doRequest(http.MethodPost, "/auth/register", registerBody, "").Code).To(Equal(http.StatusCreated))
		})

		It("should deny an employee", func() {
			tokens, _ := login("jdoe", "secret123")

			w := doRequest(http.MethodGet, "/admin-only", "", tokens.AccessToken)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should allow an admin", func() {
			Expect(db.Model(&userDatamodel.User{}).
				Where("username = ?", "jdoe").
				Update("role", auth.RoleAdmin).Error).NotTo(HaveOccurred())
			tokens, _ := login("jdoe", "secret123")

			w := doRequest(http.MethodGet, "/admin-only", "", tokens.AccessToken)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})
})
