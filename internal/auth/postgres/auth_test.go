package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/veiligwerk/toolbox-tracker/internal/auth"
	authPostgres "github.com/veiligwerk/toolbox-tracker/internal/auth/postgres"
	userDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/user"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

var _ = Describe("Auth PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *authPostgres.Repository
	)

	newUser := func(id, username, email string) *auth.User {
		now := time.Now()
		return &auth.User{
			ID:           id,
			Username:     username,
			Email:        email,
			Name:         "Test User",
			Role:         auth.RoleEmployee,
			IsActive:     true,
			PasswordHash: "$2a$10$hash",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())

		repo = authPostgres.NewRepository(db)
	})

	Describe("Create", func() {
		It("should persist a user", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			found, err := repo.GetByID("u-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Username).To(Equal("jdoe"))
			Expect(found.IsActive).To(BeTrue())
		})

		It("should translate a duplicate username into ErrDuplicateUser", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			err := repo.Create(newUser("u-2", "jdoe", "other@example.com"))

			Expect(err).To(MatchError(auth.ErrDuplicateUser))
		})

		It("should translate a duplicate email into ErrDuplicateUser", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			err := repo.Create(newUser("u-2", "other", "jdoe@example.com"))

			Expect(err).To(MatchError(auth.ErrDuplicateUser))
		})
	})

	Describe("GetByLogin", func() {
		BeforeEach(func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())
		})

		It("should match the username", func() {
			found, err := repo.GetByLogin("jdoe")

			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal("u-1"))
		})

		It("should match the email", func() {
			found, err := repo.GetByLogin("jdoe@example.com")

			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal("u-1"))
		})

		It("should fail for an unknown login", func() {
			_, err := repo.GetByLogin("nobody")

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ExistsByUsernameOrEmail", func() {
		BeforeEach(func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())
		})

		It("should report an existing username", func() {
			exists, err := repo.ExistsByUsernameOrEmail("jdoe", "fresh@example.com")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should report an existing email", func() {
			exists, err := repo.ExistsByUsernameOrEmail("fresh", "jdoe@example.com")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should report a free identity", func() {
			exists, err := repo.ExistsByUsernameOrEmail("fresh", "fresh@example.com")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})
})
