package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	userDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/user"
	"github.com/veiligwerk/toolbox-tracker/internal/user"
	userPostgres "github.com/veiligwerk/toolbox-tracker/internal/user/postgres"
)

func TestUserPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Postgres Suite")
}

var _ = Describe("User PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo user.RepositoryAPI
	)

	newUser := func(id, username, email string) *userDatamodel.User {
		now := time.Now()
		return &userDatamodel.User{
			ID:           id,
			Username:     username,
			Email:        email,
			PasswordHash: "hash",
			Role:         "employee",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())

		repo = userPostgres.NewUserRepository(db)
	})

	Describe("Create", func() {
		It("should persist a user", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			found, err := repo.GetByID("u-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Username).To(Equal("jdoe"))
		})

		It("should translate a duplicate username", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			err := repo.Create(newUser("u-2", "jdoe", "other@example.com"))

			Expect(err).To(MatchError(user.ErrDuplicate))
		})

		It("should translate a duplicate email", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			err := repo.Create(newUser("u-2", "other", "jdoe@example.com"))

			Expect(err).To(MatchError(user.ErrDuplicate))
		})
	})

	Describe("GetAll", func() {
		It("should order users by username", func() {
			Expect(repo.Create(newUser("u-1", "zoe", "z@example.com"))).To(Succeed())
			Expect(repo.Create(newUser("u-2", "anna", "a@example.com"))).To(Succeed())

			all, err := repo.GetAll()

			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Username).To(Equal("anna"))
			Expect(all[1].Username).To(Equal("zoe"))
		})
	})

	Describe("GetByID", func() {
		It("should return ErrNotFound for an unknown id", func() {
			_, err := repo.GetByID("missing")

			Expect(err).To(MatchError(user.ErrNotFound))
		})
	})

	Describe("ExistsByUsernameOrEmail", func() {
		It("should match on either field", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			byName, err := repo.ExistsByUsernameOrEmail("jdoe", "nomatch@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(byName).To(BeTrue())

			byMail, err := repo.ExistsByUsernameOrEmail("nomatch", "jdoe@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(byMail).To(BeTrue())

			neither, err := repo.ExistsByUsernameOrEmail("nomatch", "nomatch@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(neither).To(BeFalse())
		})
	})

	Describe("Delete", func() {
		It("should delete an existing user", func() {
			Expect(repo.Create(newUser("u-1", "jdoe", "jdoe@example.com"))).To(Succeed())

			Expect(repo.Delete("u-1")).To(Succeed())

			_, err := repo.GetByID("u-1")
			Expect(err).To(MatchError(user.ErrNotFound))
		})

		It("should return ErrNotFound for an unknown id", func() {
			Expect(repo.Delete("missing")).To(MatchError(user.ErrNotFound))
		})
	})
})
