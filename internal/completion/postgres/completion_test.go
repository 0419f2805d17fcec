package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/veiligwerk/toolbox-tracker/internal/completion"
	completionPostgres "github.com/veiligwerk/toolbox-tracker/internal/completion/postgres"
	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
	employeeDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/employee"
	toolboxDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/toolbox"
)

func TestCompletionPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Completion Postgres Suite")
}

var _ = Describe("Completion PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo completion.RepositoryAPI
	)

	newCompletion := func(id, employeeID, toolboxID string, completedAt time.Time) *completionDatamodel.Completion {
		return &completionDatamodel.Completion{
			ID:            id,
			EmployeeID:    employeeID,
			ToolboxID:     toolboxID,
			CompletedDate: completedAt,
			CreatedAt:     completedAt,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(
			&employeeDatamodel.Employee{},
			&toolboxDatamodel.Toolbox{},
			&completionDatamodel.Completion{},
		)).To(Succeed())

		Expect(db.Create(&employeeDatamodel.Employee{
			ID: "e-1", Name: "Pieter Bakker", Email: "p.bakker@example.com", IsActive: true,
		}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&toolboxDatamodel.Toolbox{
			ID: "t-1", Title: "Working at Heights",
		}).Error).NotTo(HaveOccurred())

		repo = completionPostgres.NewCompletionRepository(db)
	})

	Describe("Create", func() {
		It("should insert when both references exist", func() {
			Expect(repo.Create(newCompletion("c-1", "e-1", "t-1", time.Now()))).To(Succeed())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("should fail with ErrEmployeeMissing for an unknown employee", func() {
			err := repo.Create(newCompletion("c-1", "missing", "t-1", time.Now()))

			Expect(err).To(MatchError(completion.ErrEmployeeMissing))

			all, getErr := repo.GetAll()
			Expect(getErr).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})

		It("should fail with ErrToolboxMissing for an unknown toolbox", func() {
			err := repo.Create(newCompletion("c-1", "e-1", "missing", time.Now()))

			Expect(err).To(MatchError(completion.ErrToolboxMissing))
		})

		It("should allow the same employee and toolbox twice", func() {
			Expect(repo.Create(newCompletion("c-1", "e-1", "t-1", time.Now()))).To(Succeed())
			Expect(repo.Create(newCompletion("c-2", "e-1", "t-1", time.Now()))).To(Succeed())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("GetByEmployeeID", func() {
		BeforeEach(func() {
			Expect(db.Create(&employeeDatamodel.Employee{
				ID: "e-2", Name: "Sanne Visser", Email: "s.visser@example.com", IsActive: true,
			}).Error).NotTo(HaveOccurred())

			Expect(repo.Create(newCompletion("c-1", "e-1", "t-1", time.Now().Add(-time.Hour)))).To(Succeed())
			Expect(repo.Create(newCompletion("c-2", "e-1", "t-1", time.Now()))).To(Succeed())
			Expect(repo.Create(newCompletion("c-3", "e-2", "t-1", time.Now()))).To(Succeed())
		})

		It("should only return rows for the requested employee", func() {
			result, err := repo.GetByEmployeeID("e-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("should order newest first", func() {
			result, err := repo.GetByEmployeeID("e-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result[0].ID).To(Equal("c-2"))
			Expect(result[1].ID).To(Equal("c-1"))
		})

		It("should return an empty slice for an employee without completions", func() {
			result, err := repo.GetByEmployeeID("nobody")

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeEmpty())
		})
	})
})
