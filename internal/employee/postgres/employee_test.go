package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	completionDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/completion"
	employeeDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/employee"
	"github.com/veiligwerk/toolbox-tracker/internal/employee"
	employeePostgres "github.com/veiligwerk/toolbox-tracker/internal/employee/postgres"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

var _ = Describe("Employee PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo employee.RepositoryAPI
	)

	newEmployee := func(id, name, email string) *employeeDatamodel.Employee {
		now := time.Now()
		return &employeeDatamodel.Employee{
			ID:        id,
			Name:      name,
			Email:     email,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
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
			&completionDatamodel.Completion{},
		)).To(Succeed())

		repo = employeePostgres.NewEmployeeRepository(db)
	})

	Describe("Create", func() {
		It("should persist an employee", func() {
			Expect(repo.Create(newEmployee("e-1", "Pieter Bakker", "p.bakker@example.com"))).To(Succeed())

			found, err := repo.GetByID("e-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("Pieter Bakker"))
		})

		It("should translate a duplicate email", func() {
			Expect(repo.Create(newEmployee("e-1", "Pieter Bakker", "p.bakker@example.com"))).To(Succeed())

			err := repo.Create(newEmployee("e-2", "Other Pieter", "p.bakker@example.com"))

			Expect(err).To(MatchError(employee.ErrDuplicateEmail))
		})
	})

	Describe("GetAll", func() {
		It("should order employees by name", func() {
			Expect(repo.Create(newEmployee("e-1", "Zara", "z@example.com"))).To(Succeed())
			Expect(repo.Create(newEmployee("e-2", "Anna", "a@example.com"))).To(Succeed())

			all, err := repo.GetAll()

			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Name).To(Equal("Anna"))
			Expect(all[1].Name).To(Equal("Zara"))
		})
	})

	Describe("GetByID", func() {
		It("should return ErrNotFound for an unknown id", func() {
			_, err := repo.GetByID("missing")

			Expect(err).To(MatchError(employee.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("should delete an employee without completions", func() {
			Expect(repo.Create(newEmployee("e-1", "Pieter Bakker", "p.bakker@example.com"))).To(Succeed())

			Expect(repo.Delete("e-1")).To(Succeed())

			_, err := repo.GetByID("e-1")
			Expect(err).To(MatchError(employee.ErrNotFound))
		})

		It("should refuse to delete an employee with completions", func() {
			Expect(repo.Create(newEmployee("e-1", "Pieter Bakker", "p.bakker@example.com"))).To(Succeed())
			Expect(db.Create(&completionDatamodel.Completion{
				ID:            "c-1",
				EmployeeID:    "e-1",
				ToolboxID:     "t-1",
				CompletedDate: time.Now(),
			}).Error).NotTo(HaveOccurred())

			Expect(repo.Delete("e-1")).To(MatchError(employee.ErrHasCompletions))

			_, err := repo.GetByID("e-1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return ErrNotFound for an unknown id", func() {
			Expect(repo.Delete("missing")).To(MatchError(employee.ErrNotFound))
		})
	})
})
