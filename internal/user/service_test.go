package user_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	userDatamodel "github.com/veiligwerk/toolbox-tracker/internal/core/datamodel/user"
	"github.com/veiligwerk/toolbox-tracker/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockRepository implements user.RepositoryAPI for testing
type MockRepository struct {
	users      map[string]*userDatamodel.User
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{users: make(map[string]*userDatamodel.User)}
}

func (m *MockRepository) GetAll() ([]*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*userDatamodel.User
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *MockRepository) GetByID(id string) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	u, exists := m.users[id]
	if !exists {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *MockRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRepository) Create(u *userDatamodel.User) error {
	if m.shouldFail {
		return m.failError
	}
	m.users[u.ID] = u
	return nil
}

func (m *MockRepository) Update(u *userDatamodel.User) error {
	if m.shouldFail {
		return m.failError
	}
	m.users[u.ID] = u
	return nil
}

func (m *MockRepository) Delete(id string) error {
	if m.shouldFail {
		return m.failError
	}
	if _, exists := m.users[id]; !exists {
		return user.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// fakeHasher marks the input instead of running bcrypt.
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = Describe("User Service", func() {
	var (
		service  *user.Service
		mockRepo *MockRepository
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = user.NewService(mockRepo, fakeHasher{}, logger)
	})

	Describe("Create", func() {
		It("should hash the password before storing", func() {
			created, err := service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "secret123",
				Role:     "employee",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.users[created.ID].PasswordHash).To(Equal("hashed:secret123"))
		})

		It("should default the role to employee", func() {
			created, err := service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "secret123",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Role).To(Equal("employee"))
			Expect(created.IsActive).To(BeTrue())
		})

		It("should reject a duplicate username", func() {
			_, err := service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "other@example.com",
				Password: "secret123",
			})

			Expect(err).To(MatchError(apperrors.ErrUserExists))
		})

		It("should reject an unknown role", func() {
			_, err := service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "secret123",
				Role:     "superuser",
			})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("should change role and activity without touching credentials", func() {
			created, err := service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())

			role := "admin"
			inactive := false
			updated, err := service.Update(created.ID, user.UpdateUserDTO{
				Role:     &role,
				IsActive: &inactive,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal("admin"))
			Expect(updated.IsActive).To(BeFalse())
			Expect(mockRepo.users[created.ID].PasswordHash).To(Equal("hashed:secret123"))
		})

		It("should return not found for an unknown id", func() {
			name := "Whoever"
			_, err := service.Update("missing", user.UpdateUserDTO{Name: &name})

			Expect(err).To(MatchError(apperrors.ErrUserNotFound))
		})
	})

	Describe("Delete", func() {
		It("should delete an existing user", func() {
			created, err := service.Create(user.CreateUserDTO{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "secret123",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(created.ID)).To(Succeed())
			Expect(mockRepo.users).To(BeEmpty())
		})

		It("should return not found for an unknown id", func() {
			Expect(service.Delete("missing")).To(MatchError(apperrors.ErrUserNotFound))
		})
	})

	Describe("GetByID", func() {
		It("should return not found for an unknown id", func() {
			_, err := service.GetByID("missing")

			Expect(err).To(MatchError(apperrors.ErrUserNotFound))
		})
	})
})
