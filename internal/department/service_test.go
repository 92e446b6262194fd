package department

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestDepartment(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Department Module Suite")
}

// Mock RepositoryAPI for testing
type mockDepartmentRepository struct {
	rows            map[string]*catalog.Department
	activeEmployees map[string]int64 // department name -> active count
}

func newMockDepartmentRepository() *mockDepartmentRepository {
	return &mockDepartmentRepository{
		rows:            map[string]*catalog.Department{},
		activeEmployees: map[string]int64{},
	}
}

func (m *mockDepartmentRepository) List(params ListParams) ([]*catalog.Department, int64, error) {
	var out []*catalog.Department
	for _, row := range m.rows {
		out = append(out, row)
	}
	return out, int64(len(out)), nil
}

func (m *mockDepartmentRepository) GetActive() ([]*catalog.Department, error) {
	var out []*catalog.Department
	for _, row := range m.rows {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockDepartmentRepository) GetByID(id string) (*catalog.Department, error) {
	if row, ok := m.rows[id]; ok {
		return row, nil
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetByName(name string) (*catalog.Department, error) {
	for _, row := range m.rows {
		if strings.EqualFold(row.Name, name) {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetByNameExcluding(name, excludeID string) (*catalog.Department, error) {
	for _, row := range m.rows {
		if strings.EqualFold(row.Name, name) && row.ID != excludeID {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockDepartmentRepository) Create(d *catalog.Department) error {
	m.rows[d.ID] = d
	return nil
}

func (m *mockDepartmentRepository) Update(d *catalog.Department) error {
	m.rows[d.ID] = d
	return nil
}

func (m *mockDepartmentRepository) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func (m *mockDepartmentRepository) CountActiveEmployees(departmentName string) (int64, error) {
	return m.activeEmployees[strings.ToLower(departmentName)], nil
}

func (m *mockDepartmentRepository) ListEmployees(departmentName string) ([]DepartmentEmployee, error) {
	return nil, nil
}

func (m *mockDepartmentRepository) SetEmployeeCount(id string, count int64) error {
	if row, ok := m.rows[id]; ok {
		row.EmployeeCount = count
	}
	return nil
}

var _ = ginkgo.Describe("DepartmentService", func() {
	var (
		service  *Service
		mockRepo *mockDepartmentRepository
	)

	ginkgo.BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(db.AutoMigrate(&catalog.Department{}, &sequence.Counter{})).To(gomega.Succeed())

		mockRepo = newMockDepartmentRepository()
		service = NewService(mockRepo, sequence.New(db), slog.Default())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should assign DEP identifiers in order", func() {
			// When
			first, err := service.Create(CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := service.Create(CreateDepartmentDTO{Name: "Finance"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// Then
			gomega.Expect(first.DepartmentID).To(gomega.Equal("DEP001"))
			gomega.Expect(second.DepartmentID).To(gomega.Equal("DEP002"))
		})

		ginkgo.It("should reject a duplicate name regardless of case", func() {
			// Given
			_, err := service.Create(CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			row, err := service.Create(CreateDepartmentDTO{Name: "ENGINEERING"})

			// Then
			gomega.Expect(row).To(gomega.BeNil())
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should refuse while active employees are assigned and name the count", func() {
			// Given
			created, err := service.Create(CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			mockRepo.activeEmployees["engineering"] = 3

			// When
			err = service.Delete(created.ID)

			// Then
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
			gomega.Expect(appErr.Message).To(gomega.ContainSubstring("3 active employee(s)"))
			gomega.Expect(mockRepo.rows).To(gomega.HaveKey(created.ID))
		})

		ginkgo.It("should delete once no active employees remain", func() {
			// Given
			created, err := service.Create(CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			err = service.Delete(created.ID)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.rows).ToNot(gomega.HaveKey(created.ID))
		})
	})

	ginkgo.Describe("RefreshEmployeeCounts", func() {
		ginkgo.It("should recompute stale cached counts", func() {
			// Given
			created, err := service.Create(CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			mockRepo.activeEmployees["engineering"] = 5

			// When
			updated, err := service.RefreshEmployeeCounts()

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated).To(gomega.Equal(1))
			gomega.Expect(mockRepo.rows[created.ID].EmployeeCount).To(gomega.Equal(int64(5)))
		})

		ginkgo.It("should leave accurate counts untouched", func() {
			// Given
			_, err := service.Create(CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			updated, err := service.RefreshEmployeeCounts()

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated).To(gomega.Equal(0))
		})
	})
})
