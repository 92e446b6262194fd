package state

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

func TestState(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "State Module Suite")
}

type mockStateRepository struct {
	rows      map[string]*catalog.State
	countries map[string]*catalog.Country // keyed by generated country id
}

func newMockStateRepository() *mockStateRepository {
	return &mockStateRepository{
		rows: map[string]*catalog.State{},
		countries: map[string]*catalog.Country{
			"CNT001": {ID: "c-1", CountryID: "CNT001", Name: "India", IsActive: true},
			"CNT002": {ID: "c-2", CountryID: "CNT002", Name: "Germany", IsActive: true},
		},
	}
}

func (m *mockStateRepository) List(params ListParams) ([]*catalog.State, int64, error) {
	var out []*catalog.State
	for _, row := range m.rows {
		out = append(out, row)
	}
	return out, int64(len(out)), nil
}

func (m *mockStateRepository) GetActive() ([]*catalog.State, error) {
	var out []*catalog.State
	for _, row := range m.rows {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockStateRepository) GetByID(id string) (*catalog.State, error) {
	if row, ok := m.rows[id]; ok {
		return row, nil
	}
	return nil, nil
}

func (m *mockStateRepository) GetByCountry(countryID string) ([]*catalog.State, error) {
	var out []*catalog.State
	for _, row := range m.rows {
		if row.CountryID == countryID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockStateRepository) GetByNameInCountry(name, countryID string) (*catalog.State, error) {
	for _, row := range m.rows {
		if strings.EqualFold(row.Name, name) && row.CountryID == countryID {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockStateRepository) GetByNameInCountryExcluding(name, countryID, excludeID string) (*catalog.State, error) {
	for _, row := range m.rows {
		if strings.EqualFold(row.Name, name) && row.CountryID == countryID && row.ID != excludeID {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockStateRepository) Create(s *catalog.State) error {
	m.rows[s.ID] = s
	return nil
}

func (m *mockStateRepository) Update(s *catalog.State) error {
	m.rows[s.ID] = s
	return nil
}

func (m *mockStateRepository) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func (m *mockStateRepository) GetCountry(countryID string) (*catalog.Country, error) {
	if c, ok := m.countries[countryID]; ok {
		return c, nil
	}
	return nil, nil
}

var _ = ginkgo.Describe("StateService", func() {
	var (
		service  *Service
		mockRepo *mockStateRepository
	)

	ginkgo.BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(db.AutoMigrate(&catalog.State{}, &sequence.Counter{})).To(gomega.Succeed())

		mockRepo = newMockStateRepository()
		service = NewService(mockRepo, sequence.New(db), slog.Default())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should assign the ST identifier and denormalize the country name", func() {
			// When
			row, err := service.Create(CreateStateDTO{Name: "Karnataka", CountryID: "CNT001"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(row.StateID).To(gomega.Equal("ST001"))
			gomega.Expect(row.Country).To(gomega.Equal("India"))
			gomega.Expect(row.CountryID).To(gomega.Equal("CNT001"))
		})

		ginkgo.It("should reject an unknown parent country", func() {
			// When
			row, err := service.Create(CreateStateDTO{Name: "Nowhere", CountryID: "CNT999"})

			// Then
			gomega.Expect(row).To(gomega.BeNil())
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Message).To(gomega.Equal("Country not found"))
		})

		ginkgo.It("should reject a duplicate name within the same country", func() {
			// Given
			_, err := service.Create(CreateStateDTO{Name: "Karnataka", CountryID: "CNT001"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			row, err := service.Create(CreateStateDTO{Name: "KARNATAKA", CountryID: "CNT001"})

			// Then
			gomega.Expect(row).To(gomega.BeNil())
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})

		ginkgo.It("should allow the same name under a different country", func() {
			// Given
			_, err := service.Create(CreateStateDTO{Name: "Bavaria", CountryID: "CNT001"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			row, err := service.Create(CreateStateDTO{Name: "Bavaria", CountryID: "CNT002"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(row.Country).To(gomega.Equal("Germany"))
		})
	})

	ginkgo.Describe("GetByCountry", func() {
		ginkgo.It("should return only the states of the requested country", func() {
			// Given
			_, err := service.Create(CreateStateDTO{Name: "Karnataka", CountryID: "CNT001"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Create(CreateStateDTO{Name: "Bavaria", CountryID: "CNT002"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			rows, err := service.GetByCountry("CNT001")

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rows).To(gomega.HaveLen(1))
			gomega.Expect(rows[0].Name).To(gomega.Equal("Karnataka"))
		})

		ginkgo.It("should return not found for an unknown country", func() {
			// When
			rows, err := service.GetByCountry("CNT999")

			// Then
			gomega.Expect(rows).To(gomega.BeNil())
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(404))
		})
	})
})
