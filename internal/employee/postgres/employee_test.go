package postgres_test

import (
	"testing"
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"github.com/santhosh9133/sterline-hr/internal/employee"
	employeePostgres "github.com/santhosh9133/sterline-hr/internal/employee/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

var _ = Describe("Employee Repository", func() {
	var (
		db   *gorm.DB
		repo employee.RepositoryAPI
	)

	boolPtr := func(v bool) *bool { return &v }

	newEmployee := func(id, first, last, email, code, department, designation, gender string, active bool) *account.Employee {
		return &account.Employee{
			ID:            id,
			FirstName:     first,
			LastName:      last,
			Email:         email,
			ContactNumber: "555" + code,
			EmpCode:       code,
			JoiningDate:   time.Now().AddDate(0, -2, 0),
			Gender:        gender,
			Department:    department,
			Designation:   designation,
			PasswordHash:  "not-a-real-hash",
			Role:          account.EmployeeRoleEmployee,
			IsActive:      active,
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

		err = db.AutoMigrate(&account.Employee{})
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)

		rows := []*account.Employee{
			newEmployee("e-1", "Asha", "Rao", "asha@example.com", "EMP001", "Engineering", "Developer", "female", true),
			newEmployee("e-2", "Vikram", "Shetty", "vikram@example.com", "EMP002", "Engineering", "Tester", "male", true),
			newEmployee("e-3", "Meera", "Nair", "meera@example.com", "EMP003", "Finance", "Accountant", "female", false),
		}
		for _, row := range rows {
			Expect(repo.Create(row)).To(Succeed())
		}
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("List", func() {
		It("searches across names, email and employee code case-insensitively", func() {
			rows, total, err := repo.List(employee.ListParams{Page: 1, Limit: 10, Search: "ASHA"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(rows[0].EmpCode).To(Equal("EMP001"))

			rows, total, err = repo.List(employee.ListParams{Page: 1, Limit: 10, Search: "emp00"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(rows).To(HaveLen(3))
		})

		It("matches the department filter case-insensitively", func() {
			rows, total, err := repo.List(employee.ListParams{Page: 1, Limit: 10, Department: "engineering"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(rows).To(HaveLen(2))
		})

		It("combines gender and active filters", func() {
			rows, total, err := repo.List(employee.ListParams{
				Page:     1,
				Limit:    10,
				Gender:   "female",
				IsActive: boolPtr(true),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(rows[0].ID).To(Equal("e-1"))
		})
	})

	Describe("Lookups", func() {
		It("finds by employee code", func() {
			row, err := repo.GetByEmpCode("EMP002")
			Expect(err).NotTo(HaveOccurred())
			Expect(row).NotTo(BeNil())
			Expect(row.FirstName).To(Equal("Vikram"))
		})

		It("finds by email or code through one query", func() {
			row, err := repo.FindByEmailOrEmpCode("nobody@example.com", "EMP003")
			Expect(err).NotTo(HaveOccurred())
			Expect(row).NotTo(BeNil())
			Expect(row.ID).To(Equal("e-3"))
		})

		It("returns nil when nothing matches", func() {
			row, err := repo.GetByEmail("ghost@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())
		})

		It("excludes the given row when checking email ownership", func() {
			row, err := repo.GetByEmailExcluding("asha@example.com", "e-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())
		})
	})

	Describe("SetActive and HardDelete", func() {
		It("flips the active flag in place", func() {
			Expect(repo.SetActive("e-1", false)).To(Succeed())

			row, err := repo.GetByID("e-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(row.IsActive).To(BeFalse())
		})

		It("removes the row permanently", func() {
			Expect(repo.HardDelete("e-2")).To(Succeed())

			row, err := repo.GetByID("e-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())
		})
	})

	Describe("Stats", func() {
		It("aggregates totals and group counts", func() {
			stats, err := repo.Stats(time.Now().AddDate(0, 0, -90))
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Total).To(Equal(int64(3)))
			Expect(stats.Active).To(Equal(int64(2)))
			Expect(stats.Inactive).To(Equal(int64(1)))
			Expect(stats.RecentJoinings).To(Equal(int64(3)))

			byDept := map[string]int64{}
			for _, g := range stats.ByDepartment {
				byDept[g.Name] = g.Count
			}
			Expect(byDept).To(HaveKeyWithValue("Engineering", int64(2)))
			Expect(byDept).To(HaveKeyWithValue("Finance", int64(1)))
		})
	})

	Describe("Distinct lists", func() {
		It("returns departments of active employees only", func() {
			names, err := repo.DistinctDepartments()
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"Engineering"}))
		})

		It("returns sorted designations of active employees", func() {
			names, err := repo.DistinctDesignations()
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"Developer", "Tester"}))
		})
	})

	Describe("Database constraints", func() {
		It("rejects duplicate email and employee code", func() {
			err := repo.Create(newEmployee("e-4", "Dup", "Email", "asha@example.com", "EMP004", "", "", "other", true))
			Expect(err).To(HaveOccurred())

			err = repo.Create(newEmployee("e-5", "Dup", "Code", "fresh@example.com", "EMP001", "", "", "other", true))
			Expect(err).To(HaveOccurred())
		})
	})
})
