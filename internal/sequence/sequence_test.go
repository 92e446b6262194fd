package sequence_test

import (
	"testing"
	"time"

	"github.com/santhosh9133/sterline-hr/internal/sequence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSequence(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sequence Generator Suite")
}

type SQLiteCountry struct {
	ID        string    `gorm:"primaryKey"`
	CountryID string    `gorm:"column:country_id;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SQLiteCountry) TableName() string { return "countries" }

var _ = Describe("Generator", func() {
	var (
		db  *gorm.DB
		gen *sequence.Generator
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&sequence.Counter{}, &SQLiteCountry{})
		Expect(err).NotTo(HaveOccurred())

		gen = sequence.New(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Next", func() {
		It("starts a fresh collection at 001", func() {
			id, err := gen.Next("countries", "CNT")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT001"))
		})

		It("increments monotonically without gaps", func() {
			for _, want := range []string{"DEP001", "DEP002", "DEP003"} {
				id, err := gen.Next("departments", "DEP")
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(want))
			}
		})

		It("keeps independent counters per collection", func() {
			id, err := gen.Next("countries", "CNT")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT001"))

			id, err = gen.Next("designations", "DES")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("DES001"))
		})
	})

	Describe("NextSeeded", func() {
		seeder := sequence.MaxSuffixSeeder("countries", "country_id", "CNT")

		It("continues after the highest existing identifier", func() {
			Expect(db.Create(&SQLiteCountry{ID: "a", CountryID: "CNT007", Name: "India"}).Error).To(Succeed())

			id, err := gen.NextSeeded("countries", "CNT", seeder)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT008"))
		})

		It("rolls from 099 to 100", func() {
			Expect(db.Create(&SQLiteCountry{ID: "b", CountryID: "CNT099", Name: "Japan"}).Error).To(Succeed())

			id, err := gen.NextSeeded("countries", "CNT", seeder)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT100"))
		})

		It("absorbs losing the race for the counter's first insert", func() {
			// Simulate a concurrent first use creating the counter row
			// between our zero-row UPDATE and our own INSERT.
			raced := func(tx *gorm.DB) (int64, error) {
				if err := tx.Create(&sequence.Counter{Name: "countries", LastValue: 1}).Error; err != nil {
					return 0, err
				}
				return 0, nil
			}

			id, err := gen.NextSeeded("countries", "CNT", raced)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT001"))
		})

		It("only consults the seed on first use", func() {
			id, err := gen.NextSeeded("countries", "CNT", seeder)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT001"))

			Expect(db.Create(&SQLiteCountry{ID: "c", CountryID: "CNT050", Name: "Peru"}).Error).To(Succeed())

			id, err = gen.NextSeeded("countries", "CNT", seeder)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("CNT002"))
		})
	})

	Describe("Format", func() {
		It("pads to three digits", func() {
			Expect(sequence.Format("CTY", 1)).To(Equal("CTY001"))
			Expect(sequence.Format("CTY", 42)).To(Equal("CTY042"))
		})

		It("widens past 999 instead of wrapping", func() {
			Expect(sequence.Format("CTY", 1000)).To(Equal("CTY1000"))
		})
	})

	Describe("ParseSuffix", func() {
		It("extracts the numeric part", func() {
			n, err := sequence.ParseSuffix("DES012", "DES")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(12)))
		})

		It("rejects a foreign prefix", func() {
			_, err := sequence.ParseSuffix("CNT001", "DES")
			Expect(err).To(HaveOccurred())
		})

		It("rejects a non-numeric suffix", func() {
			_, err := sequence.ParseSuffix("DESabc", "DES")
			Expect(err).To(HaveOccurred())
		})
	})
})
