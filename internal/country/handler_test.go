package country_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/country"
	countryPostgres "github.com/santhosh9133/sterline-hr/internal/country/postgres"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
	"github.com/santhosh9133/sterline-hr/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Country Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&catalog.Country{}, &sequence.Counter{})
		Expect(err).NotTo(HaveOccurred())

		repo := countryPostgres.NewCountryRepository(db)
		service := country.NewService(repo, sequence.New(db), slogger)
		handler := country.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Route("/countries", handler.RegisterRoutes)

		Expect(repo.Create(&catalog.Country{ID: "c-1", CountryID: "CNT001", Name: "India", IsActive: true})).To(Succeed())
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("toggles status over PUT", func() {
		req := httptest.NewRequest(http.MethodPut, "/countries/c-1/toggle-status", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				IsActive bool `json:"isActive"`
			} `json:"data"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Success).To(BeTrue())
		Expect(body.Data.IsActive).To(BeFalse())
	})

	It("toggles status over PATCH as well", func() {
		req := httptest.NewRequest(http.MethodPatch, "/countries/c-1/toggle-status", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("assigns the next sequential identifier on create", func() {
		payload := `{"name": "Japan"}`
		req := httptest.NewRequest(http.MethodPost, "/countries/", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var body struct {
			Data struct {
				CountryID string `json:"countryId"`
			} `json:"data"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Data.CountryID).To(Equal("CNT002"))
	})
})
