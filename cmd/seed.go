package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the super admin and base catalog rows",
	Long:  `Seed the database with a super admin account and the starter location catalogs for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		seq := sequence.New(db)

		var superCount int64
		if err := db.Model(&account.Admin{}).Where("role = ?", account.AdminRoleSuper).Count(&superCount).Error; err != nil {
			log.Fatalf("failed to check for super admin: %v", err)
		}

		if superCount > 0 {
			fmt.Println("super admin already exists; skipping")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe1!"), cfg.Security.BcryptCost)
			if err != nil {
				log.Fatalf("failed to hash super admin password: %v", err)
			}

			row := &account.Admin{
				ID:           uuid.NewString(),
				FirstName:    "Super",
				LastName:     "Admin",
				Username:     "superadmin",
				Email:        "superadmin@sterline.local",
				Mobile:       "0000000000",
				PasswordHash: string(hash),
				Role:         account.AdminRoleSuper,
				IsActive:     true,
				Permissions:  account.StringList{"read", "write", "delete", "manage_admins"},
			}
			if err := db.Create(row).Error; err != nil {
				log.Fatalf("failed to insert super admin: %v", err)
			}
			fmt.Println("Seeded super admin:", row.Email)
		}

		countries := []string{"India", "United States", "United Kingdom"}
		for _, name := range countries {
			var exists int64
			if err := db.Model(&catalog.Country{}).Where("LOWER(name) = LOWER(?)", name).Count(&exists).Error; err != nil {
				log.Fatalf("failed to check country %s: %v", name, err)
			}
			if exists > 0 {
				continue
			}

			id, err := seq.NextSeeded("countries", "CNT", sequence.MaxSuffixSeeder("countries", "country_id", "CNT"))
			if err != nil {
				log.Fatalf("failed to generate country id: %v", err)
			}
			if err := db.Create(&catalog.Country{ID: uuid.NewString(), CountryID: id, Name: name, IsActive: true}).Error; err != nil {
				log.Fatalf("failed to insert country %s: %v", name, err)
			}
			fmt.Printf("Seeded country: %s (%s)\n", name, id)
		}

		departments := []string{"Engineering", "Human Resources", "Finance"}
		for _, name := range departments {
			var exists int64
			if err := db.Model(&catalog.Department{}).Where("LOWER(name) = LOWER(?)", name).Count(&exists).Error; err != nil {
				log.Fatalf("failed to check department %s: %v", name, err)
			}
			if exists > 0 {
				continue
			}

			id, err := seq.NextSeeded("departments", "DEP", sequence.MaxSuffixSeeder("departments", "department_id", "DEP"))
			if err != nil {
				log.Fatalf("failed to generate department id: %v", err)
			}
			if err := db.Create(&catalog.Department{ID: uuid.NewString(), DepartmentID: id, Name: name, IsActive: true}).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Printf("Seeded department: %s (%s)\n", name, id)
		}

		designations := []string{"Software Engineer", "HR Executive", "Accountant"}
		for _, name := range designations {
			var exists int64
			if err := db.Model(&catalog.Designation{}).Where("LOWER(name) = LOWER(?)", name).Count(&exists).Error; err != nil {
				log.Fatalf("failed to check designation %s: %v", name, err)
			}
			if exists > 0 {
				continue
			}

			id, err := seq.NextSeeded("designations", "DES", sequence.MaxSuffixSeeder("designations", "designation_id", "DES"))
			if err != nil {
				log.Fatalf("failed to generate designation id: %v", err)
			}
			if err := db.Create(&catalog.Designation{ID: uuid.NewString(), DesignationID: id, Name: name, IsActive: true}).Error; err != nil {
				log.Fatalf("failed to insert designation %s: %v", name, err)
			}
			fmt.Printf("Seeded designation: %s (%s)\n", name, id)
		}

		fmt.Println("Seeding complete")
	},
}
