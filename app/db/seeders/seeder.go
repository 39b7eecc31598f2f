package seeders

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/nandasafiq/go-storefront/app/db/fakers"
	"github.com/nandasafiq/go-storefront/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var categoryNames = []string{"Electronics", "Clothing", "Books", "Home & Garden"}

const productsPerCategory = 5

func DBSeed(db *gorm.DB) error {
	for _, name := range categoryNames {
		category := &models.Category{Name: name}
		if err := db.FirstOrCreate(category, models.Category{Name: name}).Error; err != nil {
			return err
		}

		for i := 0; i < productsPerCategory; i++ {
			if err := db.Create(fakers.ProductFaker(category)).Error; err != nil {
				return err
			}
		}
	}

	for i := 0; i < 5; i++ {
		if err := db.Create(fakers.UserFaker()).Error; err != nil {
			return err
		}
	}

	hashPass, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminEmail := "admin@" + faker.DomainName()
	admin := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Admin",
		Email:     adminEmail,
		Password:  string(hashPass),
		Role:      models.RoleAdmin,
	}
	if err := db.FirstOrCreate(admin, models.User{Role: models.RoleAdmin}).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d categories, admin login: %s / admin", len(categoryNames), adminEmail)
	return nil
}
