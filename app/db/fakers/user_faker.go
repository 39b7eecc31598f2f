package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/nandasafiq/go-storefront/app/models"
	"golang.org/x/crypto/bcrypt"
)

func UserFaker() *models.User {
	hashPass, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash faker password:", err)
	}

	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Phone:     faker.Phonenumber(),
		Password:  string(hashPass),
		Role:      models.RoleCustomer,
	}
}
