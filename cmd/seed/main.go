package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/workoflow/hrms-api/internal/config"
	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/models"
)

// Seeds a demo organization with an admin user, a few employees and teams,
// and one assignment per employee. Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db.DB(), cfg.Security.BcryptCost); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Seeding completed")
}

func seed(db *gorm.DB, bcryptCost int) error {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		fmt.Println("Admin user already exists, nothing to do")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	org := models.Organization{Name: "Default Organization"}
	if err := db.Create(&org).Error; err != nil {
		return err
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcryptCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:       "admin",
		PasswordHash:   string(hash),
		OrganizationID: org.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	employees := []models.Employee{
		{Name: "Alice Johnson", Email: "alice.johnson@example.com", OrganizationID: org.ID},
		{Name: "Bob Smith", Email: "bob.smith@example.com", OrganizationID: org.ID},
		{Name: "Carol Williams", Email: "carol.williams@example.com", OrganizationID: org.ID},
		{Name: "David Brown", Email: "david.brown@example.com", OrganizationID: org.ID},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}

	teams := []models.Team{
		{Name: "Engineering", OrganizationID: org.ID},
		{Name: "Marketing", OrganizationID: org.ID},
		{Name: "Sales", OrganizationID: org.ID},
		{Name: "Human Resources", OrganizationID: org.ID},
	}
	if err := db.Create(&teams).Error; err != nil {
		return err
	}

	for i := range employees {
		assignment := models.EmployeeTeam{
			EmployeeID: employees[i].ID,
			TeamID:     teams[i%len(teams)].ID,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error; err != nil {
			return err
		}
	}

	fmt.Printf("Created organization %q with %d employees and %d teams\n", org.Name, len(employees), len(teams))
	fmt.Println("Login: admin / 123456")
	return nil
}
