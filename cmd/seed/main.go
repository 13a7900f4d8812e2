// Command seed prepares a fresh installation: it creates the department
// registry and, on request, a bootstrap admin account.
//
//	seed departments
//	seed admin <email> <password> <full name>
package main

import (
	"fmt"
	"log"
	"os"

	"civicdesk/backend/internal/auth"
	"civicdesk/backend/internal/config"
	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// defaultDepartments is the initial registry of a new installation.
var defaultDepartments = []string{
	"Roads",
	"Sanitation",
	"Health",
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.PGDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// No redis needed for the seeding CLI.
	storageSvc := storage.NewStorageService(db, nil, nil)
	if err := storageSvc.Migrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: seed <departments|admin> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "departments":
		for _, name := range defaultDepartments {
			dept, err := storageSvc.EnsureDepartment(name)
			if err != nil {
				log.Fatalf("failed to seed department %q: %v", name, err)
			}
			fmt.Printf("department %q ready (id=%d)\n", dept.Name, dept.ID)
		}
	case "admin":
		if len(os.Args) != 5 {
			fmt.Println("Usage: seed admin <email> <password> <full name>")
			os.Exit(1)
		}
		email, password, fullName := os.Args[2], os.Args[3], os.Args[4]

		if err := createAdmin(storageSvc, email, password, fullName); err != nil {
			log.Fatalf("failed to create admin: %v", err)
		}
		fmt.Printf("admin %s created\n", email)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func createAdmin(s storage.Storage, email, password, fullName string) error {
	existing, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %s already exists", email)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return s.CreateUser(&models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         models.RoleAdmin,
	})
}
