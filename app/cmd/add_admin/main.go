package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"campus-connect/app/config"
	"campus-connect/app/database"
	"campus-connect/app/models"
	"campus-connect/app/routes/auth"
)

// Admin accounts cannot be created through signup; this command seeds
// them directly.
func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_admin -email <email> -name <name> -password <password>")
		os.Exit(1)
	}
	if msg := auth.ValidatePassword(*password); msg != "" {
		fmt.Println(msg)
		os.Exit(1)
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    *email,
		Password: hashed,
		Name:     *name,
		Role:     models.RoleAdmin,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", user.Name, user.Email)
}
