package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/SB-fmayen/EduLink-sub000/app/config"
	"github.com/SB-fmayen/EduLink-sub000/app/database"
	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/SB-fmayen/EduLink-sub000/app/routes/auth"
)

// One-shot administrative user creation. Runs outside the browser trust
// boundary and refuses to start without the service credential.
func main() {
	email := flag.String("email", "", "email address for the new user")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", string(models.RoleAdmin), "role to assign")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("email, password, first-name and last-name are required")
	}

	parsedRole, valid := models.ParseRole(*role)
	if !valid {
		log.Fatalf("Unknown role %q", *role)
	}

	config.LoadEnv()

	// Configuration errors abort before any connection is made
	cred, err := config.LoadServiceCredential()
	if err != nil {
		log.Fatal("Service credential error: ", err)
	}
	log.Printf("Using service credential for project %s (%s)", cred.ProjectID, cred.ClientEmail)

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashedPassword, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.UserProfile{
		Email:     *email,
		Password:  hashedPassword,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      parsedRole,
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user: ", err)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n", user.FirstName, user.LastName, user.Email, user.Role)
}
