package main

import (
	"flag"
	"fmt"
	"os"

	"stmarys-portal/app/config"
	"stmarys-portal/app/database"
	"stmarys-portal/app/models"
)

// Creates a portal account from the command line. Intended for
// bootstrapping the first administrator.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	userType := flag.String("type", "admin", "account type (admin, teacher, student, parent)")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		flag.Usage()
		os.Exit(1)
	}

	role := models.UserType(*userType)
	switch role {
	case models.UserTypeAdmin, models.UserTypeTeacher, models.UserTypeStudent, models.UserTypeParent:
	default:
		fmt.Printf("Unknown account type %q\n", *userType)
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if _, err := database.CreateUserWithProfile(db, user, role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s account created: %s %s (%s)\n", role, user.FirstName, user.LastName, user.Email)
}
