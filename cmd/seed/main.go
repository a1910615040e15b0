package main

import (
	"fmt"
	"log"

	"gj-schools/app/billing"
	"gj-schools/app/config"
	"gj-schools/app/database"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"
)

const school = "G & J Schools"

var defaultUsers = []struct {
	Name     string
	Email    string
	Password string
	Role     string
}{
	{"System Administrator", "admin@gjschools.com", "admin123", models.RoleAdmin},
	{"School Accountant", "accountant@gjschools.com", "account123", models.RoleAccountant},
	{"Class Teacher", "teacher@gjschools.com", "teacher123", models.RoleTeacher},
}

var sampleStudents = []struct {
	ID    string
	Name  string
	Class string
}{
	{"ST2025001", "John Smith", "Grade 5A"},
	{"ST2025002", "Emma Johnson", "Grade 6B"},
	{"ST2025003", "Michael Brown", "Grade 7C"},
	{"ST2025004", "Sophia Davis", "Grade 8A"},
	{"ST2025005", "William Wilson", "Grade 9B"},
}

func main() {
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	for _, u := range defaultUsers {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		user := &models.User{
			Name:     u.Name,
			Email:    u.Email,
			Password: hash,
			School:   school,
			Role:     u.Role,
		}
		err = database.CreateUser(db, user)
		if err == database.ErrEmailTaken {
			fmt.Printf("User %s already exists, skipping\n", u.Email)
			continue
		}
		if err != nil {
			log.Fatalf("Error creating user %s: %v", u.Email, err)
		}
		fmt.Printf("Created %s user: %s\n", u.Role, u.Email)
	}

	for _, s := range sampleStudents {
		class := s.Class
		student := &models.Student{
			ID:    s.ID,
			Name:  s.Name,
			Class: &class,
		}
		fee, err := database.CreateStudentWithInvoice(db, student)
		if err == billing.ErrDuplicateID {
			fmt.Printf("Student %s already exists, skipping\n", s.ID)
			continue
		}
		if err != nil {
			log.Fatalf("Error creating student %s: %v", s.ID, err)
		}
		fmt.Printf("Created student %s (%s) with invoice %s for GHS %s\n",
			student.Name, student.ID, fee.ID, fee.Amount.StringFixed(2))
	}

	fmt.Println("Seeding complete")
}
