package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"James", "Olivia", "Liam", "Emma", "Noah", "Ava", "Oliver", "Sophia",
	"Elijah", "Isabella", "Lucas", "Mia", "Mason", "Charlotte", "Ethan",
	"Amelia", "Jack", "Harper", "Henry", "Evelyn", "Leo", "Grace", "Sam",
	"Ruby", "Max", "Chloe", "Tom", "Zoe", "Ben", "Lily",
}

var commonLastNames = []string{
	"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Johnson",
	"White", "Martin", "Anderson", "Thompson", "Nguyen", "Walker", "Harris",
	"Lee", "Ryan", "Robinson", "Kelly", "King", "Davis",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(fullName)
	username := strings.ToLower(parts[0][:1] + parts[len(parts)-1])

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var employmentTypes = []domain.EmploymentType{
	domain.EmploymentFullTime,
	domain.EmploymentPartTime,
	domain.EmploymentCasual,
}

func GenerateRandomEmploymentType() domain.EmploymentType {
	return employmentTypes[rand.Intn(len(employmentTypes))]
}

func GenerateRandomEmployee(password string, emailDomainName string) (*domain.Employee, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username:       username,
		PasswordHash:   string(passwordHash),
		FullName:       fullName,
		Email:          username + "@" + emailDomainName,
		Role:           domain.RoleStaff,
		EmploymentType: GenerateRandomEmploymentType(),
	}

	return employee, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	id := make([]rune, letterLength+digitLength)
	for i := range id {
		if i < letterLength {
			id[i] = letters[rand.Intn(len(letters))]
		} else {
			id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(id)
}

// GenerateRandomRosterTemplate builds a plausible weekly template: one to
// three shifts per day across a random spread of days.
func GenerateRandomRosterTemplate() *domain.RosterTemplate {
	template := &domain.RosterTemplate{
		Name:        "Template " + GenerateRandomID(3, 3),
		Description: "Generated template " + GenerateRandomID(10, 5),
		IsActive:    true,
		Shifts:      make([]domain.TemplateShift, 0),
	}

	for day := int32(0); day < 7; day++ {
		// a template with no shifts at all cannot be applied
		if rand.Intn(3) == 0 && (day < 6 || len(template.Shifts) > 0) {
			// day off
			continue
		}

		shiftsNum := rand.Intn(3) + 1
		hoursPerShift := 14 / shiftsNum

		for i := 0; i < shiftsNum; i++ {
			startHour := 7 + i*hoursPerShift
			endHour := startHour + rand.Intn(hoursPerShift-1) + 1

			template.Shifts = append(template.Shifts, domain.TemplateShift{
				DayOfWeek:    day,
				StartTime:    fmt.Sprintf("%02d:%02d", startHour, rand.Intn(4)*15),
				EndTime:      fmt.Sprintf("%02d:%02d", endHour, rand.Intn(4)*15),
				MinEmployees: int32(rand.Intn(3) + 1),
			})
		}
	}

	return template
}
