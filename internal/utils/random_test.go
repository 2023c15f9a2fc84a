package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsernameFromFullName(t *testing.T) {
	username := GenerateUsernameFromFullName("Alice Smith")
	assert.Regexp(t, regexp.MustCompile(`^asmith\d{1,3}$`), username)
}

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), GenerateRandomOTP())
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)
}

func TestGenerateRandomEmployee(t *testing.T) {
	employee, err := GenerateRandomEmployee("initial-password", "example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, employee.Username)
	assert.NotEmpty(t, employee.FullName)
	assert.Contains(t, employee.Email, "@example.com")
	assert.NotEqual(t, "initial-password", employee.PasswordHash)
	assert.NotEmpty(t, employee.EmploymentType)
}

func TestGenerateRandomRosterTemplate(t *testing.T) {
	template := GenerateRandomRosterTemplate()

	assert.NotEmpty(t, template.Name)
	assert.NotEmpty(t, template.Shifts)
	for _, ts := range template.Shifts {
		assert.GreaterOrEqual(t, ts.DayOfWeek, int32(0))
		assert.LessOrEqual(t, ts.DayOfWeek, int32(6))
		assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}$`), ts.StartTime)
		assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}$`), ts.EndTime)
	}
}
