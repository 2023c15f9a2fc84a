package roster

import (
	"testing"
	"time"

	"github.com/rosterly/rosterly/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTemplateApplication(t *testing.T) {
	target := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	validShifts := []domain.TemplateShift{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
	}

	t.Run("active template with valid shifts passes", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Weekdays", IsActive: true}
		result := ValidateTemplateApplication(template, validShifts, target)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("inactive template is rejected", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Retired", IsActive: false}
		result := ValidateTemplateApplication(template, validShifts, target)

		assert.False(t, result.IsValid)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "not active")
	})

	t.Run("template without shifts is rejected", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Empty", IsActive: true}
		result := ValidateTemplateApplication(template, nil, target)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors[0], "has no shifts")
	})

	t.Run("zero target date is rejected", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Weekdays", IsActive: true}
		result := ValidateTemplateApplication(template, validShifts, time.Time{})
		assert.False(t, result.IsValid)
	})

	t.Run("day of week out of range", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Weekdays", IsActive: true}
		shifts := []domain.TemplateShift{
			{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
		}
		result := ValidateTemplateApplication(template, shifts, target)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors[0], "out of range")
	})

	t.Run("malformed wall-clock times", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Weekdays", IsActive: true}
		shifts := []domain.TemplateShift{
			{DayOfWeek: 1, StartTime: "25:00", EndTime: "5pm"},
		}
		result := ValidateTemplateApplication(template, shifts, target)

		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("overnight slot is legitimate", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Stocktake", IsActive: true}
		shifts := []domain.TemplateShift{
			{DayOfWeek: 6, StartTime: "22:00", EndTime: "06:00"},
		}
		result := ValidateTemplateApplication(template, shifts, target)
		assert.True(t, result.IsValid)
	})

	t.Run("every failure is collected", func(t *testing.T) {
		template := domain.RosterTemplate{Name: "Broken", IsActive: false}
		result := ValidateTemplateApplication(template, nil, time.Time{})
		assert.Len(t, result.Errors, 3)
	})
}
