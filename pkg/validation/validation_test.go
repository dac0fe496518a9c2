package validation_test

import (
	"testing"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func validRegistrationDraft() *domain.RegistrationDraft {
	return &domain.RegistrationDraft{
		FullName:    "Ravi Kumar",
		Age:         24,
		DateOfBirth: "2001-04-12",
		Gender:      domain.GenderMale,
		PhoneNumber: "9876543210",
		Email:       "ravi@example.com",

		Address:      "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
		AadharNumber: "123412341234",
		PanNumber:    "ABCDE1234F",

		Education:             "Diploma",
		Skills:                domain.NewTagSet("Plumbing"),
		Experience:            "2 years",
		EmergencyContactName:  "Sita Kumar",
		EmergencyContactPhone: "9876500000",

		Username:        "ravik",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}
}

func TestRegistrationStep(t *testing.T) {
	engine := validation.NewEngine()

	t.Run("Should pass a fully filled step", func(t *testing.T) {
		for step := 1; step <= domain.RegistrationSteps; step++ {
			errs := engine.RegistrationStep(step, validRegistrationDraft())
			assert.True(t, errs.Valid(), "step %d: %v", step, errs)
		}
	})

	t.Run("Should report every missing field on an empty step one", func(t *testing.T) {
		errs := engine.RegistrationStep(1, &domain.RegistrationDraft{})
		assert.Len(t, errs, 6)
		assert.Equal(t, "Full name is required", errs["fullName"])
		assert.Equal(t, "Valid age is required (16+)", errs["age"])
		assert.Equal(t, "Date of birth is required", errs["dateOfBirth"])
		assert.Equal(t, "Gender is required", errs["gender"])
		assert.Equal(t, "Phone number is required", errs["phoneNumber"])
		assert.Equal(t, "Email is required", errs["email"])
	})

	t.Run("Should reject age fifteen", func(t *testing.T) {
		draft := validRegistrationDraft()
		draft.Age = 15
		errs := engine.RegistrationStep(1, draft)
		assert.Equal(t, "Valid age is required (16+)", errs["age"])
	})

	t.Run("Should accept age sixteen", func(t *testing.T) {
		draft := validRegistrationDraft()
		draft.Age = 16
		assert.True(t, engine.RegistrationStep(1, draft).Valid())
	})

	t.Run("Should treat whitespace as blank", func(t *testing.T) {
		draft := validRegistrationDraft()
		draft.FullName = "   "
		errs := engine.RegistrationStep(1, draft)
		assert.Equal(t, "Full name is required", errs["fullName"])
	})

	t.Run("Should not touch other steps' fields", func(t *testing.T) {
		draft := validRegistrationDraft()
		draft.Username = "" // step 4 field
		assert.True(t, engine.RegistrationStep(1, draft).Valid())
	})

	t.Run("Should require at least one skill on step three", func(t *testing.T) {
		draft := validRegistrationDraft()
		draft.Skills = domain.TagSet{}
		errs := engine.RegistrationStep(3, draft)
		assert.Equal(t, "At least one skill is required", errs["skills"])
	})

	t.Run("Should reject a mismatched password confirmation", func(t *testing.T) {
		draft := validRegistrationDraft()
		draft.ConfirmPassword = "different"
		errs := engine.RegistrationStep(4, draft)
		assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
	})

	t.Run("Should report nothing for an unknown step", func(t *testing.T) {
		assert.True(t, engine.RegistrationStep(9, &domain.RegistrationDraft{}).Valid())
	})
}

func TestHiringForm(t *testing.T) {
	engine := validation.NewEngine()

	valid := func() *domain.HiringDraft {
		return &domain.HiringDraft{
			FullName:         "Anita Shah",
			Age:              35,
			OrganizationName: "Shah Constructions",
			JobType:          "Construction Worker",
			SkillsRequired:   domain.NewTagSet("Masonry"),
			Description:      "Site work in Pune",
		}
	}

	t.Run("Should pass a complete form", func(t *testing.T) {
		assert.True(t, engine.HiringForm(valid()).Valid())
	})

	t.Run("Should reject age seventeen", func(t *testing.T) {
		draft := valid()
		draft.Age = 17
		errs := engine.HiringForm(draft)
		assert.Equal(t, "Valid age is required", errs["age"])
	})

	t.Run("Should report every missing field at once", func(t *testing.T) {
		errs := engine.HiringForm(&domain.HiringDraft{})
		assert.Len(t, errs, 6)
		assert.Equal(t, "Organization name is required", errs["organizationName"])
		assert.Equal(t, "At least one skill is required", errs["skillsRequired"])
	})
}

func TestJobSeekerForm(t *testing.T) {
	engine := validation.NewEngine()

	t.Run("Should pass a complete form", func(t *testing.T) {
		errs := engine.JobSeekerForm(&domain.JobSeekerDraft{
			FullName:          "Meena Patil",
			Age:               22,
			Education:         "12th Pass",
			Skills:            domain.NewTagSet("Cooking"),
			JobTypePreference: "Cook",
			Experience:        "1 year",
		})
		assert.True(t, errs.Valid())
	})

	t.Run("Should report every missing field at once", func(t *testing.T) {
		errs := engine.JobSeekerForm(&domain.JobSeekerDraft{})
		assert.Len(t, errs, 6)
		assert.Equal(t, "Job type preference is required", errs["jobTypePreference"])
		assert.Equal(t, "Valid age is required", errs["age"])
	})
}

func TestErrors(t *testing.T) {
	t.Run("Clear should drop a single field", func(t *testing.T) {
		errs := validation.Errors{"age": "Valid age is required (16+)", "email": "Email is required"}
		errs.Clear("age")
		assert.False(t, errs.Valid())
		assert.NotContains(t, errs, "age")
		errs.Clear("email")
		assert.True(t, errs.Valid())
	})
}
