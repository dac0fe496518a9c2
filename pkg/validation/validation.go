package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"skillbridge-backend/internal/domain"
)

// Errors maps a field name (json form) to the inline message shown next to
// it. A form or step is valid iff the map is empty.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Clear drops a field's error the moment its value changes. The field is
// not re-validated until the next explicit validation call.
func (e Errors) Clear(field string) { delete(e, field) }

// fieldMessages maps a draft field to the exact message its form renders.
// Keyed by namespace so the same field name can carry different messages on
// different forms (age on the hiring form vs the registration wizard).
var fieldMessages = map[string]string{
	// RegistrationDraft, step 1
	"RegistrationDraft.fullName":    "Full name is required",
	"RegistrationDraft.age":         "Valid age is required (16+)",
	"RegistrationDraft.dateOfBirth": "Date of birth is required",
	"RegistrationDraft.gender":      "Gender is required",
	"RegistrationDraft.phoneNumber": "Phone number is required",
	"RegistrationDraft.email":       "Email is required",
	// step 2
	"RegistrationDraft.address":      "Address is required",
	"RegistrationDraft.city":         "City is required",
	"RegistrationDraft.state":        "State is required",
	"RegistrationDraft.pincode":      "Pincode is required",
	"RegistrationDraft.aadharNumber": "Aadhar number is required",
	"RegistrationDraft.panNumber":    "PAN number is required",
	// step 3
	"RegistrationDraft.education":             "Education is required",
	"RegistrationDraft.skills":                "At least one skill is required",
	"RegistrationDraft.experience":            "Experience is required",
	"RegistrationDraft.emergencyContactName":  "Emergency contact name is required",
	"RegistrationDraft.emergencyContactPhone": "Emergency contact phone is required",
	// step 4
	"RegistrationDraft.username":        "Username is required",
	"RegistrationDraft.password":        "Password is required",
	"RegistrationDraft.confirmPassword": "Passwords do not match",

	// HiringDraft
	"HiringDraft.fullName":         "Full name is required",
	"HiringDraft.age":              "Valid age is required",
	"HiringDraft.organizationName": "Organization name is required",
	"HiringDraft.jobType":          "Job type is required",
	"HiringDraft.skillsRequired":   "At least one skill is required",
	"HiringDraft.description":      "Description is required",

	// JobSeekerDraft
	"JobSeekerDraft.fullName":          "Full name is required",
	"JobSeekerDraft.age":               "Valid age is required",
	"JobSeekerDraft.education":         "Education is required",
	"JobSeekerDraft.skills":            "At least one skill is required",
	"JobSeekerDraft.jobTypePreference": "Job type preference is required",
	"JobSeekerDraft.experience":        "Experience is required",
}

// Engine runs the per-step presence checks and reports them as a
// field-to-message map. It has no side effects on the draft.
type Engine struct {
	v *validator.Validate
}

func NewEngine() *Engine {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// Report fields under their json names so errors line up with the
	// wire shape the views bind to.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Let min=1 apply to the tag set's length.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ts, ok := field.Interface().(domain.TagSet); ok {
			return ts.Values()
		}
		return nil
	}, domain.TagSet{})

	return &Engine{v: v}
}

// RegistrationStep validates only the fields owned by the given wizard
// step. Unknown steps validate nothing and report no errors.
func (e *Engine) RegistrationStep(step int, draft *domain.RegistrationDraft) Errors {
	fields, ok := domain.RegistrationStepFields[step]
	if !ok {
		return Errors{}
	}
	return e.collect(e.v.StructPartial(draft, fields...))
}

func (e *Engine) HiringForm(draft *domain.HiringDraft) Errors {
	return e.collect(e.v.Struct(draft))
}

func (e *Engine) JobSeekerForm(draft *domain.JobSeekerDraft) Errors {
	return e.collect(e.v.Struct(draft))
}

func (e *Engine) collect(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		if msg, found := fieldMessages[fe.Namespace()]; found {
			errs[fe.Field()] = msg
			continue
		}
		errs[fe.Field()] = fallbackMessage(fe)
	}
	return errs
}

// fallbackMessage covers fields without a curated message.
func fallbackMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
