package domain

// RegistrationSteps is the number of wizard steps on the employee
// registration modal.
const RegistrationSteps = 4

// RegistrationDraft is the in-progress employee registration form. It only
// lives in the active wizard; the profile built from it is what persists.
//
// Rules are presence-only: trimmed-empty checks for text, a minimum for
// age, an equality check for the password confirmation and a non-empty
// check for the skill set. Email and phone formats are deliberately not
// validated, and the id numbers get a length cap without a checksum.
type RegistrationDraft struct {
	// Step 1: Basic Information
	FullName    string `json:"fullName" validate:"notblank"`
	Age         int    `json:"age" validate:"required,gte=16"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`

	// Step 2: Address & Security Information
	Address      string `json:"address" validate:"notblank"`
	City         string `json:"city" validate:"notblank"`
	State        string `json:"state" validate:"notblank"`
	Pincode      string `json:"pincode" validate:"notblank"`
	AadharNumber string `json:"aadharNumber" validate:"notblank,max=12"`
	PanNumber    string `json:"panNumber" validate:"notblank,max=10"`

	// Step 3: Professional & Emergency Information
	Education                string `json:"education" validate:"notblank"`
	Skills                   TagSet `json:"skills" validate:"min=1"`
	Experience               string `json:"experience" validate:"notblank"`
	PreferredJobTypes        TagSet `json:"preferredJobTypes"`
	EmergencyContactName     string `json:"emergencyContactName" validate:"notblank"`
	EmergencyContactPhone    string `json:"emergencyContactPhone" validate:"notblank"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`

	// Step 4: Login Credentials. ConfirmPassword is write-only; it never
	// reaches the stored profile.
	Username        string `json:"username" validate:"notblank"`
	Password        string `json:"password" validate:"notblank"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// RegistrationStepFields maps a wizard step to the draft fields it owns.
// Validation of a step touches exactly these fields and nothing else.
var RegistrationStepFields = map[int][]string{
	1: {"FullName", "Age", "DateOfBirth", "Gender", "PhoneNumber", "Email"},
	2: {"Address", "City", "State", "Pincode", "AadharNumber", "PanNumber"},
	3: {"Education", "Skills", "Experience", "EmergencyContactName", "EmergencyContactPhone"},
	4: {"Username", "Password", "ConfirmPassword"},
}

// HiringDraft is the employer's single-step posting form. Employer
// contacts must be adults, hence the higher age floor.
type HiringDraft struct {
	FullName         string `json:"fullName" validate:"notblank"`
	Age              int    `json:"age" validate:"required,gte=18"`
	OrganizationName string `json:"organizationName" validate:"notblank"`
	JobType          string `json:"jobType" validate:"required"`
	SkillsRequired   TagSet `json:"skillsRequired" validate:"min=1"`
	Description      string `json:"description" validate:"notblank"`
}

// JobSeekerDraft is the seeker's single-step preference form.
type JobSeekerDraft struct {
	FullName          string `json:"fullName" validate:"notblank"`
	Age               int    `json:"age" validate:"required,gte=16"`
	Education         string `json:"education" validate:"notblank"`
	Skills            TagSet `json:"skills" validate:"min=1"`
	JobTypePreference string `json:"jobTypePreference" validate:"required"`
	Experience        string `json:"experience" validate:"notblank"`
}
