package domain

import (
	"context"
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const UserStatusActive = "active"

// UserProfile is a registered employee record. Credentials are stored in
// clear text; this is a single-user local system with no remote exposure.
type UserProfile struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Age         int    `json:"age"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	// Verification identifiers are opaque strings; only the UI-level
	// length caps apply, never a checksum.
	AadharNumber string `json:"aadharNumber"`
	PanNumber    string `json:"panNumber"`

	Education         string `json:"education"`
	Skills            TagSet `json:"skills"`
	Experience        string `json:"experience"`
	PreferredJobTypes TagSet `json:"preferredJobTypes"`

	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactPhone    string `json:"emergencyContactPhone"`
	EmergencyContactRelation string `json:"emergencyContactRelation,omitempty"`

	Username string `json:"username"`
	Password string `json:"password"`

	Rating        float64   `json:"rating"`
	TotalRatings  int       `json:"totalRatings"`
	CompletedJobs int       `json:"completedJobs"`
	JoinedDate    time.Time `json:"joinedDate"`
	IsVerified    bool      `json:"isVerified"`
	Status        string    `json:"status"`
}

type UserRepository interface {
	All(ctx context.Context) ([]UserProfile, error)
	Append(ctx context.Context, profile *UserProfile) error
	FindByCredentials(ctx context.Context, username, password string) (*UserProfile, error)
}

type AuthUsecase interface {
	ValidateRegistrationStep(step int, draft *RegistrationDraft) map[string]string
	Register(ctx context.Context, draft *RegistrationDraft) (*UserProfile, error)
	Login(ctx context.Context, username, password string) (*UserProfile, error)
	Logout()
	CurrentUser() (*UserProfile, bool)
}
