package usecase

import (
	"context"
	"time"

	"skillbridge-backend/internal/domain"
	"skillbridge-backend/internal/session"
	"skillbridge-backend/internal/wizard"
	"skillbridge-backend/pkg/apperror"
	"skillbridge-backend/pkg/validation"
)

type authUsecase struct {
	userRepo domain.UserRepository
	engine   *validation.Engine
	session  *session.Context
}

func NewAuthUsecase(userRepo domain.UserRepository, engine *validation.Engine, sess *session.Context) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, engine: engine, session: sess}
}

func (u *authUsecase) ValidateRegistrationStep(step int, draft *domain.RegistrationDraft) map[string]string {
	return u.engine.RegistrationStep(step, draft)
}

// Register replays the registration wizard over the submitted draft so a
// client cannot skip a step's validation, then builds the profile with its
// system defaults, appends it to the stored user list and logs it in.
func (u *authUsecase) Register(ctx context.Context, draft *domain.RegistrationDraft) (*domain.UserProfile, error) {
	ctrl := wizard.New(domain.RegistrationSteps, func(step int) validation.Errors {
		return u.engine.RegistrationStep(step, draft)
	})
	for ctrl.Step() < ctrl.TotalSteps() {
		if ok, errs := ctrl.Next(); !ok {
			return nil, apperror.Validation(errs)
		}
	}
	if ok, errs := ctrl.Submit(); !ok {
		return nil, apperror.Validation(errs)
	}

	now := time.Now()
	profile := &domain.UserProfile{
		ID:          now.UnixMilli(),
		FullName:    draft.FullName,
		Age:         draft.Age,
		DateOfBirth: draft.DateOfBirth,
		Gender:      draft.Gender,
		PhoneNumber: draft.PhoneNumber,
		Email:       draft.Email,

		Address: draft.Address,
		City:    draft.City,
		State:   draft.State,
		Pincode: draft.Pincode,

		AadharNumber: draft.AadharNumber,
		PanNumber:    draft.PanNumber,

		Education:         draft.Education,
		Skills:            draft.Skills,
		Experience:        draft.Experience,
		PreferredJobTypes: draft.PreferredJobTypes,

		EmergencyContactName:     draft.EmergencyContactName,
		EmergencyContactPhone:    draft.EmergencyContactPhone,
		EmergencyContactRelation: draft.EmergencyContactRelation,

		Username: draft.Username,
		Password: draft.Password,

		Rating:        0,
		TotalRatings:  0,
		CompletedJobs: 0,
		JoinedDate:    now,
		IsVerified:    false, // verified later by an admin, out of scope here
		Status:        domain.UserStatusActive,
	}

	if err := u.userRepo.Append(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	u.session.Login(profile)
	return profile, nil
}

// Login never reveals which of username or password was wrong.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.UserProfile, error) {
	user, err := u.userRepo.FindByCredentials(ctx, username, password)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	u.session.Login(user)
	return user, nil
}

func (u *authUsecase) Logout() {
	u.session.Logout()
}

func (u *authUsecase) CurrentUser() (*domain.UserProfile, bool) {
	return u.session.Current()
}
