package usecase

import (
	"context"
	"strconv"

	"skillbridge-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	userRepo domain.UserRepository
}

func NewHealthUsecase(userRepo domain.UserRepository) HealthUsecase {
	return &healthUsecase{userRepo: userRepo}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	users, _ := u.userRepo.All(ctx)
	return map[string]string{
		"status":          "ok",
		"registeredUsers": strconv.Itoa(len(users)),
	}
}
