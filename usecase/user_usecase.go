package usecase

import (
	"context"

	"github.com/Waseemalame/unwokeai/model"
)

type UserUsecase struct {
	users UserStore
}

func NewUserUsecase(users UserStore) *UserUsecase {
	return &UserUsecase{users: users}
}

// Bootstrap upserts the caller's profile row on login.
func (u *UserUsecase) Bootstrap(ctx context.Context, uid, email string) (*model.User, error) {
	return u.users.Upsert(ctx, uid, email)
}
