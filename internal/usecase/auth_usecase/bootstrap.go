package auth

import (
	"context"
	"strings"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	"github.com/raven-ibanez/Yong-Convenient-Store/internal/repository"
)

// IDを作る約束
type IDGenerator interface {
	NewID() string
}

// EnsureAdminUser は起動時に管理ユーザーを1人だけ保証する。
// 既に同じメールのユーザーがいれば何もしない。
func EnsureAdminUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	idGen IDGenerator,
	email string,
	password string,
) error {
	email = strings.TrimSpace(email)

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	return userRepo.Create(ctx, &model.User{
		ID:           idGen.NewID(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	})
}
