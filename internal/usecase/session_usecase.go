package usecase

import (
	"context"

	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/delivery/http/middleware"
	"appointment-editor/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SessionUsecase exposes the caller's token identity. Tokens are issued by
// the identity service; this side can only read and revoke them.
type SessionUsecase interface {
	GetCurrentSession(ctx context.Context) (*dto.SessionResponse, error)
	Logout(ctx context.Context) error
}

type sessionUsecase struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

func NewSessionUsecase(log *logrus.Logger, redisClient *redis.Client) SessionUsecase {
	return &sessionUsecase{
		log:         log,
		redisClient: redisClient,
	}
}

func (u *sessionUsecase) GetCurrentSession(ctx context.Context) (*dto.SessionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	return &dto.SessionResponse{
		UserID: userID,
		Email:  email,
		RoleID: roleID,
		Role:   entity.RoleName(roleID),
	}, nil
}

// Logout revokes the access token the request was made with
func (u *sessionUsecase) Logout(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}
	tokenID, ok := middleware.GetTokenIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}

	if err := u.redisClient.Del(ctx, middleware.AccessTokenKey(userID, tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	u.log.Infof("User logged out: %s", userID)
	return nil
}
