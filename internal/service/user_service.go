package service

import (
	"SimpleBlog/internal/api/dto"
	"SimpleBlog/internal/model"
	"SimpleBlog/internal/pkg/security"
	"SimpleBlog/internal/pkg/util"
	"SimpleBlog/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.CredentialDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserById(ctx context.Context, id string) (*model.User, error)
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	revocations security.RevocationList
}

func NewUserService(userRepo repository.UserRepo, revocations security.RevocationList) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		revocations: revocations,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.CredentialDTO) error {
	regDTO.Username = strings.TrimSpace(regDTO.Username)
	if err := util.ValidateDTO(regDTO); err != nil {
		return ErrParamInvalid
	}

	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserExist
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		return err
	}
	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash

	err = s.userRepo.CreateUser(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserExist
	}
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, dto *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(dto.Username))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if err = security.CheckPasswordHash(dto.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}
	return security.GenerateToken(user.ID, user.Username)
}

// Logout 吊销 Token 直到其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return s.revocations.Revoke(ctx, signature, security.RemainingTTL(claims))
}

func (s *UserServiceImpl) GetUserById(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
