package userservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/digimon/internal/domain"
	"github.com/GlebRadaev/digimon/pkg/auth"
	"github.com/GlebRadaev/digimon/pkg/paginate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrUserNotFound  = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrUsernameTaken = fmt.Errorf("username %w", domain.ErrAlreadyExists)
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
	}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *Service) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("user successfully registered", zap.Int("id", user.ID), zap.String("username", username))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, page int) (*domain.Page[domain.User], error) {
	return paginate.Fetch[domain.User](ctx, page, s.userRepo.Count, s.userRepo.List)
}

func (s *Service) UpdateUser(ctx context.Context, id int, username, email string) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, &domain.User{ID: id, Username: username, Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrReferenced) {
			zap.L().Error("failed to delete user", zap.Int("id", id), zap.Error(err))
		}
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
