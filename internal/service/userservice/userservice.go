package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	LockByID(ctx context.Context, id string) error
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	PictureInUse(ctx context.Context, pictureURL string) (bool, error)
	FindOrphanVirtual(ctx context.Context, limit int) ([]domain.User, error)
}

type AssetRemover interface {
	DeleteAsset(ctx context.Context, url string)
}

var (
	ErrUserNotFound   = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrEmptyName      = fmt.Errorf("%w: user name is required", domain.ErrValidation)
	ErrUserNotVirtual = fmt.Errorf("%w: only virtual users can be removed", domain.ErrInvalidState)
)

type Service struct {
	userRepo Repo
	assets   AssetRemover
}

func New(repo Repo, assets AssetRemover) *Service {
	return &Service{
		userRepo: repo,
		assets:   assets,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Lock serializes writers that depend on the user's set of debts. It must run
// inside a transaction.
func (s *Service) Lock(ctx context.Context, id string) error {
	if err := s.userRepo.LockByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		zap.L().Error("can't lock user", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// GetByIDs returns the found users keyed by id. Missing ids are skipped.
func (s *Service) GetByIDs(ctx context.Context, ids []string) (map[string]domain.User, error) {
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	byID := make(map[string]domain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func (s *Service) CreateVirtual(ctx context.Context, name, pictureURL string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		ID:         uuid.NewString(),
		Name:       name,
		PictureURL: pictureURL,
		IsVirtual:  true,
	})
	if err != nil {
		zap.L().Error("can't create virtual user", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	zap.L().Debug("virtual user created", zap.String("id", user.ID), zap.String("name", user.Name))
	return user, nil
}

// DeleteVirtual removes the user record only. The picture is released
// separately, after the surrounding transaction commits.
func (s *Service) DeleteVirtual(ctx context.Context, user *domain.User) error {
	if !user.IsVirtual {
		return ErrUserNotVirtual
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		zap.L().Error("can't delete virtual user", zap.String("id", user.ID), zap.Error(err))
		return err
	}
	zap.L().Debug("virtual user deleted", zap.String("id", user.ID))
	return nil
}

// ReleasePicture asks the asset storage to drop pictureURL unless another
// user still shows it.
func (s *Service) ReleasePicture(ctx context.Context, pictureURL string) {
	if pictureURL == "" {
		return
	}
	inUse, err := s.userRepo.PictureInUse(ctx, pictureURL)
	if err != nil {
		zap.L().Error("can't check picture usage, keeping asset", zap.String("url", pictureURL), zap.Error(err))
		return
	}
	if inUse {
		return
	}
	s.assets.DeleteAsset(ctx, pictureURL)
}

func (s *Service) FindOrphans(ctx context.Context, limit int) ([]domain.User, error) {
	orphans, err := s.userRepo.FindOrphanVirtual(ctx, limit)
	if err != nil {
		zap.L().Error("can't find orphan virtual users", zap.Error(err))
		return nil, err
	}
	return orphans, nil
}

// RemoveOrphan deletes a virtual user that no debt references and releases its picture.
func (s *Service) RemoveOrphan(ctx context.Context, user domain.User) error {
	if err := s.DeleteVirtual(ctx, &user); err != nil {
		return err
	}
	s.ReleasePicture(ctx, user.PictureURL)
	zap.L().Info("orphan virtual user removed", zap.String("id", user.ID), zap.String("name", user.Name))
	return nil
}
