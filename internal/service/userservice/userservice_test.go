package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAssetRemover) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	assets := NewMockAssetRemover(ctrl)

	return New(repo, assets), repo, assets
}

func TestGetByID(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "User found",
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, "u-1").Return(&domain.User{ID: "u-1", Name: "Alice"}, nil)
			},
			expectedUser: &domain.User{ID: "u-1", Name: "Alice"},
		},
		{
			name: "User not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, "u-1").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, "u-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.GetByID(ctx, "u-1")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGetByIDs(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().FindByIDs(ctx, []string{"u-1", "u-2", "u-3"}).
		Return([]domain.User{{ID: "u-1", Name: "Alice"}, {ID: "u-2", Name: "Bob", IsVirtual: true}}, nil)

	users, err := service.GetByIDs(ctx, []string{"u-1", "u-2", "u-3"})
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Alice", users["u-1"].Name)
	assert.True(t, users["u-2"].IsVirtual)
	_, found := users["u-3"]
	assert.False(t, found)
}

func TestCreateVirtual(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		userName      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Created with trimmed name",
			userName: "  Bob ",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					assert.NotEmpty(t, user.ID)
					assert.Equal(t, "Bob", user.Name)
					assert.True(t, user.IsVirtual)
					assert.Empty(t, user.Login)
					assert.Equal(t, "http://assets/bob.png", user.PictureURL)
					return user, nil
				})
			},
		},
		{
			name:          "Empty name",
			userName:      "   ",
			prepareMock:   func() {},
			expectedError: ErrEmptyName,
		},
		{
			name:     "Repository error",
			userName: "Bob",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.CreateVirtual(ctx, tt.userName, "http://assets/bob.png")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestDeleteVirtual(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	err := service.DeleteVirtual(ctx, &domain.User{ID: "u-1"})
	assert.ErrorIs(t, err, ErrUserNotVirtual)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	repo.EXPECT().Delete(ctx, "u-v").Return(nil)
	assert.NoError(t, service.DeleteVirtual(ctx, &domain.User{ID: "u-v", IsVirtual: true}))

	repo.EXPECT().Delete(ctx, "u-v").Return(domain.ErrNotFound)
	assert.ErrorIs(t, service.DeleteVirtual(ctx, &domain.User{ID: "u-v", IsVirtual: true}), ErrUserNotFound)
}

func TestLock(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().LockByID(ctx, "u-1").Return(nil)
	assert.NoError(t, service.Lock(ctx, "u-1"))

	repo.EXPECT().LockByID(ctx, "missing").Return(domain.ErrNotFound)
	assert.ErrorIs(t, service.Lock(ctx, "missing"), ErrUserNotFound)

	repo.EXPECT().LockByID(ctx, "u-1").Return(errors.New("database error"))
	assert.EqualError(t, service.Lock(ctx, "u-1"), "database error")
}

func TestReleasePicture(t *testing.T) {
	service, repo, assets := NewMock(t)
	ctx := context.Background()
	url := "http://assets/bob.png"

	tests := []struct {
		name        string
		url         string
		prepareMock func()
	}{
		{
			name:        "Empty url",
			url:         "",
			prepareMock: func() {},
		},
		{
			name: "Picture still used by another user",
			url:  url,
			prepareMock: func() {
				repo.EXPECT().PictureInUse(ctx, url).Return(true, nil)
			},
		},
		{
			name: "Picture released",
			url:  url,
			prepareMock: func() {
				repo.EXPECT().PictureInUse(ctx, url).Return(false, nil)
				assets.EXPECT().DeleteAsset(ctx, url)
			},
		},
		{
			name: "Usage check fails",
			url:  url,
			prepareMock: func() {
				repo.EXPECT().PictureInUse(ctx, url).Return(false, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			service.ReleasePicture(ctx, tt.url)
		})
	}
}

func TestFindOrphans(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().FindOrphanVirtual(ctx, 10).Return([]domain.User{{ID: "u-v", IsVirtual: true}}, nil)
	orphans, err := service.FindOrphans(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, orphans, 1)

	repo.EXPECT().FindOrphanVirtual(ctx, 10).Return(nil, errors.New("database error"))
	orphans, err = service.FindOrphans(ctx, 10)
	assert.Error(t, err)
	assert.Nil(t, orphans)
}

func TestRemoveOrphan(t *testing.T) {
	service, repo, assets := NewMock(t)
	ctx := context.Background()
	orphan := domain.User{ID: "u-v", Name: "Ghost", PictureURL: "http://assets/g.png", IsVirtual: true}

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, "u-v").Return(nil),
		repo.EXPECT().PictureInUse(ctx, "http://assets/g.png").Return(false, nil),
		assets.EXPECT().DeleteAsset(ctx, "http://assets/g.png"),
	)
	assert.NoError(t, service.RemoveOrphan(ctx, orphan))

	repo.EXPECT().Delete(ctx, "u-v").Return(errors.New("database error"))
	assert.Error(t, service.RemoveOrphan(ctx, orphan))
}
