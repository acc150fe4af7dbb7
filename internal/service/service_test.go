package service

import (
	"testing"
	"time"

	"github.com/OleksaDid/simple-debts/internal/config"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/OleksaDid/simple-debts/internal/repo"
	"github.com/OleksaDid/simple-debts/internal/service/authservice"
	"github.com/OleksaDid/simple-debts/internal/service/debtservice"
	"github.com/OleksaDid/simple-debts/internal/service/operationservice"
	"github.com/OleksaDid/simple-debts/internal/service/userservice"
	"github.com/OleksaDid/simple-debts/internal/service/viewservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:      userservice.NewMockRepo(ctrl),
		DebtRepo:      debtservice.NewMockDebtRepo(ctrl),
		OperationRepo: debtservice.NewMockOperationRepo(ctrl),
		TxManager:     pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{JWTSecret: "secret", TokenTTL: time.Hour}

	services := New(repos, cfg, userservice.NewMockAssetRemover(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.DebtService)
	assert.NotNil(t, services.ViewService)
	assert.NotNil(t, services.OperationService)
	assert.NotNil(t, services.UserService)

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &debtservice.Service{}, services.DebtService)
	assert.IsType(t, &viewservice.Service{}, services.ViewService)
	assert.IsType(t, &operationservice.Service{}, services.OperationService)
	assert.IsType(t, &userservice.Service{}, services.UserService)
}
