package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/OleksaDid/simple-debts/internal/config"
	"github.com/OleksaDid/simple-debts/internal/handlers/auth"
	"github.com/OleksaDid/simple-debts/internal/handlers/debts"
	"github.com/OleksaDid/simple-debts/internal/handlers/operations"
	"github.com/OleksaDid/simple-debts/internal/janitor"
	pkgauth "github.com/OleksaDid/simple-debts/pkg/auth"

	"github.com/OleksaDid/simple-debts/internal/repo"
	authservice "github.com/OleksaDid/simple-debts/internal/service/authservice"
	debtservice "github.com/OleksaDid/simple-debts/internal/service/debtservice"
	operationservice "github.com/OleksaDid/simple-debts/internal/service/operationservice"
	userservice "github.com/OleksaDid/simple-debts/internal/service/userservice"
	viewservice "github.com/OleksaDid/simple-debts/internal/service/viewservice"
)

type Services struct {
	AuthService      auth.Service
	DebtService      debts.Service
	ViewService      debts.ViewService
	OperationService operations.Service
	UserService      janitor.Users
}

func New(repo *repo.Repositories, cfg *config.Config, assets userservice.AssetRemover) *Services {
	userService := userservice.New(repo.UserRepo, assets)
	authService := authservice.New(
		repo.UserRepo,
		pkgauth.NewHashService(bcrypt.DefaultCost),
		pkgauth.NewJWTService(cfg.JWTSecret),
		cfg.TokenTTL,
	)
	debtService := debtservice.New(repo.DebtRepo, repo.OperationRepo, userService, repo.TxManager)
	operationService := operationservice.New(repo.DebtRepo, repo.OperationRepo, repo.TxManager)
	viewService := viewservice.New(repo.DebtRepo, repo.OperationRepo, userService)

	return &Services{
		AuthService:      authService,
		DebtService:      debtService,
		ViewService:      viewService,
		OperationService: operationService,
		UserService:      userService,
	}
}
