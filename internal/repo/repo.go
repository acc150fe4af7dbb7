package repo

import (
	"github.com/OleksaDid/simple-debts/internal/pg"
	debtrepo "github.com/OleksaDid/simple-debts/internal/repo/debt-repo"
	operationrepo "github.com/OleksaDid/simple-debts/internal/repo/operation-repo"
	userrepo "github.com/OleksaDid/simple-debts/internal/repo/user-repo"
	"github.com/OleksaDid/simple-debts/internal/service/debtservice"
	"github.com/OleksaDid/simple-debts/internal/service/userservice"
)

type Repositories struct {
	UserRepo      userservice.Repo
	DebtRepo      debtservice.DebtRepo
	OperationRepo debtservice.OperationRepo
	TxManager     pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		DebtRepo:      debtrepo.New(conn),
		OperationRepo: operationrepo.New(conn),
		TxManager:     txManager,
	}
}
