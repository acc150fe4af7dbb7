package repo

import (
	"testing"

	"github.com/OleksaDid/simple-debts/internal/pg"
	debtrepo "github.com/OleksaDid/simple-debts/internal/repo/debt-repo"
	operationrepo "github.com/OleksaDid/simple-debts/internal/repo/operation-repo"
	userrepo "github.com/OleksaDid/simple-debts/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.DebtRepo)
	assert.NotNil(t, repo.OperationRepo)
	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &debtrepo.Repository{}, repo.DebtRepo)
	assert.IsType(t, &operationrepo.Repository{}, repo.OperationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
