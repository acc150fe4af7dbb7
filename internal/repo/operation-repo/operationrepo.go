package operationrepo

import (
	"context"
	"errors"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const operationColumns = `id, debt_id, date, money_amount, money_receiver, description, status, COALESCE(status_acceptor::text, ''), COALESCE(cancelled_by::text, '')`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var (
		op     domain.Operation
		status string
	)
	err := row.Scan(&op.ID, &op.DebtID, &op.Date, &op.MoneyAmount, &op.MoneyReceiver, &op.Description,
		&status, &op.StatusAcceptor, &op.CancelledBy)
	if err != nil {
		return nil, err
	}
	op.Status = domain.OperationStatus(status)
	return &op, nil
}

func (repo *Repository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	op, err := scanOperation(repo.db.QueryRow(ctx, "SELECT "+operationColumns+" FROM operations WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get operation", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return op, nil
}

// FindByDebtID returns the debt history, oldest first.
func (repo *Repository) FindByDebtID(ctx context.Context, debtID string) ([]domain.Operation, error) {
	query := "SELECT " + operationColumns + " FROM operations WHERE debt_id = $1 ORDER BY date, id"
	rows, err := repo.db.Query(ctx, query, debtID)
	if err != nil {
		zap.L().Error("can't get debt operations", zap.String("debt", debtID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			zap.L().Error("can't scan operation row", zap.Error(err))
			return nil, err
		}
		ops = append(ops, *op)
	}
	return ops, rows.Err()
}

func (repo *Repository) Create(ctx context.Context, op *domain.Operation) error {
	query := `
		INSERT INTO operations (id, debt_id, date, money_amount, money_receiver, description, status, status_acceptor, cancelled_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, NULLIF($9, '')::uuid)
	`
	_, err := repo.db.Exec(ctx, query, op.ID, op.DebtID, op.Date, op.MoneyAmount, op.MoneyReceiver,
		op.Description, string(op.Status), op.StatusAcceptor, op.CancelledBy)
	if err != nil {
		zap.L().Error("can't save operation", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus writes the status fields only while the operation still has
// the expected status. A concurrent change makes it return domain.ErrNotFound.
func (repo *Repository) UpdateStatus(ctx context.Context, op *domain.Operation, expected domain.OperationStatus) error {
	query := `
		UPDATE operations
		SET status = $1, status_acceptor = NULLIF($2, '')::uuid, cancelled_by = NULLIF($3, '')::uuid
		WHERE id = $4 AND status = $5
	`
	tag, err := repo.db.Exec(ctx, query, string(op.Status), op.StatusAcceptor, op.CancelledBy, op.ID, string(expected))
	if err != nil {
		zap.L().Error("can't update operation", zap.String("id", op.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	tag, err := repo.db.Exec(ctx, "DELETE FROM operations WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete operation", zap.String("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SettleAwaitingFor marks every operation of the debt that waits for
// acceptorID as settled.
func (repo *Repository) SettleAwaitingFor(ctx context.Context, debtID, acceptorID string) (int64, error) {
	query := `
		UPDATE operations
		SET status = 'UNCHANGED', status_acceptor = NULL
		WHERE debt_id = $1 AND status = 'CREATION_AWAITING' AND status_acceptor = $2
	`
	tag, err := repo.db.Exec(ctx, query, debtID, acceptorID)
	if err != nil {
		zap.L().Error("can't settle awaiting operations", zap.String("debt", debtID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (repo *Repository) ReplaceReceiver(ctx context.Context, debtID, oldUserID, newUserID string) (int64, error) {
	query := "UPDATE operations SET money_receiver = $1 WHERE debt_id = $2 AND money_receiver = $3"
	tag, err := repo.db.Exec(ctx, query, newUserID, debtID, oldUserID)
	if err != nil {
		zap.L().Error("can't replace operations receiver", zap.String("debt", debtID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
