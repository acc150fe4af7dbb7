package debtrepo

import (
	"context"
	"errors"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const debtColumns = `id, user_a, user_b, type, currency, status, COALESCE(status_acceptor::text, ''), summary, COALESCE(money_receiver::text, ''), created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var (
		debt         domain.Debt
		debtType     string
		status       string
		userA, userB string
	)
	err := row.Scan(&debt.ID, &userA, &userB, &debtType, &debt.Currency, &status,
		&debt.StatusAcceptor, &debt.Summary, &debt.MoneyReceiver, &debt.CreatedAt)
	if err != nil {
		return nil, err
	}
	debt.Users = [2]string{userA, userB}
	debt.Type = domain.DebtType(debtType)
	debt.Status = domain.DebtStatus(status)
	return &debt, nil
}

func (repo *Repository) getOne(ctx context.Context, query, id string) (*domain.Debt, error) {
	debt, err := scanDebt(repo.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get debt", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return debt, nil
}

func (repo *Repository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	return repo.getOne(ctx, "SELECT "+debtColumns+" FROM debts WHERE id = $1", id)
}

// GetByIDForUpdate locks the debt row until the surrounding transaction ends.
func (repo *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Debt, error) {
	return repo.getOne(ctx, "SELECT "+debtColumns+" FROM debts WHERE id = $1 FOR UPDATE", id)
}

// FindByUserID returns debts the user is a member of, plus connection
// requests addressed to the user.
func (repo *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_a = $1 OR user_b = $1 OR (status = 'CONNECT_USER' AND status_acceptor = $1)
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user debts", zap.String("user", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			zap.L().Error("can't scan debt row", zap.Error(err))
			return nil, err
		}
		debts = append(debts, *debt)
	}
	return debts, rows.Err()
}

func (repo *Repository) ExistsBetween(ctx context.Context, firstUserID, secondUserID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM debts
			WHERE (user_a = $1 AND user_b = $2) OR (user_a = $2 AND user_b = $1)
		)
	`
	var exists bool
	if err := repo.db.QueryRow(ctx, query, firstUserID, secondUserID).Scan(&exists); err != nil {
		zap.L().Error("can't check debt existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// ExistsSingleWithVirtualName reports whether ownerID already has a single
// user debt whose virtual counterpart is called name.
func (repo *Repository) ExistsSingleWithVirtualName(ctx context.Context, ownerID, name string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM debts d
			JOIN users u ON u.id IN (d.user_a, d.user_b) AND u.is_virtual
			WHERE d.type = 'SINGLE_USER' AND (d.user_a = $1 OR d.user_b = $1) AND u.name = $2
		)
	`
	var exists bool
	if err := repo.db.QueryRow(ctx, query, ownerID, name).Scan(&exists); err != nil {
		zap.L().Error("can't check virtual user name", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (repo *Repository) Create(ctx context.Context, debt *domain.Debt) error {
	query := `
		INSERT INTO debts (id, user_a, user_b, type, currency, status, status_acceptor, summary, money_receiver)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, NULLIF($9, '')::uuid)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, debt.ID, debt.Users[0], debt.Users[1], string(debt.Type), debt.Currency,
		string(debt.Status), debt.StatusAcceptor, debt.Summary, debt.MoneyReceiver).Scan(&debt.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.ErrConflict
		}
		zap.L().Error("can't save debt", zap.Error(err))
		return err
	}
	return nil
}

// Update writes the debt only while it still has the expected status.
// A concurrent change makes it return domain.ErrNotFound.
func (repo *Repository) Update(ctx context.Context, debt *domain.Debt, expected domain.DebtStatus) error {
	query := `
		UPDATE debts
		SET user_a = $1, user_b = $2, type = $3, status = $4,
			status_acceptor = NULLIF($5, '')::uuid, summary = $6, money_receiver = NULLIF($7, '')::uuid
		WHERE id = $8 AND status = $9
	`
	tag, err := repo.db.Exec(ctx, query, debt.Users[0], debt.Users[1], string(debt.Type), string(debt.Status),
		debt.StatusAcceptor, debt.Summary, debt.MoneyReceiver, debt.ID, string(expected))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.ErrConflict
		}
		zap.L().Error("can't update debt", zap.String("id", debt.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the debt with its operations while it still has the expected status.
func (repo *Repository) Delete(ctx context.Context, id string, expected domain.DebtStatus) error {
	tag, err := repo.db.Exec(ctx, "DELETE FROM debts WHERE id = $1 AND status = $2", id, string(expected))
	if err != nil {
		zap.L().Error("can't delete debt", zap.String("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
