package userrepo

import (
	"context"
	"errors"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, name, COALESCE(login, ''), password_hash, picture_url, is_virtual, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Login, &user.PasswordHash, &user.PictureURL, &user.IsVirtual, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// LockByID takes a row lock on the user until the surrounding transaction ends.
func (repo *Repository) LockByID(ctx context.Context, id string) error {
	var lockedID string
	if err := repo.db.QueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", id).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		zap.L().Error("can't lock user", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = ANY($1::uuid[])", ids)
	if err != nil {
		zap.L().Error("can't find users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Create inserts a real or a virtual user. Virtual users are stored without login.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, name, login, password_hash, picture_url, is_virtual)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Login, user.PasswordHash, user.PictureURL, user.IsVirtual).Scan(&user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes a virtual user. Real users are never deleted here.
func (repo *Repository) Delete(ctx context.Context, id string) error {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1 AND is_virtual", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.String("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (repo *Repository) PictureInUse(ctx context.Context, pictureURL string) (bool, error) {
	var inUse bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE picture_url = $1)", pictureURL).Scan(&inUse)
	if err != nil {
		zap.L().Error("can't check picture usage", zap.Error(err))
		return false, err
	}
	return inUse, nil
}

// FindOrphanVirtual returns virtual users that no debt references.
func (repo *Repository) FindOrphanVirtual(ctx context.Context, limit int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.is_virtual
		  AND NOT EXISTS (SELECT 1 FROM debts d WHERE d.user_a = u.id OR d.user_b = u.id)
		ORDER BY u.created_at
		LIMIT $1
	`
	rows, err := repo.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get orphan virtual users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan orphan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
