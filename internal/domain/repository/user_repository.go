package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"inkpress/internal/common"
	"inkpress/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	AppendLoginEntry(ctx context.Context, userID string, entry model.LoginEntry) error
	LoginHistory(ctx context.Context, userID string) ([]model.LoginEntry, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, hashed_password, email)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.HashedPassword, user.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user %q already exists: %w", user.Username, common.ErrDuplicateUser)
		}
		return fmt.Errorf("pgUserRepository.Create: %w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, hashed_password, email, created_at
	          FROM users WHERE username = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.HashedPassword, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgUserRepository.FindByUsername: %w: %v", common.ErrPersistence, err)
	}
	return user, nil
}

// AppendLoginEntry is a single INSERT, so concurrent verifications for the
// same user cannot lose each other's audit rows.
func (r *pgUserRepository) AppendLoginEntry(ctx context.Context, userID string, entry model.LoginEntry) error {
	query := `INSERT INTO login_history (user_id, logged_at, user_agent)
	          VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, userID, entry.LoggedAt, entry.UserAgent)
	if err != nil {
		return fmt.Errorf("pgUserRepository.AppendLoginEntry: %w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *pgUserRepository) LoginHistory(ctx context.Context, userID string) ([]model.LoginEntry, error) {
	query := `SELECT logged_at, user_agent FROM login_history
	          WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.LoginHistory: %w: %v", common.ErrPersistence, err)
	}
	defer rows.Close()

	var history []model.LoginEntry
	for rows.Next() {
		var entry model.LoginEntry
		if err := rows.Scan(&entry.LoggedAt, &entry.UserAgent); err != nil {
			return nil, fmt.Errorf("pgUserRepository.LoginHistory: %w: %v", common.ErrPersistence, err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.LoginHistory: %w: %v", common.ErrPersistence, err)
	}
	return history, nil
}
