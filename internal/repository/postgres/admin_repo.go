package postgres

import (
	"context"
	"database/sql"

	"weddingrsvp/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Add(ctx context.Context, userID string) error {
	query := `
		INSERT INTO admins (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

func (r *adminRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE user_id = $1)`
	var ok bool
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&ok)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
