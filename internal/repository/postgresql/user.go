package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/user"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, role, oauth_provider, oauth_provider_id, staff_id,
	   created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.OAuthProvider,
		&found.OAuthProviderID,
		&found.StaffID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	return scanUser(q.QueryRow(ctx, query, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, oauth_provider, oauth_provider_id, staff_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query,
		uuid.NewString(),
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
		newUser.StaffID,
	))
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = $1, oauth_provider_id = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING ` + userColumns + `
	`

	return scanUser(q.QueryRow(ctx, query, "google", googleID, email))
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := q.Exec(ctx, query, passwordHash, userID)
	return err
}

// UpdateRole implements user.UserRepository.
func (r *userRepositoryImpl) UpdateRole(ctx context.Context, userID string, role user.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET role = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := q.Exec(ctx, query, role, userID)
	return err
}
