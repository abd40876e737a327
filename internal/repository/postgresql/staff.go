package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, first_name, last_name, email, phone, address, designation,
	   photo_url, is_active, join_date, notes, created_at, updated_at`

func scanStaffMember(row pgx.Row) (staff.StaffMember, error) {
	var found staff.StaffMember
	err := row.Scan(
		&found.ID,
		&found.FirstName,
		&found.LastName,
		&found.Email,
		&found.Phone,
		&found.Address,
		&found.Designation,
		&found.PhotoURL,
		&found.IsActive,
		&found.JoinDate,
		&found.Notes,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, newStaff staff.StaffMember) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (
			id, first_name, last_name, email, phone, address, designation,
			photo_url, is_active, join_date, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + staffColumns + `
	`

	return scanStaffMember(q.QueryRow(ctx, query,
		uuid.NewString(),
		newStaff.FirstName,
		newStaff.LastName,
		newStaff.Email,
		newStaff.Phone,
		newStaff.Address,
		newStaff.Designation,
		newStaff.PhotoURL,
		newStaff.IsActive,
		newStaff.JoinDate,
		newStaff.Notes,
	))
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE id = $1
	`

	return scanStaffMember(q.QueryRow(ctx, query, id))
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.StaffMember) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5,
			designation = $6, photo_url = $7, is_active = $8, notes = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	_, err := q.Exec(ctx, query,
		s.FirstName,
		s.LastName,
		s.Email,
		s.Phone,
		s.Address,
		s.Designation,
		s.PhotoURL,
		s.IsActive,
		s.Notes,
		s.ID,
	)
	return err
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM staff WHERE id = $1`
	_, err := q.Exec(ctx, query, id)
	return err
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffMember, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR designation ILIKE $%d)", argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM staff WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM staff
		WHERE %s
		ORDER BY first_name, last_name
		LIMIT $%d OFFSET $%d
	`, staffColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var staffMembers []staff.StaffMember
	for rows.Next() {
		found, err := scanStaffMember(rows)
		if err != nil {
			return nil, 0, err
		}
		staffMembers = append(staffMembers, found)
	}
	return staffMembers, total, rows.Err()
}

// ListActive implements staff.StaffRepository.
func (r *staffRepositoryImpl) ListActive(ctx context.Context) ([]staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE is_active = TRUE
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffMembers []staff.StaffMember
	for rows.Next() {
		found, err := scanStaffMember(rows)
		if err != nil {
			return nil, err
		}
		staffMembers = append(staffMembers, found)
	}
	return staffMembers, rows.Err()
}

// ExistsByEmail implements staff.StaffRepository.
func (r *staffRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM staff WHERE email = $1 AND ($2 = '' OR id::text != $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
