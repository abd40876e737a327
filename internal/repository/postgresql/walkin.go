package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/walkin"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type walkInRepositoryImpl struct {
	db *database.DB
}

func NewWalkInRepository(db *database.DB) walkin.WalkInRepository {
	return &walkInRepositoryImpl{db: db}
}

const walkInColumns = `id, name, email, phone, address, visit_date, interest_level,
	   follow_up_date, follow_up_time, status, notes, created_at, updated_at`

func scanWalkIn(row pgx.Row) (walkin.WalkIn, error) {
	var found walkin.WalkIn
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&found.Phone,
		&found.Address,
		&found.VisitDate,
		&found.InterestLevel,
		&found.FollowUpDate,
		&found.FollowUpTime,
		&found.Status,
		&found.Notes,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements walkin.WalkInRepository.
func (r *walkInRepositoryImpl) Create(ctx context.Context, newWalkIn walkin.WalkIn) (walkin.WalkIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO walk_ins (
			id, name, email, phone, address, visit_date, interest_level,
			follow_up_date, follow_up_time, status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + walkInColumns + `
	`

	return scanWalkIn(q.QueryRow(ctx, query,
		uuid.NewString(),
		newWalkIn.Name,
		newWalkIn.Email,
		newWalkIn.Phone,
		newWalkIn.Address,
		newWalkIn.VisitDate,
		newWalkIn.InterestLevel,
		newWalkIn.FollowUpDate,
		newWalkIn.FollowUpTime,
		newWalkIn.Status,
		newWalkIn.Notes,
	))
}

// GetByID implements walkin.WalkInRepository.
func (r *walkInRepositoryImpl) GetByID(ctx context.Context, id string) (walkin.WalkIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + walkInColumns + `
		FROM walk_ins
		WHERE id = $1
	`

	return scanWalkIn(q.QueryRow(ctx, query, id))
}

// Update implements walkin.WalkInRepository.
func (r *walkInRepositoryImpl) Update(ctx context.Context, w walkin.WalkIn) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE walk_ins
		SET name = $1, email = $2, phone = $3, address = $4, interest_level = $5,
			follow_up_date = $6, follow_up_time = $7, status = $8, notes = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	_, err := q.Exec(ctx, query,
		w.Name,
		w.Email,
		w.Phone,
		w.Address,
		w.InterestLevel,
		w.FollowUpDate,
		w.FollowUpTime,
		w.Status,
		w.Notes,
		w.ID,
	)
	return err
}

// Delete implements walkin.WalkInRepository.
func (r *walkInRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM walk_ins WHERE id = $1`
	_, err := q.Exec(ctx, query, id)
	return err
}

// List implements walkin.WalkInRepository.
func (r *walkInRepositoryImpl) List(ctx context.Context, filter walkin.WalkInFilter) ([]walkin.WalkIn, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("visit_date >= $%d", argIdx))
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("visit_date <= $%d", argIdx))
		args = append(args, filter.DateTo)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM walk_ins WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count walk-ins: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM walk_ins
		WHERE %s
		ORDER BY visit_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, walkInColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var walkIns []walkin.WalkIn
	for rows.Next() {
		found, err := scanWalkIn(rows)
		if err != nil {
			return nil, 0, err
		}
		walkIns = append(walkIns, found)
	}
	return walkIns, total, rows.Err()
}

// ListFollowUpsDue implements walkin.WalkInRepository.
func (r *walkInRepositoryImpl) ListFollowUpsDue(ctx context.Context, date time.Time) ([]walkin.WalkIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + walkInColumns + `
		FROM walk_ins
		WHERE status = 'pending' AND follow_up_date = $1
		ORDER BY follow_up_time NULLS LAST, name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var walkIns []walkin.WalkIn
	for rows.Next() {
		found, err := scanWalkIn(rows)
		if err != nil {
			return nil, err
		}
		walkIns = append(walkIns, found)
	}
	return walkIns, rows.Err()
}
