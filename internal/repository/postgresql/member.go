package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gymdesk/gymdesk-backend-go/internal/domain/member"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type memberRepositoryImpl struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepositoryImpl{db: db}
}

const memberColumns = `id, photo_url, first_name, last_name, email, phone, join_date,
	   subscription_type, subscription_end_date, payment_status, created_at, updated_at`

func scanMember(row pgx.Row) (member.Member, error) {
	var found member.Member
	err := row.Scan(
		&found.ID,
		&found.PhotoURL,
		&found.FirstName,
		&found.LastName,
		&found.Email,
		&found.Phone,
		&found.JoinDate,
		&found.SubscriptionType,
		&found.SubscriptionEndDate,
		&found.PaymentStatus,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements member.MemberRepository.
func (r *memberRepositoryImpl) Create(ctx context.Context, newMember member.Member) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO members (
			id, photo_url, first_name, last_name, email, phone, join_date,
			subscription_type, subscription_end_date, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + memberColumns + `
	`

	return scanMember(q.QueryRow(ctx, query,
		uuid.NewString(),
		newMember.PhotoURL,
		newMember.FirstName,
		newMember.LastName,
		newMember.Email,
		newMember.Phone,
		newMember.JoinDate,
		newMember.SubscriptionType,
		newMember.SubscriptionEndDate,
		newMember.PaymentStatus,
	))
}

// GetByID implements member.MemberRepository.
func (r *memberRepositoryImpl) GetByID(ctx context.Context, id string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE id = $1
	`

	return scanMember(q.QueryRow(ctx, query, id))
}

// Update implements member.MemberRepository.
func (r *memberRepositoryImpl) Update(ctx context.Context, m member.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE members
		SET photo_url = $1, first_name = $2, last_name = $3, email = $4, phone = $5,
			subscription_type = $6, subscription_end_date = $7, payment_status = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	_, err := q.Exec(ctx, query,
		m.PhotoURL,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.SubscriptionType,
		m.SubscriptionEndDate,
		m.PaymentStatus,
		m.ID,
	)
	return err
}

// Delete implements member.MemberRepository.
func (r *memberRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM members WHERE id = $1`
	_, err := q.Exec(ctx, query, id)
	return err
}

// List implements member.MemberRepository.
func (r *memberRepositoryImpl) List(ctx context.Context, filter member.MemberFilter) ([]member.Member, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.SubscriptionType != "" {
		conditions = append(conditions, fmt.Sprintf("subscription_type = $%d", argIdx))
		args = append(args, filter.SubscriptionType)
		argIdx++
	}
	if filter.PaymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("payment_status = $%d", argIdx))
		args = append(args, filter.PaymentStatus)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.RenewalMonth >= 1 && filter.RenewalMonth <= 12 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM subscription_end_date) = $%d", argIdx))
		args = append(args, filter.RenewalMonth)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM members WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM members
		WHERE %s
		ORDER BY first_name, last_name
		LIMIT $%d OFFSET $%d
	`, memberColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		found, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, found)
	}
	return members, total, rows.Err()
}

// ExistsByEmail implements member.MemberRepository.
func (r *memberRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1 AND ($2 = '' OR id::text != $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
