package postgresql

import (
	"context"
	"errors"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// Get implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) Get(ctx context.Context, staffID string, year int) (*leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT staff_id, year, total_paid_leave, used_paid_leave, remaining_paid_leave, updated_at
		FROM leave_balances
		WHERE staff_id = $1 AND year = $2
	`

	var balance leave.Balance
	err := q.QueryRow(ctx, query, staffID, year).Scan(
		&balance.StaffID,
		&balance.Year,
		&balance.TotalPaidLeave,
		&balance.UsedPaidLeave,
		&balance.RemainingPaidLeave,
		&balance.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

// Upsert implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) Upsert(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (staff_id, year, total_paid_leave, used_paid_leave, remaining_paid_leave)
		VALUES ($1, $2, $3, $4, $3::INTEGER - $4::INTEGER)
		ON CONFLICT (staff_id, year) DO UPDATE SET
			total_paid_leave = EXCLUDED.total_paid_leave,
			used_paid_leave = EXCLUDED.used_paid_leave,
			remaining_paid_leave = EXCLUDED.total_paid_leave - EXCLUDED.used_paid_leave,
			updated_at = NOW()
		RETURNING staff_id, year, total_paid_leave, used_paid_leave, remaining_paid_leave, updated_at
	`

	var saved leave.Balance
	err := q.QueryRow(ctx, query,
		balance.StaffID,
		balance.Year,
		balance.TotalPaidLeave,
		balance.UsedPaidLeave,
	).Scan(
		&saved.StaffID,
		&saved.Year,
		&saved.TotalPaidLeave,
		&saved.UsedPaidLeave,
		&saved.RemainingPaidLeave,
		&saved.UpdatedAt,
	)
	if err != nil {
		return leave.Balance{}, err
	}
	return saved, nil
}

// AddUsed implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) AddUsed(ctx context.Context, staffID string, year int, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used_paid_leave = used_paid_leave + $3,
			remaining_paid_leave = total_paid_leave - (used_paid_leave + $3),
			updated_at = NOW()
		WHERE staff_id = $1 AND year = $2
	`

	tag, err := q.Exec(ctx, query, staffID, year, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
