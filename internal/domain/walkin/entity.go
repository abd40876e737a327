package walkin

import "time"

type InterestLevel string

const (
	InterestHigh   InterestLevel = "high"
	InterestMedium InterestLevel = "medium"
	InterestLow    InterestLevel = "low"
)

var InterestLevels = []string{
	string(InterestHigh),
	string(InterestMedium),
	string(InterestLow),
}

// WalkInStatus tracks the lead lifecycle: every walk-in starts pending
// and ends either converted (became a member) or not interested.
type WalkInStatus string

const (
	StatusPending       WalkInStatus = "pending"
	StatusConverted     WalkInStatus = "converted"
	StatusNotInterested WalkInStatus = "not_interested"
)

var WalkInStatuses = []string{
	string(StatusPending),
	string(StatusConverted),
	string(StatusNotInterested),
}

type WalkIn struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Address       *string
	VisitDate     time.Time
	InterestLevel InterestLevel
	FollowUpDate  *time.Time
	FollowUpTime  *string // HH:mm
	Status        WalkInStatus
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
