package member

import "time"

type SubscriptionType string

const (
	SubscriptionMonthly    SubscriptionType = "monthly"
	SubscriptionQuarterly  SubscriptionType = "quarterly"
	SubscriptionSemiAnnual SubscriptionType = "semi-annual"
	SubscriptionAnnual     SubscriptionType = "annual"
)

var SubscriptionTypes = []string{
	string(SubscriptionMonthly),
	string(SubscriptionQuarterly),
	string(SubscriptionSemiAnnual),
	string(SubscriptionAnnual),
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

var PaymentStatuses = []string{
	string(PaymentPaid),
	string(PaymentPending),
	string(PaymentOverdue),
}

type Member struct {
	ID                  string
	PhotoURL            *string
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	JoinDate            time.Time
	SubscriptionType    SubscriptionType
	SubscriptionEndDate time.Time
	PaymentStatus       PaymentStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
