package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanCancelled PlanStatus = "cancelled"
	PlanExpired   PlanStatus = "expired"
)

type PaymentFrequency string

const (
	FrequencySemanal   PaymentFrequency = "semanal"
	FrequencyQuincenal PaymentFrequency = "quincenal"
	FrequencyMensual   PaymentFrequency = "mensual"
)

// ReservationPlan is an installment agreement for a single product.
// PaidAmount and RemainingAmount are derived by the store service; the
// admin API never recomputes them from the payments list, it only checks
// that the loaded snapshot is internally consistent.
type ReservationPlan struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	UserName         string           `json:"userName,omitempty"`
	UserEmail        string           `json:"userEmail,omitempty"`
	ProductID        string           `json:"productId"`
	ProductName      string           `json:"productName,omitempty"`
	Quantity         int              `json:"quantity"`
	Size             string           `json:"size,omitempty"`
	Color            string           `json:"color,omitempty"`
	TotalAmount      decimal.Decimal  `json:"totalAmount"`
	PaidAmount       decimal.Decimal  `json:"paidAmount"`
	RemainingAmount  decimal.Decimal  `json:"remainingAmount"`
	NumberOfPayments int              `json:"numberOfPayments"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`
	Status           PlanStatus       `json:"status"`
	Payments         []Payment        `json:"payments,omitempty"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// Payment is one recorded installment. Entries are append-only; the only
// mutation ever applied is flipping Verified.
type Payment struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"paymentDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Verified      bool            `json:"verified"`
	VerifiedAt    *time.Time      `json:"verifiedAt,omitempty"`
}

// Validate checks the aggregate invariant on a loaded snapshot:
// remaining = total - paid, and remaining never below zero.
func (p *ReservationPlan) Validate() error {
	if p.RemainingAmount.IsNegative() {
		return fmt.Errorf("plan %s: negative remaining amount %s", p.ID, p.RemainingAmount)
	}
	if expected := p.TotalAmount.Sub(p.PaidAmount); !p.RemainingAmount.Equal(expected) {
		return fmt.Errorf("plan %s: remaining %s does not match total %s - paid %s",
			p.ID, p.RemainingAmount, p.TotalAmount, p.PaidAmount)
	}
	return nil
}
