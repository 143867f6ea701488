package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/customerror"
	"github.com/dperaltab/tienda-admin/internal/models"
)

const paymentDateLayout = "2006-01-02"

// LedgerService records and verifies installment payments against one
// reservation plan at a time. PaidAmount, RemainingAmount and plan status
// are owned by the store service; after every mutation the plan is reloaded
// in full rather than patched locally.
type LedgerService struct {
	client storeapi.ClientI
}

func NewLedgerService(client storeapi.ClientI) *LedgerService {
	return &LedgerService{client: client}
}

func (service *LedgerService) ListPlans(ctx context.Context, planStatus string) ([]models.ReservationPlan, error) {
	return service.client.ListReservationPlans(ctx, planStatus)
}

func (service *LedgerService) GetPlan(ctx context.Context, planID string) (*models.ReservationPlan, error) {
	return service.client.GetReservationPlan(ctx, planID)
}

// AddPayment appends a new unverified payment to the plan. Invalid input is
// rejected locally, before any request is issued: the amount must be
// positive and must not exceed the plan's remaining balance.
func (service *LedgerService) AddPayment(ctx context.Context, plan *models.ReservationPlan, amount decimal.Decimal, paymentDate, notes string) (*models.ReservationPlan, error) {
	if amount.Sign() <= 0 {
		return nil, customerror.NewValidationError("payment amount must be greater than zero")
	}
	if amount.GreaterThan(plan.RemainingAmount) {
		return nil, customerror.NewValidationError(fmt.Sprintf(
			"payment of %s exceeds the remaining balance of %s", amount, plan.RemainingAmount))
	}
	if _, err := time.Parse(paymentDateLayout, paymentDate); err != nil {
		return nil, customerror.NewValidationError(fmt.Sprintf("invalid payment date %q, expected YYYY-MM-DD", paymentDate))
	}

	payment := storeapi.AddPaymentRequest{Amount: amount, PaymentDate: paymentDate, Notes: notes}
	if err := service.client.AddPlanPayment(ctx, plan.ID, payment); err != nil {
		return nil, err
	}

	return service.client.GetReservationPlan(ctx, plan.ID)
}

// VerifyPayment marks a recorded payment as verified. Completion of the plan
// is the store service's decision; the reloaded snapshot reflects it.
func (service *LedgerService) VerifyPayment(ctx context.Context, plan *models.ReservationPlan, paymentID string) (*models.ReservationPlan, error) {
	var found *models.Payment
	for i := range plan.Payments {
		if plan.Payments[i].ID == paymentID {
			found = &plan.Payments[i]
			break
		}
	}
	if found == nil {
		return nil, customerror.NewValidationError(fmt.Sprintf("payment %s does not belong to plan %s", paymentID, plan.ID))
	}
	if found.Verified {
		return nil, customerror.NewValidationError(fmt.Sprintf("payment %s is already verified", paymentID))
	}

	if err := service.client.VerifyPlanPayment(ctx, paymentID); err != nil {
		return nil, err
	}

	return service.client.GetReservationPlan(ctx, plan.ID)
}

// Progress returns paid/total as a percentage clamped to [0,100]. It is a
// display figure only and never gates a write.
func (service *LedgerService) Progress(plan *models.ReservationPlan) float64 {
	if plan.TotalAmount.Sign() <= 0 {
		return 0
	}
	progress := plan.PaidAmount.
		Div(plan.TotalAmount).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
