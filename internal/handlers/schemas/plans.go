package schemas

import (
	"github.com/shopspring/decimal"

	"github.com/dperaltab/tienda-admin/internal/models"
)

type AddPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Notes       string          `json:"notes"`
}

type PlansListResponse struct {
	Success bool                     `json:"success"`
	Plans   []models.ReservationPlan `json:"plans"`
}

type PlanDetailResponse struct {
	Success bool                    `json:"success"`
	Plan    *models.ReservationPlan `json:"plan"`
	// Progress is paid/total as a percentage, clamped to [0,100]; it is a
	// rendering figure derived from the server-owned aggregates.
	Progress float64 `json:"progress"`
	Message  string  `json:"message,omitempty"`
}
