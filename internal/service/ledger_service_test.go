package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/customerror"
	"github.com/dperaltab/tienda-admin/internal/models"
)

func activePlan(total, paid, remaining int64) *models.ReservationPlan {
	return &models.ReservationPlan{
		ID:               "plan-1",
		TotalAmount:      decimal.NewFromInt(total),
		PaidAmount:       decimal.NewFromInt(paid),
		RemainingAmount:  decimal.NewFromInt(remaining),
		NumberOfPayments: 3,
		PaymentFrequency: models.FrequencyMensual,
		Status:           models.PlanActive,
	}
}

func TestLedgerService_AddPayment_RejectedLocally(t *testing.T) {
	testCases := []struct {
		name   string
		amount decimal.Decimal
		date   string
	}{
		{"zero amount", decimal.Zero, "2026-08-01"},
		{"negative amount", decimal.NewFromInt(-50), "2026-08-01"},
		{"amount exceeds remaining", decimal.NewFromInt(150), "2026-08-01"},
		{"unparseable date", decimal.NewFromInt(50), "01/08/2026"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := new(MockStoreClient)
			ledger := NewLedgerService(mockClient)
			plan := activePlan(900, 800, 100)

			_, err := ledger.AddPayment(context.Background(), plan, tc.amount, tc.date, "")

			require.Error(t, err)
			var validationErr *customerror.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			// invalid input never reaches the store service
			mockClient.AssertNotCalled(t, "AddPlanPayment")
			mockClient.AssertNotCalled(t, "GetReservationPlan")
		})
	}
}

func TestLedgerService_AddPayment_ReloadsPlan(t *testing.T) {
	mockClient := new(MockStoreClient)
	ledger := NewLedgerService(mockClient)

	plan := activePlan(900, 600, 300)
	amount := decimal.NewFromInt(300)

	completed := activePlan(900, 900, 0)
	completed.Status = models.PlanCompleted

	mockClient.On("AddPlanPayment", mock.Anything, "plan-1", storeapi.AddPaymentRequest{
		Amount:      amount,
		PaymentDate: "2026-08-15",
		Notes:       "última cuota",
	}).Return(nil)
	mockClient.On("GetReservationPlan", mock.Anything, "plan-1").Return(completed, nil)

	reloaded, err := ledger.AddPayment(context.Background(), plan, amount, "2026-08-15", "última cuota")

	require.NoError(t, err)
	// the reloaded snapshot is authoritative: completion came from the
	// store service, not from local arithmetic
	assert.Equal(t, models.PlanCompleted, reloaded.Status)
	assert.True(t, reloaded.RemainingAmount.IsZero())
	mockClient.AssertExpectations(t)
}

func TestLedgerService_AddPayment_RequestErrorPropagates(t *testing.T) {
	mockClient := new(MockStoreClient)
	ledger := NewLedgerService(mockClient)
	plan := activePlan(900, 600, 300)

	serverErr := customerror.NewRequestError(409, "el plan no está activo")
	mockClient.On("AddPlanPayment", mock.Anything, "plan-1", mock.Anything).Return(serverErr)

	_, err := ledger.AddPayment(context.Background(), plan, decimal.NewFromInt(100), "2026-08-15", "")

	require.Error(t, err)
	assert.Equal(t, serverErr, err)
	mockClient.AssertNotCalled(t, "GetReservationPlan")
}

func TestLedgerService_VerifyPayment(t *testing.T) {
	t.Run("unknown payment rejected locally", func(t *testing.T) {
		mockClient := new(MockStoreClient)
		ledger := NewLedgerService(mockClient)
		plan := activePlan(900, 300, 600)
		plan.Payments = []models.Payment{{ID: "pay-1", Amount: decimal.NewFromInt(300)}}

		_, err := ledger.VerifyPayment(context.Background(), plan, "pay-404")

		require.Error(t, err)
		mockClient.AssertNotCalled(t, "VerifyPlanPayment")
	})

	t.Run("already verified rejected locally", func(t *testing.T) {
		mockClient := new(MockStoreClient)
		ledger := NewLedgerService(mockClient)
		plan := activePlan(900, 300, 600)
		plan.Payments = []models.Payment{{ID: "pay-1", Amount: decimal.NewFromInt(300), Verified: true}}

		_, err := ledger.VerifyPayment(context.Background(), plan, "pay-1")

		require.Error(t, err)
		mockClient.AssertNotCalled(t, "VerifyPlanPayment")
	})

	t.Run("success verifies and reloads", func(t *testing.T) {
		mockClient := new(MockStoreClient)
		ledger := NewLedgerService(mockClient)
		plan := activePlan(900, 300, 600)
		plan.Payments = []models.Payment{{ID: "pay-1", Amount: decimal.NewFromInt(300)}}

		fresh := activePlan(900, 300, 600)
		fresh.Payments = []models.Payment{{ID: "pay-1", Amount: decimal.NewFromInt(300), Verified: true}}

		mockClient.On("VerifyPlanPayment", mock.Anything, "pay-1").Return(nil)
		mockClient.On("GetReservationPlan", mock.Anything, "plan-1").Return(fresh, nil)

		reloaded, err := ledger.VerifyPayment(context.Background(), plan, "pay-1")

		require.NoError(t, err)
		assert.True(t, reloaded.Payments[0].Verified)
		mockClient.AssertExpectations(t)
	})
}

func TestLedgerService_Progress(t *testing.T) {
	ledger := NewLedgerService(new(MockStoreClient))

	assert.InDelta(t, 66.66, ledger.Progress(activePlan(900, 600, 300)), 0.01)
	assert.Equal(t, float64(100), ledger.Progress(activePlan(900, 900, 0)))
	assert.Equal(t, float64(0), ledger.Progress(activePlan(900, 0, 900)))
	assert.Equal(t, float64(0), ledger.Progress(&models.ReservationPlan{}))
	over := activePlan(900, 1000, -100)
	assert.Equal(t, float64(100), ledger.Progress(over))
}
