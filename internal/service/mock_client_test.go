package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/models"
)

// MockStoreClient is a testify mock over storeapi.ClientI.
type MockStoreClient struct {
	mock.Mock
}

func (m *MockStoreClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockStoreClient) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockStoreClient) UpdateOrderStatus(ctx context.Context, orderID, orderStatus string) error {
	args := m.Called(ctx, orderID, orderStatus)
	return args.Error(0)
}

func (m *MockStoreClient) ListReservationPlans(ctx context.Context, planStatus string) ([]models.ReservationPlan, error) {
	args := m.Called(ctx, planStatus)
	return args.Get(0).([]models.ReservationPlan), args.Error(1)
}

func (m *MockStoreClient) GetReservationPlan(ctx context.Context, planID string) (*models.ReservationPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationPlan), args.Error(1)
}

func (m *MockStoreClient) AddPlanPayment(ctx context.Context, planID string, payment storeapi.AddPaymentRequest) error {
	args := m.Called(ctx, planID, payment)
	return args.Error(0)
}

func (m *MockStoreClient) VerifyPlanPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockStoreClient) ListReceipts(ctx context.Context, filters models.ReceiptFilters) (*storeapi.ReceiptPage, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeapi.ReceiptPage), args.Error(1)
}

func (m *MockStoreClient) SetReceiptStatus(ctx context.Context, orderID, receiptStatus, rejectionReason string) error {
	args := m.Called(ctx, orderID, receiptStatus, rejectionReason)
	return args.Error(0)
}
