package service

import (
	"context"
	"strings"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/models"
	"github.com/dperaltab/tienda-admin/internal/status"
)

// OrderStatusService requests order lifecycle transitions against the store
// service. Legality of a transition is decided there; locally we only reject
// vocabulary that cannot be normalized to a canonical status.
type OrderStatusService struct {
	client storeapi.ClientI
}

func NewOrderStatusService(client storeapi.ClientI) *OrderStatusService {
	return &OrderStatusService{client: client}
}

// ListOrders returns the order list, optionally narrowed by order status
// and payment status. Filters accept any locale alias; an unknown filter
// value simply matches nothing.
func (service *OrderStatusService) ListOrders(ctx context.Context, statusFilter, paymentFilter string) ([]models.Order, error) {
	orders, err := service.client.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	if isAllFilter(statusFilter) && isAllFilter(paymentFilter) {
		return orders, nil
	}

	wantStatus := status.OrderStatuses.Canonical(statusFilter)
	wantPayment := status.PaymentStatuses.Canonical(paymentFilter)

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if !isAllFilter(statusFilter) && status.OrderStatuses.Canonical(string(order.OrderStatus)) != wantStatus {
			continue
		}
		if !isAllFilter(paymentFilter) && status.PaymentStatuses.Canonical(string(order.PaymentStatus)) != wantPayment {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}

func (service *OrderStatusService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return service.client.GetOrder(ctx, orderID)
}

// RequestStatusChange submits a transition request and reloads the order in
// full from the store service. No optimistic local mutation survives the
// request boundary: the returned order is the authoritative snapshot.
func (service *OrderStatusService) RequestStatusChange(ctx context.Context, orderID, desiredStatus string) (*models.Order, error) {
	canonical, err := status.OrderStatuses.CanonicalStrict(desiredStatus)
	if err != nil {
		return nil, err
	}

	if err := service.client.UpdateOrderStatus(ctx, orderID, canonical); err != nil {
		return nil, err
	}

	return service.client.GetOrder(ctx, orderID)
}

func isAllFilter(filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	return filter == "" || filter == "all"
}
