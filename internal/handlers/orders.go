package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dperaltab/tienda-admin/internal/handlers/schemas"
	"github.com/dperaltab/tienda-admin/internal/service"
)

type OrdersHandler struct {
	orders *service.OrderStatusService
}

func NewOrdersHandler(orders *service.OrderStatusService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	paymentFilter := r.URL.Query().Get("paymentStatus")

	orders, err := h.orders.ListOrders(r.Context(), statusFilter, paymentFilter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.OrdersListResponse{Success: true, Orders: orders})
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.OrderDetailResponse{
		Success:        true,
		Order:          order,
		StatusOptions:  schemas.OrderStatusOptions(),
		ReceiptSection: schemas.NewReceiptSection(order),
	})
}

func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	orderID := chi.URLParam(r, "orderID")

	var req schemas.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "can't parse body")
		return
	}

	order, err := h.orders.RequestStatusChange(r.Context(), orderID, req.OrderStatus)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.OrderDetailResponse{
		Success:        true,
		Order:          order,
		StatusOptions:  schemas.OrderStatusOptions(),
		ReceiptSection: schemas.NewReceiptSection(order),
		Message:        "order status updated",
	})
}
