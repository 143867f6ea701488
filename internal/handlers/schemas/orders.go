package schemas

import (
	"github.com/dperaltab/tienda-admin/internal/models"
	"github.com/dperaltab/tienda-admin/internal/status"
)

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

// StatusOption is one entry of the status select: the canonical code the
// store service expects paired with the Spanish label the console shows.
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func OrderStatusOptions() []StatusOption {
	canonicals := status.OrderStatuses.Canonicals()
	options := make([]StatusOption, 0, len(canonicals))
	for _, c := range canonicals {
		options = append(options, StatusOption{Value: c, Label: status.OrderStatuses.DisplayLabel(c)})
	}
	return options
}

// ReceiptSection describes the proof-of-transfer block of an order detail.
// It exists only for transfer orders; without an uploaded receipt it renders
// the "no receipt" state and exposes no review actions.
type ReceiptSection struct {
	Present     bool            `json:"present"`
	StatusLabel string          `json:"statusLabel,omitempty"`
	Receipt     *models.Receipt `json:"receipt,omitempty"`
	CanApprove  bool            `json:"canApprove"`
	CanReview   bool            `json:"canReview"`
	CanReject   bool            `json:"canReject"`
}

func NewReceiptSection(order *models.Order) *ReceiptSection {
	if !order.IsTransfer() {
		return nil
	}
	if order.Receipt == nil {
		return &ReceiptSection{Present: false}
	}

	receiptStatus := order.Receipt.ReceiptStatus
	return &ReceiptSection{
		Present:     true,
		StatusLabel: status.ReceiptStatuses.DisplayLabel(string(receiptStatus)),
		Receipt:     order.Receipt,
		CanApprove:  receiptStatus != models.ReceiptAprobado,
		CanReview:   receiptStatus == models.ReceiptPendiente,
		CanReject:   receiptStatus != models.ReceiptRechazado,
	}
}

type OrdersListResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

type OrderDetailResponse struct {
	Success        bool            `json:"success"`
	Order          *models.Order   `json:"order"`
	StatusOptions  []StatusOption  `json:"statusOptions"`
	ReceiptSection *ReceiptSection `json:"receiptSection,omitempty"`
	Message        string          `json:"message,omitempty"`
}
