package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dperaltab/tienda-admin/internal/status"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
)

// Order is owned and mutated by the store service. The admin API only reads
// it and requests status transitions; it never patches fields locally.
type Order struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	OrderStatus   OrderStatus     `json:"orderStatus"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Total         decimal.Decimal `json:"total"`
	Items         []OrderItem     `json:"items,omitempty"`
	Receipt       *Receipt        `json:"receipt,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
}

func (o *Order) HasReceipt() bool {
	return o.Receipt != nil
}

// IsTransfer tolerates locale aliases in the stored payment method
// ("transferencia" and "transfer" are the same order).
func (o *Order) IsTransfer() bool {
	return status.PaymentMethods.Canonical(string(o.PaymentMethod)) == string(MethodTransfer)
}

// AwaitingReceipt reports a transfer order whose proof of payment has not
// been uploaded yet. Such orders expose no verify/reject actions.
func (o *Order) AwaitingReceipt() bool {
	return o.IsTransfer() && o.Receipt == nil
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}
