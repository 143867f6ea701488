package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptStatus string

const (
	ReceiptPendiente  ReceiptStatus = "pendiente"
	ReceiptEnRevision ReceiptStatus = "en_revision"
	ReceiptAprobado   ReceiptStatus = "aprobado"
	ReceiptRechazado  ReceiptStatus = "rechazado"
)

// Receipt is a customer's uploaded proof of a bank transfer. Its review
// status moves only through the receipt verification workflow.
type Receipt struct {
	ReceiptStatus   ReceiptStatus `json:"receiptStatus"`
	ReceiptPath     string        `json:"receiptPath"`
	ReceiptFileName string        `json:"receiptFileName"`
	ReceiptMimeType string        `json:"receiptMimeType"`
	UploadedAt      time.Time     `json:"uploadedAt"`
	VerifiedAt      *time.Time    `json:"verifiedAt,omitempty"`
	VerifiedBy      string        `json:"verifiedBy,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
}

// Terminal reports whether the review queue exposes no further actions.
func (s ReceiptStatus) Terminal() bool {
	return s == ReceiptAprobado || s == ReceiptRechazado
}

// ReceiptListItem is one row of the verification queue: the owning order's
// key figures plus the receipt under review. The item ID is the order ID,
// which is what the status update endpoint addresses.
type ReceiptListItem struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	OrderDate     time.Time       `json:"orderDate"`
	Total         decimal.Decimal `json:"total"`
	Receipt       Receipt         `json:"receipt"`
}

// ReceiptFilters shapes the verification queue query.
type ReceiptFilters struct {
	Status   string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

func (f ReceiptFilters) Query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DateFrom != "" {
		q.Set("dateFrom", f.DateFrom)
	}
	if f.DateTo != "" {
		q.Set("dateTo", f.DateTo)
	}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	return q
}

// Validate enforces that a rejection reason is present exactly when the
// receipt is rejected.
func (r *Receipt) Validate() error {
	reason := strings.TrimSpace(r.RejectionReason)
	if r.ReceiptStatus == ReceiptRechazado && reason == "" {
		return fmt.Errorf("rejected receipt is missing its rejection reason")
	}
	if r.ReceiptStatus != ReceiptRechazado && reason != "" {
		return fmt.Errorf("rejection reason present on a %q receipt", r.ReceiptStatus)
	}
	return nil
}
