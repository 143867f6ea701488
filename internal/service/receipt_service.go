package service

import (
	"context"
	"strings"
	"sync"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/customerror"
	"github.com/dperaltab/tienda-admin/internal/models"
	"github.com/dperaltab/tienda-admin/internal/status"
)

const defaultReceiptPageSize = 20

// ReceiptService drives the transfer-receipt review queue: filter and
// pagination state for the listing, and the review status transitions.
// Approve/reject for a given receipt is guarded so the action cannot be
// re-issued while a prior request for it is still in flight.
type ReceiptService struct {
	client storeapi.ClientI

	mu       sync.Mutex
	filters  models.ReceiptFilters
	total    int
	hasMore  bool
	inflight map[string]bool
}

func NewReceiptService(client storeapi.ClientI, pageSize int) *ReceiptService {
	if pageSize <= 0 {
		pageSize = defaultReceiptPageSize
	}
	return &ReceiptService{
		client:   client,
		filters:  models.ReceiptFilters{Limit: pageSize},
		inflight: make(map[string]bool),
	}
}

// Filters returns the current queue view state.
func (service *ReceiptService) Filters() models.ReceiptFilters {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.filters
}

// SetStatusFilter narrows the queue by receipt status. Any locale alias is
// accepted; empty clears the filter. Changing it resets the offset.
func (service *ReceiptService) SetStatusFilter(value string) {
	normalized := ""
	if strings.TrimSpace(value) != "" {
		normalized = status.ReceiptStatuses.Canonical(value)
	}
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.filters.Status != normalized {
		service.filters.Status = normalized
		service.filters.Offset = 0
	}
}

// SetDateRange bounds the queue by upload date. Changing either bound
// resets the offset.
func (service *ReceiptService) SetDateRange(dateFrom, dateTo string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.filters.DateFrom != dateFrom || service.filters.DateTo != dateTo {
		service.filters.DateFrom = dateFrom
		service.filters.DateTo = dateTo
		service.filters.Offset = 0
	}
}

// SetLimit changes the page size without touching the offset.
func (service *ReceiptService) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	service.mu.Lock()
	defer service.mu.Unlock()
	service.filters.Limit = limit
}

// NextPage advances one page and reports whether it moved; it only moves
// while the last load said more rows exist.
func (service *ReceiptService) NextPage() bool {
	service.mu.Lock()
	defer service.mu.Unlock()
	if !service.hasMore {
		return false
	}
	service.filters.Offset += service.filters.Limit
	return true
}

// PrevPage steps one page back, flooring at the start.
func (service *ReceiptService) PrevPage() {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.filters.Offset -= service.filters.Limit
	if service.filters.Offset < 0 {
		service.filters.Offset = 0
	}
}

// List loads the queue window for the current filters.
func (service *ReceiptService) List(ctx context.Context) (*storeapi.ReceiptPage, error) {
	filters := service.Filters()

	page, err := service.client.ListReceipts(ctx, filters)
	if err != nil {
		return nil, err
	}

	service.mu.Lock()
	service.total = page.Total
	service.hasMore = page.HasMore
	service.mu.Unlock()

	return page, nil
}

// SetStatus moves a receipt through the review workflow and reloads the
// queue with the current filters. Rejections require a non-empty reason;
// both checks happen before any request is issued.
func (service *ReceiptService) SetStatus(ctx context.Context, receiptOwnerID, newStatus, rejectionReason string) (*storeapi.ReceiptPage, error) {
	canonical, err := status.ReceiptStatuses.CanonicalStrict(newStatus)
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(rejectionReason)
	if canonical == string(models.ReceiptRechazado) && reason == "" {
		return nil, customerror.NewValidationError("a rejection reason is required to reject a receipt")
	}
	if canonical != string(models.ReceiptRechazado) && reason != "" {
		return nil, customerror.NewValidationError("a rejection reason is only accepted when rejecting a receipt")
	}

	if !service.beginAction(receiptOwnerID) {
		return nil, customerror.NewConflictError("a review action for this receipt is already in progress")
	}
	defer service.endAction(receiptOwnerID)

	if err := service.client.SetReceiptStatus(ctx, receiptOwnerID, canonical, reason); err != nil {
		return nil, err
	}

	return service.List(ctx)
}

func (service *ReceiptService) beginAction(receiptOwnerID string) bool {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.inflight[receiptOwnerID] {
		return false
	}
	service.inflight[receiptOwnerID] = true
	return true
}

func (service *ReceiptService) endAction(receiptOwnerID string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.inflight, receiptOwnerID)
}
