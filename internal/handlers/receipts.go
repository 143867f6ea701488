package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dperaltab/tienda-admin/internal/handlers/schemas"
	"github.com/dperaltab/tienda-admin/internal/service"
)

type ReceiptsHandler struct {
	receipts *service.ReceiptService
}

func NewReceiptsHandler(receipts *service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{receipts: receipts}
}

// List serves the verification queue. Query params adjust the view state
// before loading: status/dateFrom/dateTo reset the offset, page=next|prev
// moves through it.
func (h *ReceiptsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("status") {
		h.receipts.SetStatusFilter(query.Get("status"))
	}
	if query.Has("dateFrom") || query.Has("dateTo") {
		h.receipts.SetDateRange(query.Get("dateFrom"), query.Get("dateTo"))
	}
	if query.Has("limit") {
		if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
			h.receipts.SetLimit(limit)
		}
	}
	switch query.Get("page") {
	case "next":
		h.receipts.NextPage()
	case "prev":
		h.receipts.PrevPage()
	}

	page, err := h.receipts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	filters := h.receipts.Filters()
	writeJSON(w, http.StatusOK, schemas.ReceiptsListResponse{
		Success: true,
		Data:    page.Items,
		Pagination: schemas.PaginationInfo{
			Total:   page.Total,
			HasMore: page.HasMore,
			Limit:   filters.Limit,
			Offset:  filters.Offset,
		},
	})
}

func (h *ReceiptsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	receiptOwnerID := chi.URLParam(r, "orderID")

	var req schemas.SetReceiptStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "can't parse body")
		return
	}

	page, err := h.receipts.SetStatus(r.Context(), receiptOwnerID, req.Status, req.RejectionReason)
	if err != nil {
		writeError(w, err)
		return
	}

	filters := h.receipts.Filters()
	writeJSON(w, http.StatusOK, schemas.ReceiptsListResponse{
		Success: true,
		Data:    page.Items,
		Pagination: schemas.PaginationInfo{
			Total:   page.Total,
			HasMore: page.HasMore,
			Limit:   filters.Limit,
			Offset:  filters.Offset,
		},
		Message: "receipt status updated",
	})
}
