package schemas

import (
	"github.com/dperaltab/tienda-admin/internal/models"
)

type SetReceiptStatusRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason"`
}

type PaginationInfo struct {
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
}

type ReceiptsListResponse struct {
	Success    bool                     `json:"success"`
	Data       []models.ReceiptListItem `json:"data"`
	Pagination PaginationInfo           `json:"pagination"`
	Message    string                   `json:"message,omitempty"`
}
