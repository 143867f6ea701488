package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	"github.com/dperaltab/tienda-admin/internal/customerror"
	"github.com/dperaltab/tienda-admin/internal/models"
)

func TestReceiptService_SetStatus_RejectedLocally(t *testing.T) {
	testCases := []struct {
		name      string
		newStatus string
		reason    string
	}{
		{"rejection without reason", "rechazado", ""},
		{"rejection with blank reason", "rechazado", "   "},
		{"approval with stray reason", "aprobado", "sobra"},
		{"unknown status", "archivado", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := new(MockStoreClient)
			receipts := NewReceiptService(mockClient, 20)

			_, err := receipts.SetStatus(context.Background(), "order-1", tc.newStatus, tc.reason)

			require.Error(t, err)
			var validationErr *customerror.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			mockClient.AssertNotCalled(t, "SetReceiptStatus")
			mockClient.AssertNotCalled(t, "ListReceipts")
		})
	}
}

func TestReceiptService_SetStatus_ReloadsQueueWithCurrentFilters(t *testing.T) {
	mockClient := new(MockStoreClient)
	receipts := NewReceiptService(mockClient, 20)
	receipts.SetStatusFilter("pendiente")

	expectedFilters := models.ReceiptFilters{Status: "pendiente", Limit: 20}
	page := &storeapi.ReceiptPage{Items: []models.ReceiptListItem{}, Total: 3, HasMore: false}

	mockClient.On("SetReceiptStatus", mock.Anything, "order-1", "aprobado", "").Return(nil)
	mockClient.On("ListReceipts", mock.Anything, expectedFilters).Return(page, nil)

	got, err := receipts.SetStatus(context.Background(), "order-1", "aprobado", "")

	require.NoError(t, err)
	assert.Equal(t, page, got)
	mockClient.AssertExpectations(t)
}

func TestReceiptService_SetStatus_TrimsRejectionReason(t *testing.T) {
	mockClient := new(MockStoreClient)
	receipts := NewReceiptService(mockClient, 20)

	page := &storeapi.ReceiptPage{}
	mockClient.On("SetReceiptStatus", mock.Anything, "order-1", "rechazado", "monto ilegible").Return(nil)
	mockClient.On("ListReceipts", mock.Anything, mock.Anything).Return(page, nil)

	_, err := receipts.SetStatus(context.Background(), "order-1", "rechazado", "  monto ilegible  ")

	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestReceiptService_SetStatus_GuardsInFlightAction(t *testing.T) {
	mockClient := new(MockStoreClient)
	receipts := NewReceiptService(mockClient, 20)

	started := make(chan struct{})
	release := make(chan struct{})

	mockClient.On("SetReceiptStatus", mock.Anything, "order-1", "aprobado", "").
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil).Once()
	mockClient.On("ListReceipts", mock.Anything, mock.Anything).Return(&storeapi.ReceiptPage{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := receipts.SetStatus(context.Background(), "order-1", "aprobado", "")
		done <- err
	}()

	<-started
	// the same receipt cannot be acted on while the first request runs
	_, err := receipts.SetStatus(context.Background(), "order-1", "aprobado", "")
	var conflictErr *customerror.ConflictError
	assert.ErrorAs(t, err, &conflictErr)

	// a different receipt is not blocked by the guard
	mockClient.On("SetReceiptStatus", mock.Anything, "order-2", "aprobado", "").Return(nil)
	_, err = receipts.SetStatus(context.Background(), "order-2", "aprobado", "")
	assert.NoError(t, err)

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("first action never finished")
	}

	// once released, the receipt can be acted on again
	mockClient.On("SetReceiptStatus", mock.Anything, "order-1", "aprobado", "").Return(nil)
	_, err = receipts.SetStatus(context.Background(), "order-1", "aprobado", "")
	assert.NoError(t, err)
}

func TestReceiptService_FilterChangesResetOffset(t *testing.T) {
	mockClient := new(MockStoreClient)
	receipts := NewReceiptService(mockClient, 20)

	mockClient.On("ListReceipts", mock.Anything, mock.Anything).
		Return(&storeapi.ReceiptPage{Total: 45, HasMore: true}, nil)
	_, err := receipts.List(context.Background())
	require.NoError(t, err)

	require.True(t, receipts.NextPage())
	assert.Equal(t, 20, receipts.Filters().Offset)

	// moving pages keeps the other filters; changing a filter resets offset
	receipts.SetStatusFilter("pendiente")
	filters := receipts.Filters()
	assert.Equal(t, 0, filters.Offset)
	assert.Equal(t, "pendiente", filters.Status)

	_, err = receipts.List(context.Background())
	require.NoError(t, err)
	require.True(t, receipts.NextPage())
	assert.Equal(t, 20, receipts.Filters().Offset)

	receipts.SetDateRange("2026-08-01", "2026-08-31")
	assert.Equal(t, 0, receipts.Filters().Offset)
	assert.Equal(t, "2026-08-01", receipts.Filters().DateFrom)

	// limit is not a filter in this sense and leaves the offset alone
	_, err = receipts.List(context.Background())
	require.NoError(t, err)
	require.True(t, receipts.NextPage())
	receipts.SetLimit(50)
	assert.Equal(t, 20, receipts.Filters().Offset)
	assert.Equal(t, 50, receipts.Filters().Limit)
}

func TestReceiptService_Pagination(t *testing.T) {
	mockClient := new(MockStoreClient)
	receipts := NewReceiptService(mockClient, 20)

	// before any load, nothing is known to exist beyond the first page
	assert.False(t, receipts.NextPage())
	assert.Equal(t, 0, receipts.Filters().Offset)

	mockClient.On("ListReceipts", mock.Anything, models.ReceiptFilters{Status: "pendiente", Limit: 20}).
		Return(&storeapi.ReceiptPage{Total: 45, HasMore: true}, nil).Once()
	mockClient.On("ListReceipts", mock.Anything, models.ReceiptFilters{Status: "pendiente", Limit: 20, Offset: 20}).
		Return(&storeapi.ReceiptPage{Total: 45, HasMore: true}, nil).Once()
	mockClient.On("ListReceipts", mock.Anything, models.ReceiptFilters{Status: "pendiente", Limit: 20, Offset: 40}).
		Return(&storeapi.ReceiptPage{Total: 45, HasMore: false}, nil).Once()

	receipts.SetStatusFilter("pendiente")

	_, err := receipts.List(context.Background())
	require.NoError(t, err)

	// next keeps the status filter and advances by one page
	require.True(t, receipts.NextPage())
	assert.Equal(t, models.ReceiptFilters{Status: "pendiente", Limit: 20, Offset: 20}, receipts.Filters())
	_, err = receipts.List(context.Background())
	require.NoError(t, err)

	require.True(t, receipts.NextPage())
	_, err = receipts.List(context.Background())
	require.NoError(t, err)

	// the last page reported no more rows
	assert.False(t, receipts.NextPage())
	assert.Equal(t, 40, receipts.Filters().Offset)

	receipts.PrevPage()
	receipts.PrevPage()
	receipts.PrevPage()
	assert.Equal(t, 0, receipts.Filters().Offset)

	mockClient.AssertExpectations(t)
}
