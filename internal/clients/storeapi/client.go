package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dperaltab/tienda-admin/internal/customerror"
	"github.com/dperaltab/tienda-admin/internal/middlewares/logger"
	"github.com/dperaltab/tienda-admin/internal/models"
)

// TokenProvider supplies the bearer token attached to every store service
// call. Credentials are injected here instead of being read from any
// ambient storage.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type StaticTokenProvider struct {
	token string
}

func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	if p.token == "" {
		return "", fmt.Errorf("store service token is not configured")
	}
	return p.token, nil
}

type ClientI interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, orderStatus string) error
	ListReservationPlans(ctx context.Context, planStatus string) ([]models.ReservationPlan, error)
	GetReservationPlan(ctx context.Context, planID string) (*models.ReservationPlan, error)
	AddPlanPayment(ctx context.Context, planID string, payment AddPaymentRequest) error
	VerifyPlanPayment(ctx context.Context, paymentID string) error
	ListReceipts(ctx context.Context, filters models.ReceiptFilters) (*ReceiptPage, error)
	SetReceiptStatus(ctx context.Context, orderID, receiptStatus, rejectionReason string) error
}

// Client talks to the store service's REST surface. It performs no retries
// and keeps no cache; the store service stays the single source of truth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenProvider
}

func NewClient(baseURL string, tokens TokenProvider) *Client {
	client := Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
	return &client
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (e *envelope) env() *envelope { return e }

func (e *envelope) failureMessage(statusCode int) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != "" {
		return e.Err
	}
	return fmt.Sprintf("Error %d: %s", statusCode, http.StatusText(statusCode))
}

type enveloped interface {
	env() *envelope
}

type AddPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Notes       string          `json:"notes"`
}

type Pagination struct {
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// ReceiptPage is one window of the verification queue.
type ReceiptPage struct {
	Items   []models.ReceiptListItem
	Total   int
	HasMore bool
}

type ordersResponse struct {
	envelope
	Orders []models.Order `json:"orders"`
}

type orderResponse struct {
	envelope
	Order *models.Order `json:"order"`
}

type plansResponse struct {
	envelope
	Plans []models.ReservationPlan `json:"plans"`
}

type planResponse struct {
	envelope
	Plan *models.ReservationPlan `json:"plan"`
}

type receiptsResponse struct {
	envelope
	Data       []models.ReceiptListItem `json:"data"`
	Pagination Pagination               `json:"pagination"`
}

func (client *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var resp ordersResponse
	if err := client.do(ctx, http.MethodGet, "/orders", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (client *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var resp orderResponse
	path := fmt.Sprintf("/orders/%s", url.PathEscape(orderID))
	if err := client.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, customerror.NewTransportError("store service returned an empty order")
	}
	return resp.Order, nil
}

func (client *Client) UpdateOrderStatus(ctx context.Context, orderID, orderStatus string) error {
	path := fmt.Sprintf("/orders/%s/status", url.PathEscape(orderID))
	body := map[string]string{"orderStatus": orderStatus}
	var resp envelope
	return client.do(ctx, http.MethodPut, path, nil, body, &resp)
}

func (client *Client) ListReservationPlans(ctx context.Context, planStatus string) ([]models.ReservationPlan, error) {
	query := url.Values{}
	if planStatus != "" {
		query.Set("status", planStatus)
	}
	var resp plansResponse
	if err := client.do(ctx, http.MethodGet, "/reservation-plans", query, nil, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Plans {
		if err := resp.Plans[i].Validate(); err != nil {
			return nil, customerror.NewTransportError(err.Error())
		}
	}
	return resp.Plans, nil
}

func (client *Client) GetReservationPlan(ctx context.Context, planID string) (*models.ReservationPlan, error) {
	var resp planResponse
	path := fmt.Sprintf("/reservation-plans/%s", url.PathEscape(planID))
	if err := client.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Plan == nil {
		return nil, customerror.NewTransportError("store service returned an empty reservation plan")
	}
	if err := resp.Plan.Validate(); err != nil {
		return nil, customerror.NewTransportError(err.Error())
	}
	return resp.Plan, nil
}

func (client *Client) AddPlanPayment(ctx context.Context, planID string, payment AddPaymentRequest) error {
	path := fmt.Sprintf("/reservation-plans/%s/payments", url.PathEscape(planID))
	var resp envelope
	return client.do(ctx, http.MethodPost, path, nil, payment, &resp)
}

func (client *Client) VerifyPlanPayment(ctx context.Context, paymentID string) error {
	path := fmt.Sprintf("/reservation-plans/payments/%s/verify", url.PathEscape(paymentID))
	var resp envelope
	return client.do(ctx, http.MethodPut, path, nil, struct{}{}, &resp)
}

func (client *Client) ListReceipts(ctx context.Context, filters models.ReceiptFilters) (*ReceiptPage, error) {
	var resp receiptsResponse
	if err := client.do(ctx, http.MethodGet, "/receipts", filters.Query(), nil, &resp); err != nil {
		return nil, err
	}
	return &ReceiptPage{
		Items:   resp.Data,
		Total:   resp.Pagination.Total,
		HasMore: resp.Pagination.HasMore,
	}, nil
}

func (client *Client) SetReceiptStatus(ctx context.Context, orderID, receiptStatus, rejectionReason string) error {
	path := fmt.Sprintf("/receipts/%s/status", url.PathEscape(orderID))
	body := map[string]string{"status": receiptStatus}
	if rejectionReason != "" {
		body["rejectionReason"] = rejectionReason
	}
	var resp envelope
	return client.do(ctx, http.MethodPut, path, nil, body, &resp)
}

func (client *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token, err := client.tokens.Token(ctx)
	if err != nil {
		return customerror.NewTransportError(err.Error())
	}

	fullURL := client.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return customerror.NewTransportError(fmt.Sprintf("failed to encode request body: %v", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return customerror.NewTransportError(fmt.Sprintf("failed to build request for %s: %v", fullURL, err))
	}
	request.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return customerror.NewTransportError(fmt.Sprintf("request to %s failed: %v", fullURL, err))
	}
	defer func() {
		if err := response.Body.Close(); err != nil {
			logger.Log.Warn("error closing response body", zap.Error(err))
		}
	}()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("error reading response body", zap.Error(err))
		return customerror.NewTransportError(fmt.Sprintf("failed to read response from %s: %v", fullURL, err))
	}

	contentType := response.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return customerror.NewTransportError(fmt.Sprintf("unexpected response from store service: %s", bodyPrefix(raw)))
	}

	target := out
	if target == nil {
		target = &envelope{}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		logger.Log.Error("error unmarshalling store service response", zap.Error(err))
		return customerror.NewTransportError(fmt.Sprintf("unexpected response from store service: %s", bodyPrefix(raw)))
	}

	env := target.(enveloped).env()
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return customerror.NewRequestError(response.StatusCode, env.failureMessage(response.StatusCode))
	}
	if !env.Success {
		return customerror.NewRequestError(response.StatusCode, env.failureMessage(response.StatusCode))
	}

	return nil
}

func bodyPrefix(raw []byte) string {
	const max = 100
	s := string(raw)
	if len(s) > max {
		return s[:max]
	}
	return s
}
