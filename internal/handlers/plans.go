package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dperaltab/tienda-admin/internal/handlers/schemas"
	"github.com/dperaltab/tienda-admin/internal/service"
)

type PlansHandler struct {
	ledger *service.LedgerService
}

func NewPlansHandler(ledger *service.LedgerService) *PlansHandler {
	return &PlansHandler{ledger: ledger}
}

func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	planStatus := r.URL.Query().Get("status")

	plans, err := h.ledger.ListPlans(r.Context(), planStatus)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.PlansListResponse{Success: true, Plans: plans})
}

func (h *PlansHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planID")

	plan, err := h.ledger.GetPlan(r.Context(), planID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.PlanDetailResponse{
		Success:  true,
		Plan:     plan,
		Progress: h.ledger.Progress(plan),
	})
}

func (h *PlansHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	planID := chi.URLParam(r, "planID")

	var req schemas.AddPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "can't parse body")
		return
	}

	plan, err := h.ledger.GetPlan(r.Context(), planID)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.ledger.AddPayment(r.Context(), plan, req.Amount, req.PaymentDate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.PlanDetailResponse{
		Success:  true,
		Plan:     updated,
		Progress: h.ledger.Progress(updated),
		Message:  "payment recorded",
	})
}

func (h *PlansHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planID")
	paymentID := chi.URLParam(r, "paymentID")

	plan, err := h.ledger.GetPlan(r.Context(), planID)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.ledger.VerifyPayment(r.Context(), plan, paymentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schemas.PlanDetailResponse{
		Success:  true,
		Plan:     updated,
		Progress: h.ledger.Progress(updated),
		Message:  "payment verified",
	})
}
