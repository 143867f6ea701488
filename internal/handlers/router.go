package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/dperaltab/tienda-admin/internal/clients/storeapi"
	middleware "github.com/dperaltab/tienda-admin/internal/middlewares"
	"github.com/dperaltab/tienda-admin/internal/middlewares/logger"
	"github.com/dperaltab/tienda-admin/internal/service"
)

type RouterDeps struct {
	Client          storeapi.ClientI
	JWTSecret       string
	ReceiptPageSize int
}

// NewRouter wires the settlement services and their handlers behind the
// admin auth middleware.
func NewRouter(deps RouterDeps) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.RequestLogger)

	ordersHandler := NewOrdersHandler(service.NewOrderStatusService(deps.Client))
	plansHandler := NewPlansHandler(service.NewLedgerService(deps.Client))
	receiptsHandler := NewReceiptsHandler(service.NewReceiptService(deps.Client, deps.ReceiptPageSize))

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(deps.JWTSecret))

		r.Get("/orders", ordersHandler.List)
		r.Get("/orders/{orderID}", ordersHandler.Get)
		r.Put("/orders/{orderID}/status", ordersHandler.UpdateStatus)

		r.Get("/reservation-plans", plansHandler.List)
		r.Get("/reservation-plans/{planID}", plansHandler.Get)
		r.Post("/reservation-plans/{planID}/payments", plansHandler.AddPayment)
		r.Put("/reservation-plans/{planID}/payments/{paymentID}/verify", plansHandler.VerifyPayment)

		r.Get("/receipts", receiptsHandler.List)
		r.Put("/receipts/{orderID}/status", receiptsHandler.SetStatus)
	})

	return router
}
