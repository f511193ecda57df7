package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/payquill/dpo-payment-service/internal/delivery/http/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Router *chi.Mux
}

func NewServer(paymentHandler *handlers.PaymentHandler) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/payments/initiate", paymentHandler.HandleInitiate)

	// The gateway delivers its redirect as either GET or POST.
	r.Get("/callback/webhooks.payment.dpopay", paymentHandler.HandleCallback)
	r.Post("/callback/webhooks.payment.dpopay", paymentHandler.HandleCallback)

	return &Server{Router: r}
}
