// Package mockapi implements a small stand-in for the production shop
// API, good enough to run the storefront against during development.
package mockapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/api"
	"github.com/Vladislav970/weblarek/internal/model"
)

// Server serves the product catalog and accepts orders.
type Server struct {
	log      *slog.Logger
	products []model.Product
	byID     map[string]model.Product
}

// NewServer creates a server over a fixed product set.
func NewServer(log *slog.Logger, products []model.Product) *Server {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Server{
		log:      log,
		products: products,
		byID:     byID,
	}
}

// Router builds the HTTP routes under the same paths the production API
// uses, so the storefront needs nothing but a different origin.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api/weblarek", func(r chi.Router) {
		r.Get("/product", s.handleProductList)
		r.Get("/product/{id}", s.handleProduct)
		r.Post("/order", s.handleOrder)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.ProductListResponse{
		Total: len(s.products),
		Items: s.products,
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.byID[chi.URLParam(r, "id")]
	if !ok {
		badRequest(w, r, http.StatusNotFound, "NotFound")
		return
	}
	render.JSON(w, r, p)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req api.OrderRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	buyer := model.BuyerData{
		Payment: req.Payment,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if errs := model.ValidateBuyer(buyer); len(errs) > 0 {
		for _, field := range []string{"payment", "address", "email", "phone"} {
			if msg, ok := errs[field]; ok {
				badRequest(w, r, http.StatusBadRequest, msg)
				return
			}
		}
	}

	if len(req.Items) == 0 {
		badRequest(w, r, http.StatusBadRequest, "the basket is empty")
		return
	}

	total := decimal.Zero
	for _, id := range req.Items {
		p, ok := s.byID[id]
		if !ok {
			badRequest(w, r, http.StatusBadRequest, "unknown product "+id)
			return
		}
		if !p.Purchasable() {
			badRequest(w, r, http.StatusBadRequest, "product "+id+" is not for sale")
			return
		}
		total = total.Add(*p.Price)
	}
	if !req.Total.Equal(total) {
		badRequest(w, r, http.StatusBadRequest, "wrong total")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.OrderResult{
		ID:    uuid.NewString(),
		Total: total,
	})
}

func badRequest(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}
