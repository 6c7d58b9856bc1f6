package api

import (
	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/model"
)

// ProductListResponse mirrors GET /product.
type ProductListResponse struct {
	Total int             `json:"total"`
	Items []model.Product `json:"items"`
}

// OrderRequest is the POST /order body: the buyer's details plus the
// carted item ids and the locally computed total.
type OrderRequest struct {
	Payment model.PaymentMethod `json:"payment"`
	Address string              `json:"address"`
	Email   string              `json:"email"`
	Phone   string              `json:"phone"`
	Items   []string            `json:"items"`
	Total   decimal.Decimal     `json:"total"`
}

// OrderResult mirrors the 201 response to POST /order. Total is the
// server-confirmed amount, authoritative for display.
type OrderResult struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}
