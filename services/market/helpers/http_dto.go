package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	listing "eth-marketplace/internal/listingService"
	model "eth-marketplace/internal/models"
)

// Request DTOs
type PurchaseRequest struct {
	BuyerAddress string `json:"buyer_address" binding:"required"`
	TxHash       string `json:"tx_hash" binding:"required"`
}

type AddressRequest struct {
	UserAddress string `json:"user_address" binding:"required"`
}

// Response DTOs
type ItemResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PriceETH      decimal.Decimal `json:"price_eth"`
	SellerAddress string          `json:"seller_address"`
	BuyerAddress  *string         `json:"buyer_address"`
	Status        string          `json:"status"`
	ImageURL      *string         `json:"image_url"`
	CreatedAt     string          `json:"created_at"`
}

type PurchaseResponse struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transaction_id"`
}

type SellerResponse struct {
	SellerAddress string `json:"seller_address"`
}

type ProfileResponse struct {
	Sales     []ItemResponse `json:"sales"`
	Purchases []ItemResponse `json:"purchases"`
}

type PurchaseRecordResponse struct {
	ItemName      string          `json:"item_name"`
	SellerAddress string          `json:"seller_address"`
	Date          string          `json:"date"`
	PriceETH      decimal.Decimal `json:"price_eth"`
	ImageURL      *string         `json:"image_url"`
}

// NewItemResponse maps a domain item to its wire shape
func NewItemResponse(item model.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		PriceETH:      item.PriceETH,
		SellerAddress: item.SellerAddress,
		BuyerAddress:  item.BuyerAddress,
		Status:        string(item.Status),
		ImageURL:      item.ImageURL,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewItemResponses maps a slice of items, never returning nil so empty
// results serialize as [] rather than null
func NewItemResponses(items []model.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}
	return responses
}

// NewPurchaseRecordResponses maps a buyer's purchase history to its wire shape
func NewPurchaseRecordResponses(records []listing.PurchaseRecord) []PurchaseRecordResponse {
	responses := make([]PurchaseRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, PurchaseRecordResponse{
			ItemName:      record.ItemName,
			SellerAddress: record.SellerAddress,
			Date:          record.Date.UTC().Format(time.RFC3339),
			PriceETH:      record.PriceETH,
			ImageURL:      record.ImageURL,
		})
	}
	return responses
}
