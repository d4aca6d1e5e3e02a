package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is the lifecycle state of a listing
type ItemStatus string

const (
	StatusAvailable ItemStatus = "available"
	StatusSold      ItemStatus = "sold"
)

// Item represents a marketplace listing
type Item struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PriceETH      decimal.Decimal `json:"price_eth"`
	SellerAddress string          `json:"seller_address"`
	BuyerAddress  *string         `json:"buyer_address"` // nil until the item is sold
	Status        ItemStatus      `json:"status"`
	ImageURL      *string         `json:"image_url"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Transaction records a completed purchase of an item
type Transaction struct {
	ID            int64           `json:"id"`
	ItemID        int64           `json:"item_id"`
	SellerAddress string          `json:"seller_address"`
	BuyerAddress  string          `json:"buyer_address"`
	PriceETH      decimal.Decimal `json:"price_eth"`
	TxHash        string          `json:"tx_hash"`
	CreatedAt     time.Time       `json:"created_at"`
}
