package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	listing "eth-marketplace/internal/listingService"
	model "eth-marketplace/internal/models"
	"eth-marketplace/services/market/helpers"
	"eth-marketplace/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=market_handler.go -destination=mock_service_test.go -package=handler

type ListingServiceInterface interface {
	CreateListing(ctx context.Context, in listing.CreateListingInput) (model.Item, error)
	Purchase(ctx context.Context, itemID int64, buyerAddress, txHash string) (model.Item, model.Transaction, error)
	EditListing(ctx context.Context, in listing.EditListingInput) (model.Item, error)
	DeleteListing(ctx context.Context, itemID int64, requesterAddress string) error
	AvailableItems(ctx context.Context) ([]model.Item, error)
	Profile(ctx context.Context, userAddress string) (sales, purchases []model.Item, err error)
	SellerOf(ctx context.Context, itemID int64) (string, error)
	PurchaseHistory(ctx context.Context, userAddress string) ([]listing.PurchaseRecord, error)
}

type MarketHandler struct {
	service ListingServiceInterface
}

func NewMarketHandler(service ListingServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// ListAvailableItemsHandler handles GET / and GET /buy
func (h *MarketHandler) ListAvailableItemsHandler(c *gin.Context) {
	items, err := h.service.AvailableItems(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAvailableItemsHandler: failed to list items", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "available items retrieved successfully")
}

// CreateListingHandler handles POST /sell/offer (multipart form)
func (h *MarketHandler) CreateListingHandler(c *gin.Context) {
	input := listing.CreateListingInput{
		Name:          c.PostForm("itemName"),
		Description:   c.PostForm("itemDescription"),
		Price:         c.PostForm("itemPrice"),
		SellerAddress: c.PostForm("sellerAddress"),
	}

	upload, closeUpload := h.openUpload(c, "itemImage")
	defer closeUpload()
	input.Image = upload

	item, err := h.service.CreateListing(c.Request.Context(), input)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"handler": "CreateListingHandler",
			"name":    input.Name,
			"seller":  input.SellerAddress,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"item_id": item.ID,
		"name":    item.Name,
		"seller":  item.SellerAddress,
	})
}

// PurchaseHandler handles POST /buy/offer/:item_id
func (h *MarketHandler) PurchaseHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "PurchaseHandler")
	if !ok {
		return
	}

	var req helpers.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PurchaseHandler", err)
		return
	}

	_, transaction, err := h.service.Purchase(c.Request.Context(), itemID, req.BuyerAddress, req.TxHash)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PurchaseHandler: purchase failed", map[string]any{
			"item_id": itemID,
			"buyer":   req.BuyerAddress,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.PurchaseResponse{
		Message:       "purchase successful",
		TransactionID: transaction.ID,
	})
	helpers.LogSuccess("PurchaseHandler", "purchase successful", map[string]any{
		"item_id":        itemID,
		"transaction_id": transaction.ID,
		"buyer":          req.BuyerAddress,
	})
}

// GetSellerHandler handles GET /get_seller/:item_id
func (h *MarketHandler) GetSellerHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "GetSellerHandler")
	if !ok {
		return
	}

	seller, err := h.service.SellerOf(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetSellerHandler: seller lookup failed", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, helpers.SellerResponse{SellerAddress: seller})
}

// ProfileHandler handles POST /api/profile
func (h *MarketHandler) ProfileHandler(c *gin.Context) {
	var req helpers.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ProfileHandler", err)
		return
	}

	sales, purchases, err := h.service.Profile(c.Request.Context(), req.UserAddress)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ProfileHandler: profile lookup failed", map[string]any{"user": req.UserAddress, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, helpers.ProfileResponse{
		Sales:     helpers.NewItemResponses(sales),
		Purchases: helpers.NewItemResponses(purchases),
	})
	helpers.LogSuccess("ProfileHandler", "profile retrieved successfully", map[string]any{
		"user":      req.UserAddress,
		"sales":     len(sales),
		"purchases": len(purchases),
	})
}

// TransactionsHandler handles POST /api/transactions
func (h *MarketHandler) TransactionsHandler(c *gin.Context) {
	var req helpers.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransactionsHandler", err)
		return
	}

	records, err := h.service.PurchaseHistory(c.Request.Context(), req.UserAddress)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("TransactionsHandler: history lookup failed", map[string]any{"user": req.UserAddress, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, helpers.NewPurchaseRecordResponses(records))
}

// DeleteItemHandler handles DELETE /api/item/:item_id/delete
func (h *MarketHandler) DeleteItemHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "DeleteItemHandler")
	if !ok {
		return
	}

	var req helpers.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteItemHandler", err)
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), itemID, req.UserAddress); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteItemHandler: delete failed", map[string]any{
			"item_id": itemID,
			"user":    req.UserAddress,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "listing deleted successfully", map[string]any{
		"item_id": itemID,
		"user":    req.UserAddress,
	})
}

// UpdateItemHandler handles POST /api/item/:item_id/update (multipart form)
func (h *MarketHandler) UpdateItemHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "UpdateItemHandler")
	if !ok {
		return
	}

	input := listing.EditListingInput{
		ItemID:        itemID,
		EditorAddress: c.PostForm("userAddress"),
		Name:          c.PostForm("itemName"),
		Description:   c.PostForm("itemDescription"),
		Price:         c.PostForm("itemPrice"),
	}

	upload, closeUpload := h.openUpload(c, "itemImage")
	defer closeUpload()
	input.Image = upload

	item, err := h.service.EditListing(c.Request.Context(), input)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateItemHandler: update failed", map[string]any{
			"item_id": itemID,
			"user":    input.EditorAddress,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item), "listing updated successfully")
	helpers.LogSuccess("UpdateItemHandler", "listing updated successfully", map[string]any{
		"item_id": item.ID,
		"user":    input.EditorAddress,
	})
}

// openUpload extracts an optional multipart file field. A missing file is
// not an error; the returned closer is always safe to defer.
func (h *MarketHandler) openUpload(c *gin.Context, field string) (*listing.ImageUpload, func()) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			utils.Warn("openUpload: unreadable file field", map[string]any{"field": field, "error": err.Error()})
		}
		return nil, func() {}
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Warn("openUpload: failed to open upload", map[string]any{"field": field, "error": err.Error()})
		return nil, func() {}
	}
	return &listing.ImageUpload{Filename: fileHeader.Filename, Content: file}, func() { file.Close() }
}

// itemIDParam parses the :item_id route parameter, replying 400 on garbage
func itemIDParam(c *gin.Context, handlerName string) (int64, bool) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		wrappedErr := fmt.Errorf("invalid item id %q: %w", c.Param("item_id"), err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid item id")
		utils.Warn(handlerName+": invalid item id", map[string]any{"item_id": c.Param("item_id")})
		return 0, false
	}
	return itemID, true
}
