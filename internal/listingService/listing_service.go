package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"eth-marketplace/internal/markerrors"
	"eth-marketplace/internal/models"
	"eth-marketplace/internal/repository"
	"eth-marketplace/utils"
)

// ImageStore abstracts stored item images so the service can be tested
// without touching the filesystem
type ImageStore interface {
	Store(filename string, content io.Reader) (string, error)
	Remove(ref string) error
}

// ImageUpload carries an uploaded image into the service
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CreateListingInput holds the fields of a new listing. Price arrives as the
// raw form string and is validated here.
type CreateListingInput struct {
	Name          string
	Description   string
	Price         string
	SellerAddress string
	Image         *ImageUpload
}

// EditListingInput holds a partial update for an existing listing. Empty
// Name or Price keep the stored values; Description always replaces the
// stored one, empty string included.
type EditListingInput struct {
	ItemID        int64
	EditorAddress string
	Name          string
	Description   string
	Price         string
	Image         *ImageUpload
}

// PurchaseRecord is one row of a buyer's purchase history
type PurchaseRecord struct {
	ItemName      string
	SellerAddress string
	Date          time.Time
	PriceETH      decimal.Decimal
	ImageURL      *string
}

// ListingService defines the business logic for the item lifecycle:
// listings start available and transition to sold exactly once.
type ListingService struct {
	db     repository.MarketDB
	images ImageStore
}

// NewListingService creates a new ListingService instance
func NewListingService(db repository.MarketDB, images ImageStore) *ListingService {
	return &ListingService{
		db:     db,
		images: images,
	}
}

// normalizeAddress lower-cases wallet addresses so storage and every
// comparison use one canonical form.
func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// CreateListing validates the input and stores a new available item. A
// missing or unsupported image never fails the listing; it is created
// without one.
func (s *ListingService) CreateListing(ctx context.Context, in CreateListingInput) (models.Item, error) {
	name := strings.TrimSpace(in.Name)
	seller := normalizeAddress(in.SellerAddress)
	if name == "" || seller == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing name or seller address", markerrors.ErrInvalidRequest)
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return models.Item{}, err
	}

	var imageURL *string
	if in.Image != nil {
		ref, storeErr := s.images.Store(in.Image.Filename, in.Image.Content)
		if storeErr != nil {
			// listing survives a bad image upload
			utils.Warn("listing image skipped", map[string]any{"filename": in.Image.Filename, "error": storeErr.Error()})
		} else {
			imageURL = &ref
		}
	}

	item := models.Item{
		Name:          name,
		Description:   in.Description,
		PriceETH:      price,
		SellerAddress: seller,
		Status:        models.StatusAvailable,
		ImageURL:      imageURL,
	}
	if err := s.db.CreateItem(ctx, &item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create listing %q: %w", name, err)
	}
	return item, nil
}

// Purchase transitions the item from available to sold and records the
// transaction. Losing a purchase race surfaces as ErrAlreadySold.
func (s *ListingService) Purchase(ctx context.Context, itemID int64, buyerAddress, txHash string) (models.Item, models.Transaction, error) {
	buyer := normalizeAddress(buyerAddress)
	if buyer == "" || strings.TrimSpace(txHash) == "" {
		return models.Item{}, models.Transaction{}, fmt.Errorf("service: %w - missing buyer address or tx hash", markerrors.ErrInvalidRequest)
	}

	item, transaction, err := s.db.PurchaseItem(ctx, itemID, buyer, strings.TrimSpace(txHash))
	if err != nil {
		return models.Item{}, models.Transaction{}, fmt.Errorf("service: failed to purchase item %d: %w", itemID, err)
	}
	return item, transaction, nil
}

// EditListing applies a partial update to an available listing owned by the
// editor. A newly supplied image replaces the stored file only after the row
// update succeeds.
func (s *ListingService) EditListing(ctx context.Context, in EditListingInput) (models.Item, error) {
	item, err := s.authorizeSellerChange(ctx, in.ItemID, in.EditorAddress)
	if err != nil {
		return models.Item{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		item.Name = name
	}
	if strings.TrimSpace(in.Price) != "" {
		price, err := parsePrice(in.Price)
		if err != nil {
			return models.Item{}, err
		}
		item.PriceETH = price
	}
	item.Description = in.Description

	var newImage, oldImage *string
	if in.Image != nil {
		ref, storeErr := s.images.Store(in.Image.Filename, in.Image.Content)
		if storeErr != nil {
			utils.Warn("listing image skipped", map[string]any{"item_id": in.ItemID, "filename": in.Image.Filename, "error": storeErr.Error()})
		} else {
			newImage = &ref
			oldImage = item.ImageURL
			item.ImageURL = &ref
		}
	}

	if err := s.db.UpdateItem(ctx, item); err != nil {
		if newImage != nil {
			_ = s.images.Remove(*newImage)
		}
		return models.Item{}, fmt.Errorf("service: failed to update item %d: %w", in.ItemID, err)
	}
	if oldImage != nil {
		_ = s.images.Remove(*oldImage)
	}
	return item, nil
}

// DeleteListing removes an available listing owned by the requester,
// together with its stored image file.
func (s *ListingService) DeleteListing(ctx context.Context, itemID int64, requesterAddress string) error {
	item, err := s.authorizeSellerChange(ctx, itemID, requesterAddress)
	if err != nil {
		return err
	}

	if err := s.db.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %d: %w", itemID, err)
	}
	if item.ImageURL != nil {
		_ = s.images.Remove(*item.ImageURL)
	}
	return nil
}

// AvailableItems returns every listing still open for purchase
func (s *ListingService) AvailableItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.db.ListItemsByStatus(ctx, models.StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list available items: %w", err)
	}
	return items, nil
}

// Profile returns a user's listings and purchases
func (s *ListingService) Profile(ctx context.Context, userAddress string) (sales, purchases []models.Item, err error) {
	address := normalizeAddress(userAddress)
	if address == "" {
		return nil, nil, fmt.Errorf("service: %w - empty user address", markerrors.ErrInvalidRequest)
	}

	sales, err = s.db.ListItemsBySeller(ctx, address)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to list sales for %s: %w", address, err)
	}
	purchases, err = s.db.ListItemsByBuyer(ctx, address)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to list purchases for %s: %w", address, err)
	}
	return sales, purchases, nil
}

// SellerOf returns the seller address of an item
func (s *ListingService) SellerOf(ctx context.Context, itemID int64) (string, error) {
	item, err := s.db.GetItem(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("service: failed to look up seller of item %d: %w", itemID, err)
	}
	return item.SellerAddress, nil
}

// PurchaseHistory returns the buyer's completed purchases joined with their
// item details. Transactions whose item row is gone are skipped.
func (s *ListingService) PurchaseHistory(ctx context.Context, userAddress string) ([]PurchaseRecord, error) {
	address := normalizeAddress(userAddress)
	if address == "" {
		return nil, fmt.Errorf("service: %w - empty user address", markerrors.ErrInvalidRequest)
	}

	transactions, err := s.db.ListTransactionsByBuyer(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list transactions for %s: %w", address, err)
	}

	records := make([]PurchaseRecord, 0, len(transactions))
	for _, transaction := range transactions {
		item, err := s.db.GetItem(ctx, transaction.ItemID)
		if err != nil {
			if errors.Is(err, markerrors.ErrItemNotFound) {
				continue
			}
			return nil, fmt.Errorf("service: failed to resolve item %d for transaction %d: %w", transaction.ItemID, transaction.ID, err)
		}
		records = append(records, PurchaseRecord{
			ItemName:      item.Name,
			SellerAddress: transaction.SellerAddress,
			Date:          transaction.CreatedAt,
			PriceETH:      transaction.PriceETH,
			ImageURL:      item.ImageURL,
		})
	}
	return records, nil
}

// authorizeSellerChange loads the item and enforces the shared edit/delete
// gate: the item must exist, the requester must be its seller
// (case-insensitively) and the item must still be available. Gate order is
// fixed: not-found, then ownership, then state.
func (s *ListingService) authorizeSellerChange(ctx context.Context, itemID int64, requesterAddress string) (models.Item, error) {
	requester := normalizeAddress(requesterAddress)
	if requester == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty requester address", markerrors.ErrInvalidRequest)
	}

	item, err := s.db.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to load item %d: %w", itemID, err)
	}
	if !strings.EqualFold(item.SellerAddress, requester) {
		return models.Item{}, fmt.Errorf("service: %w - item %d belongs to another seller", markerrors.ErrNotSeller, itemID)
	}
	if item.Status != models.StatusAvailable {
		return models.Item{}, fmt.Errorf("service: %w - item %d is %s", markerrors.ErrItemNotEditable, itemID, item.Status)
	}
	return item, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("service: %w - malformed price %q", markerrors.ErrInvalidRequest, raw)
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("service: %w - price must be positive", markerrors.ErrInvalidRequest)
	}
	return price, nil
}
