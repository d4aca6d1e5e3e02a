package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"eth-marketplace/internal/markerrors"
	model "eth-marketplace/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// MarketDB defines the item and transaction storage interface for the marketplace
type MarketDB interface {
	CreateItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByStatus(ctx context.Context, status model.ItemStatus) ([]model.Item, error)
	ListItemsBySeller(ctx context.Context, sellerAddress string) ([]model.Item, error)
	ListItemsByBuyer(ctx context.Context, buyerAddress string) ([]model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) error
	DeleteItem(ctx context.Context, id int64) error
	PurchaseItem(ctx context.Context, id int64, buyerAddress, txHash string) (model.Item, model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (model.Transaction, error)
	ListTransactionsBySeller(ctx context.Context, sellerAddress string) ([]model.Transaction, error)
	ListTransactionsByBuyer(ctx context.Context, buyerAddress string) ([]model.Transaction, error)
}

const itemColumns = "id, name, description, price_eth, seller_address, buyer_address, status, image_url, created_at"

const transactionColumns = "id, item_id, seller_address, buyer_address, price_eth, tx_hash, created_at"

// pg error code for unique constraint violations
const uniqueViolationCode = "23505"

// PostgresRepo implements MarketDB on top of a pgx connection pool
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo creates a new Postgres-backed repository instance
func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

// CreateItem inserts a new item row and fills in its generated id and creation time
func (r *PostgresRepo) CreateItem(ctx context.Context, item *model.Item) error {
	query := `
		INSERT INTO items (name, description, price_eth, seller_address, buyer_address, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.PriceETH,
		item.SellerAddress,
		item.BuyerAddress,
		item.Status,
		item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("create item %q: %w", item.Name, err)
	}
	return nil
}

// GetItem returns a single item by id
func (r *PostgresRepo) GetItem(ctx context.Context, id int64) (model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, fmt.Errorf("get item %d: %w", id, markerrors.ErrItemNotFound)
		}
		return model.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// ListItems returns all items in insertion order
func (r *PostgresRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	return r.queryItems(ctx, query)
}

// ListItemsByStatus returns all items in the given lifecycle state
func (r *PostgresRepo) ListItemsByStatus(ctx context.Context, status model.ItemStatus) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = $1 ORDER BY id`
	return r.queryItems(ctx, query, status)
}

// ListItemsBySeller returns all items listed by the given address
func (r *PostgresRepo) ListItemsBySeller(ctx context.Context, sellerAddress string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE seller_address = $1 ORDER BY id`
	return r.queryItems(ctx, query, sellerAddress)
}

// ListItemsByBuyer returns all items bought by the given address
func (r *PostgresRepo) ListItemsByBuyer(ctx context.Context, buyerAddress string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE buyer_address = $1 ORDER BY id`
	return r.queryItems(ctx, query, buyerAddress)
}

// UpdateItem overwrites the full row identified by item.ID
func (r *PostgresRepo) UpdateItem(ctx context.Context, item model.Item) error {
	query := `
		UPDATE items
		SET name = $1, description = $2, price_eth = $3, seller_address = $4,
		    buyer_address = $5, status = $6, image_url = $7
		WHERE id = $8
	`
	result, err := r.pool.Exec(ctx, query,
		item.Name,
		item.Description,
		item.PriceETH,
		item.SellerAddress,
		item.BuyerAddress,
		item.Status,
		item.ImageURL,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update item %d: %w", item.ID, markerrors.ErrItemNotFound)
	}
	return nil
}

// DeleteItem removes the item row
func (r *PostgresRepo) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete item %d: %w", id, markerrors.ErrItemNotFound)
	}
	return nil
}

// PurchaseItem transitions an available item to sold and records the purchase
// transaction, as one database transaction. The status check and the status
// change are a single conditional UPDATE, so of two concurrent purchases on
// the same item exactly one succeeds and the other observes ErrAlreadySold.
func (r *PostgresRepo) PurchaseItem(ctx context.Context, id int64, buyerAddress, txHash string) (model.Item, model.Transaction, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Item{}, model.Transaction{}, fmt.Errorf("purchase item %d: begin: %w", id, err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE items
		SET status = $1, buyer_address = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + itemColumns

	item, err := scanItem(tx.QueryRow(ctx, updateQuery, model.StatusSold, buyerAddress, id, model.StatusAvailable))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.Transaction{}, r.classifyPurchaseMiss(ctx, id)
		}
		return model.Item{}, model.Transaction{}, fmt.Errorf("purchase item %d: %w", id, err)
	}

	insertQuery := `
		INSERT INTO transactions (item_id, seller_address, buyer_address, price_eth, tx_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	transaction := model.Transaction{
		ItemID:        item.ID,
		SellerAddress: item.SellerAddress,
		BuyerAddress:  buyerAddress,
		PriceETH:      item.PriceETH,
		TxHash:        txHash,
	}
	err = tx.QueryRow(ctx, insertQuery,
		transaction.ItemID,
		transaction.SellerAddress,
		transaction.BuyerAddress,
		transaction.PriceETH,
		transaction.TxHash,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.Item{}, model.Transaction{}, fmt.Errorf("purchase item %d: tx hash %q: %w", id, txHash, markerrors.ErrDuplicateTxHash)
		}
		return model.Item{}, model.Transaction{}, fmt.Errorf("purchase item %d: record transaction: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Item{}, model.Transaction{}, fmt.Errorf("purchase item %d: commit: %w", id, err)
	}
	return item, transaction, nil
}

// classifyPurchaseMiss distinguishes a purchase that lost the race from one
// that targeted a nonexistent item.
func (r *PostgresRepo) classifyPurchaseMiss(ctx context.Context, id int64) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("purchase item %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("purchase item %d: %w", id, markerrors.ErrItemNotFound)
	}
	return fmt.Errorf("purchase item %d: %w", id, markerrors.ErrAlreadySold)
}

// GetTransaction returns a single transaction by id
func (r *PostgresRepo) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, fmt.Errorf("get transaction %d: %w", id, markerrors.ErrTransactionNotFound)
		}
		return model.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return transaction, nil
}

// ListTransactionsBySeller returns all transactions where the address sold
func (r *PostgresRepo) ListTransactionsBySeller(ctx context.Context, sellerAddress string) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE seller_address = $1 ORDER BY id`
	return r.queryTransactions(ctx, query, sellerAddress)
}

// ListTransactionsByBuyer returns all transactions where the address bought
func (r *PostgresRepo) ListTransactionsByBuyer(ctx context.Context, buyerAddress string) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE buyer_address = $1 ORDER BY id`
	return r.queryTransactions(ctx, query, buyerAddress)
}

func (r *PostgresRepo) queryItems(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

func (r *PostgresRepo) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return transactions, nil
}

func scanItem(row pgx.Row) (model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.PriceETH,
		&item.SellerAddress,
		&item.BuyerAddress,
		&item.Status,
		&item.ImageURL,
		&item.CreatedAt,
	)
	return item, err
}

func scanTransaction(row pgx.Row) (model.Transaction, error) {
	var transaction model.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.ItemID,
		&transaction.SellerAddress,
		&transaction.BuyerAddress,
		&transaction.PriceETH,
		&transaction.TxHash,
		&transaction.CreatedAt,
	)
	return transaction, err
}
