package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Merchant struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	TaxID       string `db:"tax_id"`
	UserID      int    `db:"user_id"`
}

type Item struct {
	ID          int             `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	MerchantID  int             `db:"merchant_id"`
	UserID      int             `db:"user_id"`
}

type Wallet struct {
	ID      int             `db:"id"`
	Balance decimal.Decimal `db:"balance"`
	UserID  int             `db:"user_id"`
}

// Transaction is an immutable record of one purchase.
type Transaction struct {
	ID              int             `db:"id"`
	Amount          decimal.Decimal `db:"amount"`
	ItemID          int             `db:"item_id"`
	UserID          int             `db:"user_id"`
	MerchantID      int             `db:"merchant_id"`
	TransactionDate time.Time       `db:"transaction_date"`
}

// Page is one offset page of a listing together with the total page count.
type Page[T any] struct {
	Items       []T
	Page        int
	PageCount   int
	SizePerPage int
}
