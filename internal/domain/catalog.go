package domain

import "github.com/shopspring/decimal"

// Product is a catalog product (tyre, wheel, accessory)
type Product struct {
	ID        int64
	Name      string
	BrandName string
	Price     decimal.Decimal
	Stock     int // may go negative, orders are never refused for stock
}

// Service is a workshop service (fitting, balancing, alignment)
type Service struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// Tax is the configured tax rate
type Tax struct {
	ID         int64
	Name       string
	Percentage decimal.Decimal
}
