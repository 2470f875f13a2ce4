package models

import "github.com/shopspring/decimal"

// Produto is a single inventory item. Every produto belongs to exactly
// one categoria; the foreign key is enforced by the database.
type Produto struct {
	Base
	Nome        string          `gorm:"uniqueIndex;not null"`
	Quantidade  int             `gorm:"not null"`
	Preco       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoriaID uint            `gorm:"not null"`
}

func (Produto) TableName() string { return "produtos" }
