package models

// Categoria groups produtos. Nome is unique across the table.
type Categoria struct {
	Base
	Nome     string    `gorm:"uniqueIndex;not null"`
	Produtos []Produto `gorm:"foreignKey:CategoriaID"`
}

// TableName overrides gorm's pluralization for the Portuguese name.
func (Categoria) TableName() string { return "categorias" }
