package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"inventario/internal/models"
)

// CatalogStore persists categorias and produtos. It owns all catalog
// queries; handlers never touch gorm directly.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ListCategorias returns every categoria ordered by id, with its produtos
// loaded in a single explicit fetch.
func (s *CatalogStore) ListCategorias() ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := s.db.
		Preload("Produtos", func(db *gorm.DB) *gorm.DB { return db.Order("produtos.id") }).
		Order("categorias.id").
		Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

// AddCategoria inserts a categoria. Duplicate nome fails with ErrConflict.
func (s *CatalogStore) AddCategoria(nome string) (*models.Categoria, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrValidation)
	}
	categoria := models.Categoria{Nome: nome}
	if err := s.db.Create(&categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("categoria %q: %w", nome, ErrConflict)
		}
		return nil, err
	}
	return &categoria, nil
}

// AddProduto parses the raw form values and inserts a produto. The inputs
// arrive as strings straight from the form; quantidade must be an integer,
// preco a decimal (comma accepted as the separator), categoria_id the id
// of an existing categoria.
func (s *CatalogStore) AddProduto(nome, quantidade, preco, categoriaID string) (*models.Produto, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrValidation)
	}

	qtd, err := strconv.Atoi(strings.TrimSpace(quantidade))
	if err != nil {
		return nil, fmt.Errorf("%w: quantidade %q is not an integer", ErrValidation, quantidade)
	}

	precoDec, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(preco), ",", "."))
	if err != nil {
		return nil, fmt.Errorf("%w: preco %q is not a number", ErrValidation, preco)
	}

	catID, err := strconv.ParseUint(strings.TrimSpace(categoriaID), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: categoria_id %q is not an id", ErrValidation, categoriaID)
	}

	var count int64
	if err := s.db.Model(&models.Categoria{}).Where("id = ?", catID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("categoria %d: %w", catID, ErrCategoriaNotFound)
	}

	produto := models.Produto{
		Nome:        nome,
		Quantidade:  qtd,
		Preco:       precoDec,
		CategoriaID: uint(catID),
	}
	if err := s.db.Create(&produto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("produto %q: %w", nome, ErrConflict)
		}
		// The existence check above can race a concurrent delete; the FK
		// constraint is the backstop.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("categoria %d: %w", catID, ErrCategoriaNotFound)
		}
		return nil, err
	}
	return &produto, nil
}
