package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService defines the methods for managing the product catalog.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// FindAll returns all products, optionally filtered by a search term
	// matched against name and SKU code.
	FindAll(ctx context.Context, search string) ([]ProductDto, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product ProductDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository ProductStore
}

var _ ProductService = (*Service)(nil)

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name     string          `json:"name"     validate:"required,max=100"`
	Category string          `json:"category" validate:"required,oneof=house car programming accessory"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"    validate:"min=0"`
	Code     string          `json:"code"     validate:"max=64"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"     validate:"required,max=100"`
	Category string          `json:"category" validate:"required,oneof=house car programming accessory"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"    validate:"min=0"`
	Code     string          `json:"code"     validate:"max=64"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves all catalog products, optionally filtered by a search term.
func (s *Service) FindAll(ctx context.Context, search string) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(search))
	for _, item := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Code), term) {
			continue
		}
		productDTOs = append(productDTOs, *toDto(&item))
	}

	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	if product.Price.IsNegative() || product.Cost.IsNegative() {
		return nil, fmt.Errorf("price and cost must not be negative")
	}
	p, err := s.repository.Create(ctx, Product{
		Name:     product.Name,
		Category: Category(product.Category),
		Price:    product.Price,
		Cost:     product.Cost,
		Stock:    product.Stock,
		Code:     product.Code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update modifies an existing product's details and returns the updated product as a ProductDto.
func (s *Service) Update(ctx context.Context, product ProductDto) (*ProductDto, error) {
	id, err := uuid.Parse(product.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID %q: %w", product.ID, err)
	}
	if product.Price.IsNegative() || product.Cost.IsNegative() {
		return nil, fmt.Errorf("price and cost must not be negative")
	}
	updated, err := s.repository.Update(ctx, Product{
		ID:       id,
		Name:     product.Name,
		Category: Category(product.Category),
		Price:    product.Price,
		Cost:     product.Cost,
		Stock:    product.Stock,
		Code:     product.Code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", product.ID, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteByID(ctx, id)
}

// toDto converts a Product to a ProductDto.
func toDto(product *Product) *ProductDto {
	return &ProductDto{
		ID:       product.ID.String(),
		Name:     product.Name,
		Category: string(product.Category),
		Price:    product.Price,
		Cost:     product.Cost,
		Stock:    product.Stock,
		Code:     product.Code,
	}
}
