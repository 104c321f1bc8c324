// Package usecase contiene los casos de uso de catálogo y administración:
// productos, bodegas y empresas.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/application/dto"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/pricing"
	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// ProductUseCase maneja el catálogo de productos y la cotización de precio
// por unidad.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, companyRepo: companyRepo}
}

// CreateProduct registra un producto del catálogo. El SKU es único por
// empresa; un producto cuya unidad base es PCS no puede declarar sub-piezas.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.UnitType == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BasePrice.IsNegative() || in.ExciseTax.IsNegative() || in.DiscountRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	pieces := in.PiecesInBaseUnit
	if in.UnitType == entity.UnitTypePCS {
		// La unidad base ya es pieza: el factor solo puede ser 1.
		if pieces > 1 {
			return nil, domain.ErrInvalidInput
		}
		pieces = 1
	}
	if in.PackagingUnit != "" && in.ItemsPerPackagingUnit <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if existing, err := uc.productRepo.GetByCompanyAndSKU(companyID, in.SKU); err == nil && existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:                    uuid.New().String(),
		CompanyID:             companyID,
		SKU:                   in.SKU,
		Name:                  in.Name,
		Description:           in.Description,
		BasePrice:             in.BasePrice,
		ExciseTax:             in.ExciseTax,
		UnitType:              in.UnitType,
		PiecesInBaseUnit:      pieces,
		PackagingUnit:         in.PackagingUnit,
		ItemsPerPackagingUnit: in.ItemsPerPackagingUnit,
		DiscountRate:          in.DiscountRate,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct actualiza campos del producto. Solo los campos presentes en
// la petición cambian.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.BasePrice = *in.BasePrice
	}
	if in.ExciseTax != nil {
		if in.ExciseTax.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.ExciseTax = *in.ExciseTax
	}
	if in.UnitType != nil {
		product.UnitType = *in.UnitType
	}
	if in.PiecesInBaseUnit != nil {
		product.PiecesInBaseUnit = *in.PiecesInBaseUnit
	}
	if in.PackagingUnit != nil {
		product.PackagingUnit = *in.PackagingUnit
	}
	if in.ItemsPerPackagingUnit != nil {
		product.ItemsPerPackagingUnit = *in.ItemsPerPackagingUnit
	}
	if in.DiscountRate != nil {
		if in.DiscountRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.DiscountRate = *in.DiscountRate
	}
	if product.UnitType == entity.UnitTypePCS {
		if product.PiecesInBaseUnit > 1 {
			return nil, domain.ErrInvalidInput
		}
		product.PiecesInBaseUnit = 1
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto por ID verificando la empresa.
func (uc *ProductUseCase) GetProduct(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// ListProducts lista los productos de la empresa.
func (uc *ProductUseCase) ListProducts(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// DeleteProduct elimina un producto del catálogo.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, companyID, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.productRepo.Delete(id)
}

// QuotePrice cotiza el precio de venta de UNA unidad del tipo pedido.
// Si la unidad no está configurada cae a la unidad base y lo marca con
// Fallback=true; el final incluye IVA de la empresa y descuento del
// producto, en ese orden.
func (uc *ProductUseCase) QuotePrice(ctx context.Context, companyID, productID, unit string) (*dto.PriceQuoteResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	kind, err := pricing.ParseUnitKind(unit)
	if err != nil {
		return nil, err
	}

	up, used := pricing.ResolveUnitPriceOrBase(product, kind)
	vatPercent := company.VATRate.Mul(decimal.NewFromInt(100))
	final, err := pricing.ComputeFinalUnitPrice(product, used, vatPercent)
	if err != nil {
		return nil, err
	}
	return &dto.PriceQuoteResponse{
		ProductID:     product.ID,
		RequestedUnit: kind.String(),
		Unit:          used.String(),
		Fallback:      used != kind,
		UnitPrice:     up.Price.Add(up.Excise),
		FinalPrice:    final,
		VATRate:       vatPercent,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                    p.ID,
		CompanyID:             p.CompanyID,
		SKU:                   p.SKU,
		Name:                  p.Name,
		Description:           p.Description,
		BasePrice:             p.BasePrice,
		ExciseTax:             p.ExciseTax,
		UnitType:              p.UnitType,
		PiecesInBaseUnit:      p.PiecesInBaseUnit,
		PackagingUnit:         p.PackagingUnit,
		ItemsPerPackagingUnit: p.ItemsPerPackagingUnit,
		DiscountRate:          p.DiscountRate,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
