package usecase

import (
	"fmt"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventory-dashboard/pkg/pagination"
)

// ProductUseCase consultas de lectura del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Search filtra el catálogo conservando el orden de inserción.
func (uc *ProductUseCase) Search(in dto.ProductFilterRequest) ([]entity.Product, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("productos: listar: %w", err)
	}
	return inventory.FilterProducts(all, ToProductFilter(in)), nil
}

// List devuelve todos los productos que cumplen los filtros, sin paginar.
func (uc *ProductUseCase) List(in dto.ProductFilterRequest) ([]dto.ProductResponse, error) {
	products, err := uc.Search(in)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListPage filtra y luego recorta la página pedida (page se acota al rango válido).
func (uc *ProductUseCase) ListPage(in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	products, err := uc.Search(in.ProductFilterRequest)
	if err != nil {
		return nil, err
	}
	page := pagination.Paginate(products, in.PageSize, in.Page)
	return &dto.ProductListResponse{
		Items: toProductResponses(page.Items),
		Page:  ToPageResponse(page),
	}, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// ToProductFilter traduce los parámetros de consulta al filtro de dominio.
func ToProductFilter(in dto.ProductFilterRequest) inventory.ProductFilter {
	return inventory.ProductFilter{
		Search:      in.Search,
		WarehouseID: in.Warehouse,
		Status:      in.Status,
	}
}

// ToProductResponse mapea la entidad a su DTO con el estado derivado.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.WarehouseID,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(inventory.Classify(p.Stock, p.Demand)),
	}
}

// ToPageResponse copia los metadatos de una página.
func ToPageResponse[T any](p pagination.Page[T]) dto.PageResponse {
	return dto.PageResponse{
		CurrentPage:     p.CurrentPage,
		PageSize:        p.PageSize,
		TotalItems:      p.TotalItems,
		TotalPages:      p.TotalPages,
		StartIndex:      p.StartIndex,
		EndIndex:        p.EndIndex,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}

func toProductResponses(products []entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return items
}
