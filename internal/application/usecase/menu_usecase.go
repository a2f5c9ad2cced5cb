package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// MenuUseCase casos de uso de menú: categorías, productos, disponibilidad y
// stock. Disponibilidad y stock son ejes independientes (marcar no disponible
// no toca el stock y viceversa).
type MenuUseCase struct {
	categoryRepo   repository.MenuCategoryRepository
	itemRepo       repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(
	categoryRepo repository.MenuCategoryRepository,
	itemRepo repository.MenuItemRepository,
	restaurantRepo repository.RestaurantRepository,
) *MenuUseCase {
	return &MenuUseCase{categoryRepo: categoryRepo, itemRepo: itemRepo, restaurantRepo: restaurantRepo}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory crea una categoría de menú dentro de un restaurante del tenant.
func (uc *MenuUseCase) CreateCategory(tenantID string, in dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	restaurant, err := uc.restaurantRepo.GetByID(tenantID, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	category := &entity.MenuCategory{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		SortOrder:    in.SortOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toMenuCategoryResponse(category), nil
}

// ListCategories lista las categorías de un restaurante del tenant.
func (uc *MenuUseCase) ListCategories(tenantID, restaurantID string) ([]dto.MenuCategoryResponse, error) {
	list, err := uc.categoryRepo.ListByRestaurant(tenantID, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuCategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toMenuCategoryResponse(c))
	}
	return out, nil
}

// UpdateCategory actualiza una categoría del tenant.
func (uc *MenuUseCase) UpdateCategory(tenantID, id string, in dto.UpdateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toMenuCategoryResponse(category), nil
}

// DeleteCategory borra (soft) una categoría; se rechaza con ErrConflict
// mientras tenga productos vigentes.
func (uc *MenuUseCase) DeleteCategory(tenantID, id string) error {
	category, err := uc.categoryRepo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.categoryRepo.CountItems(tenantID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.categoryRepo.SoftDelete(tenantID, id)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateItem crea un producto del menú. La categoría debe pertenecer al
// mismo restaurante (y tenant); un ID ajeno se comporta como inexistente.
func (uc *MenuUseCase) CreateItem(tenantID string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Price.IsNegative() || in.StockQuantity < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(tenantID, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.RestaurantID != in.RestaurantID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		RestaurantID:   in.RestaurantID,
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		CostPrice:      in.CostPrice,
		IsAvailable:    true,
		TrackInventory: in.TrackInventory,
		StockQuantity:  in.StockQuantity,
		MinStockLevel:  in.MinStockLevel,
		SortOrder:      in.SortOrder,
		IsVegetarian:   in.IsVegetarian,
		IsVegan:        in.IsVegan,
		IsGlutenFree:   in.IsGlutenFree,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetItem obtiene un producto del tenant.
func (uc *MenuUseCase) GetItem(tenantID, id string) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toMenuItemResponse(item), nil
}

// ListItems lista los productos de un restaurante con paginación.
func (uc *MenuUseCase) ListItems(tenantID, restaurantID string, limit, offset int) (*dto.MenuItemListResponse, error) {
	list, err := uc.itemRepo.ListByRestaurant(tenantID, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MenuItemListResponse{
		Items: make([]dto.MenuItemResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, it := range list {
		out.Items = append(out.Items, *toMenuItemResponse(it))
	}
	return out, nil
}

// UpdateItem actualiza un producto (sin stock ni disponibilidad: esos pasan
// por sus operaciones dedicadas).
func (uc *MenuUseCase) UpdateItem(tenantID, id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.CostPrice != nil {
		item.CostPrice = *in.CostPrice
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(tenantID, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.RestaurantID != item.RestaurantID {
			return nil, domain.ErrNotFound
		}
		item.CategoryID = *in.CategoryID
	}
	if in.MinStockLevel != nil {
		if *in.MinStockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStockLevel = *in.MinStockLevel
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.IsVegetarian != nil {
		item.IsVegetarian = *in.IsVegetarian
	}
	if in.IsVegan != nil {
		item.IsVegan = *in.IsVegan
	}
	if in.IsGlutenFree != nil {
		item.IsGlutenFree = *in.IsGlutenFree
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// DeleteItem borra (soft) un producto; el historial de pedidos conserva sus
// snapshots.
func (uc *MenuUseCase) DeleteItem(tenantID, id string) error {
	item, err := uc.itemRepo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.SoftDelete(tenantID, id)
}

// ── Disponibilidad y stock ────────────────────────────────────────────────────

// SetAvailability marca la disponibilidad sin condiciones ni efectos sobre
// el stock.
func (uc *MenuUseCase) SetAvailability(tenantID, id string, available bool) (*dto.MenuItemResponse, error) {
	rows, err := uc.itemRepo.SetAvailability(tenantID, id, available)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}
	return uc.GetItem(tenantID, id)
}

// BulkSetAvailability aplica disponibilidad por lotes y reporta cuántas
// filas dentro del tenant fueron afectadas; cero filas = ErrNotFound.
func (uc *MenuUseCase) BulkSetAvailability(tenantID string, in dto.BulkAvailabilityRequest) (*dto.BulkResponse, error) {
	if len(in.ItemIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.itemRepo.BulkSetAvailability(tenantID, in.RestaurantID, in.ItemIDs, in.IsAvailable)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, domain.ErrNotFound
	}
	return &dto.BulkResponse{Requested: len(in.ItemIDs), Updated: updated}, nil
}

// SetStock fija la cantidad en stock. Falla con ErrInventoryNotTracked si el
// producto no maneja control de inventario y con ErrInvalidInput si la
// cantidad es negativa.
func (uc *MenuUseCase) SetStock(tenantID, id string, quantity int) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if !item.TrackInventory {
		return domain.ErrInventoryNotTracked
	}
	rows, err := uc.itemRepo.SetStock(tenantID, id, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		// el UPDATE re-verifica track_inventory; 0 filas = el flag cambió entre medio
		return domain.ErrInventoryNotTracked
	}
	return nil
}

// ── Mapeos ────────────────────────────────────────────────────────────────────

func toMenuCategoryResponse(c *entity.MenuCategory) *dto.MenuCategoryResponse {
	return &dto.MenuCategoryResponse{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		Name:         c.Name,
		SortOrder:    c.SortOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

func toMenuItemResponse(m *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:             m.ID,
		RestaurantID:   m.RestaurantID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Description:    m.Description,
		Price:          m.Price,
		CostPrice:      m.CostPrice,
		IsAvailable:    m.IsAvailable,
		TrackInventory: m.TrackInventory,
		StockQuantity:  m.StockQuantity,
		MinStockLevel:  m.MinStockLevel,
		InStock:        m.InStock(),
		LowStock:       m.LowStock(),
		SortOrder:      m.SortOrder,
		IsVegetarian:   m.IsVegetarian,
		IsVegan:        m.IsVegan,
		IsGlutenFree:   m.IsGlutenFree,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
