package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TableUseCase casos de uso de mesas y categorías de mesas: CRUD, máquina de
// estados (escritura libre dentro del conjunto válido) y agregados por
// categoría recomputados en cada llamada.
type TableUseCase struct {
	tableRepo      repository.TableRepository
	categoryRepo   repository.TableCategoryRepository
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(
	tableRepo repository.TableRepository,
	categoryRepo repository.TableCategoryRepository,
	orderRepo repository.OrderRepository,
	restaurantRepo repository.RestaurantRepository,
) *TableUseCase {
	return &TableUseCase{
		tableRepo:      tableRepo,
		categoryRepo:   categoryRepo,
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
	}
}

// ── Categorías de mesas ───────────────────────────────────────────────────────

// CreateCategory crea una categoría de mesas dentro de un restaurante del tenant.
func (uc *TableUseCase) CreateCategory(tenantID string, in dto.CreateTableCategoryRequest) (*dto.TableCategoryResponse, error) {
	restaurant, err := uc.restaurantRepo.GetByID(tenantID, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	category := &entity.TableCategory{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		SortOrder:    in.SortOrder,
		Color:        in.Color,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toTableCategoryResponse(category), nil
}

// ListCategories lista las categorías de mesas de un restaurante.
func (uc *TableUseCase) ListCategories(tenantID, restaurantID string) ([]dto.TableCategoryResponse, error) {
	list, err := uc.categoryRepo.ListByRestaurant(tenantID, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TableCategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toTableCategoryResponse(c))
	}
	return out, nil
}

// UpdateCategory actualiza una categoría de mesas del tenant.
func (uc *TableUseCase) UpdateCategory(tenantID, id string, in dto.UpdateTableCategoryRequest) (*dto.TableCategoryResponse, error) {
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
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toTableCategoryResponse(category), nil
}

// GetCategoryStats recomputa los agregados de la categoría sobre sus mesas
// vigentes. Costo O(mesas) por llamada, sin contadores cacheados.
func (uc *TableUseCase) GetCategoryStats(tenantID, categoryID string) (*dto.TableCategoryStatsResponse, error) {
	category, err := uc.categoryRepo.GetByID(tenantID, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	tables, err := uc.tableRepo.ListByCategory(tenantID, categoryID)
	if err != nil {
		return nil, err
	}
	stats := entity.ComputeTableStats(tables)
	return &dto.TableCategoryStatsResponse{
		CategoryID:        categoryID,
		TotalTables:       stats.TotalTables,
		TotalCapacity:     stats.TotalCapacity,
		AvailableCapacity: stats.AvailableCapacity,
		ByStatus:          stats.ByStatus,
		UtilizationRate:   stats.UtilizationRate,
	}, nil
}

// ── Mesas ─────────────────────────────────────────────────────────────────────

// CreateTable crea una mesa; la categoría (si viene) debe pertenecer al
// mismo restaurante.
func (uc *TableUseCase) CreateTable(tenantID string, in dto.CreateTableRequest) (*dto.TableResponse, error) {
	if in.Capacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	restaurant, err := uc.restaurantRepo.GetByID(tenantID, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(tenantID, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.RestaurantID != in.RestaurantID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	table := &entity.Table{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
		Number:       in.Number,
		Capacity:     in.Capacity,
		Shape:        in.Shape,
		Floor:        in.Floor,
		Status:       entity.TableAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.tableRepo.Create(table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// GetTable obtiene una mesa del tenant.
func (uc *TableUseCase) GetTable(tenantID, id string) (*dto.TableResponse, error) {
	table, err := uc.tableRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	return toTableResponse(table), nil
}

// ListTables lista las mesas de un restaurante.
func (uc *TableUseCase) ListTables(tenantID, restaurantID string) ([]dto.TableResponse, error) {
	list, err := uc.tableRepo.ListByRestaurant(tenantID, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TableResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTableResponse(t))
	}
	return out, nil
}

// UpdateTable actualiza atributos físicos de la mesa (no el estado).
func (uc *TableUseCase) UpdateTable(tenantID, id string, in dto.UpdateTableRequest) (*dto.TableResponse, error) {
	table, err := uc.tableRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(tenantID, *in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil || category.RestaurantID != table.RestaurantID {
				return nil, domain.ErrNotFound
			}
		}
		table.CategoryID = *in.CategoryID
	}
	if in.Number != nil {
		table.Number = *in.Number
	}
	if in.Capacity != nil {
		if *in.Capacity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		table.Capacity = *in.Capacity
	}
	if in.Shape != nil {
		table.Shape = *in.Shape
	}
	if in.Floor != nil {
		table.Floor = *in.Floor
	}
	table.UpdatedAt = time.Now()
	if err := uc.tableRepo.Update(table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// SetStatus escribe el estado de la mesa. Solo valida la pertenencia al
// conjunto de estados (sin grafo de transiciones); repetir el mismo estado
// es idempotente, no un error. El UPDATE es atómico por id + tenant.
func (uc *TableUseCase) SetStatus(tenantID, id, status string) (*dto.TableResponse, error) {
	if !entity.ValidTableStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	rows, err := uc.tableRepo.UpdateStatus(tenantID, id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}
	return uc.GetTable(tenantID, id)
}

// BulkSetStatus aplica el estado a varias mesas; los IDs fuera del tenant
// simplemente no cuentan. Cero filas afectadas = ErrNotFound para el lote.
func (uc *TableUseCase) BulkSetStatus(tenantID string, in dto.BulkTableStatusRequest) (*dto.BulkResponse, error) {
	if !entity.ValidTableStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	if len(in.TableIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.tableRepo.BulkUpdateStatus(tenantID, in.TableIDs, in.Status)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, domain.ErrNotFound
	}
	return &dto.BulkResponse{Requested: len(in.TableIDs), Updated: updated}, nil
}

// DeleteTable borra (soft) una mesa. Se rechaza con ErrConflict mientras la
// mesa tenga pedidos activos (pending, confirmed, preparing, ready); el
// repositorio re-verifica la guardia en la misma sentencia de borrado.
func (uc *TableUseCase) DeleteTable(tenantID, id string) error {
	table, err := uc.tableRepo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if table == nil {
		return domain.ErrNotFound
	}
	active, err := uc.orderRepo.CountActiveByTable(tenantID, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrConflict
	}
	rows, err := uc.tableRepo.SoftDelete(tenantID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		// un pedido activo llegó entre la verificación y el borrado
		return domain.ErrConflict
	}
	return nil
}

// ── Mapeos ────────────────────────────────────────────────────────────────────

func toTableCategoryResponse(c *entity.TableCategory) *dto.TableCategoryResponse {
	return &dto.TableCategoryResponse{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		Name:         c.Name,
		Description:  c.Description,
		SortOrder:    c.SortOrder,
		Color:        c.Color,
		CreatedAt:    c.CreatedAt,
	}
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	return &dto.TableResponse{
		ID:              t.ID,
		RestaurantID:    t.RestaurantID,
		CategoryID:      t.CategoryID,
		Number:          t.Number,
		Capacity:        t.Capacity,
		Shape:           t.Shape,
		Floor:           t.Floor,
		Status:          t.Status,
		CanAcceptOrders: t.CanAcceptOrders(),
		Busy:            t.Busy(),
		NotAvailable:    t.NotAvailable(),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
