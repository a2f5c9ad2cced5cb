package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para disponibilidad y stock de productos.
// ──────────────────────────────────────────────────────────────────────────────

const menuTestRestaurant = "resto-1"

type stubMenuItemRepo struct {
	repository.MenuItemRepository

	byID map[string]*entity.MenuItem
	// dropTracking simula la carrera: el flag track_inventory se apaga entre
	// la lectura del caso de uso y el UPDATE, que re-verifica y afecta 0 filas.
	dropTracking bool
	stockWrites  map[string]int
}

func (s *stubMenuItemRepo) GetByID(tenantID, id string) (*entity.MenuItem, error) {
	if tenantID != tableTestTenant {
		return nil, nil
	}
	return s.byID[id], nil
}

func (s *stubMenuItemRepo) SetStock(tenantID, id string, quantity int) (int64, error) {
	item := s.byID[id]
	if tenantID != tableTestTenant || item == nil || !item.TrackInventory || s.dropTracking {
		return 0, nil
	}
	item.StockQuantity = quantity
	s.stockWrites[id] = quantity
	return 1, nil
}

func (s *stubMenuItemRepo) BulkSetAvailability(tenantID, restaurantID string, ids []string, available bool) (int64, error) {
	var n int64
	for _, id := range ids {
		item := s.byID[id]
		if tenantID != tableTestTenant || item == nil || item.RestaurantID != restaurantID {
			continue
		}
		item.IsAvailable = available
		n++
	}
	return n, nil
}

func newMenuFixture(t *testing.T) (*usecase.MenuUseCase, *stubMenuItemRepo) {
	t.Helper()

	items := &stubMenuItemRepo{
		byID: map[string]*entity.MenuItem{
			"item-tracked": {
				ID: "item-tracked", TenantID: tableTestTenant, RestaurantID: menuTestRestaurant,
				Name: "Lomo saltado", IsAvailable: true, TrackInventory: true, StockQuantity: 8,
			},
			"item-untracked": {
				ID: "item-untracked", TenantID: tableTestTenant, RestaurantID: menuTestRestaurant,
				Name: "Café americano", IsAvailable: true, TrackInventory: false,
			},
		},
		stockWrites: map[string]int{},
	}
	uc := usecase.NewMenuUseCase(nil, items, nil)
	return uc, items
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStock
// ──────────────────────────────────────────────────────────────────────────────

func TestMenuSetStock_ProductoConControlActualiza(t *testing.T) {
	uc, items := newMenuFixture(t)

	err := uc.SetStock(tableTestTenant, "item-tracked", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, items.stockWrites["item-tracked"])
}

func TestMenuSetStock_SinControlDeInventarioSiempreFalla(t *testing.T) {
	uc, items := newMenuFixture(t)

	err := uc.SetStock(tableTestTenant, "item-untracked", 5)
	assert.ErrorIs(t, err, domain.ErrInventoryNotTracked)
	assert.Empty(t, items.stockWrites, "el stock de un producto sin control nunca se escribe")
}

func TestMenuSetStock_CantidadNegativaRechazada(t *testing.T) {
	uc, items := newMenuFixture(t)

	err := uc.SetStock(tableTestTenant, "item-tracked", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, items.stockWrites)
}

func TestMenuSetStock_CeroEsValido(t *testing.T) {
	uc, items := newMenuFixture(t)

	// Cero agota el producto, no es una cantidad inválida.
	err := uc.SetStock(tableTestTenant, "item-tracked", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, items.stockWrites["item-tracked"])
}

func TestMenuSetStock_ProductoInexistenteNotFound(t *testing.T) {
	uc, _ := newMenuFixture(t)

	err := uc.SetStock(tableTestTenant, "item-fantasma", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El UPDATE re-verifica track_inventory: si el flag se apaga entre la lectura
// y la escritura, cero filas afectadas también es ErrInventoryNotTracked.
func TestMenuSetStock_CarreraFlagApagadoFalla(t *testing.T) {
	uc, items := newMenuFixture(t)
	items.dropTracking = true

	err := uc.SetStock(tableTestTenant, "item-tracked", 5)
	assert.ErrorIs(t, err, domain.ErrInventoryNotTracked)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkSetAvailability
// ──────────────────────────────────────────────────────────────────────────────

func TestMenuBulkSetAvailability_IgnoraIDsFueraDelAlcance(t *testing.T) {
	uc, items := newMenuFixture(t)

	resp, err := uc.BulkSetAvailability(tableTestTenant, dto.BulkAvailabilityRequest{
		RestaurantID: menuTestRestaurant,
		ItemIDs:      []string{"item-tracked", "item-untracked", "item-ajeno"},
		IsAvailable:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Requested)
	assert.Equal(t, int64(2), resp.Updated)
	assert.False(t, items.byID["item-tracked"].IsAvailable)
	assert.False(t, items.byID["item-untracked"].IsAvailable)
}

// Marcar no disponible no toca el stock: son ejes independientes.
func TestMenuBulkSetAvailability_NoTocaElStock(t *testing.T) {
	uc, items := newMenuFixture(t)

	_, err := uc.BulkSetAvailability(tableTestTenant, dto.BulkAvailabilityRequest{
		RestaurantID: menuTestRestaurant,
		ItemIDs:      []string{"item-tracked"},
		IsAvailable:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, items.byID["item-tracked"].StockQuantity)
}

func TestMenuBulkSetAvailability_LoteVacioRechazado(t *testing.T) {
	uc, _ := newMenuFixture(t)

	_, err := uc.BulkSetAvailability(tableTestTenant, dto.BulkAvailabilityRequest{
		RestaurantID: menuTestRestaurant,
		IsAvailable:  true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMenuBulkSetAvailability_NingunaFilaEsNotFound(t *testing.T) {
	uc, _ := newMenuFixture(t)

	_, err := uc.BulkSetAvailability(tableTestTenant, dto.BulkAvailabilityRequest{
		RestaurantID: menuTestRestaurant,
		ItemIDs:      []string{"ajeno-1", "ajeno-2"},
		IsAvailable:  true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
