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
// Fakes en memoria. Embeben la interfaz del puerto para cubrir solo los
// métodos que el caso de uso bajo prueba invoca.
// ──────────────────────────────────────────────────────────────────────────────

const tableTestTenant = "tenant-1"

type stubTableRepo struct {
	repository.TableRepository

	byID          map[string]*entity.Table
	statusWrites  map[string]string
	deleted       []string
	rejectDeletes bool
}

func (s *stubTableRepo) GetByID(tenantID, id string) (*entity.Table, error) {
	if tenantID != tableTestTenant {
		return nil, nil
	}
	return s.byID[id], nil
}

func (s *stubTableRepo) UpdateStatus(tenantID, id, status string) (int64, error) {
	t := s.byID[id]
	if tenantID != tableTestTenant || t == nil {
		return 0, nil
	}
	t.Status = status
	s.statusWrites[id] = status
	return 1, nil
}

func (s *stubTableRepo) BulkUpdateStatus(tenantID string, ids []string, status string) (int64, error) {
	var n int64
	for _, id := range ids {
		rows, _ := s.UpdateStatus(tenantID, id, status)
		n += rows
	}
	return n, nil
}

func (s *stubTableRepo) SoftDelete(tenantID, id string) (int64, error) {
	if tenantID != tableTestTenant || s.byID[id] == nil || s.rejectDeletes {
		return 0, nil
	}
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return 1, nil
}

type stubOrderRepo struct {
	repository.OrderRepository

	activeByTable map[string]int
}

func (s *stubOrderRepo) CountActiveByTable(tenantID, tableID string) (int, error) {
	return s.activeByTable[tableID], nil
}

func newTableFixture(t *testing.T) (*usecase.TableUseCase, *stubTableRepo, *stubOrderRepo) {
	t.Helper()

	tables := &stubTableRepo{
		byID: map[string]*entity.Table{
			"table-1": {ID: "table-1", TenantID: tableTestTenant, RestaurantID: "resto-1", Number: "M-01", Status: entity.TableAvailable},
			"table-2": {ID: "table-2", TenantID: tableTestTenant, RestaurantID: "resto-1", Number: "M-02", Status: entity.TableOccupied},
		},
		statusWrites: map[string]string{},
	}
	orders := &stubOrderRepo{activeByTable: map[string]int{}}
	uc := usecase.NewTableUseCase(tables, nil, orders, nil)
	return uc, tables, orders
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestTableSetStatus_EscrituraLibreEntreEstadosValidos(t *testing.T) {
	uc, tables, _ := newTableFixture(t)

	// available → cleaning sin pasar por occupied: no hay grafo de transiciones.
	resp, err := uc.SetStatus(tableTestTenant, "table-1", entity.TableCleaning)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.TableCleaning, resp.Status)
	assert.Equal(t, entity.TableCleaning, tables.statusWrites["table-1"])
}

func TestTableSetStatus_MismoEstadoEsIdempotente(t *testing.T) {
	uc, _, _ := newTableFixture(t)

	resp, err := uc.SetStatus(tableTestTenant, "table-2", entity.TableOccupied)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.TableOccupied, resp.Status)
}

func TestTableSetStatus_EstadoInvalidoRechazado(t *testing.T) {
	uc, tables, _ := newTableFixture(t)

	_, err := uc.SetStatus(tableTestTenant, "table-1", "volando")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Empty(t, tables.statusWrites, "un estado inválido no debe llegar al repositorio")
}

func TestTableSetStatus_MesaDeOtroTenantNoExiste(t *testing.T) {
	uc, _, _ := newTableFixture(t)

	resp, err := uc.SetStatus("tenant-ajeno", "table-1", entity.TableOccupied)
	require.NoError(t, err)
	assert.Nil(t, resp, "cero filas afectadas se comporta como inexistente")
}

func TestTableBulkSetStatus_IgnoraIDsFueraDelTenant(t *testing.T) {
	uc, _, _ := newTableFixture(t)

	resp, err := uc.BulkSetStatus(tableTestTenant, dto.BulkTableStatusRequest{
		TableIDs: []string{"table-1", "table-2", "table-fantasma"},
		Status:   entity.TableReserved,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Requested)
	assert.Equal(t, int64(2), resp.Updated)
}

func TestTableBulkSetStatus_LoteVacioRechazado(t *testing.T) {
	uc, _, _ := newTableFixture(t)

	_, err := uc.BulkSetStatus(tableTestTenant, dto.BulkTableStatusRequest{Status: entity.TableReserved})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTableBulkSetStatus_NingunaFilaEsNotFound(t *testing.T) {
	uc, _, _ := newTableFixture(t)

	_, err := uc.BulkSetStatus(tableTestTenant, dto.BulkTableStatusRequest{
		TableIDs: []string{"ajena-1", "ajena-2"},
		Status:   entity.TableAvailable,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteTable — guardia de pedidos activos
// ──────────────────────────────────────────────────────────────────────────────

func TestTableDelete_SinPedidosActivosBorra(t *testing.T) {
	uc, tables, _ := newTableFixture(t)

	err := uc.DeleteTable(tableTestTenant, "table-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"table-1"}, tables.deleted)
}

func TestTableDelete_ConPedidoActivoConflicto(t *testing.T) {
	uc, tables, orders := newTableFixture(t)
	orders.activeByTable["table-2"] = 1

	err := uc.DeleteTable(tableTestTenant, "table-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, tables.deleted)
}

// La guardia se re-verifica en la sentencia de borrado: si un pedido activo
// llega entre la lectura y el UPDATE, cero filas afectadas también es conflicto.
func TestTableDelete_CarreraPedidoActivoConflicto(t *testing.T) {
	uc, tables, _ := newTableFixture(t)
	tables.rejectDeletes = true

	err := uc.DeleteTable(tableTestTenant, "table-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTableDelete_MesaInexistenteNotFound(t *testing.T) {
	uc, _, _ := newTableFixture(t)

	err := uc.DeleteTable(tableTestTenant, "table-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
