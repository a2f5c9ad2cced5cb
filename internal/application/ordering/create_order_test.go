package ordering_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ordering"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	ordernum "github.com/jhoicas/Restaurante-api/internal/domain/order"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el caso de uso de creación de pedidos.
//
// Embeben la interfaz del puerto para no implementar métodos que el caso de
// uso no toca: si el caso de uso empieza a llamar algo no previsto, el test
// revienta con nil pointer y lo delata.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTenant     = "tenant-1"
	testRestaurant = "resto-1"
)

type fakeRestaurantRepo struct {
	repository.RestaurantRepository
	byID map[string]*entity.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(tenantID, id string) (*entity.Restaurant, error) {
	if tenantID != testTenant {
		return nil, nil
	}
	return f.byID[id], nil
}

type fakeTableRepo struct {
	repository.TableRepository
	byID map[string]*entity.Table
}

func (f *fakeTableRepo) GetByID(tenantID, id string) (*entity.Table, error) {
	if tenantID != testTenant {
		return nil, nil
	}
	return f.byID[id], nil
}

type fakeItemRepo struct {
	repository.MenuItemRepository
	byID map[string]*entity.MenuItem
}

func (f *fakeItemRepo) GetByIDsForRestaurant(tenantID, restaurantID string, ids []string) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, id := range ids {
		m := f.byID[id]
		if m == nil || tenantID != testTenant || m.RestaurantID != restaurantID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// fakeOrderRepo registra lo persistido y puede simular colisiones del
// constraint único de order_number durante los primeros N intentos.
type fakeOrderRepo struct {
	repository.OrderRepository

	seq            int64
	failCreates    int
	createdOrders  []*entity.Order
	createdItems   [][]*entity.OrderItem
	createAttempts int
}

func (f *fakeOrderRepo) NextSequence(tenantID string) (int64, error) {
	f.seq++
	return f.seq, nil
}

func (f *fakeOrderRepo) Create(order *entity.Order) error {
	f.createAttempts++
	if f.failCreates > 0 {
		f.failCreates--
		return domain.ErrDuplicate
	}
	f.createdOrders = append(f.createdOrders, order)
	return nil
}

func (f *fakeOrderRepo) CreateItems(items []*entity.OrderItem) error {
	f.createdItems = append(f.createdItems, items)
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real. Si fn retorna error
// descarta lo escrito en ese intento, imitando el rollback.
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	ordersBefore := len(f.repo.createdOrders)
	itemsBefore := len(f.repo.createdItems)
	if err := fn(f.repo); err != nil {
		f.repo.createdOrders = f.repo.createdOrders[:ordersBefore]
		f.repo.createdItems = f.repo.createdItems[:itemsBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type orderFixture struct {
	uc        *ordering.CreateOrderUseCase
	orderRepo *fakeOrderRepo
	tables    *fakeTableRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	restaurants := &fakeRestaurantRepo{byID: map[string]*entity.Restaurant{
		testRestaurant: {ID: testRestaurant, TenantID: testTenant, Name: "La Terraza"},
	}}
	tables := &fakeTableRepo{byID: map[string]*entity.Table{
		"table-1": {ID: "table-1", TenantID: testTenant, RestaurantID: testRestaurant, Number: "S-01"},
		"table-x": {ID: "table-x", TenantID: testTenant, RestaurantID: "resto-2", Number: "S-09"},
	}}
	items := &fakeItemRepo{byID: map[string]*entity.MenuItem{
		"item-cafe": {ID: "item-cafe", TenantID: testTenant, RestaurantID: testRestaurant, Name: "Café americano"},
		"item-arpa": {ID: "item-arpa", TenantID: testTenant, RestaurantID: testRestaurant, Name: "Arepa rellena"},
	}}
	orderRepo := &fakeOrderRepo{}

	uc := ordering.NewCreateOrderUseCase(&fakeTxRunner{repo: orderRepo}, restaurants, tables, items)
	return &orderFixture{uc: uc, orderRepo: orderRepo, tables: tables}
}

// validRequest arma un pedido de 2 café ($10) + 1 arepa ($5) con impuestos y
// domicilio que reconcilian: 25.00 + 2.00 + 1.50 = 28.50.
func validRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		RestaurantID: testRestaurant,
		TableID:      "table-1",
		Items: []dto.OrderLineRequest{
			{MenuItemID: "item-cafe", Price: dec("10"), Quantity: 2, Total: dec("20")},
			{MenuItemID: "item-arpa", Price: dec("5"), Quantity: 1, Total: dec("5")},
		},
		Subtotal:      dec("25.00"),
		TaxAmount:     dec("2.00"),
		DeliveryFee:   dec("1.50"),
		TotalAmount:   dec("28.50"),
		PaymentMethod: entity.PaymentMethodCash,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_CaminoFeliz(t *testing.T) {
	fx := newOrderFixture(t)

	resp, err := fx.uc.Create(context.Background(), testTenant, validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.OrderPending, resp.Status)
	assert.Equal(t, entity.PaymentPending, resp.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCash, resp.PaymentMethod)
	assert.True(t, resp.TotalAmount.Equal(dec("28.50")))
	assert.Regexp(t, `^ORD-\d{8}-\d{5}-[23456789ABCDEFGHJKMNPQRSTUVWXYZ]{4}$`, resp.OrderNumber)
	require.Len(t, resp.Items, 2)
	// El nombre de la línea es snapshot del menú, no viene del caller.
	assert.Equal(t, "Café americano", resp.Items[0].ItemName)
	assert.Equal(t, "Arepa rellena", resp.Items[1].ItemName)

	require.Len(t, fx.orderRepo.createdOrders, 1)
	persisted := fx.orderRepo.createdOrders[0]
	assert.Equal(t, testTenant, persisted.TenantID)
	assert.Equal(t, "table-1", persisted.TableID)
	require.Len(t, fx.orderRepo.createdItems, 1)
	assert.Len(t, fx.orderRepo.createdItems[0], 2)
	for _, it := range fx.orderRepo.createdItems[0] {
		assert.Equal(t, persisted.ID, it.OrderID)
	}
}

func TestCreateOrder_SinMesaEsValido(t *testing.T) {
	fx := newOrderFixture(t)

	in := validRequest()
	in.TableID = ""

	resp, err := fx.uc.Create(context.Background(), testTenant, in)
	require.NoError(t, err)
	assert.Empty(t, resp.TableID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada y pertenencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_SinLineasRechazado(t *testing.T) {
	fx := newOrderFixture(t)

	in := validRequest()
	in.Items = nil

	_, err := fx.uc.Create(context.Background(), testTenant, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, fx.orderRepo.createdOrders, "nada debe persistirse ante entrada inválida")
}

func TestCreateOrder_MetodoPagoInvalido(t *testing.T) {
	fx := newOrderFixture(t)

	in := validRequest()
	in.PaymentMethod = "bitcoin"

	_, err := fx.uc.Create(context.Background(), testTenant, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_RestauranteInexistente(t *testing.T) {
	fx := newOrderFixture(t)

	in := validRequest()
	in.RestaurantID = "resto-fantasma"

	_, err := fx.uc.Create(context.Background(), testTenant, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_MesaDeOtroRestaurante(t *testing.T) {
	fx := newOrderFixture(t)

	// table-x existe en el tenant pero pertenece a resto-2: compartir
	// tenant no basta.
	in := validRequest()
	in.TableID = "table-x"

	_, err := fx.uc.Create(context.Background(), testTenant, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.orderRepo.createdOrders)
}

func TestCreateOrder_ProductoNoResuelto(t *testing.T) {
	fx := newOrderFixture(t)

	in := validRequest()
	in.Items = append(in.Items, dto.OrderLineRequest{
		MenuItemID: "item-ajeno", Price: dec("3"), Quantity: 1, Total: dec("3"),
	})
	in.Subtotal = dec("28.00")
	in.TotalAmount = dec("31.50")

	_, err := fx.uc.Create(context.Background(), testTenant, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_MontosQueNoReconcilian(t *testing.T) {
	fx := newOrderFixture(t)

	in := validRequest()
	in.TotalAmount = dec("99.99")

	_, err := fx.uc.Create(context.Background(), testTenant, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, fx.orderRepo.createdOrders, "la reconciliación corre antes de persistir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reintentos ante colisión de order_number
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_ReintentaAnteColision(t *testing.T) {
	fx := newOrderFixture(t)
	fx.orderRepo.failCreates = ordernum.MaxNumberRetries - 1

	resp, err := fx.uc.Create(context.Background(), testTenant, validRequest())
	require.NoError(t, err)
	assert.Equal(t, ordernum.MaxNumberRetries, fx.orderRepo.createAttempts)
	// Cada reintento consume una secuencia nueva; la última es la persistida.
	assert.Contains(t, resp.OrderNumber, "-00003-")
	assert.Len(t, fx.orderRepo.createdOrders, 1, "los intentos fallidos no dejan rastro")
}

func TestCreateOrder_ColisionPersistenteAgotaReintentos(t *testing.T) {
	fx := newOrderFixture(t)
	fx.orderRepo.failCreates = ordernum.MaxNumberRetries + 1

	_, err := fx.uc.Create(context.Background(), testTenant, validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, ordernum.MaxNumberRetries, fx.orderRepo.createAttempts, "el tope de reintentos es duro")
	assert.Empty(t, fx.orderRepo.createdOrders)
}

// Verifica que los timestamps del pedido se estampan a la creación.
func TestCreateOrder_TimestampsEstampados(t *testing.T) {
	fx := newOrderFixture(t)

	before := time.Now()
	resp, err := fx.uc.Create(context.Background(), testTenant, validRequest())
	require.NoError(t, err)

	assert.False(t, resp.CreatedAt.Before(before))
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
}
