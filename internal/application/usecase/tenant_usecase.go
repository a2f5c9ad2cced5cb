package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TenantUseCase casos de uso del tenant: signup, consulta y suscripción.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// Create registra un tenant nuevo con suscripción activa inicial.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	now := time.Now()
	tenant := &entity.Tenant{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Status:             entity.TenantStatusActive,
		SubscriptionStatus: entity.SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetByID obtiene un tenant.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	return toTenantResponse(tenant), nil
}

// UpdateSubscription muta estado y vencimiento de la suscripción.
func (uc *TenantUseCase) UpdateSubscription(id string, in dto.UpdateTenantSubscriptionRequest) (*dto.TenantResponse, error) {
	switch in.SubscriptionStatus {
	case entity.SubscriptionActive, entity.SubscriptionSuspended, entity.SubscriptionCancelled:
	default:
		return nil, domain.ErrInvalidStatus
	}
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}
	tenant.SubscriptionStatus = in.SubscriptionStatus
	tenant.SubscriptionExpiresAt = in.ExpiresAt
	tenant.UpdatedAt = time.Now()
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		Email:                 t.Email,
		Phone:                 t.Phone,
		Status:                t.Status,
		SubscriptionStatus:    t.SubscriptionStatus,
		SubscriptionExpiresAt: t.SubscriptionExpiresAt,
		CanOperate:            t.CanOperate(time.Now()),
		CreatedAt:             t.CreatedAt,
	}
}
