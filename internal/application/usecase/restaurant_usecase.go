package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// RestaurantUseCase casos de uso CRUD para restaurantes. El tenantID viene
// siempre del token del caller, nunca del cuerpo de la petición.
type RestaurantUseCase struct {
	repo repository.RestaurantRepository
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo}
}

// Create crea un restaurante estampando el tenant del contexto.
func (uc *RestaurantUseCase) Create(tenantID string, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	for _, h := range in.Hours {
		if h.Weekday < 0 || h.Weekday > 6 {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    entity.RestaurantStatusActive,
		Hours:     hoursFromDTO(in.Hours),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Settings != nil {
		restaurant.Settings = settingsFromDTO(*in.Settings)
	}
	if err := uc.repo.Create(restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

// GetByID obtiene un restaurante del tenant; fuera del tenant es nil.
func (uc *RestaurantUseCase) GetByID(tenantID, id string) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}
	return toRestaurantResponse(restaurant), nil
}

// List lista los restaurantes del tenant con paginación.
func (uc *RestaurantUseCase) List(tenantID string, limit, offset int) (*dto.RestaurantListResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.RestaurantListResponse{
		Items: make([]dto.RestaurantResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, r := range list {
		out.Items = append(out.Items, *toRestaurantResponse(r))
	}
	return out, nil
}

// Update actualiza un restaurante del tenant.
func (uc *RestaurantUseCase) Update(tenantID, id string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, nil
	}
	if in.Name != nil {
		restaurant.Name = *in.Name
	}
	if in.Address != nil {
		restaurant.Address = *in.Address
	}
	if in.Phone != nil {
		restaurant.Phone = *in.Phone
	}
	if in.Email != nil {
		restaurant.Email = *in.Email
	}
	if in.Status != nil {
		if *in.Status != entity.RestaurantStatusActive && *in.Status != entity.RestaurantStatusInactive {
			return nil, domain.ErrInvalidStatus
		}
		restaurant.Status = *in.Status
	}
	if in.Hours != nil {
		restaurant.Hours = hoursFromDTO(in.Hours)
	}
	if in.Settings != nil {
		restaurant.Settings = settingsFromDTO(*in.Settings)
	}
	restaurant.UpdatedAt = time.Now()
	if err := uc.repo.Update(restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

// Delete marca el restaurante como borrado (soft delete).
func (uc *RestaurantUseCase) Delete(tenantID, id string) error {
	restaurant, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(tenantID, id)
}

func hoursFromDTO(in []dto.BusinessHoursDTO) []entity.BusinessHours {
	hours := make([]entity.BusinessHours, 0, len(in))
	for _, h := range in {
		hours = append(hours, entity.BusinessHours{
			Weekday: h.Weekday, Open: h.Open, Close: h.Close, Closed: h.Closed,
		})
	}
	return hours
}

func settingsFromDTO(in dto.RestaurantSettingsDTO) entity.RestaurantSettings {
	return entity.RestaurantSettings{
		OnlineOrdering:  in.OnlineOrdering,
		DeliveryEnabled: in.DeliveryEnabled,
		MaxDeliveryKM:   in.MaxDeliveryKM,
		DeliveryFee:     in.DeliveryFee,
		TaxRate:         in.TaxRate,
	}
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	hours := make([]dto.BusinessHoursDTO, 0, len(r.Hours))
	for _, h := range r.Hours {
		hours = append(hours, dto.BusinessHoursDTO{
			Weekday: h.Weekday, Open: h.Open, Close: h.Close, Closed: h.Closed,
		})
	}
	return &dto.RestaurantResponse{
		ID:       r.ID,
		TenantID: r.TenantID,
		Name:     r.Name,
		Address:  r.Address,
		Phone:    r.Phone,
		Email:    r.Email,
		Status:   r.Status,
		Hours:    hours,
		Settings: dto.RestaurantSettingsDTO{
			OnlineOrdering:  r.Settings.OnlineOrdering,
			DeliveryEnabled: r.Settings.DeliveryEnabled,
			MaxDeliveryKM:   r.Settings.MaxDeliveryKM,
			DeliveryFee:     r.Settings.DeliveryFee,
			TaxRate:         r.Settings.TaxRate,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
