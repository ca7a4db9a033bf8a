package customers

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fueldepot-api/internal/application/dto"
	"github.com/jhoicas/fueldepot-api/internal/domain"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// CustomerUseCase gestión de clientes del depósito.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create da de alta un cliente. El nombre es obligatorio; el email, si viene,
// es único (duplicado → domain.ErrDuplicate).
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// GetByID devuelve un cliente o domain.ErrNotFound.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// Update edita los datos de contacto de un cliente existente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		customer.Name = name
	}
	customer.Email = strings.TrimSpace(in.Email)
	customer.Phone = strings.TrimSpace(in.Phone)
	customer.Address = strings.TrimSpace(in.Address)
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// Delete elimina un cliente; sus asientos de libro mayor caen en cascada.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
