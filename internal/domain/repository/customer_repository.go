package repository

import "github.com/jhoicas/fueldepot-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	// Create asigna el ID autoincremental en la entidad. Email duplicado → domain.ErrDuplicate.
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete elimina el cliente; sus asientos de libro mayor caen en cascada.
	Delete(id int64) error
}
