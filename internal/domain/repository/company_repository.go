package repository

import "github.com/tu-usuario/backoffice-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para empresas (tenants).
// Las tasas de tax/IVA de la empresa viven aquí; los casos de uso las leen y
// las pasan explícitas al motor de precios.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
}
