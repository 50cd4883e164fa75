package mapping

import (
	"github.com/samprox/erp_backend/internal/core/domain"
	"github.com/samprox/erp_backend/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:      d.CustomerID,
		CustomerCode:    d.CustomerCode,
		Name:            d.Name,
		AreaCode:        d.AreaCode,
		City:            d.City,
		District:        d.District,
		Province:        d.Province,
		CompanyID:       d.CompanyID,
		ManagedByUserID: d.ManagedByUserID,
		CreditLimit:     d.CreditLimit,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:      m.CustomerID,
		CustomerCode:    m.CustomerCode,
		Name:            m.Name,
		AreaCode:        m.AreaCode,
		City:            m.City,
		District:        m.District,
		Province:        m.Province,
		CompanyID:       m.CompanyID,
		ManagedByUserID: m.ManagedByUserID,
		CreditLimit:     m.CreditLimit,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		DeletedAt:       m.DeletedAt,
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
