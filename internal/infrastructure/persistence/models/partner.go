package models

import (
	"github.com/farmcore/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	FarmAggregateModel
	CustomerCode      string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_farm_code,priority:2"`
	Name              string               `gorm:"type:varchar(200);not null"`
	ContactPerson     string               `gorm:"type:varchar(100)"`
	Phone             string               `gorm:"type:varchar(50);index"`
	Email             string               `gorm:"type:varchar(200)"`
	Address           string               `gorm:"type:text"`
	CustomerType      partner.CustomerType `gorm:"type:varchar(20);not null;default:'retail'"`
	PreferredProducts StringList           `gorm:"type:jsonb;not null;default:'[]'"`
	IsActive          bool                 `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		CustomerCode:      m.CustomerCode,
		Name:              m.Name,
		ContactPerson:     m.ContactPerson,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		CustomerType:      m.CustomerType,
		PreferredProducts: []string(m.PreferredProducts),
		IsActive:          m.IsActive,
	}
	m.PopulateFarmAggregateRoot(&c.FarmAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainFarmAggregateRoot(c.FarmAggregateRoot)
	m.CustomerCode = c.CustomerCode
	m.Name = c.Name
	m.ContactPerson = c.ContactPerson
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.CustomerType = c.CustomerType
	m.PreferredProducts = StringList(c.PreferredProducts)
	m.IsActive = c.IsActive
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
