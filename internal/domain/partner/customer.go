package partner

import (
	"strings"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerType represents the sales channel a customer belongs to
type CustomerType string

const (
	CustomerTypeRetail     CustomerType = "retail"
	CustomerTypeWholesale  CustomerType = "wholesale"
	CustomerTypeRestaurant CustomerType = "restaurant"
	CustomerTypeProcessor  CustomerType = "processor"
)

var validCustomerTypes = map[CustomerType]bool{
	CustomerTypeRetail:     true,
	CustomerTypeWholesale:  true,
	CustomerTypeRestaurant: true,
	CustomerTypeProcessor:  true,
}

// IsValid reports whether the customer type is known
func (t CustomerType) IsValid() bool {
	return validCustomerTypes[t]
}

// Customer represents a buyer belonging to one farm. The customer code is
// unique among the farm's active customers; soft-deleted customers release
// their code for reuse.
type Customer struct {
	shared.FarmAggregateRoot
	CustomerCode      string
	Name              string
	ContactPerson     string
	Phone             string
	Email             string
	Address           string
	CustomerType      CustomerType
	PreferredProducts []string
	IsActive          bool
}

// NewCustomer creates a new customer. An empty code is replaced with a
// generated CUST reference.
func NewCustomer(farmID uuid.UUID, code, name string, customerType CustomerType) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	if customerType == "" {
		customerType = CustomerTypeRetail
	}
	if !customerType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Customer type must be one of retail, wholesale, restaurant, processor")
	}

	code = strings.TrimSpace(code)
	if code == "" {
		code = shared.GenerateReferenceCode("CUST")
	} else if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Customer code cannot exceed 50 characters")
	}

	return &Customer{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		CustomerCode:      strings.ToUpper(code),
		Name:              strings.TrimSpace(name),
		CustomerType:      customerType,
		PreferredProducts: make([]string, 0),
		IsActive:          true,
	}, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name, contactPerson, phone, email, address string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	c.Name = strings.TrimSpace(name)
	c.ContactPerson = strings.TrimSpace(contactPerson)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Address = address
	c.Touch()
	c.IncrementVersion()

	return nil
}

// SetPreferredProducts replaces the customer's preferred product list.
// The list is a native attribute; encoding is the persistence layer's job.
func (c *Customer) SetPreferredProducts(products []string) {
	cleaned := make([]string, 0, len(products))
	for _, p := range products {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	c.PreferredProducts = cleaned
	c.Touch()
	c.IncrementVersion()
}

// Deactivate soft-deletes the customer. Callers must first verify there are
// no in-flight orders.
func (c *Customer) Deactivate() error {
	if !c.IsActive {
		return shared.ErrInvalidState
	}
	c.IsActive = false
	c.Touch()
	c.IncrementVersion()
	return nil
}
