package partner

import (
	"time"

	"github.com/farmcore/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest represents a request to create a new customer.
// An empty code is replaced with a generated CUST reference.
type CreateCustomerRequest struct {
	CustomerCode      string   `json:"customer_code" binding:"max=50"`
	Name              string   `json:"name" binding:"required,min=1,max=200"`
	ContactPerson     string   `json:"contact_person" binding:"max=100"`
	Phone             string   `json:"phone" binding:"max=50"`
	Email             string   `json:"email" binding:"omitempty,email,max=200"`
	Address           string   `json:"address" binding:"max=500"`
	CustomerType      string   `json:"customer_type" binding:"omitempty,oneof=retail wholesale restaurant processor"`
	PreferredProducts []string `json:"preferred_products"`
}

// UpdateCustomerRequest represents a customer update. Nil fields are
// left unchanged.
type UpdateCustomerRequest struct {
	Name              *string   `json:"name" binding:"omitempty,min=1,max=200"`
	ContactPerson     *string   `json:"contact_person" binding:"omitempty,max=100"`
	Phone             *string   `json:"phone" binding:"omitempty,max=50"`
	Email             *string   `json:"email" binding:"omitempty,email,max=200"`
	Address           *string   `json:"address" binding:"omitempty,max=500"`
	PreferredProducts *[]string `json:"preferred_products"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                uuid.UUID `json:"id"`
	FarmID            uuid.UUID `json:"farm_id"`
	CustomerCode      string    `json:"customer_code"`
	Name              string    `json:"name"`
	ContactPerson     string    `json:"contact_person,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	Address           string    `json:"address,omitempty"`
	CustomerType      string    `json:"customer_type"`
	PreferredProducts []string  `json:"preferred_products"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CustomerStatsResponse aggregates a customer's order history, computed
// from the orders table on every read
type CustomerStatsResponse struct {
	OrderCount    int64           `json:"order_count"`
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
	LastOrderDate *time.Time      `json:"last_order_date,omitempty"`
}

// CustomerDetailResponse is a customer with their order statistics
type CustomerDetailResponse struct {
	CustomerResponse
	Stats CustomerStatsResponse `json:"stats"`
}

// TopCustomerResponse pairs a customer with their total revenue
type TopCustomerResponse struct {
	CustomerResponse
	Revenue decimal.Decimal `json:"revenue"`
}

// ListCustomersRequest represents customer list query parameters
type ListCustomersRequest struct {
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search       string `form:"search"`
	CustomerType string `form:"customer_type" binding:"omitempty,oneof=retail wholesale restaurant processor"`
	IsActive     *bool  `form:"is_active"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID,
		FarmID:            c.FarmID,
		CustomerCode:      c.CustomerCode,
		Name:              c.Name,
		ContactPerson:     c.ContactPerson,
		Phone:             c.Phone,
		Email:             c.Email,
		Address:           c.Address,
		CustomerType:      string(c.CustomerType),
		PreferredProducts: c.PreferredProducts,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
