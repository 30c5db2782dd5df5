package partner

import (
	"context"

	"github.com/farmcore/backend/internal/domain/partner"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	orderRepo    trade.OrderRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, orderRepo trade.OrderRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// Create creates a new customer in the farm. The code must be unique
// among the farm's active customers; deleting a customer frees its code.
func (s *CustomerService) Create(ctx context.Context, farmID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	if req.CustomerCode != "" {
		exists, err := s.customerRepo.ExistsActiveCode(ctx, farmID, req.CustomerCode, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this code already exists in the farm")
		}
	}

	customer, err := partner.NewCustomer(farmID, req.CustomerCode, req.Name, partner.CustomerType(req.CustomerType))
	if err != nil {
		return nil, err
	}

	if req.ContactPerson != "" || req.Phone != "" || req.Email != "" || req.Address != "" {
		if err := customer.Update(customer.Name, req.ContactPerson, req.Phone, req.Email, req.Address); err != nil {
			return nil, err
		}
	}
	if len(req.PreferredProducts) > 0 {
		customer.SetPreferredProducts(req.PreferredProducts)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Get returns a customer with their order statistics
func (s *CustomerService) Get(ctx context.Context, farmID, customerID uuid.UUID) (*CustomerDetailResponse, error) {
	customer, err := s.customerRepo.FindByIDForFarm(ctx, farmID, customerID)
	if err != nil {
		return nil, err
	}

	stats, err := s.customerRepo.Stats(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerDetailResponse{
		CustomerResponse: ToCustomerResponse(customer),
		Stats: CustomerStatsResponse{
			OrderCount:    stats.OrderCount,
			LifetimeValue: stats.LifetimeValue,
			LastOrderDate: stats.LastOrderDate,
		},
	}, nil
}

// List returns the farm's customers
func (s *CustomerService) List(ctx context.Context, farmID uuid.UUID, req ListCustomersRequest) ([]CustomerResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
	if req.CustomerType != "" {
		filter.Filters["customer_type"] = req.CustomerType
	}
	if req.IsActive != nil {
		filter.Filters["is_active"] = *req.IsActive
	}

	customers, err := s.customerRepo.FindAllForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.CountForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}

	return responses, total, nil
}

// Update updates a customer's details
func (s *CustomerService) Update(ctx context.Context, farmID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForFarm(ctx, farmID, customerID)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	if req.Name != nil {
		name = *req.Name
	}
	contactPerson := customer.ContactPerson
	if req.ContactPerson != nil {
		contactPerson = *req.ContactPerson
	}
	phone := customer.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := customer.Email
	if req.Email != nil {
		email = *req.Email
	}
	address := customer.Address
	if req.Address != nil {
		address = *req.Address
	}

	if err := customer.Update(name, contactPerson, phone, email, address); err != nil {
		return nil, err
	}
	if req.PreferredProducts != nil {
		customer.SetPreferredProducts(*req.PreferredProducts)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Delete deactivates a customer. Customers with orders still in flight
// cannot be deleted; their orders must be delivered or cancelled first.
func (s *CustomerService) Delete(ctx context.Context, farmID, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDForFarm(ctx, farmID, customerID)
	if err != nil {
		return err
	}

	inFlight, err := s.orderRepo.CountInFlightForCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if inFlight > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", "Cannot delete a customer with orders in flight")
	}

	if err := customer.Deactivate(); err != nil {
		return err
	}

	return s.customerRepo.Save(ctx, customer)
}

// TopCustomers ranks the farm's customers by total revenue from orders
// that were not cancelled
func (s *CustomerService) TopCustomers(ctx context.Context, farmID uuid.UUID, limit int) ([]TopCustomerResponse, error) {
	top, err := s.customerRepo.TopByRevenue(ctx, farmID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]TopCustomerResponse, len(top))
	for i := range top {
		responses[i] = TopCustomerResponse{
			CustomerResponse: ToCustomerResponse(&top[i].Customer),
			Revenue:          top[i].Revenue,
		}
	}

	return responses, nil
}
