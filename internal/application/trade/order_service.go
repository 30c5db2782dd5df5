package trade

import (
	"context"
	"time"

	"github.com/farmcore/backend/internal/domain/partner"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles the order workflow: creation, status lifecycle
// and payment settlement
type OrderService struct {
	orderRepo    trade.OrderRepository
	paymentRepo  trade.PaymentRepository
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	paymentRepo trade.PaymentRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create creates a new pending order for an active customer of the farm.
// The header, its items and the opening status history row are persisted
// as one transaction; a failure anywhere leaves nothing behind.
func (s *OrderService) Create(ctx context.Context, farmID, createdBy uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	customer, err := s.customerRepo.FindByIDForFarm(ctx, farmID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	// A soft-deleted customer is gone as far as new orders are concerned
	if !customer.IsActive {
		return nil, shared.ErrNotFound
	}

	if req.OrderNumber != "" {
		exists, err := s.orderRepo.ExistsNumber(ctx, farmID, req.OrderNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists in the farm")
		}
	}

	order, err := trade.NewOrder(farmID, req.CustomerID, req.OrderNumber, req.OrderDate)
	if err != nil {
		return nil, err
	}
	order.SetCreatedBy(createdBy)

	for _, item := range req.Items {
		if _, err := order.AddItem(item.BatchID, item.ProductName, item.ProductType, item.Unit, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}
	if err := order.ApplyCharges(req.DiscountAmount, req.TaxAmount); err != nil {
		return nil, err
	}
	if req.DeliveryDate != nil {
		order.SetDeliveryDate(req.DeliveryDate)
	}
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}

	history := trade.NewStatusHistory(order.ID, "", order.Status, "Order created", createdBy)
	if err := s.orderRepo.SaveWithHistory(ctx, order, history); err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("farm_id", farmID.String()))

	resp := ToOrderResponse(order, customer.Name, customer.Phone)
	return &resp, nil
}

// Get returns an order with its items and customer fields
func (s *OrderService) Get(ctx context.Context, farmID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForFarm(ctx, farmID, orderID)
	if err != nil {
		return nil, err
	}

	resp := s.joinCustomer(ctx, order)
	return &resp, nil
}

// List returns the farm's orders
func (s *OrderService) List(ctx context.Context, farmID uuid.UUID, req ListOrdersRequest) ([]OrderResponse, int64, error) {
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
	} else {
		filter.OrderBy = "order_date"
	}
	filter.Search = req.Search
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}
	if req.PaymentStatus != "" {
		filter.Filters["payment_status"] = req.PaymentStatus
	}
	if req.CustomerID != "" {
		filter.Filters["customer_id"] = req.CustomerID
	}
	if req.DateFrom != nil {
		filter.Filters["date_from"] = *req.DateFrom
	}
	if req.DateTo != nil {
		filter.Filters["date_to"] = *req.DateTo
	}

	orders, err := s.orderRepo.FindAllForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.CountForFarm(ctx, farmID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = s.joinCustomer(ctx, &orders[i])
	}

	return responses, total, nil
}

// UpdateStatus moves an order along its lifecycle and records the
// transition. Delivering an order stamps the delivery date if none was
// set.
func (s *OrderService) UpdateStatus(ctx context.Context, farmID, orderID, changedBy uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForFarm(ctx, farmID, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	target := trade.OrderStatus(req.Status)
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	if target == trade.OrderStatusDelivered && order.DeliveryDate == nil {
		now := time.Now()
		order.SetDeliveryDate(&now)
	}

	history := trade.NewStatusHistory(order.ID, from, target, req.Note, changedBy)
	if err := s.orderRepo.SaveWithHistory(ctx, order, history); err != nil {
		return nil, err
	}

	s.logger.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(target)))

	resp := s.joinCustomer(ctx, order)
	return &resp, nil
}

// History returns the order's status transition trail, oldest first
func (s *OrderService) History(ctx context.Context, farmID, orderID uuid.UUID) ([]StatusHistoryResponse, error) {
	if _, err := s.orderRepo.FindByIDForFarm(ctx, farmID, orderID); err != nil {
		return nil, err
	}

	history, err := s.orderRepo.FindHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]StatusHistoryResponse, len(history))
	for i := range history {
		responses[i] = ToStatusHistoryResponse(&history[i])
	}

	return responses, nil
}

// RecordPayment records money received against an order and recomputes
// the order's payment status from the full set of stored payments. The
// recomputation makes the operation safe to repeat: recording the same
// payment number twice is rejected, and the derived status never
// depends on insertion order.
func (s *OrderService) RecordPayment(ctx context.Context, farmID, orderID, recordedBy uuid.UUID, req RecordPaymentRequest) (*RecordPaymentResponse, error) {
	order, err := s.orderRepo.FindByIDForFarm(ctx, farmID, orderID)
	if err != nil {
		return nil, err
	}
	if req.PaymentNumber != "" {
		exists, err := s.paymentRepo.ExistsNumber(ctx, farmID, req.PaymentNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment with this number already exists in the farm")
		}
	}

	payment, err := trade.NewPayment(order.FarmID, order.CustomerID, order.ID,
		req.PaymentNumber, req.PaymentDate, req.Amount, trade.PaymentMethod(req.Method))
	if err != nil {
		return nil, err
	}
	payment.SetCreatedBy(recordedBy)
	if req.Reference != "" {
		payment.Reference = req.Reference
	}
	if req.Notes != "" {
		payment.Notes = req.Notes
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.SumByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.SettlePayments(totalPaid)

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("order_id", order.ID.String()),
		zap.String("payment_number", payment.PaymentNumber),
		zap.String("payment_status", string(order.PaymentStatus)))

	return &RecordPaymentResponse{
		Payment:       ToPaymentResponse(payment),
		TotalPaid:     totalPaid,
		Balance:       order.NetAmount.Sub(totalPaid),
		PaymentStatus: string(order.PaymentStatus),
	}, nil
}

// ListPayments returns an order's payments with running totals
func (s *OrderService) ListPayments(ctx context.Context, farmID, orderID uuid.UUID) (*OrderPaymentsResponse, error) {
	order, err := s.orderRepo.FindByIDForFarm(ctx, farmID, orderID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.SumByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}

	return &OrderPaymentsResponse{
		Payments:      responses,
		TotalPaid:     totalPaid,
		Balance:       order.NetAmount.Sub(totalPaid),
		PaymentStatus: string(trade.DerivePaymentStatus(totalPaid, order.NetAmount)),
	}, nil
}

// joinCustomer builds an order response with the customer's display
// fields. A missing customer row degrades to an unjoined response
// rather than failing the read.
func (s *OrderService) joinCustomer(ctx context.Context, order *trade.Order) OrderResponse {
	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("Order references missing customer",
			zap.String("order_id", order.ID.String()),
			zap.String("customer_id", order.CustomerID.String()))
		return ToOrderResponse(order, "", "")
	}
	return ToOrderResponse(order, customer.Name, customer.Phone)
}
