package trade

import (
	"time"

	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Order DTOs
// =============================================================================

// OrderItemRequest represents one line of a new order
type OrderItemRequest struct {
	BatchID     *uuid.UUID      `json:"batch_id"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	ProductType string          `json:"product_type" binding:"omitempty,oneof=eggs live_birds dressed_birds manure other"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Unit        string          `json:"unit" binding:"max=20"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateOrderRequest represents a request to create a new order. An
// empty order number is replaced with a generated ORD reference.
type CreateOrderRequest struct {
	CustomerID     uuid.UUID          `json:"customer_id" binding:"required"`
	OrderNumber    string             `json:"order_number" binding:"max=50"`
	OrderDate      time.Time          `json:"order_date" binding:"required"`
	DeliveryDate   *time.Time         `json:"delivery_date"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	Notes          string             `json:"notes"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed preparing ready delivered cancelled"`
	Note   string `json:"note" binding:"max=500"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	BatchID     *uuid.UUID      `json:"batch_id,omitempty"`
	ProductName string          `json:"product_name"`
	ProductType string          `json:"product_type,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse represents an order in API responses, joined with the
// customer's display fields
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	FarmID         uuid.UUID           `json:"farm_id"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	CustomerName   string              `json:"customer_name,omitempty"`
	CustomerPhone  string              `json:"customer_phone,omitempty"`
	OrderNumber    string              `json:"order_number"`
	OrderDate      time.Time           `json:"order_date"`
	DeliveryDate   *time.Time          `json:"delivery_date,omitempty"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"payment_status"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	TaxAmount      decimal.Decimal     `json:"tax_amount"`
	NetAmount      decimal.Decimal     `json:"net_amount"`
	Notes          string              `json:"notes,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// StatusHistoryResponse represents one recorded status transition
type StatusHistoryResponse struct {
	ID         uuid.UUID `json:"id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	Note       string    `json:"note,omitempty"`
	ChangedBy  uuid.UUID `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListOrdersRequest represents order list query parameters
type ListOrdersRequest struct {
	Page          int        `form:"page" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search        string     `form:"search"`
	Status        string     `form:"status" binding:"omitempty,oneof=pending confirmed preparing ready delivered cancelled"`
	PaymentStatus string     `form:"payment_status" binding:"omitempty,oneof=unpaid partial paid"`
	CustomerID    string     `form:"customer_id" binding:"omitempty,uuid"`
	DateFrom      *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// ToOrderItemResponse converts a domain order item to a response DTO
func ToOrderItemResponse(item *trade.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          item.ID,
		BatchID:     item.BatchID,
		ProductName: item.ProductName,
		ProductType: item.ProductType,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		UnitPrice:   item.UnitPrice,
		TotalPrice:  item.TotalPrice,
	}
}

// ToOrderResponse converts a domain order to a response DTO. The
// customer fields are joined at read time; pass empty strings when the
// customer is not loaded.
func ToOrderResponse(o *trade.Order, customerName, customerPhone string) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}

	return OrderResponse{
		ID:             o.ID,
		FarmID:         o.FarmID,
		CustomerID:     o.CustomerID,
		CustomerName:   customerName,
		CustomerPhone:  customerPhone,
		OrderNumber:    o.OrderNumber,
		OrderDate:      o.OrderDate,
		DeliveryDate:   o.DeliveryDate,
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		TotalAmount:    o.TotalAmount,
		DiscountAmount: o.DiscountAmount,
		TaxAmount:      o.TaxAmount,
		NetAmount:      o.NetAmount,
		Notes:          o.Notes,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToStatusHistoryResponse converts a domain status history entry
func ToStatusHistoryResponse(h *trade.StatusHistory) StatusHistoryResponse {
	return StatusHistoryResponse{
		ID:         h.ID,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		Note:       h.Note,
		ChangedBy:  h.ChangedBy,
		CreatedAt:  h.CreatedAt,
	}
}

// =============================================================================
// Payment DTOs
// =============================================================================

// RecordPaymentRequest represents a request to record money received
// against an order. An empty payment number is replaced with a generated
// PAY reference.
type RecordPaymentRequest struct {
	PaymentNumber string          `json:"payment_number" binding:"max=50"`
	PaymentDate   time.Time       `json:"payment_date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required,oneof=cash bank_transfer mobile_money cheque credit"`
	Reference     string          `json:"reference" binding:"max=200"`
	Notes         string          `json:"notes"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	FarmID        uuid.UUID       `json:"farm_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	OrderID       uuid.UUID       `json:"order_id"`
	PaymentNumber string          `json:"payment_number"`
	PaymentDate   time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RecordPaymentResponse pairs the stored payment with the order's
// freshly recomputed settlement state
type RecordPaymentResponse struct {
	Payment       PaymentResponse `json:"payment"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentStatus string          `json:"payment_status"`
}

// OrderPaymentsResponse lists an order's payments with running totals
type OrderPaymentsResponse struct {
	Payments      []PaymentResponse `json:"payments"`
	TotalPaid     decimal.Decimal   `json:"total_paid"`
	Balance       decimal.Decimal   `json:"balance"`
	PaymentStatus string            `json:"payment_status"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *trade.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		FarmID:        p.FarmID,
		CustomerID:    p.CustomerID,
		OrderID:       p.OrderID,
		PaymentNumber: p.PaymentNumber,
		PaymentDate:   p.PaymentDate,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}
