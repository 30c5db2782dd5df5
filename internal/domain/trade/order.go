package trade

import (
	"strings"
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment lifecycle of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a known OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusPreparing || target == OrderStatusCancelled
	case OrderStatusPreparing:
		return target == OrderStatusReady || target == OrderStatusCancelled
	case OrderStatusReady:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal reports whether the status ends the order lifecycle
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentStatus represents the settlement state of an order, derived from
// the sum of recorded payments against the net amount.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// DerivePaymentStatus computes the payment status from the total paid so
// far and the order's net amount. The derivation is a pure function of its
// inputs: recomputing from the full payment set always yields the same
// result, regardless of insertion order.
func DerivePaymentStatus(totalPaid, netAmount decimal.Decimal) PaymentStatus {
	switch {
	case totalPaid.GreaterThanOrEqual(netAmount) && totalPaid.IsPositive():
		return PaymentStatusPaid
	case totalPaid.IsPositive():
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}

// OrderItem is an immutable line of an order
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	BatchID     *uuid.UUID
	ProductName string
	ProductType string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity * UnitPrice
	CreatedAt   time.Time
}

// NewOrderItem creates a new order item and computes its line total
func NewOrderItem(orderID uuid.UUID, batchID *uuid.UUID, productName, productType, unit string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product name cannot be empty")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be greater than zero")
	}

	return &OrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		BatchID:     batchID,
		ProductName: strings.TrimSpace(productName),
		ProductType: strings.TrimSpace(productType),
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		TotalPrice:  quantity.Mul(unitPrice),
		CreatedAt:   time.Now(),
	}, nil
}

// Order represents a sales order belonging to one farm and one customer.
// It is the aggregate root for the order workflow: the header and its items
// are always persisted as one atomic unit.
type Order struct {
	shared.FarmAggregateRoot
	CustomerID     uuid.UUID
	OrderNumber    string
	OrderDate      time.Time
	DeliveryDate   *time.Time
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	NetAmount      decimal.Decimal
	Notes          string
	Items          []OrderItem
}

// NewOrder creates a new pending order. An empty order number is replaced
// with a generated ORD reference.
func NewOrder(farmID, customerID uuid.UUID, orderNumber string, orderDate time.Time) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if orderDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Order date is required")
	}

	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		orderNumber = shared.GenerateReferenceCode("ORD")
	} else if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Order number cannot exceed 50 characters")
	}

	return &Order{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		CustomerID:        customerID,
		OrderNumber:       strings.ToUpper(orderNumber),
		OrderDate:         orderDate,
		Status:            OrderStatusPending,
		PaymentStatus:     PaymentStatusUnpaid,
		TotalAmount:       decimal.Zero,
		DiscountAmount:    decimal.Zero,
		TaxAmount:         decimal.Zero,
		NetAmount:         decimal.Zero,
		Items:             make([]OrderItem, 0),
	}, nil
}

// AddItem appends a line item and recomputes the order totals
func (o *Order) AddItem(batchID *uuid.UUID, productName, productType, unit string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if o.Status != OrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	item, err := NewOrderItem(o.ID, batchID, productName, productType, unit, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.Touch()

	return item, nil
}

// ApplyCharges sets the discount and tax and recomputes the net amount
func (o *Order) ApplyCharges(discount, tax decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if tax.IsNegative() {
		return shared.NewDomainError("INVALID_TAX", "Tax cannot be negative")
	}
	if discount.GreaterThan(o.TotalAmount) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed total amount")
	}

	o.DiscountAmount = discount
	o.TaxAmount = tax
	o.recalculateTotals()
	o.Touch()

	return nil
}

// recalculateTotals recomputes total and net amounts from the item lines.
// net = total - discount + tax.
func (o *Order) recalculateTotals() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice)
	}
	o.TotalAmount = total
	o.NetAmount = total.Sub(o.DiscountAmount).Add(o.TaxAmount)
}

// SetDeliveryDate sets the expected delivery date
func (o *Order) SetDeliveryDate(date *time.Time) {
	o.DeliveryDate = date
	o.Touch()
}

// SetNotes sets the order notes
func (o *Order) SetNotes(notes string) {
	o.Notes = notes
	o.Touch()
}

// TransitionTo moves the order to the target status, enforcing the
// lifecycle transition table.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", "Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	o.Status = target
	o.Touch()
	o.IncrementVersion()

	return nil
}

// SettlePayments applies a freshly derived payment status
func (o *Order) SettlePayments(totalPaid decimal.Decimal) {
	o.PaymentStatus = DerivePaymentStatus(totalPaid, o.NetAmount)
	o.Touch()
}

// IsInFlight reports whether the order still blocks dependent deletes
func (o *Order) IsInFlight() bool {
	return !o.Status.IsTerminal()
}
