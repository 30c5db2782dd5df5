package trade

import (
	"strings"
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodCredit       PaymentMethod = "credit"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodCash:         true,
	PaymentMethodBankTransfer: true,
	PaymentMethodMobileMoney:  true,
	PaymentMethodCheque:       true,
	PaymentMethodCredit:       true,
}

// IsValid reports whether the payment method is known
func (m PaymentMethod) IsValid() bool {
	return validPaymentMethods[m]
}

// Payment is an immutable record of money received against an order. Its
// existence drives recomputation of the order's payment status; payments
// are never edited or deleted.
type Payment struct {
	shared.FarmAggregateRoot
	CustomerID    uuid.UUID
	OrderID       uuid.UUID
	PaymentNumber string
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Method        PaymentMethod
	Reference     string
	Notes         string
}

// NewPayment creates a payment scoped to the order's farm and customer.
// An empty payment number is replaced with a generated PAY reference.
func NewPayment(farmID, customerID, orderID uuid.UUID, paymentNumber string, paymentDate time.Time, amount decimal.Decimal, method PaymentMethod) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Payment method must be one of cash, bank_transfer, mobile_money, cheque, credit")
	}

	paymentNumber = strings.TrimSpace(paymentNumber)
	if paymentNumber == "" {
		paymentNumber = shared.GenerateReferenceCode("PAY")
	} else if len(paymentNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Payment number cannot exceed 50 characters")
	}

	return &Payment{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		CustomerID:        customerID,
		OrderID:           orderID,
		PaymentNumber:     strings.ToUpper(paymentNumber),
		PaymentDate:       paymentDate,
		Amount:            amount,
		Method:            method,
	}, nil
}
