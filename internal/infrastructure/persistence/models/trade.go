package models

import (
	"time"

	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	FarmAggregateModel
	CustomerID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderNumber    string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_order_farm_number,priority:2"`
	OrderDate      time.Time           `gorm:"type:date;not null;index"`
	DeliveryDate   *time.Time          `gorm:"type:date"`
	Items          []OrderItemModel    `gorm:"foreignKey:OrderID;references:ID"`
	Status         trade.OrderStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus  trade.PaymentStatus `gorm:"type:varchar(20);not null;default:'unpaid';index"`
	TotalAmount    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount      decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	NetAmount      decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Notes          string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	order := &trade.Order{
		CustomerID:     m.CustomerID,
		OrderNumber:    m.OrderNumber,
		OrderDate:      m.OrderDate,
		DeliveryDate:   m.DeliveryDate,
		Status:         m.Status,
		PaymentStatus:  m.PaymentStatus,
		TotalAmount:    m.TotalAmount,
		DiscountAmount: m.DiscountAmount,
		TaxAmount:      m.TaxAmount,
		NetAmount:      m.NetAmount,
		Notes:          m.Notes,
		Items:          make([]trade.OrderItem, len(m.Items)),
	}
	m.PopulateFarmAggregateRoot(&order.FarmAggregateRoot)
	for i, item := range m.Items {
		order.Items[i] = *item.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainFarmAggregateRoot(o.FarmAggregateRoot)
	m.CustomerID = o.CustomerID
	m.OrderNumber = o.OrderNumber
	m.OrderDate = o.OrderDate
	m.DeliveryDate = o.DeliveryDate
	m.Status = o.Status
	m.PaymentStatus = o.PaymentStatus
	m.TotalAmount = o.TotalAmount
	m.DiscountAmount = o.DiscountAmount
	m.TaxAmount = o.TaxAmount
	m.NetAmount = o.NetAmount
	m.Notes = o.Notes
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&item)
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for the OrderItem entity.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID     *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	ProductType string          `gorm:"type:varchar(50)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit        string          `gorm:"type:varchar(20)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *trade.OrderItem {
	return &trade.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		BatchID:     m.BatchID,
		ProductName: m.ProductName,
		ProductType: m.ProductType,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		CreatedAt:   m.CreatedAt,
	}
}

// OrderItemModelFromDomain creates a new persistence model from a domain OrderItem entity.
func OrderItemModelFromDomain(i *trade.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:          i.ID,
		OrderID:     i.OrderID,
		BatchID:     i.BatchID,
		ProductName: i.ProductName,
		ProductType: i.ProductType,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		UnitPrice:   i.UnitPrice,
		TotalPrice:  i.TotalPrice,
		CreatedAt:   i.CreatedAt,
	}
}

// OrderStatusHistoryModel is the persistence model for the StatusHistory entity.
type OrderStatusHistoryModel struct {
	BaseModel
	OrderID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	FromStatus trade.OrderStatus `gorm:"type:varchar(20);not null"`
	ToStatus   trade.OrderStatus `gorm:"type:varchar(20);not null"`
	Note       string            `gorm:"type:varchar(500)"`
	ChangedBy  uuid.UUID         `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_histories"
}

// ToDomain converts the persistence model to a domain StatusHistory entity.
func (m *OrderStatusHistoryModel) ToDomain() *trade.StatusHistory {
	return &trade.StatusHistory{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		FromStatus: m.FromStatus,
		ToStatus:   m.ToStatus,
		Note:       m.Note,
		ChangedBy:  m.ChangedBy,
	}
}

// FromDomain populates the persistence model from a domain StatusHistory entity.
func (m *OrderStatusHistoryModel) FromDomain(h *trade.StatusHistory) {
	m.FromDomainBaseEntity(h.BaseEntity)
	m.OrderID = h.OrderID
	m.FromStatus = h.FromStatus
	m.ToStatus = h.ToStatus
	m.Note = h.Note
	m.ChangedBy = h.ChangedBy
}

// OrderStatusHistoryModelFromDomain creates a new persistence model from a domain StatusHistory entity.
func OrderStatusHistoryModelFromDomain(h *trade.StatusHistory) *OrderStatusHistoryModel {
	m := &OrderStatusHistoryModel{}
	m.FromDomain(h)
	return m
}

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	FarmAggregateModel
	CustomerID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	PaymentNumber string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_payment_farm_number,priority:2"`
	PaymentDate   time.Time           `gorm:"type:date;not null"`
	Amount        decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Method        trade.PaymentMethod `gorm:"type:varchar(20);not null"`
	Reference     string              `gorm:"type:varchar(100)"`
	Notes         string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *trade.Payment {
	p := &trade.Payment{
		CustomerID:    m.CustomerID,
		OrderID:       m.OrderID,
		PaymentNumber: m.PaymentNumber,
		PaymentDate:   m.PaymentDate,
		Amount:        m.Amount,
		Method:        m.Method,
		Reference:     m.Reference,
		Notes:         m.Notes,
	}
	m.PopulateFarmAggregateRoot(&p.FarmAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *trade.Payment) {
	m.FromDomainFarmAggregateRoot(p.FarmAggregateRoot)
	m.CustomerID = p.CustomerID
	m.OrderID = p.OrderID
	m.PaymentNumber = p.PaymentNumber
	m.PaymentDate = p.PaymentDate
	m.Amount = p.Amount
	m.Method = p.Method
	m.Reference = p.Reference
	m.Notes = p.Notes
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *trade.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
