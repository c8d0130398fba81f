// Package orderrepo provides the GORM implementation of ports.OrderRepository
// and the mapping between the Order aggregate and the orders table.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its stable code so rows stay readable in SQL.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        string    `gorm:"type:varchar(32);not null;index"`
	PaymentStatus string    `gorm:"type:text;not null;default:''"`
	OrderNotes    string    `gorm:"type:text;not null;default:''"`
	Version       int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus(),
		OrderNotes:    aggregate.OrderNotes(),
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database row back to an order aggregate.
// Rows with an unrecognized status are reported as errors rather than loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, status, dto.PaymentStatus, dto.OrderNotes, dto.Version, dto.CreatedAt)
}
