// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. A partial unique index on order_id keeps at most
// one non-failed payment per order while letting failed attempts accumulate.
package paymentrepo

import (
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. The amount is stored in minor currency units.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_payments_active_order,where:status <> 'failed';not null"`
	IntentID  string    `gorm:"uniqueIndex;not null"`
	Amount    int64     `gorm:"type:bigint;not null"`
	Currency  string    `gorm:"not null"`
	Status    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		IntentID:  p.IntentID(),
		Amount:    p.Amount().MinorUnits(),
		Currency:  p.Currency(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID,
		dto.IntentID,
		amount, dto.Currency,
		status, dto.CreatedAt, dto.UpdatedAt,
	)
}
