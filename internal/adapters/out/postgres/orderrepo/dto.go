// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// database representation including the soft-delete tombstone.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// DeletedAt uses gorm.DeletedAt so GORM's default query scope hides tombstoned
// rows; including-deleted reads go through Unscoped explicitly.
type OrderDTO struct {
	OrderID    int64          `gorm:"primaryKey;autoIncrement;column:order_id"`
	ClientName string         `gorm:"not null"`
	Status     string         `gorm:"not null;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time      `gorm:"index"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single line item row owned by an order.
type OrderItemDTO struct {
	ItemID      int64   `gorm:"primaryKey;autoIncrement;column:item_id"`
	OrderID     int64   `gorm:"not null;index;column:order_id"`
	Description string  `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	UnitPrice   float64 `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Store-managed columns (ids, timestamps, tombstone) are left for GORM.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ItemID:      item.ID(),
			OrderID:     item.OrderID(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		OrderID:    aggregate.ID(),
		ClientName: aggregate.ClientName(),
		Status:     aggregate.Status().String(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(
			itemDTO.ItemID,
			itemDTO.OrderID,
			itemDTO.Description,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		t := dto.DeletedAt.Time
		deletedAt = &t
	}

	return order.RestoreOrder(
		dto.OrderID,
		dto.ClientName,
		status,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		deletedAt,
	)
}
