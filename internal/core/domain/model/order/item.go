package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Item is an ordered line item: a product reference with quantity and unit
// price. Items are immutable once the order is created.
type Item struct {
	productID string
	quantity  int
	unitPrice kernel.Money
}

// NewItem creates a validated line item.
// The product reference must be non-empty and quantity positive.
func NewItem(productID string, quantity int, unitPrice kernel.Money) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("product id")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Item{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the product reference.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	sum, _ := kernel.NewMoney(int64(i.quantity) * i.unitPrice.Cents())
	return sum
}
