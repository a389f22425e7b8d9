// Package cart models the client-side shopping cart as a value type with
// pure transitions: every operation returns a new Cart and leaves the
// receiver untouched. Nothing here is persisted; the cart only exists
// between catalog browsing and a successful order.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Mysterious135/delivery-app/internal/handlers"
	"github.com/Mysterious135/delivery-app/internal/models"
)

// Entry is one selected item with a denormalized copy of its name and price
// for display; the server re-reads the authoritative price at order time.
type Entry struct {
	ItemID   uint
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Details holds the checkout form fields that accompany the entries.
type Details struct {
	PaymentMethod string
}

type Cart struct {
	Entries []Entry
	Details Details
}

func New() Cart {
	return Cart{Details: Details{PaymentMethod: handlers.DefaultPaymentMethod}}
}

// Add returns a cart with the item's quantity bumped, appending a new entry
// on first add. Entry order is insertion order.
func (c Cart) Add(item models.Item) Cart {
	entries := make([]Entry, len(c.Entries), len(c.Entries)+1)
	copy(entries, c.Entries)

	found := false
	for i := range entries {
		if entries[i].ItemID == item.ID {
			entries[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, Entry{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}

	return Cart{Entries: entries, Details: c.Details}
}

// SetPaymentMethod returns a cart with the checkout detail changed.
func (c Cart) SetPaymentMethod(method string) Cart {
	next := c
	next.Entries = append([]Entry(nil), c.Entries...)
	next.Details.PaymentMethod = method
	return next
}

// Clear returns an empty cart that keeps the checkout details, matching the
// post-order reset behaviour.
func (c Cart) Clear() Cart {
	return Cart{Details: c.Details}
}

func (c Cart) ItemCount() int {
	count := 0
	for _, e := range c.Entries {
		count += e.Quantity
	}
	return count
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.Entries {
		total = total.Add(e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

// OrderRequest shapes the cart into the POST /api/orders body, entries in
// insertion order.
func (c Cart) OrderRequest() handlers.CreateOrderRequest {
	lines := make([]handlers.OrderLineItem, 0, len(c.Entries))
	for _, e := range c.Entries {
		lines = append(lines, handlers.OrderLineItem{ItemID: e.ItemID, Quantity: e.Quantity})
	}
	return handlers.CreateOrderRequest{
		PaymentMethod: c.Details.PaymentMethod,
		Items:         lines,
	}
}
