package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mysterious135/delivery-app/internal/auth"
	"github.com/Mysterious135/delivery-app/internal/db"
	"github.com/Mysterious135/delivery-app/internal/models"
	"github.com/Mysterious135/delivery-app/internal/notifier"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemNotFound      = errors.New("item not found")
)

type OrderLineItem struct {
	ItemID   uint `json:"itemId"`
	Quantity int  `json:"quantity"`
}

type CreateOrderRequest struct {
	PaymentMethod string          `json:"paymentMethod"`
	Items         []OrderLineItem `json:"items"`
}

const DefaultPaymentMethod = "Cash on Delivery"

// lockForUpdate adds an exclusive row lock on the dialects that support it.
// SQLite has no SELECT ... FOR UPDATE; its single-writer transaction lock
// serializes the check-and-decrement instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateOrder places an order for the authenticated user. The stock check,
// decrement, and order/order-item inserts run in one transaction; the item
// row is locked (SELECT ... FOR UPDATE) before the check so two concurrent
// orders for the last unit are serialized by the database and stock can
// never go negative.
func CreateOrder(c *gin.Context) {

	userID := c.GetUint(auth.ContextUserKey)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items required"})
		return
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
			return
		}
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = DefaultPaymentMethod
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}

	var order models.Order
	total := decimal.Zero

	err := db.DB.Transaction(func(tx *gorm.DB) error {

		order = models.Order{
			UserID:        userID,
			Status:        models.OrderStatusConfirmed,
			PaymentMethod: req.PaymentMethod,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// Line items are processed in submission order; the first shortfall
		// aborts the whole transaction.
		for _, line := range req.Items {

			var item models.Item
			err := lockForUpdate(tx).First(&item, line.ItemID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrItemNotFound, line.ItemID)
				}
				return fmt.Errorf("lock item %d: %w", line.ItemID, err)
			}

			if item.StockQuantity < line.Quantity {
				return fmt.Errorf("%w for item %q", ErrInsufficientStock, item.Name)
			}

			err = tx.Model(&models.Item{}).
				Where("id = ?", item.ID).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity)).Error
			if err != nil {
				return fmt.Errorf("decrement stock for item %d: %w", item.ID, err)
			}

			orderItem := models.OrderItem{
				OrderID:  order.ID,
				ItemID:   item.ID,
				Quantity: line.Quantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}

			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("order for user %d failed: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	go func(email string, orderID uint, total decimal.Decimal) {
		if err := notifier.SendOrderConfirmation(email, orderID, total); err != nil {
			log.Printf("Failed to send confirmation for order %d to %s: %v", orderID, email, err)
		}
	}(user.Email, order.ID, total)

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully!", "orderId": order.ID})
}
