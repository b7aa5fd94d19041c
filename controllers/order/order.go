package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// Fixed fee added to the order total when assembly is requested.
var assemblyFee = decimal.NewFromInt(50)

type CheckoutRequest struct {
	UserID          uint   `json:"userId" binding:"required"`
	AssemblyService bool   `json:"assembly_service"`
	ShippingAddress string `json:"shipping_address"`
}

// lockForUpdate adds FOR UPDATE on dialects that support it. The SQLite
// fallback serializes writers at the database level, which preserves the
// same exclusivity for the checkout read-compute-write sequence.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// -------- Core Logic --------

// Checkout converts the user's cart into an order in one transaction:
// lock cart and product rows, total at live prices plus the assembly fee,
// create the order, snapshot each line's price into an OrderItem, decrement
// stock (clamped at 0), clear the cart. Any failure rolls back everything.
func Checkout(db *gorm.DB, req CheckoutRequest) (models.Order, error) {
	var order models.Order

	var user models.User
	if err := db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, apierr.NotFound("user not found")
		}
		return order, apierr.Internal(err, "failed to load user")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := lockForUpdate(tx).Where("user_id = ?", req.UserID).
			Order("id").Find(&items).Error; err != nil {
			return apierr.Internal(err, "failed to load cart")
		}
		if len(items) == 0 {
			return apierr.InvalidState("cart is empty")
		}

		// Lock the product rows alongside the cart rows so a concurrent
		// checkout cannot decrement the same stock twice.
		productIDs := make([]uint, 0, len(items))
		for _, it := range items {
			productIDs = append(productIDs, it.ProductID)
		}
		var products []models.Product
		if err := lockForUpdate(tx).Where("id IN ?", productIDs).
			Find(&products).Error; err != nil {
			return apierr.Internal(err, "failed to load products")
		}
		byID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		charge := decimal.Zero
		if req.AssemblyService {
			charge = assemblyFee
		}
		itemsTotal := decimal.Zero
		for _, it := range items {
			p, ok := byID[it.ProductID]
			if !ok {
				return apierr.Internal(nil, "cart references missing product")
			}
			itemsTotal = itemsTotal.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		order = models.Order{
			UserID:          req.UserID,
			TotalAmount:     itemsTotal.Add(charge),
			AssemblyService: req.AssemblyService,
			AssemblyCharge:  charge,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusUnpaid,
			ShippingAddress: req.ShippingAddress,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return apierr.Internal(err, "failed to create order")
		}

		for _, it := range items {
			p := byID[it.ProductID]

			orderItem := models.OrderItem{
				OrderID:         order.ID,
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				PriceAtPurchase: p.Price, // frozen now; later price edits don't touch it
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return apierr.Internal(err, "failed to create order item")
			}
			order.Items = append(order.Items, orderItem)

			// Clamp at zero rather than reject; overselling is accepted here.
			newStock := p.StockQuantity - it.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := tx.Model(&models.Product{}).Where("id = ?", p.ID).
				Update("stock_quantity", newStock).Error; err != nil {
				return apierr.Internal(err, "failed to update stock")
			}

			if err := tx.Delete(&models.CartItem{}, it.ID).Error; err != nil {
				return apierr.Internal(err, "failed to clear cart item")
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	broadcastNewOrder(order)
	return order, nil
}

// -------- Handlers --------

// POST /orders/create
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("userId is required"))
			return
		}
		order, err := Checkout(db, req)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/:userId
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid userId"))
			return
		}
		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch orders"))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/detail/:orderId
func GetOrderDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid orderId"))
			return
		}
		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierr.Respond(c, apierr.NotFound("order not found"))
			} else {
				apierr.Respond(c, apierr.Internal(err, "failed to fetch order"))
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// PUT /orders/:orderId/status
// Status values are free-form: no transition graph is enforced, operators
// set whatever the fulfilment process needs.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid orderId"))
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid input: %v", err))
			return
		}

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierr.Respond(c, apierr.NotFound("order not found"))
			} else {
				apierr.Respond(c, apierr.Internal(err, "failed to fetch order"))
			}
			return
		}

		if req.Status != "" {
			order.Status = models.OrderStatus(req.Status)
		}
		if req.PaymentStatus != "" {
			order.PaymentStatus = models.PaymentStatus(req.PaymentStatus)
		}
		if err := db.Save(&order).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to update order"))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
