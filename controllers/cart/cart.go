package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// -------- Core Logic --------

// AddItem puts qty of a product into the user's cart. An existing line for
// (user, product) is incremented with an atomic SQL update so concurrent adds
// never lose each other's quantity.
func AddItem(db *gorm.DB, userID, productID uint, qty int) (models.CartItem, error) {
	var item models.CartItem
	if qty <= 0 {
		return item, apierr.InvalidInput("quantity must be positive")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apierr.NotFound("user not found")
		}
		return item, apierr.Internal(err, "failed to load user")
	}
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, apierr.NotFound("product not found")
		}
		return item, apierr.Internal(err, "failed to load product")
	}

	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
		if err := db.Create(&item).Error; err != nil {
			return item, apierr.Internal(err, "failed to add item to cart")
		}
	case err != nil:
		return item, apierr.Internal(err, "failed to fetch cart item")
	default:
		if err := db.Model(&models.CartItem{}).Where("id = ?", item.ID).
			Update("quantity", gorm.Expr("quantity + ?", qty)).Error; err != nil {
			return item, apierr.Internal(err, "failed to update cart item")
		}
		if err := db.First(&item, item.ID).Error; err != nil {
			return item, apierr.Internal(err, "failed to reload cart item")
		}
	}

	item.Product = product
	return item, nil
}

// ListItems returns the user's cart lines (newest first) and the running
// total at current product prices. Totals here are not snapshots; checkout
// freezes prices, the cart does not.
func ListItems(db *gorm.DB, userID uint) ([]models.CartItem, decimal.Decimal, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, decimal.Zero, apierr.Internal(err, "failed to fetch cart")
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return items, total, nil
}

// UpdateQuantity sets the line's quantity; qty <= 0 removes the line.
// Returns the updated line, or removed=true when the line was deleted.
func UpdateQuantity(db *gorm.DB, userID, itemID uint, qty int) (models.CartItem, bool, error) {
	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, false, apierr.NotFound("cart item not found")
		}
		return item, false, apierr.Internal(err, "failed to fetch cart item")
	}

	if qty <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return item, false, apierr.Internal(err, "failed to remove cart item")
		}
		return item, true, nil
	}

	item.Quantity = qty
	if err := db.Save(&item).Error; err != nil {
		return item, false, apierr.Internal(err, "failed to update cart item")
	}
	return item, false, nil
}

// RemoveItem deletes the line if it belongs to the user.
func RemoveItem(db *gorm.DB, userID, itemID uint) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return apierr.Internal(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return apierr.NotFound("cart item not found")
	}
	return nil
}

// -------- Handlers --------

type AddToCartRequest struct {
	UserID    uint `json:"userId" binding:"required"`
	ProductID uint `json:"productId" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// POST /cart/add
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("userId and productId required"))
			return
		}
		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}
		item, err := AddItem(db, req.UserID, req.ProductID, qty)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /cart/:userId
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid userId"))
			return
		}
		items, total, err := ListItems(db, uint(userID))
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

type UpdateCartRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// PUT /cart/update
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("userId and itemId required"))
			return
		}
		item, removed, err := UpdateQuantity(db, req.UserID, req.ItemID, req.Quantity)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		if removed {
			c.JSON(http.StatusOK, gin.H{"removed": true})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/remove/:itemId?userId=
func RemoveCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("itemId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid itemId"))
			return
		}
		userID, err := strconv.Atoi(c.Query("userId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("userId is required"))
			return
		}
		if err := RemoveItem(db, uint(userID), uint(itemID)); err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": true})
	}
}

type ApplyAssemblyRequest struct {
	UserID uint `json:"userId" binding:"required"`
	Apply  bool `json:"apply"`
}

// POST /cart/apply-assembly
// The assembly preference is not persisted; the client passes the flag again
// at checkout. This endpoint just echoes the choice.
func ApplyAssemblyHandler(c *gin.Context) {
	var req ApplyAssemblyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.InvalidInput("userId required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": req.UserID, "assemblyApplied": req.Apply})
}
