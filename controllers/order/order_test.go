package orderControllers

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func newUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Demo", Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func newProduct(t *testing.T, db *gorm.DB, name string, price, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:          name,
		Category:      models.CategoryCPU,
		Price:         decimal.NewFromInt(int64(price)),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func addToCart(t *testing.T, db *gorm.DB, user models.User, p models.Product, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&models.CartItem{
		UserID: user.ID, ProductID: p.ID, Quantity: qty,
	}).Error)
}

func TestCheckoutWithAssembly(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")
	cpu := newProduct(t, db, "CPU", 180, 5)
	gpu := newProduct(t, db, "GPU", 300, 5)
	addToCart(t, db, user, cpu, 1)
	addToCart(t, db, user, gpu, 1)

	order, err := Checkout(db, CheckoutRequest{
		UserID:          user.ID,
		AssemblyService: true,
		ShippingAddress: "123 Demo Street",
	})
	require.NoError(t, err)

	// 180 + 300 + 50 assembly fee
	assert.True(t, decimal.NewFromInt(530).Equal(order.TotalAmount), "total = %s", order.TotalAmount)
	assert.True(t, decimal.NewFromInt(50).Equal(order.AssemblyCharge))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	require.Len(t, order.Items, 2)

	for _, p := range []models.Product{cpu, gpu} {
		var got models.Product
		require.NoError(t, db.First(&got, p.ID).Error)
		assert.Equal(t, 4, got.StockQuantity)
	}

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count, "cart must be cleared")
}

func TestCheckoutTotalInvariant(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")
	cpu := newProduct(t, db, "CPU", 160, 10)
	gpu := newProduct(t, db, "GPU", 350, 10)
	addToCart(t, db, user, cpu, 2)
	addToCart(t, db, user, gpu, 1)

	order, err := Checkout(db, CheckoutRequest{UserID: user.ID, AssemblyService: true})
	require.NoError(t, err)

	sum := order.AssemblyCharge
	for _, it := range order.Items {
		sum = sum.Add(it.PriceAtPurchase.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, sum.Equal(order.TotalAmount), "total %s != items+charge %s", order.TotalAmount, sum)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")

	_, err := Checkout(db, CheckoutRequest{UserID: user.ID})
	assert.Equal(t, apierr.KindInvalidState, apierr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order may be created")
}

func TestCheckoutUnknownUser(t *testing.T) {
	db := openTestDB(t)
	_, err := Checkout(db, CheckoutRequest{UserID: 999})
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
}

func TestCheckoutClampsStockAtZero(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")
	cpu := newProduct(t, db, "CPU", 100, 2)
	addToCart(t, db, user, cpu, 5)

	order, err := Checkout(db, CheckoutRequest{UserID: user.ID})
	require.NoError(t, err, "overselling is clamped, not rejected")
	assert.True(t, decimal.NewFromInt(500).Equal(order.TotalAmount))

	var got models.Product
	require.NoError(t, db.First(&got, cpu.ID).Error)
	assert.Equal(t, 0, got.StockQuantity)
}

func TestPriceAtPurchaseIsFrozen(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")
	cpu := newProduct(t, db, "CPU", 180, 5)
	addToCart(t, db, user, cpu, 1)

	order, err := Checkout(db, CheckoutRequest{UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", cpu.ID).
		Update("price", decimal.NewFromInt(999)).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.True(t, decimal.NewFromInt(180).Equal(item.PriceAtPurchase),
		"price_at_purchase = %s", item.PriceAtPurchase)
}

func TestCheckoutRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")
	cpu := newProduct(t, db, "CPU", 180, 5)
	gpu := newProduct(t, db, "GPU", 300, 5)
	addToCart(t, db, user, cpu, 1)
	addToCart(t, db, user, gpu, 1)

	// Make the order-item insert fail mid-transaction.
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	_, err := Checkout(db, CheckoutRequest{UserID: user.ID, AssemblyService: true})
	require.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders, "order creation must roll back")

	var cartLines int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&cartLines).Error)
	assert.EqualValues(t, 2, cartLines, "cart must survive the rollback")

	for _, p := range []models.Product{cpu, gpu} {
		var got models.Product
		require.NoError(t, db.First(&got, p.ID).Error)
		assert.Equal(t, 5, got.StockQuantity, "stock must survive the rollback")
	}
}

func TestSecondCheckoutSeesEmptyCart(t *testing.T) {
	db := openTestDB(t)
	user := newUser(t, db, "demo@example.com")
	cpu := newProduct(t, db, "CPU", 180, 1)
	addToCart(t, db, user, cpu, 3)

	_, err := Checkout(db, CheckoutRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = Checkout(db, CheckoutRequest{UserID: user.ID})
	assert.Equal(t, apierr.KindInvalidState, apierr.KindOf(err),
		"cart was consumed by the first checkout")

	// stock was decremented exactly once, clamped at zero
	var got models.Product
	require.NoError(t, db.First(&got, cpu.ID).Error)
	assert.Equal(t, 0, got.StockQuantity)
}
