package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vanshpar/pc-builder-api/models"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
		&models.Service{}, &models.ServiceBooking{},
		&models.AIConversation{}, &models.CompatibilityRule{},
	))
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, db)
	return r, db
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProductLookupStatusCodes(t *testing.T) {
	r, db := newTestServer(t)
	p := models.Product{Name: "CPU", Category: models.CategoryCPU, Price: decimal.NewFromInt(180)}
	require.NoError(t, db.Create(&p).Error)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/products/999", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/products/abc", nil).Code)
}

func TestProductFilters(t *testing.T) {
	r, db := newTestServer(t)
	products := []models.Product{
		{Name: "Intel Core i5-12400F", Category: models.CategoryCPU, Brand: "Intel", Price: decimal.NewFromInt(180)},
		{Name: "AMD Ryzen 5 5600", Category: models.CategoryCPU, Brand: "AMD", Price: decimal.NewFromInt(160)},
		{Name: "NVIDIA GeForce RTX 4070", Category: models.CategoryGPU, Brand: "NVIDIA", Price: decimal.NewFromInt(520)},
	}
	require.NoError(t, db.Create(&products).Error)

	var got []models.Product
	w := do(r, http.MethodGet, "/products?category=CPU&brand=AMD", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "AMD Ryzen 5 5600", got[0].Name)

	w = do(r, http.MethodGet, "/products?q=ryzen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)

	w = do(r, http.MethodGet, "/products?minPrice=170&maxPrice=600", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/products?minPrice=cheap", nil).Code)
}

func TestCompatibilityEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(r, http.MethodPost, "/products/compatibility", gin.H{
		"parts": []gin.H{
			{"category": "CPU", "compatibility_tags": gin.H{"socket_type": "LGA1700"}},
			{"category": "Motherboard", "compatibility_tags": gin.H{"socket_type": "AM4"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"compatible":false,"issues":["CPU and Motherboard socket mismatch"]}`,
		w.Body.String())
}

func TestCheckoutOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	user := models.User{Name: "Demo", Email: "demo@example.com"}
	require.NoError(t, db.Create(&user).Error)
	p := models.Product{Name: "CPU", Category: models.CategoryCPU,
		Price: decimal.NewFromInt(180), StockQuantity: 5}
	require.NoError(t, db.Create(&p).Error)

	w := do(r, http.MethodPost, "/cart/add", gin.H{"userId": user.ID, "productId": p.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/orders/create", gin.H{"userId": user.ID, "assembly_service": true})
	require.Equal(t, http.StatusCreated, w.Code)

	// second checkout: cart is empty now
	w = do(r, http.MethodPost, "/orders/create", gin.H{"userId": user.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown user
	w = do(r, http.MethodPost, "/orders/create", gin.H{"userId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
