package serviceControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// GET /services
func ListServicesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var services []models.Service
		if err := db.Order("created_at ASC, id ASC").Find(&services).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch services"))
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

type BookServiceRequest struct {
	UserID        uint              `json:"userId" binding:"required"`
	ServiceID     uint              `json:"serviceId" binding:"required"`
	ScheduledDate string            `json:"scheduled_date"`
	DeviceDetails datatypes.JSONMap `json:"device_details"`
}

// BookService creates a booking, snapshotting total_cost from the service's
// current base price.
func BookService(db *gorm.DB, req BookServiceRequest) (models.ServiceBooking, error) {
	var booking models.ServiceBooking

	var user models.User
	if err := db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, apierr.NotFound("user not found")
		}
		return booking, apierr.Internal(err, "failed to load user")
	}
	var service models.Service
	if err := db.First(&service, req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, apierr.NotFound("service not found")
		}
		return booking, apierr.Internal(err, "failed to load service")
	}

	var scheduled *time.Time
	if req.ScheduledDate != "" {
		t, err := parseDate(req.ScheduledDate)
		if err != nil {
			return booking, apierr.InvalidInput("invalid scheduled_date")
		}
		scheduled = &t
	}

	booking = models.ServiceBooking{
		UserID:        req.UserID,
		ServiceID:     req.ServiceID,
		BookingDate:   time.Now(),
		ScheduledDate: scheduled,
		Status:        "pending",
		DeviceDetails: req.DeviceDetails,
		TotalCost:     service.BasePrice,
	}
	if err := db.Create(&booking).Error; err != nil {
		return booking, apierr.Internal(err, "failed to create booking")
	}
	booking.Service = service
	return booking, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// POST /services/book
func BookServiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("userId and serviceId required"))
			return
		}
		booking, err := BookService(db, req)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// GET /services/bookings/:userId
func ListBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid userId"))
			return
		}
		var bookings []models.ServiceBooking
		if err := db.Preload("Service").Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").Find(&bookings).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch bookings"))
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}
