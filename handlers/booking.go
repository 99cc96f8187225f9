package handlers

import (
	"net/http"

	bookingRepo "venuely/database/repository/booking"
	"venuely/models"
	"venuely/services/booking"
	"venuely/services/payment"
	"venuely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP. Creation is the
// only public operation; the rest sit behind admin auth.
type BookingHandler struct {
	Service  booking.Service
	Payments payment.Service
}

func NewBookingHandler(svc booking.Service, payments payment.Service) *BookingHandler {
	return &BookingHandler{Service: svc, Payments: payments}
}

// CreateBookingHandler handles the public booking form submission.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	b, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingRef", b.BookingRef),
		zap.String("slotId", b.SlotID))
	c.JSON(http.StatusCreated, b)
}

// GetAllBookingsHandler lists bookings, optionally filtered by status and
// event date.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status:    c.Query("status"),
		EventDate: c.Query("date"),
	}
	bookings, err := h.Service.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	b, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetTodayBookingsHandler lists bookings whose event date is today.
func (h *BookingHandler) GetTodayBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.Today()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func (h *BookingHandler) GetBookingStatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateBookingStatusHandler applies a lifecycle transition.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload: "+err.Error())
		return
	}

	b, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingPaymentHandler records a payment status change.
func (h *BookingHandler) UpdateBookingPaymentHandler(c *gin.Context) {
	var req models.UpdateBookingPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload: "+err.Error())
		return
	}

	b, err := h.Service.UpdatePayment(c.Request.Context(), c.Param("id"), req.PaymentStatus, req.AdvancePaid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// CreatePaymentIntentHandler issues a Stripe PaymentIntent for the booking's
// outstanding balance.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	b, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	intent, err := h.Payments.CreateIntent(b)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"amount":       intent.Amount,
		"currency":     intent.Currency,
		"bookingRef":   b.BookingRef,
	})
}
