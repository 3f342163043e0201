package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dive-booking/booking"
	"dive-booking/models"
	"dive-booking/pricing"
	"dive-booking/services"
	"dive-booking/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// BookingResponse is returned after a successful submission.
type BookingResponse struct {
	Booking *models.Booking `json:"booking"`
	Quote   pricing.Quote   `json:"quote"`
}

// CreateBooking handles POST /api/bookings with a complete draft.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, err)
		return
	}
	rec, q, err := bc.BookingSvc.Submit(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, BookingResponse{Booking: rec, Quote: q})
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.BookingSvc.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	rec, err := bc.BookingSvc.GetBooking(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rec)
}

// CreateQuote handles POST /api/quotes. Nothing is stored.
func (bc *BookingController) CreateQuote(c *gin.Context) {
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, err)
		return
	}
	q, err := bc.BookingSvc.Quote(draft)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, q)
}
