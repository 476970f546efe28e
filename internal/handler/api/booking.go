package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/localtime"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	location        *time.Location
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, location *time.Location) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		location:        location,
	}
}

// @Summary Create booking
// @Description Book a court slot with optional coach and equipment
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timestamp format",
		})
		return
	}

	bookingRM, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), userID, params)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingRM))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End time must be after start time",
		})
	case errors.Is(err, commands.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, commands.ErrCoachNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coach not found",
		})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Court is already booked for this time slot",
		})
	case errors.Is(err, commands.ErrTransientFailure):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Booking could not be completed, please retry",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Check availability
// @Description Check whether a court slot is free of confirmed bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Slot to check"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/check [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, end, err := req.Window(h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timestamp format",
		})
		return
	}

	available, err := h.bookingQueries.CheckAvailability(c.Request.Context(), req.CourtID, start, end)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: available})
}

// @Summary Preview price
// @Description Compute an itemized quote without creating a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewPriceRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) PreviewPrice(c *gin.Context) {
	var req reqdto.PreviewPriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timestamp format",
		})
		return
	}

	quote, err := h.bookingQueries.PreviewPrice(c.Request.Context(), params)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(*quote))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingRM, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}

// @Summary List bookings for a day
// @Description List confirmed bookings whose windows start on the given facility-local date
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	day, err := localtime.ParseDate(dateStr, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	items, err := h.bookingQueries.ListByDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End time must be after start time",
		})
	case errors.Is(err, queries.ErrInvalidLine):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Equipment quantity must be at least 1",
		})
	case errors.Is(err, queries.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, queries.ErrCoachNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coach not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
