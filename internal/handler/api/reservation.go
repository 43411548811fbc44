package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	booking usecase.BookingService
}

func NewReservationHandler(booking usecase.BookingService) *ReservationHandler {
	return &ReservationHandler{booking: booking}
}

// @Summary Create reservation
// @Description Reserve a room for [checkIn, checkOut)
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	view, err := h.booking.Reserve(c.Request.Context(), params)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := h.booking.GetReservation(c.Request.Context(), id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Pay reservation
// @Description Authorize payment for a reservation. Paying twice reports already_paid.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.PayReservationRequest true "Payment instrument"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/payment [post]
func (h *ReservationHandler) PayReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.PayReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.booking.Pay(c.Request.Context(), req.ToParams(id))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	resp, err := resdto.FromPaymentResult(result)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	switch result.Outcome {
	case commands.OutcomeSuccess, commands.OutcomeAlreadyPaid:
		c.JSON(http.StatusOK, resp)
	case commands.OutcomeDeclined:
		httperr.AbortWithCode(c, http.StatusPaymentRequired, result.Err(), "payment_declined", "Payment declined", resp)
	case commands.OutcomeReservationNotFound:
		abortWithEngineError(c, result.Err())
	default:
		abortWithEngineError(c, errs.Newf("unknown payment outcome %q", result.Outcome))
	}
}

func (h *ReservationHandler) reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalid_id", "Invalid reservation ID format", nil)
		return 0, false
	}
	return id, true
}
