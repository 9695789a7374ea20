package api

import (
	"context"
	"net/http"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a booking of an item for a date range. The booking starts in WAITING.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), bookerID, result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description The item owner decides on a WAITING booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var q reqdto.DecideBookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter approved is required", nil)
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), ownerID, bookingID, *q.Approved); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requesterID, bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings made by the actor
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings of the actor's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

func (h *BookingHandler) list(c *gin.Context, fetch func(ctx context.Context, userID int64, state booking.State, page queries.Page) ([]*queries.BookingView, error)) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		if reqdto.FailedOn(err, "State") {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+q.State, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}
	page, err := q.ToPage()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := fetch(c.Request.Context(), userID, q.ToState(), page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
