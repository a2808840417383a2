package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pacificreef/dto"
	"pacificreef/response"
	"pacificreef/services"
)

type ReservationController struct {
	reservationService *services.ReservationService
}

func NewReservationController(reservationService *services.ReservationService) *ReservationController {
	return &ReservationController{reservationService: reservationService}
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	page, limit := getPaginationParams(c)

	reservations, total, err := rc.reservationService.List(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	results := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		results = append(results, dto.NewReservationResponse(&reservations[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

func (rc *ReservationController) GetReservationDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid reservation id")
		return
	}

	reservation, err := rc.reservationService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reservation, err := rc.reservationService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid reservation id")
		return 0, false
	}
	return uint(id), true
}

func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := rc.parseID(c)
	if !ok {
		return
	}

	reservation, err := rc.reservationService.Confirm(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) CheckInReservation(c *gin.Context) {
	id, ok := rc.parseID(c)
	if !ok {
		return
	}

	reservation, err := rc.reservationService.CheckIn(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) CheckOutReservation(c *gin.Context) {
	id, ok := rc.parseID(c)
	if !ok {
		return
	}

	reservation, err := rc.reservationService.CheckOut(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := rc.parseID(c)
	if !ok {
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reservation, err := rc.reservationService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewReservationResponse(reservation))
}

// GetReservationHistory lists the authenticated user's reservations.
func (rc *ReservationController) GetReservationHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	reservations, err := rc.reservationService.ListByUser(c.Request.Context(), userID.(uint))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	results := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		results = append(results, dto.NewReservationResponse(&reservations[i]))
	}

	response.Success(c, results)
}
