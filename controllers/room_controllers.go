package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pacificreef/dto"
	"pacificreef/models"
	"pacificreef/response"
	"pacificreef/services"
)

type RoomController struct {
	roomService *services.RoomService
}

func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

func (rc *RoomController) GetAllRooms(c *gin.Context) {
	page, limit := getPaginationParams(c)

	rooms, total, err := rc.roomService.List(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		roomResponses = append(roomResponses, dto.NewRoomResponse(&rooms[i]))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	room, err := rc.roomService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewRoomResponse(room))
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := rc.roomService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewRoomResponse(room))
}

func (rc *RoomController) ChangeRoomStatus(c *gin.Context) {
	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := rc.roomService.ChangeStatus(c.Request.Context(), req.ID, models.RoomStatus(req.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.NewRoomResponse(room))
}
