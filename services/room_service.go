package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pacificreef/dto"
	"pacificreef/errors"
	"pacificreef/models"
	"pacificreef/services/logger"
	"pacificreef/validator"
)

const (
	roomListCacheKey     = "rooms:all"
	roomListCacheTTL     = 10 * time.Minute
	availabilityCacheKey = "rooms:availability"
)

// RoomService owns room creation, direct status changes and the cached
// room listing.
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// Create validates and persists a new room. Occupancy and bed metadata
// default from the type when not supplied.
func (s *RoomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	roomType := models.RoomType(req.Type)

	room := models.NewRoom(req.Number, roomType, req.Price)
	room.Description = req.Description
	room.HasBalcony = req.HasBalcony
	room.HasSeaView = req.HasSeaView
	room.HasMinibar = req.HasMinibar
	room.HasSafe = req.HasSafe
	room.FloorNumber = req.FloorNumber
	room.Amenities = req.Amenities
	if req.HasWifi != nil {
		room.HasWifi = *req.HasWifi
	}
	if req.HasAirConditioning != nil {
		room.HasAirConditioning = *req.HasAirConditioning
	}
	if req.MaxOccupancy > 0 {
		room.MaxOccupancy = req.MaxOccupancy
	}
	if req.BedCount > 0 {
		room.BedCount = req.BedCount
	}
	if req.BedType != "" {
		room.BedType = req.BedType
	}

	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).Where("number = ?", room.Number).Count(&count).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to check room number", err)
	}
	if count > 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "room number already in use", errors.ErrRoomNumberTaken)
	}

	if err := s.db.WithContext(ctx).Create(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create room", err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("room %s created", room.Number)

	return room, nil
}

// GetByID loads a single room.
func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "room not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}
	return &room, nil
}

// List returns a page of rooms. The full list is cached in Redis and
// sliced in memory; writes invalidate the cache.
func (s *RoomService) List(ctx context.Context, page, limit int) ([]models.Room, int, error) {
	var rooms []models.Room

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, roomListCacheKey, &rooms); err != nil {
			s.logger.Error("failed to read room cache: %v", err)
		}
	}

	if len(rooms) == 0 {
		if err := s.db.WithContext(ctx).Order("number ASC").Find(&rooms).Error; err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms", err)
		}
		if s.rdb != nil && len(rooms) > 0 {
			if err := SetToRedis(ctx, s.rdb, roomListCacheKey, rooms, roomListCacheTTL); err != nil {
				s.logger.Error("failed to write room cache: %v", err)
			}
		}
	}

	total := len(rooms)
	start := page * limit
	if start >= total {
		return []models.Room{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}

	return rooms[start:end], total, nil
}

// ChangeStatus overwrites a room's status. Any room can be marked into
// any status directly; reservation transitions are the only guarded
// path.
func (s *RoomService) ChangeStatus(ctx context.Context, id uint, status models.RoomStatus) (*models.Room, error) {
	if !status.IsValid() {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "invalid room status", nil)
	}

	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.RoomStatusOccupied:
		room.MarkAsOccupied()
	case models.RoomStatusAvailable:
		room.MarkAsAvailable()
	case models.RoomStatusMaintenance:
		room.MarkAsUnderMaintenance()
	default:
		room.Status = status
		room.UpdatedAt = time.Now()
	}

	if err := s.db.WithContext(ctx).Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room status", err)
	}

	s.invalidateCache(ctx)

	return room, nil
}

// RefreshAvailabilitySnapshot recounts rooms per status and stores the
// snapshot in Redis. Run nightly by the cron job.
func (s *RoomService) RefreshAvailabilitySnapshot(ctx context.Context) error {
	type statusCount struct {
		Status models.RoomStatus
		Count  int64
	}

	var counts []statusCount
	err := s.db.WithContext(ctx).Model(&models.Room{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms by status", err)
	}

	snapshot := make(map[models.RoomStatus]int64, len(counts))
	for _, c := range counts {
		snapshot[c.Status] = c.Count
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, availabilityCacheKey, snapshot, 24*time.Hour); err != nil {
			return err
		}
	}

	s.logger.Info("availability snapshot refreshed: %d available, %d occupied",
		snapshot[models.RoomStatusAvailable], snapshot[models.RoomStatusOccupied])
	return nil
}

func (s *RoomService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, roomListCacheKey); err != nil {
		s.logger.Error("failed to invalidate room cache: %v", err)
	}
}
