package services

import (
	"context"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"pacificreef/errors"
	"pacificreef/models"
	"pacificreef/services/logger"
)

const maxNameSuggestions = 5

// UserService is the read-oriented lookup surface over users that the
// reservation and room logic depends on. All queries return snapshots.
type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

func (s *UserService) findOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "user not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.findOne(ctx, "id = ?", id)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, "username = ?", username)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, "email = ?", email)
}

func (s *UserService) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "failed to check user existence", err)
	}
	return count > 0, nil
}

func (s *UserService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, "username = ?", username)
}

func (s *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "email = ?", email)
}

func (s *UserService) findMany(ctx context.Context, conds ...interface{}) ([]models.User, error) {
	var users []models.User
	q := s.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list users", err)
	}
	return users, nil
}

func (s *UserService) FindByRole(ctx context.Context, role int) ([]models.User, error) {
	return s.findMany(ctx, "role = ?", role)
}

func (s *UserService) FindByStatus(ctx context.Context, status int) ([]models.User, error) {
	return s.findMany(ctx, "status = ?", status)
}

func (s *UserService) FindByRoleAndStatus(ctx context.Context, role, status int) ([]models.User, error) {
	return s.findMany(ctx, "role = ? AND status = ?", role, status)
}

// SearchByName matches the substring against first or last name.
func (s *UserService) SearchByName(ctx context.Context, name string) ([]models.User, error) {
	pattern := "%" + name + "%"
	return s.findMany(ctx, "first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
}

// FindCreatedBetween returns users created inside the range.
func (s *UserService) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]models.User, error) {
	return s.findMany(ctx, "created_at BETWEEN ? AND ?", start, end)
}

// FindInactiveSince returns users who never logged in or whose last
// login predates the cutoff.
func (s *UserService) FindInactiveSince(ctx context.Context, since time.Time) ([]models.User, error) {
	return s.findMany(ctx, "last_login IS NULL OR last_login < ?", since)
}

func (s *UserService) count(ctx context.Context, query string, arg interface{}) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to count users", err)
	}
	return count, nil
}

func (s *UserService) CountByRole(ctx context.Context, role int) (int64, error) {
	return s.count(ctx, "role = ?", role)
}

func (s *UserService) CountByStatus(ctx context.Context, status int) (int64, error) {
	return s.count(ctx, "status = ?", status)
}

// SuggestNames offers close matches for a name query that returned few
// or no results, ranked by bag-of-words similarity and filtered by edit
// distance on the accent-stripped forms.
func (s *UserService) SuggestNames(ctx context.Context, query string) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Distinct("first_name").
		Where("first_name <> ''").
		Pluck("first_name", &names).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load names", err)
	}

	var lastNames []string
	err = s.db.WithContext(ctx).Model(&models.User{}).
		Distinct("last_name").
		Where("last_name <> ''").
		Pluck("last_name", &lastNames).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load names", err)
	}
	names = append(names, lastNames...)

	if len(names) == 0 {
		return nil, nil
	}

	return rankNameSuggestions(query, names), nil
}

func normalizeName(s string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
}

func rankNameSuggestions(query string, names []string) []string {
	normalized := make([]string, 0, len(names))
	original := make(map[string]string, len(names))
	for _, n := range names {
		key := normalizeName(n)
		if _, seen := original[key]; seen {
			continue
		}
		normalized = append(normalized, key)
		original[key] = n
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	target := normalizeName(query)

	var suggestions []string
	for _, match := range cm.ClosestN(target, maxNameSuggestions) {
		if match == "" {
			continue
		}
		distance := levenshtein.DistanceForStrings([]rune(target), []rune(match), levenshtein.DefaultOptions)
		if distance <= 3 {
			suggestions = append(suggestions, original[match])
		}
	}
	return suggestions
}
