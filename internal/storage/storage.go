package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Storage is the persistence boundary of the tracker. Everything behind it
// is a plain request/response call against Postgres or Redis; lookups that
// find nothing return (nil, nil) and the caller decides what absence means.
type Storage interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)

	ListDepartments() ([]models.Department, error)
	GetDepartmentByID(id uint) (*models.Department, error)
	CreateDepartment(dept *models.Department) error
	EnsureDepartment(name string) (*models.Department, error)

	CreateComplaint(c *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	ListComplaints(scope policy.Scope) ([]models.Complaint, error)
	UpdateComplaintStatus(id uint, status models.Status, remark string) error
	DeleteComplaint(id uint) error

	ComplaintStatusCounts() (map[models.Status]int64, error)
	ComplaintDepartmentCounts() (map[string]int64, error)

	PublishComplaintEvent(ev models.ComplaintEvent) error
}

// departmentCacheTTL bounds staleness of the Redis copy of the registry.
const departmentCacheTTL = 10 * time.Minute

const departmentCacheKey = "departments:all"

// eventChannel is the Redis Pub/Sub channel complaint events go through.
const eventChannel = "complaints:events"

// Service implements Storage over GORM (Postgres) and go-redis. The Redis
// client may be nil (seeder, tests); caching and event publishing are then
// skipped.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
	Log   *zap.Logger
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
		Log:   log,
	}
}

// Migrate creates or updates the schema for all tracker models.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Complaint{},
	)
}

func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListDepartments returns the full registry, served from the Redis cache
// when possible. The registry is static reference data, so a short TTL is
// plenty.
func (s *Service) ListDepartments() ([]models.Department, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(s.Ctx, departmentCacheKey).Result()
		if err == nil {
			var depts []models.Department
			if jsonErr := json.Unmarshal([]byte(cached), &depts); jsonErr == nil {
				return depts, nil
			}
			// Unreadable cache entry, fall through to the database.
		}
	}

	var depts []models.Department
	if err := s.DB.Order("id asc").Find(&depts).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(depts); err == nil {
			if err := s.Redis.Set(s.Ctx, departmentCacheKey, data, departmentCacheTTL).Err(); err != nil {
				s.Log.Warn("failed to cache departments", zap.Error(err))
			}
		}
	}
	return depts, nil
}

func (s *Service) GetDepartmentByID(id uint) (*models.Department, error) {
	var dept models.Department
	err := s.DB.First(&dept, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (s *Service) CreateDepartment(dept *models.Department) error {
	if err := s.DB.Create(dept).Error; err != nil {
		return err
	}
	s.invalidateDepartmentCache()
	return nil
}

// EnsureDepartment inserts the department when no row with that name exists
// yet and returns the row either way. Used by the seeder.
func (s *Service) EnsureDepartment(name string) (*models.Department, error) {
	var dept models.Department
	result := s.DB.Where("name = ?", name).FirstOrCreate(&dept, models.Department{Name: name})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		s.Log.Info("seeded department", zap.String("name", name), zap.Uint("id", dept.ID))
		s.invalidateDepartmentCache()
	}
	return &dept, nil
}

func (s *Service) invalidateDepartmentCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(s.Ctx, departmentCacheKey).Err(); err != nil {
		s.Log.Warn("failed to invalidate department cache", zap.Error(err))
	}
}
