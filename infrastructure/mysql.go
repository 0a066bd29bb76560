package infrastructure

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"job-board/domain"
)

func NewMySQLConnection() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logrus.Fatal("DB_DSN is not set in environment")
	}

	// TranslateError turns the driver's duplicate-key error into
	// gorm.ErrDuplicatedKey so handlers can map it to a conflict.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// Auto migrate schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Job{}); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	logrus.Info("✅ Connected to MySQL and migrated schema")
	return db
}

// MySQLUserRepository implements domain.UserRepository on a GORM connection.
type MySQLUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *MySQLUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// MySQLJobRepository implements domain.JobRepository on a GORM connection.
type MySQLJobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *MySQLJobRepository {
	return &MySQLJobRepository{db: db}
}

func (r *MySQLJobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *MySQLJobRepository) FindAllWithPoster(ctx context.Context) ([]domain.Job, error) {
	jobs := []domain.Job{}
	if err := r.db.WithContext(ctx).Preload("Poster").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *MySQLJobRepository) FindByPoster(ctx context.Context, posterID int) ([]domain.Job, error) {
	jobs := []domain.Job{}
	if err := r.db.WithContext(ctx).Where("poster_id = ?", posterID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
