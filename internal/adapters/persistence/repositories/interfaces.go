package repositories

import (
	"context"

	"schoolconnect/internal/adapters/persistence/models"
)

// ResourceRepository defines the generic CRUD contract over a table
type ResourceRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, q Query) ([]T, int64, error)
	Update(ctx context.Context, entity *T) error
	Count(ctx context.Context, filters Filters) (int64, error)
	Sum(ctx context.Context, column string, filters Filters) (float64, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	ResourceRepository[models.User]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Repositories groups every repository the services need
type Repositories struct {
	Users       UserRepository
	Schools     ResourceRepository[models.School]
	Mandals     ResourceRepository[models.Mandal]
	Alumni      ResourceRepository[models.AlumniProfile]
	Events      ResourceRepository[models.Event]
	Posts       ResourceRepository[models.ForumPost]
	Bulletins   ResourceRepository[models.Bulletin]
	News        ResourceRepository[models.NewsItem]
	Galleries   ResourceRepository[models.Gallery]
	Donations   ResourceRepository[models.Donation]
	SchoolNeeds ResourceRepository[models.SchoolNeed]
}
