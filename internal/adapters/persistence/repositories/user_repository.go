package repositories

import (
	"context"

	"schoolconnect/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	*Repository[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		Repository: NewRepository[models.User](db),
	}
}

// GetByEmail gets a user by email (exact, case-sensitive)
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ExistsByEmail checks if email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// NewRepositories wires every repository over one database handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Schools:     NewRepository[models.School](db),
		Mandals:     NewRepository[models.Mandal](db),
		Alumni:      NewRepository[models.AlumniProfile](db),
		Events:      NewRepository[models.Event](db),
		Posts:       NewRepository[models.ForumPost](db),
		Bulletins:   NewRepository[models.Bulletin](db),
		News:        NewRepository[models.NewsItem](db),
		Galleries:   NewRepository[models.Gallery](db),
		Donations:   NewRepository[models.Donation](db),
		SchoolNeeds: NewRepository[models.SchoolNeed](db),
	}
}
