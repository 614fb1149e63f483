package config

import (
	"context"
	"fmt"
	"strings"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db     *gorm.DB
	hasher *password.Hasher
	log    *zap.Logger
}

// SeedOptions controls optional seed data
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, hasher *password.Hasher, log *zap.Logger) *Seeder {
	return &Seeder{db: db, hasher: hasher, log: log}
}

// Run executes all seeders. Each seeder is skipped when its table already has rows.
func (s *Seeder) Run(ctx context.Context, opts SeedOptions) error {
	s.log.Info("running database seeders")

	if err := s.seedMandals(ctx); err != nil {
		return fmt.Errorf("seed mandals: %w", err)
	}
	if err := s.seedSchools(ctx); err != nil {
		return fmt.Errorf("seed schools: %w", err)
	}
	if opts.AdminEmail != "" {
		if err := s.seedAdminUser(ctx, opts); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	s.log.Info("database seeding completed")
	return nil
}

func (s *Seeder) seedMandals(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Mandal{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("mandals already exist, skipping", zap.Int64("count", count))
		return nil
	}

	mandals := sampleMandals()
	if err := s.db.WithContext(ctx).Create(&mandals).Error; err != nil {
		return err
	}
	s.log.Info("inserted mandals", zap.Int("count", len(mandals)))
	return nil
}

func (s *Seeder) seedSchools(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.School{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("schools already exist, skipping", zap.Int64("count", count))
		return nil
	}

	schools := sampleSchools()
	if err := s.db.WithContext(ctx).Create(&schools).Error; err != nil {
		return err
	}
	s.log.Info("inserted schools", zap.Int("count", len(schools)))
	return nil
}

// seedAdminUser creates an approved admin account unless the email is taken
func (s *Seeder) seedAdminUser(ctx context.Context, opts SeedOptions) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", opts.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("admin user already exists, skipping", zap.String("email", opts.AdminEmail))
		return nil
	}

	hashed, err := s.hasher.Hash(opts.AdminPassword)
	if err != nil {
		return err
	}

	name := opts.AdminName
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Email:          opts.AdminEmail,
		Name:           name,
		Role:           domain.RoleAdmin,
		Approved:       true,
		HashedPassword: hashed,
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}

	s.log.Info("admin user created", zap.String("email", admin.Email), zap.String("id", admin.ID))
	return nil
}

func str(s string) *string { return &s }

func sampleMandals() []models.Mandal {
	names := []string{"Amalapuram", "Razole", "Mummidivaram", "Ravulapalem", "Sakhinetipalli"}

	mandals := make([]models.Mandal, 0, len(names))
	for _, name := range names {
		m := models.Mandal{Name: name, District: domain.DefaultDistrict, MEOCount: 2}
		m.ID = mandalID(name)
		mandals = append(mandals, m)
	}
	return mandals
}

func sampleSchools() []models.School {
	schools := []models.School{
		{
			Name:         "ZPHS Amalapuram",
			MandalID:     mandalID("Amalapuram"),
			HMNote:       str("Welcome to ZPHS Amalapuram! We strive for excellence in education and holistic development of our students."),
			Facilities:   []string{"Library", "Computer Lab", "Science Lab", "Playground", "Sports Equipment"},
			ContactEmail: str("zphs.amalapuram@ap.gov.in"),
			ContactPhone: str("08856-222333"),
			Address:      str("Main Road, Amalapuram, Konaseema District"),
		},
		{
			Name:         "ZPHS Razole",
			MandalID:     mandalID("Razole"),
			HMNote:       str("ZPHS Razole is committed to providing quality education to rural students."),
			Facilities:   []string{"Library", "Smart Classroom", "Sports Ground", "Laboratory"},
			ContactEmail: str("zphs.razole@ap.gov.in"),
			ContactPhone: str("08852-245678"),
			Address:      str("Gandhi Road, Razole, Konaseema District"),
		},
		{
			Name:         "ZPHS Mummidivaram",
			MandalID:     mandalID("Mummidivaram"),
			HMNote:       str("Empowering students through education and innovation."),
			Facilities:   []string{"Computer Lab", "Library", "Playground", "Drinking Water"},
			ContactEmail: str("zphs.mummidivaram@ap.gov.in"),
			ContactPhone: str("08853-234567"),
			Address:      str("School Street, Mummidivaram, Konaseema District"),
		},
		{
			Name:         "ZPHS Ravulapalem",
			MandalID:     mandalID("Ravulapalem"),
			HMNote:       str("Building futures through quality education."),
			Facilities:   []string{"Science Lab", "Library", "Sports Equipment", "Clean Toilets"},
			ContactEmail: str("zphs.ravulapalem@ap.gov.in"),
			ContactPhone: str("08854-223344"),
			Address:      str("Market Road, Ravulapalem, Konaseema District"),
		},
		{
			Name:         "ZPHS Sakhinetipalli",
			MandalID:     mandalID("Sakhinetipalli"),
			HMNote:       str("Dedicated to excellence in education and character building."),
			Facilities:   []string{"Library", "Computer Lab", "Playground", "Mid-day Meal"},
			ContactEmail: str("zphs.sakhinetipalli@ap.gov.in"),
			ContactPhone: str("08855-234567"),
			Address:      str("NH-16, Sakhinetipalli, Konaseema District"),
		},
	}

	for i := range schools {
		schools[i].ID = fmt.Sprintf("school-%03d", i+1)
	}
	return schools
}

func mandalID(name string) string {
	return "mandal-" + strings.ToLower(name)
}
