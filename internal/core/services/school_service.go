package services

import (
	"context"
	"errors"
	"strings"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/validation"
)

// SchoolService manages schools and mandals
type SchoolService struct {
	schoolRepo repositories.ResourceRepository[models.School]
	mandalRepo repositories.ResourceRepository[models.Mandal]
}

// NewSchoolService creates a new school service
func NewSchoolService(
	schoolRepo repositories.ResourceRepository[models.School],
	mandalRepo repositories.ResourceRepository[models.Mandal],
) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		mandalRepo: mandalRepo,
	}
}

// SchoolInput is the full set of writable school fields
type SchoolInput struct {
	Name         string   `json:"name" validate:"required"`
	MandalID     string   `json:"mandal_id" validate:"required"`
	HMNote       *string  `json:"hm_note"`
	Facilities   []string `json:"facilities"`
	ContactEmail *string  `json:"contact_email"`
	ContactPhone *string  `json:"contact_phone"`
	Address      *string  `json:"address"`
}

// SchoolFilter narrows a school listing
type SchoolFilter struct {
	MandalID string
	Search   string
}

// Create creates a new school
func (s *SchoolService) Create(ctx context.Context, input *SchoolInput) (*models.School, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	school := &models.School{}
	input.apply(school)

	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

// Get gets a school by ID
func (s *SchoolService) Get(ctx context.Context, id string) (*models.School, error) {
	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSchoolNotFound
		}
		return nil, err
	}
	return school, nil
}

// List lists schools by mandal and case-insensitive name search
func (s *SchoolService) List(ctx context.Context, filter SchoolFilter, page pagination.Params) ([]models.School, int64, error) {
	q := query(filterOf(map[string]string{"mandal_id": filter.MandalID}), oldestFirst, page)
	if term := strings.TrimSpace(filter.Search); term != "" {
		q.Search = &repositories.Search{Column: "name", Term: term}
	}
	return s.schoolRepo.List(ctx, q)
}

// Replace overwrites every writable field of a school, keeping ID and creation time
func (s *SchoolService) Replace(ctx context.Context, id string, input *SchoolInput) (*models.School, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	school := &models.School{Base: existing.Base}
	input.apply(school)

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

// ListMandals lists every mandal by name
func (s *SchoolService) ListMandals(ctx context.Context, page pagination.Params) ([]models.Mandal, int64, error) {
	return s.mandalRepo.List(ctx, query(nil, alphabetical, page))
}

func (in *SchoolInput) apply(school *models.School) {
	school.Name = in.Name
	school.MandalID = in.MandalID
	school.HMNote = in.HMNote
	school.Facilities = orEmpty(in.Facilities)
	school.ContactEmail = in.ContactEmail
	school.ContactPhone = in.ContactPhone
	school.Address = in.Address
}
