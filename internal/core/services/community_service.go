package services

import (
	"context"
	"strings"
	"time"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/validation"
)

// CommunityService manages alumni profiles, events, forum posts, bulletins, news and galleries
type CommunityService struct {
	alumniRepo   repositories.ResourceRepository[models.AlumniProfile]
	eventRepo    repositories.ResourceRepository[models.Event]
	postRepo     repositories.ResourceRepository[models.ForumPost]
	bulletinRepo repositories.ResourceRepository[models.Bulletin]
	newsRepo     repositories.ResourceRepository[models.NewsItem]
	galleryRepo  repositories.ResourceRepository[models.Gallery]
}

// NewCommunityService creates a new community service
func NewCommunityService(repos *repositories.Repositories) *CommunityService {
	return &CommunityService{
		alumniRepo:   repos.Alumni,
		eventRepo:    repos.Events,
		postRepo:     repos.Posts,
		bulletinRepo: repos.Bulletins,
		newsRepo:     repos.News,
		galleryRepo:  repos.Galleries,
	}
}

// ============================================================
// Alumni
// ============================================================

// AlumniInput represents an alumni profile submission
type AlumniInput struct {
	SchoolID          string   `json:"school_id" validate:"required"`
	BatchYear         int      `json:"batch_year" validate:"required,gte=1900"`
	CurrentProfession *string  `json:"current_profession"`
	Company           *string  `json:"company"`
	Achievements      []string `json:"achievements"`
	WillingToMentor   bool     `json:"willing_to_mentor"`
}

// AlumniFilter narrows an alumni listing; zero values are ignored
type AlumniFilter struct {
	SchoolID  string
	BatchYear int
}

// CreateAlumni creates a profile owned by userID
func (s *CommunityService) CreateAlumni(ctx context.Context, userID string, input *AlumniInput) (*models.AlumniProfile, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	profile := &models.AlumniProfile{
		UserID:            userID,
		SchoolID:          input.SchoolID,
		BatchYear:         input.BatchYear,
		CurrentProfession: input.CurrentProfession,
		Company:           input.Company,
		Achievements:      orEmpty(input.Achievements),
		WillingToMentor:   input.WillingToMentor,
	}
	if err := s.alumniRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListAlumni lists alumni by school and batch year
func (s *CommunityService) ListAlumni(ctx context.Context, filter AlumniFilter, page pagination.Params) ([]models.AlumniProfile, int64, error) {
	filters := filterOf(map[string]string{"school_id": filter.SchoolID})
	if filter.BatchYear != 0 {
		filters["batch_year"] = filter.BatchYear
	}
	return s.alumniRepo.List(ctx, query(filters, oldestFirst, page))
}

// ============================================================
// Events
// ============================================================

// EventInput represents an event submission
type EventInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	SchoolID    *string `json:"school_id"`
	EventDate   string  `json:"event_date" validate:"required"`
	Location    *string `json:"location"`
}

// eventDateLayouts are tried in order; zone-less values are read as UTC
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// CreateEvent creates an event organised by userID
func (s *CommunityService) CreateEvent(ctx context.Context, userID string, input *EventInput) (*models.Event, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	eventDate, err := parseEventDate(input.EventDate)
	if err != nil {
		return nil, validation.NewError("event_date", "event_date must be an ISO 8601 date or datetime")
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		SchoolID:    input.SchoolID,
		EventDate:   eventDate,
		Location:    input.Location,
		CreatedBy:   userID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents lists events by school, latest event date first
func (s *CommunityService) ListEvents(ctx context.Context, schoolID string, page pagination.Params) ([]models.Event, int64, error) {
	return s.eventRepo.List(ctx, query(filterOf(map[string]string{"school_id": schoolID}), byEventDate, page))
}

// ============================================================
// Forum
// ============================================================

// PostInput represents a forum post submission
type PostInput struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	SchoolID *string `json:"school_id"`
	Category string  `json:"category"`
}

// PostFilter narrows a forum listing
type PostFilter struct {
	SchoolID string
	Category string
}

// CreatePost creates a forum post authored by userID
func (s *CommunityService) CreatePost(ctx context.Context, userID string, input *PostInput) (*models.ForumPost, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	post := &models.ForumPost{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: userID,
		SchoolID: input.SchoolID,
		Category: withDefault(input.Category, domain.DefaultForumCategory),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts lists forum posts, newest first
func (s *CommunityService) ListPosts(ctx context.Context, filter PostFilter, page pagination.Params) ([]models.ForumPost, int64, error) {
	filters := filterOf(map[string]string{"school_id": filter.SchoolID, "category": filter.Category})
	return s.postRepo.List(ctx, query(filters, newestFirst, page))
}

// ============================================================
// Bulletins
// ============================================================

// BulletinInput represents a notice board submission
type BulletinInput struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	SchoolID *string `json:"school_id"`
	Category string  `json:"category"`
}

// CreateBulletin creates a bulletin posted by userID
func (s *CommunityService) CreateBulletin(ctx context.Context, userID string, input *BulletinInput) (*models.Bulletin, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	bulletin := &models.Bulletin{
		Title:     input.Title,
		Content:   input.Content,
		SchoolID:  input.SchoolID,
		Category:  withDefault(input.Category, domain.DefaultBulletinCategory),
		CreatedBy: userID,
	}
	if err := s.bulletinRepo.Create(ctx, bulletin); err != nil {
		return nil, err
	}
	return bulletin, nil
}

// ListBulletins lists bulletins by school, newest first
func (s *CommunityService) ListBulletins(ctx context.Context, schoolID string, page pagination.Params) ([]models.Bulletin, int64, error) {
	return s.bulletinRepo.List(ctx, query(filterOf(map[string]string{"school_id": schoolID}), newestFirst, page))
}

// ============================================================
// News
// ============================================================

// NewsInput represents a news submission
type NewsInput struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	SchoolID *string `json:"school_id"`
	ImageURL *string `json:"image_url"`
}

// CreateNews creates a news item posted by userID
func (s *CommunityService) CreateNews(ctx context.Context, userID string, input *NewsInput) (*models.NewsItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	item := &models.NewsItem{
		Title:     input.Title,
		Content:   input.Content,
		SchoolID:  input.SchoolID,
		ImageURL:  input.ImageURL,
		CreatedBy: userID,
	}
	if err := s.newsRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListNews lists news by school, newest first
func (s *CommunityService) ListNews(ctx context.Context, schoolID string, page pagination.Params) ([]models.NewsItem, int64, error) {
	return s.newsRepo.List(ctx, query(filterOf(map[string]string{"school_id": schoolID}), newestFirst, page))
}

// ============================================================
// Galleries
// ============================================================

// GalleryInput represents a photo gallery submission
type GalleryInput struct {
	Title    string   `json:"title" validate:"required"`
	SchoolID string   `json:"school_id" validate:"required"`
	Images   []string `json:"images"`
}

// CreateGallery creates a gallery uploaded by userID
func (s *CommunityService) CreateGallery(ctx context.Context, userID string, input *GalleryInput) (*models.Gallery, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	gallery := &models.Gallery{
		Title:     input.Title,
		SchoolID:  input.SchoolID,
		Images:    orEmpty(input.Images),
		CreatedBy: userID,
	}
	if err := s.galleryRepo.Create(ctx, gallery); err != nil {
		return nil, err
	}
	return gallery, nil
}

// ListGalleries lists galleries by school, newest first
func (s *CommunityService) ListGalleries(ctx context.Context, schoolID string, page pagination.Params) ([]models.Gallery, int64, error) {
	return s.galleryRepo.List(ctx, query(filterOf(map[string]string{"school_id": schoolID}), newestFirst, page))
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
