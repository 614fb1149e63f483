package models

import (
	"time"

	"schoolconnect/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identifier and creation time shared by every record
type Base struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns an ID and creation time when the caller did not
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	// truncated to the millisecond precision of MySQL datetime(3) columns
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	return nil
}

// ============================================================
// Identity
// ============================================================

// User represents users table
type User struct {
	Base
	Email          string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name           string      `gorm:"size:255;not null" json:"name"`
	Phone          *string     `gorm:"size:32" json:"phone"`
	Role           domain.Role `gorm:"size:20;index;not null" json:"role"`
	SchoolID       *string     `gorm:"size:64;index" json:"school_id"`
	MandalID       *string     `gorm:"size:64;index" json:"mandal_id"`
	BatchYear      *int        `json:"batch_year"`
	Approved       bool        `gorm:"default:false" json:"approved"`
	HashedPassword string      `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// ============================================================
// Directory
// ============================================================

// School represents schools table
type School struct {
	Base
	Name         string   `gorm:"size:255;not null;index" json:"name"`
	MandalID     string   `gorm:"size:64;not null;index" json:"mandal_id"`
	HMNote       *string  `gorm:"type:text" json:"hm_note"`
	Facilities   []string `gorm:"type:text;serializer:json" json:"facilities"`
	ContactEmail *string  `gorm:"size:255" json:"contact_email"`
	ContactPhone *string  `gorm:"size:32" json:"contact_phone"`
	Address      *string  `gorm:"type:text" json:"address"`
}

func (School) TableName() string {
	return "schools"
}

// Mandal represents mandals table
type Mandal struct {
	Base
	Name     string `gorm:"size:255;not null" json:"name"`
	District string `gorm:"size:255;not null" json:"district"`
	MEOCount int    `gorm:"default:0" json:"meo_count"`
}

func (Mandal) TableName() string {
	return "mandals"
}

// AlumniProfile represents alumni table
type AlumniProfile struct {
	Base
	UserID            string   `gorm:"size:64;not null;index" json:"user_id"`
	SchoolID          string   `gorm:"size:64;not null;index" json:"school_id"`
	BatchYear         int      `gorm:"not null;index" json:"batch_year"`
	CurrentProfession *string  `gorm:"size:255" json:"current_profession"`
	Company           *string  `gorm:"size:255" json:"company"`
	Achievements      []string `gorm:"type:text;serializer:json" json:"achievements"`
	WillingToMentor   bool     `gorm:"default:false" json:"willing_to_mentor"`
}

func (AlumniProfile) TableName() string {
	return "alumni"
}

// ============================================================
// Community
// ============================================================

// Event represents events table
type Event struct {
	Base
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	SchoolID    *string   `gorm:"size:64;index" json:"school_id"`
	EventDate   time.Time `gorm:"not null;index" json:"event_date"`
	Location    *string   `gorm:"size:255" json:"location"`
	RSVPCount   int       `gorm:"default:0" json:"rsvp_count"`
	CreatedBy   string    `gorm:"size:64;not null" json:"created_by"`
}

func (Event) TableName() string {
	return "events"
}

// ForumPost represents forum_posts table
type ForumPost struct {
	Base
	Title        string  `gorm:"size:255;not null" json:"title"`
	Content      string  `gorm:"type:text;not null" json:"content"`
	AuthorID     string  `gorm:"size:64;not null" json:"author_id"`
	SchoolID     *string `gorm:"size:64;index" json:"school_id"`
	Category     string  `gorm:"size:64;not null;index" json:"category"`
	RepliesCount int     `gorm:"default:0" json:"replies_count"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}

// Bulletin represents bulletins table
type Bulletin struct {
	Base
	Title     string  `gorm:"size:255;not null" json:"title"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	SchoolID  *string `gorm:"size:64;index" json:"school_id"`
	Category  string  `gorm:"size:64;not null" json:"category"`
	CreatedBy string  `gorm:"size:64;not null" json:"created_by"`
}

func (Bulletin) TableName() string {
	return "bulletins"
}

// NewsItem represents news table
type NewsItem struct {
	Base
	Title     string  `gorm:"size:255;not null" json:"title"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	SchoolID  *string `gorm:"size:64;index" json:"school_id"`
	ImageURL  *string `gorm:"size:1024" json:"image_url"`
	CreatedBy string  `gorm:"size:64;not null" json:"created_by"`
}

func (NewsItem) TableName() string {
	return "news"
}

// Gallery represents galleries table
type Gallery struct {
	Base
	Title     string   `gorm:"size:255;not null" json:"title"`
	SchoolID  string   `gorm:"size:64;not null;index" json:"school_id"`
	Images    []string `gorm:"type:text;serializer:json" json:"images"`
	CreatedBy string   `gorm:"size:64;not null" json:"created_by"`
}

func (Gallery) TableName() string {
	return "galleries"
}

// ============================================================
// Funding
// ============================================================

// Donation represents donations table
type Donation struct {
	Base
	DonorName     string  `gorm:"size:255;not null" json:"donor_name"`
	DonorEmail    string  `gorm:"size:255;not null" json:"donor_email"`
	Amount        float64 `gorm:"not null" json:"amount"`
	SchoolID      *string `gorm:"size:64;index" json:"school_id"`
	Purpose       *string `gorm:"size:255" json:"purpose"`
	PaymentStatus string  `gorm:"size:20;not null;index" json:"payment_status"`
	TransactionID *string `gorm:"size:64" json:"transaction_id"`
}

func (Donation) TableName() string {
	return "donations"
}

// SchoolNeed represents school_needs table
type SchoolNeed struct {
	Base
	SchoolID     string   `gorm:"size:64;not null;index" json:"school_id"`
	Title        string   `gorm:"size:255;not null" json:"title"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	Category     string   `gorm:"size:64;not null" json:"category"`
	TargetAmount *float64 `json:"target_amount"`
	RaisedAmount float64  `gorm:"default:0" json:"raised_amount"`
	Status       string   `gorm:"size:20;not null;index" json:"status"`
}

func (SchoolNeed) TableName() string {
	return "school_needs"
}

// AutoMigrate creates or updates every portal table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&School{},
		&Mandal{},
		&AlumniProfile{},
		&Event{},
		&ForumPost{},
		&Bulletin{},
		&NewsItem{},
		&Gallery{},
		&Donation{},
		&SchoolNeed{},
	)
}
