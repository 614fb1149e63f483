package domain

// Role represents a user role in the portal
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMEO     Role = "meo"
	RoleStaff   Role = "staff"
	RoleAlumni  Role = "alumni"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleDonor   Role = "donor"
	RoleMentor  Role = "mentor"
)

// DefaultRole is assigned when registration omits a role
const DefaultRole = RoleStudent

// Roles lists every valid role
var Roles = []Role{
	RoleAdmin,
	RoleMEO,
	RoleStaff,
	RoleAlumni,
	RoleStudent,
	RoleParent,
	RoleDonor,
	RoleMentor,
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Payment statuses for donations
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// School need statuses
const (
	NeedActive    = "active"
	NeedFulfilled = "fulfilled"
	NeedClosed    = "closed"
)

// Defaults applied at create time
const (
	DefaultDistrict         = "Konaseema"
	DefaultForumCategory    = "general"
	DefaultBulletinCategory = "announcement"
)

// AdminStats is the aggregate returned to admin and MEO users
type AdminStats struct {
	TotalSchools        int64   `json:"total_schools"`
	TotalUsers          int64   `json:"total_users"`
	TotalAlumni         int64   `json:"total_alumni"`
	TotalDonations      int64   `json:"total_donations"`
	TotalDonationAmount float64 `json:"total_donation_amount"`
	PendingApprovals    int64   `json:"pending_approvals"`
}
