// Package policy decides which roles may perform which actions.
//
// The table is flat: administrative actions need admin or meo, everything
// else only needs an authenticated identity. Ownership is never checked.
package policy

import (
	"fmt"

	"schoolconnect/internal/core/domain"
)

// Action names a protected operation
type Action string

const (
	ActionViewSelf       Action = "auth.me"
	ActionCreateSchool   Action = "school.create"
	ActionUpdateSchool   Action = "school.update"
	ActionCreateAlumni   Action = "alumni.create"
	ActionCreateEvent    Action = "event.create"
	ActionCreatePost     Action = "forum.create"
	ActionCreateBulletin Action = "bulletin.create"
	ActionCreateNews     Action = "news.create"
	ActionCreateGallery  Action = "gallery.create"
	ActionCreateNeed     Action = "need.create"
	ActionViewChat       Action = "chat.view"
	ActionViewNotices    Action = "notification.view"
	ActionViewStats      Action = "admin.stats"
	ActionListUsers      Action = "admin.users.list"
	ActionApproveUser    Action = "admin.users.approve"
)

// Rule lists the roles allowed to perform an action.
// AnyRole admits every authenticated identity.
type Rule struct {
	AnyRole bool
	Roles   []domain.Role
}

func (r Rule) allows(role domain.Role) bool {
	if r.AnyRole {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

var (
	authenticated = Rule{AnyRole: true}
	administrator = Rule{Roles: []domain.Role{domain.RoleAdmin, domain.RoleMEO}}
)

// DefaultRules is the portal's access table
var DefaultRules = map[Action]Rule{
	ActionViewSelf:       authenticated,
	ActionCreateSchool:   authenticated,
	ActionUpdateSchool:   authenticated,
	ActionCreateAlumni:   authenticated,
	ActionCreateEvent:    authenticated,
	ActionCreatePost:     authenticated,
	ActionCreateBulletin: authenticated,
	ActionCreateNews:     authenticated,
	ActionCreateGallery:  authenticated,
	ActionCreateNeed:     authenticated,
	ActionViewChat:       authenticated,
	ActionViewNotices:    authenticated,
	ActionViewStats:      administrator,
	ActionListUsers:      administrator,
	ActionApproveUser:    administrator,
}

// Policy evaluates actions against a rule table
type Policy struct {
	rules map[Action]Rule
}

// New creates a policy; a nil table means DefaultRules
func New(rules map[Action]Rule) *Policy {
	if rules == nil {
		rules = DefaultRules
	}
	return &Policy{rules: rules}
}

// Can reports whether role may perform action. Unknown actions are denied.
func (p *Policy) Can(role domain.Role, action Action) bool {
	rule, ok := p.rules[action]
	if !ok {
		return false
	}
	return rule.allows(role)
}

// Authorize returns domain.ErrForbidden when role may not perform action
func (p *Policy) Authorize(role domain.Role, action Action) error {
	if !p.Can(role, action) {
		return fmt.Errorf("%w: role %q cannot %s", domain.ErrForbidden, role, action)
	}
	return nil
}
