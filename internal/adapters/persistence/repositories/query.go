package repositories

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Filters is an exact-match conjunction keyed by column name
type Filters map[string]interface{}

// Search is a case-insensitive substring match on one column
type Search struct {
	Column string
	Term   string
}

// Order sorts results by a column
type Order struct {
	Column string
	Desc   bool
}

// Query describes a list request
type Query struct {
	Filters Filters
	Search  *Search
	Order   Order
	Offset  int
	Limit   int
}

var columnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// likeEscaper escapes LIKE wildcards with '!', which every supported dialect accepts via ESCAPE
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func checkColumn(column string) error {
	if !columnPattern.MatchString(column) {
		return fmt.Errorf("invalid column name %q", column)
	}
	return nil
}

// applyFilters adds WHERE clauses in a stable column order
func applyFilters(db *gorm.DB, filters Filters) (*gorm.DB, error) {
	columns := make([]string, 0, len(filters))
	for column := range filters {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		if err := checkColumn(column); err != nil {
			return nil, err
		}
		db = db.Where(column+" = ?", filters[column])
	}
	return db, nil
}

func applySearch(db *gorm.DB, search *Search) (*gorm.DB, error) {
	if search == nil || search.Term == "" {
		return db, nil
	}
	if err := checkColumn(search.Column); err != nil {
		return nil, err
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(search.Term)) + "%"
	return db.Where("LOWER("+search.Column+") LIKE ? ESCAPE '!'", pattern), nil
}

func applyOrder(db *gorm.DB, order Order) (*gorm.DB, error) {
	if order.Column == "" {
		return db, nil
	}
	if err := checkColumn(order.Column); err != nil {
		return nil, err
	}
	direction := " ASC"
	if order.Desc {
		direction = " DESC"
	}
	// id breaks ties so pages never overlap
	return db.Order(order.Column + direction).Order("id" + direction), nil
}
