package services

import (
	"context"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/pkg/pagination"
)

// Authenticator resolves a bearer token to its user; AuthService implements it
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

var _ Authenticator = (*AuthService)(nil)

// Sort orders shared by list operations
var (
	newestFirst  = repositories.Order{Column: "created_at", Desc: true}
	oldestFirst  = repositories.Order{Column: "created_at"}
	byEventDate  = repositories.Order{Column: "event_date", Desc: true}
	alphabetical = repositories.Order{Column: "name"}
)

// query builds a repository query from filters, an order and a page
func query(filters repositories.Filters, order repositories.Order, page pagination.Params) repositories.Query {
	return repositories.Query{
		Filters: filters,
		Order:   order,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
}

// filterOf keeps only the non-empty string filters
func filterOf(pairs map[string]string) repositories.Filters {
	filters := repositories.Filters{}
	for column, value := range pairs {
		if value != "" {
			filters[column] = value
		}
	}
	return filters
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
