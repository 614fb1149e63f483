package services

import (
	"testing"
	"time"

	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/adapters/persistence/testutil"
	"schoolconnect/internal/pkg/jwt"
	"schoolconnect/internal/pkg/pagination"
	"schoolconnect/internal/pkg/password"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var firstPage = pagination.Params{Limit: pagination.DefaultLimit}

type fixture struct {
	repos     *repositories.Repositories
	tokens    *jwt.Manager
	auth      *AuthService
	schools   *SchoolService
	community *CommunityService
	funding   *FundingService
	admin     *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repos := repositories.NewRepositories(testutil.NewDB(t))
	log := zap.NewNop()
	tokens := jwt.NewManager("test-secret", "test", time.Hour)

	return &fixture{
		repos:     repos,
		tokens:    tokens,
		auth:      NewAuthService(repos.Users, password.NewHasher(bcrypt.MinCost), tokens, log),
		schools:   NewSchoolService(repos.Schools, repos.Mandals),
		community: NewCommunityService(repos),
		funding:   NewFundingService(repos.Donations, repos.SchoolNeeds, log),
		admin:     NewAdminService(repos, log),
	}
}
