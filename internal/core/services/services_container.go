package services

import (
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Session = NewSessionService(cfg, repos.SessionRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Dare = NewDareService(repos.DareRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.SessionSvcFacade     = (*sessionService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)
	_ portssvc.DareSvcFacade        = (*dareService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.LedgerSvcFacade      = (*ledgerService)(nil)
)
