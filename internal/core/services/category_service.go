package services

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
)

// categoryService implements the CategorySvcFacade.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}
