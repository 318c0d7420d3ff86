package service

import (
	"context"
	"learning-service/internal/models"
)

type PageService struct {
	pages   PageStore
	modules ModuleStore
}

func NewPageService(pages PageStore, modules ModuleStore) *PageService {
	return &PageService{pages: pages, modules: modules}
}

// Create checks the parent module exists before inserting; there are no
// database-level foreign keys.
func (s *PageService) Create(ctx context.Context, page *models.Page) error {
	module, err := s.modules.FindByID(ctx, page.ModuleID.Hex())
	if err != nil {
		return err
	}
	if module == nil {
		return ErrModuleNotFound
	}
	return s.pages.Insert(ctx, page)
}

func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	return s.pages.FindAll(ctx)
}

func (s *PageService) ListByModule(ctx context.Context, moduleID string) ([]models.PageSummary, error) {
	return s.pages.FindByModule(ctx, moduleID)
}

func (s *PageService) Get(ctx context.Context, id string) (*models.Page, error) {
	return s.pages.FindByID(ctx, id)
}

func (s *PageService) Update(ctx context.Context, id string, upd models.PageUpdate) (*models.Page, error) {
	return s.pages.Update(ctx, id, upd)
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	return s.pages.Delete(ctx, id)
}
