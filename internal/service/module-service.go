package service

import (
	"context"
	"learning-service/internal/models"
)

type ModuleService struct {
	modules ModuleStore
}

func NewModuleService(modules ModuleStore) *ModuleService {
	return &ModuleService{modules: modules}
}

func (s *ModuleService) Create(ctx context.Context, module *models.Module) error {
	return s.modules.Insert(ctx, module)
}

func (s *ModuleService) List(ctx context.Context) ([]models.Module, error) {
	return s.modules.FindAll(ctx)
}

func (s *ModuleService) Get(ctx context.Context, id string) (*models.Module, error) {
	return s.modules.FindByID(ctx, id)
}

func (s *ModuleService) Update(ctx context.Context, id string, upd models.ModuleUpdate) (*models.Module, error) {
	return s.modules.Update(ctx, id, upd)
}

func (s *ModuleService) Delete(ctx context.Context, id string) error {
	return s.modules.Delete(ctx, id)
}
