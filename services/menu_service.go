package services

import (
	"context"
	"encoding/json"
	"time"

	"little-lemon/models"

	"github.com/redis/go-redis/v9"
)

const (
	menuCacheKey = "menu_items_list"
	menuCacheTTL = 5 * time.Minute
)

type MenuService struct {
	menuRepo MenuRepository
	cache    *redis.Client
}

// NewMenuService wires the menu repository and an optional Redis cache; cache
// may be nil, in which case every list hits the database.
func NewMenuService(menuRepo MenuRepository, cache *redis.Client) *MenuService {
	return &MenuService{menuRepo: menuRepo, cache: cache}
}

func (s *MenuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.menuRepo.ListCategories(ctx)
}

func (s *MenuService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	cat := &models.Category{Slug: req.Slug, Title: req.Title}
	if err := s.menuRepo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, menuCacheKey).Result(); err == nil {
			items := []models.MenuItem{}
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if jsonData, err := json.Marshal(items); err == nil {
			s.cache.Set(ctx, menuCacheKey, string(jsonData), menuCacheTTL)
		}
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id int) (*models.MenuItem, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	item := &models.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

// Replace is a full update: every field takes the request value.
func (s *MenuService) Replace(ctx context.Context, id int, req models.MenuItemRequest) (*models.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.CategoryID = req.CategoryID

	if err := s.menuRepo.Update(ctx, item); err != nil {
		if isNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

// Patch is a partial update: nil request fields keep their stored values.
func (s *MenuService) Patch(ctx context.Context, id int, req models.MenuItemPatchRequest) (*models.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		if isNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return models.ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, menuCacheKey)
	}
}
