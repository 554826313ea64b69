package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	menuListCacheKey    = "menu:list"
	menuItemCachePrefix = "menu:item:"
	menuCacheTTL        = 10 * time.Minute
)

type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Get(ctx context.Context, id string) (*model.MenuItem, error)
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.InsertResult, error)
	Update(ctx context.Context, id string, req dto.UpdateMenuItemRequest) (*dto.UpdateResult, error)
	Delete(ctx context.Context, id string) (*dto.DeleteResult, error)
}

// menuService serves the public read endpoints through a Redis
// read-through cache; every admin write invalidates it. rdb may be nil
// (unit test mode), in which case reads go straight to the store.
type menuService struct {
	repo repository.MenuRepository
	rdb  *redis.Client
}

func NewMenuService(repo repository.MenuRepository, rdb *redis.Client) MenuService {
	return &menuService{repo: repo, rdb: rdb}
}

func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, menuListCacheKey).Bytes(); err == nil {
			var items []model.MenuItem
			if jsonErr := json.Unmarshal(cached, &items); jsonErr == nil {
				return items, nil
			}
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(items); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), menuListCacheKey, b, menuCacheTTL).Err()
		}
	}
	return items, nil
}

func (s *menuService) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	cacheKey := menuItemCachePrefix + id
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var item model.MenuItem
			if jsonErr := json.Unmarshal(cached, &item); jsonErr == nil {
				return &item, nil
			}
		}
	}

	item, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(item); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, menuCacheTTL).Err()
		}
	}
	return item, nil
}

func (s *menuService) Create(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.InsertResult, error) {
	id, err := s.repo.Insert(ctx, &model.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Image:    req.Image,
		Recipe:   req.Recipe,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id.Hex())
	return &dto.InsertResult{InsertedID: id.Hex()}, nil
}

func (s *menuService) Update(ctx context.Context, id string, req dto.UpdateMenuItemRequest) (*dto.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.Recipe != nil {
		set["recipe"] = *req.Recipe
	}
	if len(set) == 0 {
		return &dto.UpdateResult{}, nil
	}

	matched, modified, err := s.repo.UpdateFields(ctx, oid, set)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return &dto.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *menuService) Delete(ctx context.Context, id string) (*dto.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}

func (s *menuService) invalidate(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, menuListCacheKey, menuItemCachePrefix+id).Err()
}
