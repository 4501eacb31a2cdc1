package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodRepo struct {
	mu    sync.Mutex
	foods map[string]*models.Food
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{foods: map[string]*models.Food{}}
}

func (f *fakeFoodRepo) List(ctx context.Context) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Food
	for _, food := range f.foods {
		out = append(out, *food)
	}
	return out, nil
}

func (f *fakeFoodRepo) GetByID(ctx context.Context, foodId string) (*models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	food, ok := f.foods[foodId]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *food
	return &copied, nil
}

func (f *fakeFoodRepo) ListByCategory(ctx context.Context, categoryId string) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Food
	for _, food := range f.foods {
		if food.Category_id != nil && *food.Category_id == categoryId {
			out = append(out, *food)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) ListPopular(ctx context.Context) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Food
	for _, food := range f.foods {
		if food.Is_popular {
			out = append(out, *food)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) ListDiscounted(ctx context.Context) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Food
	for _, food := range f.foods {
		if food.Discount_percent > 0 {
			out = append(out, *food)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) ListFavorites(ctx context.Context) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Food
	for _, food := range f.foods {
		if food.Is_favorite {
			out = append(out, *food)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) Search(ctx context.Context, query string) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	query = strings.ToLower(query)
	var out []models.Food
	for _, food := range f.foods {
		name := strings.ToLower(derefString(food.Name))
		description := strings.ToLower(derefString(food.Description))
		if strings.Contains(name, query) || strings.Contains(description, query) {
			out = append(out, *food)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) SetFavorite(ctx context.Context, foodId string, isFavorite bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	food, ok := f.foods[foodId]
	if !ok {
		return repositories.ErrNotFound
	}
	food.Is_favorite = isFavorite
	return nil
}

func (f *fakeFoodRepo) InsertMany(ctx context.Context, foods []models.Food) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range foods {
		copied := foods[i]
		f.foods[copied.Food_id] = &copied
	}
	return nil
}

func (f *fakeFoodRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.foods)), nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories []models.Category
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Category{}, f.categories...), nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, categoryId string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.categories {
		if f.categories[i].Category_id == categoryId {
			copied := f.categories[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCategoryRepo) InsertMany(ctx context.Context, categories []models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, categories...)
	return nil
}

func (f *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.categories)), nil
}

func TestSeedIfEmptyPopulatesOnce(t *testing.T) {
	foodRepo := newFakeFoodRepo()
	categoryRepo := &fakeCategoryRepo{}
	service := NewCatalogService(foodRepo, categoryRepo)
	ctx := context.Background()

	require.NoError(t, service.SeedIfEmpty(ctx))

	foods, err := service.ListFoods(ctx)
	require.NoError(t, err)
	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, foods)
	assert.NotEmpty(t, categories)

	// Second run must not duplicate.
	require.NoError(t, service.SeedIfEmpty(ctx))
	foodsAgain, err := service.ListFoods(ctx)
	require.NoError(t, err)
	assert.Len(t, foodsAgain, len(foods))
}

func TestSeededFoodsReferenceSeededCategories(t *testing.T) {
	foodRepo := newFakeFoodRepo()
	categoryRepo := &fakeCategoryRepo{}
	service := NewCatalogService(foodRepo, categoryRepo)
	ctx := context.Background()

	require.NoError(t, service.SeedIfEmpty(ctx))

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	known := map[string]bool{}
	for _, category := range categories {
		known[category.Category_id] = true
	}

	foods, err := service.ListFoods(ctx)
	require.NoError(t, err)
	for _, food := range foods {
		require.NotNil(t, food.Category_id)
		assert.True(t, known[*food.Category_id])
	}
}

func TestToggleFavorite(t *testing.T) {
	foodRepo := newFakeFoodRepo()
	service := NewCatalogService(foodRepo, &fakeCategoryRepo{})
	ctx := context.Background()

	food := testFood("food1", "Pho Bo Tai", 50000)
	require.NoError(t, foodRepo.InsertMany(ctx, []models.Food{*food}))

	toggled, err := service.ToggleFavorite(ctx, "food1")
	require.NoError(t, err)
	assert.True(t, toggled.Is_favorite)

	toggled, err = service.ToggleFavorite(ctx, "food1")
	require.NoError(t, err)
	assert.False(t, toggled.Is_favorite)
}

func TestToggleFavoriteMissingFoodFails(t *testing.T) {
	service := NewCatalogService(newFakeFoodRepo(), &fakeCategoryRepo{})
	_, err := service.ToggleFavorite(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	foodRepo := newFakeFoodRepo()
	service := NewCatalogService(foodRepo, &fakeCategoryRepo{})
	ctx := context.Background()

	require.NoError(t, service.SeedIfEmpty(ctx))

	byName, err := service.SearchFoods(ctx, "pho")
	require.NoError(t, err)
	assert.NotEmpty(t, byName)

	byDescription, err := service.SearchFoods(ctx, "baguette")
	require.NoError(t, err)
	assert.NotEmpty(t, byDescription)
}
