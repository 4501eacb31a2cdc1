package services

import (
	"context"
	"log"
	"time"

	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService is read-only access to categories and foods, plus the
// favorite toggle and first-run seeding.
type CatalogService struct {
	foods      repositories.FoodRepository
	categories repositories.CategoryRepository
}

func NewCatalogService(foods repositories.FoodRepository, categories repositories.CategoryRepository) *CatalogService {
	return &CatalogService{foods: foods, categories: categories}
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]models.Food, error) {
	return s.foods.List(ctx)
}

func (s *CatalogService) GetFood(ctx context.Context, foodId string) (*models.Food, error) {
	return s.foods.GetByID(ctx, foodId)
}

func (s *CatalogService) ListFoodsByCategory(ctx context.Context, categoryId string) ([]models.Food, error) {
	return s.foods.ListByCategory(ctx, categoryId)
}

func (s *CatalogService) ListPopularFoods(ctx context.Context) ([]models.Food, error) {
	return s.foods.ListPopular(ctx)
}

func (s *CatalogService) ListDiscountedFoods(ctx context.Context) ([]models.Food, error) {
	return s.foods.ListDiscounted(ctx)
}

func (s *CatalogService) ListFavoriteFoods(ctx context.Context) ([]models.Food, error) {
	return s.foods.ListFavorites(ctx)
}

func (s *CatalogService) SearchFoods(ctx context.Context, query string) ([]models.Food, error) {
	return s.foods.Search(ctx, query)
}

func (s *CatalogService) ToggleFavorite(ctx context.Context, foodId string) (*models.Food, error) {
	food, err := s.foods.GetByID(ctx, foodId)
	if err != nil {
		return nil, err
	}
	food.Is_favorite = !food.Is_favorite
	if err := s.foods.SetFavorite(ctx, foodId, food.Is_favorite); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// SeedIfEmpty loads the starter menu on first run. Subsequent runs leave
// the catalog alone.
func (s *CatalogService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.foods.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

	categories := seedCategories()
	for i := range categories {
		categories[i].ID = primitive.NewObjectID()
		categories[i].Category_id = categories[i].ID.Hex()
		categories[i].Created_at = now
		categories[i].Updated_at = now
	}
	if err := s.categories.InsertMany(ctx, categories); err != nil {
		return err
	}

	foods := seedFoods(categories)
	for i := range foods {
		foods[i].ID = primitive.NewObjectID()
		foods[i].Food_id = foods[i].ID.Hex()
		foods[i].Created_at = now
		foods[i].Updated_at = now
	}
	if err := s.foods.InsertMany(ctx, foods); err != nil {
		return err
	}

	log.Printf("seeded catalog with %d categories and %d foods", len(categories), len(foods))
	return nil
}

func seedCategories() []models.Category {
	return []models.Category{
		{Name: strPtr("Rice"), Description: strPtr("Com and rice plates"), Display_order: 1},
		{Name: strPtr("Noodles"), Description: strPtr("Pho, bun and mi"), Display_order: 2},
		{Name: strPtr("Banh Mi"), Description: strPtr("Vietnamese baguette sandwiches"), Display_order: 3},
		{Name: strPtr("Drinks"), Description: strPtr("Coffee, tea and juices"), Display_order: 4},
	}
}

func seedFoods(categories []models.Category) []models.Food {
	rice := categories[0].Category_id
	noodles := categories[1].Category_id
	banhMi := categories[2].Category_id
	drinks := categories[3].Category_id

	return []models.Food{
		{
			Name: strPtr("Com Tam Suon Bi"), Description: strPtr("Broken rice with grilled pork chop and shredded pork skin"),
			Price: int64Ptr(45000), Category_id: &rice, Rating: 4.7, Review_count: 128,
			Is_popular: true, Preparation_time: 15, Calories: 650,
		},
		{
			Name: strPtr("Com Ga Xoi Mo"), Description: strPtr("Crispy fried chicken over fragrant rice"),
			Price: int64Ptr(40000), Category_id: &rice, Rating: 4.4, Review_count: 86,
			Preparation_time: 20, Calories: 720,
		},
		{
			Name: strPtr("Pho Bo Tai"), Description: strPtr("Beef noodle soup with rare sliced beef"),
			Price: int64Ptr(50000), Category_id: &noodles, Rating: 4.8, Review_count: 215,
			Is_popular: true, Preparation_time: 10, Calories: 480,
		},
		{
			Name: strPtr("Bun Bo Hue"), Description: strPtr("Spicy beef and lemongrass noodle soup"),
			Price: int64Ptr(48000), Category_id: &noodles, Rating: 4.6, Review_count: 167,
			Is_popular: true, Discount_percent: 10, Preparation_time: 12, Calories: 520,
		},
		{
			Name: strPtr("Mi Xao Hai San"), Description: strPtr("Stir-fried egg noodles with seafood"),
			Price: int64Ptr(55000), Category_id: &noodles, Rating: 4.3, Review_count: 54,
			Preparation_time: 18, Calories: 610,
		},
		{
			Name: strPtr("Banh Mi Thit Nguoi"), Description: strPtr("Baguette with cold cuts, pate and pickled vegetables"),
			Price: int64Ptr(20000), Category_id: &banhMi, Rating: 4.5, Review_count: 302,
			Is_popular: true, Preparation_time: 5, Calories: 420,
		},
		{
			Name: strPtr("Banh Mi Trung Op La"), Description: strPtr("Baguette with fried eggs and soy drizzle"),
			Price: int64Ptr(18000), Category_id: &banhMi, Rating: 4.2, Review_count: 98,
			Discount_percent: 15, Preparation_time: 7, Calories: 390,
		},
		{
			Name: strPtr("Ca Phe Sua Da"), Description: strPtr("Iced coffee with condensed milk"),
			Price: int64Ptr(25000), Category_id: &drinks, Rating: 4.9, Review_count: 411,
			Is_popular: true, Preparation_time: 3, Calories: 180,
		},
		{
			Name: strPtr("Tra Dao Cam Sa"), Description: strPtr("Peach tea with orange and lemongrass"),
			Price: int64Ptr(30000), Category_id: &drinks, Rating: 4.4, Review_count: 73,
			Discount_percent: 20, Preparation_time: 5, Calories: 210,
		},
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
