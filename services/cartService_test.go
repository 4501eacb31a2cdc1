package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRepo struct {
	mu         sync.Mutex
	items      map[string]*models.CartItem
	failInsert bool
	failClear  bool
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]*models.CartItem{}}
}

func (f *fakeCartRepo) GetByID(ctx context.Context, cartItemId string) (*models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[cartItemId]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeCartRepo) GetByUserAndFood(ctx context.Context, userId string, foodId string) (*models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.User_id == userId && item.Food_id == foodId {
			copied := *item
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userId string) ([]models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CartItem
	for _, item := range f.items {
		if item.User_id == userId {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) CountByUser(ctx context.Context, userId string) (int64, error) {
	items, _ := f.ListByUser(ctx, userId)
	return int64(len(items)), nil
}

func (f *fakeCartRepo) Insert(ctx context.Context, item *models.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return errors.New("storage failure")
	}
	copied := *item
	f.items[item.Cart_item_id] = &copied
	return nil
}

func (f *fakeCartRepo) Update(ctx context.Context, item *models.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[item.Cart_item_id]
	if !ok {
		return repositories.ErrNotFound
	}
	existing.Quantity = item.Quantity
	existing.Note = item.Note
	existing.Updated_at = item.Updated_at
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, cartItemId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, cartItemId)
	return nil
}

func (f *fakeCartRepo) ClearByUser(ctx context.Context, userId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failClear {
		return errors.New("storage failure")
	}
	for id, item := range f.items {
		if item.User_id == userId {
			delete(f.items, id)
		}
	}
	return nil
}

func testFood(foodId string, name string, price int64) *models.Food {
	return &models.Food{
		Food_id: foodId,
		Name:    &name,
		Price:   &price,
	}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()
	food := testFood("food1", "Pho Bo Tai", 50000)

	_, err := service.AddItem(ctx, "user1", food, 2, nil)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "user1", food, 3, nil)
	require.NoError(t, err)

	items, err := service.ListItems(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemSnapshotsFoodFields(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()
	food := testFood("food1", "Banh Mi Thit Nguoi", 20000)

	item, err := service.AddItem(ctx, "user1", food, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "Banh Mi Thit Nguoi", item.Food_name)
	assert.Equal(t, int64(20000), item.Food_price)
	assert.NotEmpty(t, item.Cart_item_id)

	// A later catalog price change must not touch the stored line.
	*food.Price = 99000
	stored, err := repo.GetByID(ctx, item.Cart_item_id)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), stored.Food_price)
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()

	item, err := service.AddItem(ctx, "user1", testFood("food1", "Com Tam", 45000), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestSetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		repo := newFakeCartRepo()
		service := NewCartService(repo, nil)
		ctx := context.Background()

		item, err := service.AddItem(ctx, "user1", testFood("food1", "Com Tam", 45000), 2, nil)
		require.NoError(t, err)

		require.NoError(t, service.SetQuantity(ctx, "user1", item.Cart_item_id, quantity))

		items, err := service.ListItems(ctx, "user1")
		require.NoError(t, err)
		assert.Empty(t, items)
	}
}

func TestSetQuantityUpdatesInPlace(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()

	item, err := service.AddItem(ctx, "user1", testFood("food1", "Com Tam", 45000), 2, nil)
	require.NoError(t, err)

	require.NoError(t, service.SetQuantity(ctx, "user1", item.Cart_item_id, 7))

	items, err := service.ListItems(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestSetQuantityMissingLineFails(t *testing.T) {
	service := NewCartService(newFakeCartRepo(), nil)
	err := service.SetQuantity(context.Background(), "user1", "missing", 3)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSetQuantityOtherUsersLineNotFound(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()

	item, err := service.AddItem(ctx, "user1", testFood("food1", "Com Tam", 45000), 2, nil)
	require.NoError(t, err)

	err = service.SetQuantity(ctx, "user2", item.Cart_item_id, 7)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = service.RemoveItem(ctx, "user2", item.Cart_item_id)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	items, err := service.ListItems(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSubtotal(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user1", testFood("food1", "Com Tam", 45000), 2, nil)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "user1", testFood("food2", "Banh Mi", 20000), 1, nil)
	require.NoError(t, err)

	subtotal, err := service.Subtotal(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, int64(110000), subtotal)
}

func TestClearRemovesOnlyOwnLines(t *testing.T) {
	repo := newFakeCartRepo()
	service := NewCartService(repo, nil)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user1", testFood("food1", "Com Tam", 45000), 1, nil)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "user2", testFood("food1", "Com Tam", 45000), 1, nil)
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx, "user1"))

	mine, _ := service.ListItems(ctx, "user1")
	theirs, _ := service.ListItems(ctx, "user2")
	assert.Empty(t, mine)
	assert.Len(t, theirs, 1)
}

func TestAddItemPublishesCartEvent(t *testing.T) {
	notifier := NewNotifier()
	events := notifier.Subscribe()
	service := NewCartService(newFakeCartRepo(), notifier)

	_, err := service.AddItem(context.Background(), "user1", testFood("food1", "Com Tam", 45000), 1, nil)
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, EventCartUpdated, event.Type)
		assert.Equal(t, "user1", event.User_id)
	default:
		t.Fatal("expected a cart event")
	}
}
