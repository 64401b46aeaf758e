package repositories_test

import (
	"fmt"
	"testing"

	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	user := &models.User{Email: "ann@example.com", Password: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)

	err := repo.Create(&models.User{Email: "ann@example.com", Password: "other"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	byEmail, err := repo.GetByEmail("ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	updated, err := repo.Update(user.ID, map[string]interface{}{"name": "Ann", "role": models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = repo.Update("missing", map[string]interface{}{"name": "Nobody"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(user.ID))
	assert.ErrorIs(t, repo.Delete(user.ID), repositories.ErrNotFound)
}

func TestGORMCategoryRepository_ExactNameMatch(t *testing.T) {
	repo := repositories.NewGORMCategoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.Category{Name: "Shoes"}))
	assert.ErrorIs(t, repo.Create(&models.Category{Name: "Shoes"}), repositories.ErrDuplicate)

	found, err := repo.GetByName("Shoes")
	require.NoError(t, err)
	assert.Equal(t, "Shoes", found.Name)

	_, err = repo.GetByName("shoes")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	byID, err := repo.GetByID(found.ID)
	require.NoError(t, err)
	assert.Equal(t, found, byID)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGORMProductRepository(t *testing.T) {
	db := newTestDB(t)
	categories := repositories.NewGORMCategoryRepository(db)
	repo := repositories.NewGORMProductRepository(db)

	shoes := &models.Category{Name: "Shoes"}
	require.NoError(t, categories.Create(shoes))

	product := &models.Product{
		Name:       "Runner",
		Price:      decimal.RequireFromString("59.90"),
		Quantity:   4,
		Image:      "https://img.example/runner.png",
		CategoryID: strPtr(shoes.ID),
	}
	require.NoError(t, repo.Create(product))

	fetched, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Category)
	assert.Equal(t, "Shoes", fetched.Category.Name)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("59.90")))

	fetched.Quantity = 0
	fetched.Description = "Light trainer"
	require.NoError(t, repo.Update(fetched))

	again, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Quantity)
	assert.Equal(t, "Light trainer", again.Description)

	assert.ErrorIs(t, repo.Update(&models.Product{ID: "missing", Name: "x"}), repositories.ErrNotFound)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(product.ID))
	assert.ErrorIs(t, repo.Delete(product.ID), repositories.ErrNotFound)
}

func TestGORMOrderRepository(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewGORMUserRepository(db)
	products := repositories.NewGORMProductRepository(db)
	repo := repositories.NewGORMOrderRepository(db)

	total, err := repo.SumTotalPrice()
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	user := &models.User{Email: "buyer@example.com", Password: "hash"}
	require.NoError(t, users.Create(user))
	product := &models.Product{Name: "Mug", Price: decimal.NewFromInt(10), Quantity: 3}
	require.NoError(t, products.Create(product))

	for _, qty := range []int64{1, 2} {
		order := &models.Order{
			UserID:     user.ID,
			ProductID:  product.ID,
			Quantity:   int(qty),
			TotalPrice: product.Price.Mul(decimal.NewFromInt(qty)),
			Status:     models.OrderStatusPending,
		}
		require.NoError(t, repo.Create(order))
	}

	orders, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.NotNil(t, orders[0].User)
	require.NotNil(t, orders[0].Product)
	assert.Equal(t, "buyer@example.com", orders[0].User.Email)
	assert.Equal(t, "Mug", orders[0].Product.Name)

	require.NoError(t, repo.UpdateStatus(orders[0].ID, models.OrderStatusShipped))
	shipped, err := repo.GetByID(orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, shipped.Status)

	assert.ErrorIs(t, repo.UpdateStatus("missing", models.OrderStatusShipped), repositories.ErrNotFound)
	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	total, err = repo.SumTotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(30)), total.String())
}

func TestGORMOrderRepository_SumKeepsCents(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewGORMUserRepository(db)
	products := repositories.NewGORMProductRepository(db)
	repo := repositories.NewGORMOrderRepository(db)

	user := &models.User{Email: "buyer@example.com", Password: "hash"}
	require.NoError(t, users.Create(user))
	product := &models.Product{Name: "Sticker", Price: decimal.RequireFromString("0.10")}
	require.NoError(t, products.Create(product))

	for _, price := range []string{"0.10", "0.20"} {
		require.NoError(t, repo.Create(&models.Order{
			UserID:     user.ID,
			ProductID:  product.ID,
			Quantity:   1,
			TotalPrice: decimal.RequireFromString(price),
			Status:     models.OrderStatusPending,
		}))
	}

	total, err := repo.SumTotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.30")), total.String())
}

func TestInMemoryRepositories(t *testing.T) {
	products := repositories.NewInMemoryProductRepository()
	p := &models.Product{Name: "Lamp", Price: decimal.NewFromInt(20)}
	require.NoError(t, products.Create(p))
	assert.NotEmpty(t, p.ID)

	p.Name = "Desk lamp"
	require.NoError(t, products.Update(p))
	got, err := products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk lamp", got.Name)
	assert.ErrorIs(t, products.Update(&models.Product{ID: "nope"}), repositories.ErrNotFound)

	orders := repositories.NewInMemoryOrderRepository()
	o := &models.Order{ProductID: p.ID, Quantity: 2, TotalPrice: decimal.NewFromInt(40), Status: models.OrderStatusPending}
	require.NoError(t, orders.Create(o))
	require.NoError(t, orders.UpdateStatus(o.ID, models.OrderStatusDelivered))
	got2, err := orders.GetByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got2.Status)

	sum, err := orders.SumTotalPrice()
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(40)))

	require.NoError(t, products.Delete(p.ID))
	n, err := products.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}
