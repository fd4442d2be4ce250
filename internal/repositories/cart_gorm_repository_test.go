package repositories_test

import (
	"fmt"
	"testing"

	"kodeks24/internal/models"
	"kodeks24/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Wishlist{},
		&models.Cart{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, quantity int) *models.Product {
	t.Helper()
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	email := fmt.Sprintf("owner-%s@example.com", name)
	owner := &models.User{Username: "owner-" + name, Email: &email, IsActive: true}
	require.NoError(t, userRepo.Create(owner))

	category := &models.Category{Name: "Electronics " + name}
	require.NoError(t, categoryRepo.Create(category))

	product := &models.Product{
		Name:       name,
		Price:      100,
		Quantity:   quantity,
		CategoryID: category.ID,
		OwnerID:    owner.ID,
	}
	require.NoError(t, productRepo.Create(product))
	return product
}

func productQuantity(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Quantity
}

func TestCartToggleStockRoundTrip(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	product := seedProduct(t, db, "laptop", 3)

	// Add: cart row appears, stock drops by one.
	result, err := cartRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleAdded, result)
	assert.Equal(t, 2, productQuantity(t, db, product.ID))

	entries, err := cartRepo.GetByUser("user-a")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, product.ID, entries[0].ProductID)
	assert.Equal(t, 1, entries[0].Quantity)

	// Remove: cart row disappears, stock is returned.
	result, err = cartRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleRemoved, result)
	assert.Equal(t, 3, productQuantity(t, db, product.ID))

	entries, err = cartRepo.GetByUser("user-a")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartToggleOutOfStock(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	product := seedProduct(t, db, "keyboard", 1)

	// First user takes the last unit.
	result, err := cartRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleAdded, result)
	assert.Equal(t, 0, productQuantity(t, db, product.ID))

	// Second user finds nothing left; no state changes.
	_, err = cartRepo.Toggle("user-b", product.ID)
	assert.ErrorIs(t, err, repositories.ErrOutOfStock)
	assert.Equal(t, 0, productQuantity(t, db, product.ID))

	entries, err := cartRepo.GetByUser("user-b")
	assert.NoError(t, err)
	assert.Empty(t, entries)

	// The first user can still toggle out, returning the unit.
	result, err = cartRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleRemoved, result)
	assert.Equal(t, 1, productQuantity(t, db, product.ID))
}

func TestCartToggleZeroStockProduct(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	product := seedProduct(t, db, "mouse", 0)

	_, err := cartRepo.Toggle("user-a", product.ID)
	assert.ErrorIs(t, err, repositories.ErrOutOfStock)
	assert.Equal(t, 0, productQuantity(t, db, product.ID))
}

func TestCartToggleUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)

	_, err := cartRepo.Toggle("user-a", "b5a9e4b1-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestWishlistToggleIsItsOwnInverse(t *testing.T) {
	db := newTestDB(t)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	product := seedProduct(t, db, "monitor", 5)

	result, err := wishlistRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleAdded, result)

	entries, err := wishlistRepo.GetByUser("user-a")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	result, err = wishlistRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleRemoved, result)

	entries, err = wishlistRepo.GetByUser("user-a")
	assert.NoError(t, err)
	assert.Empty(t, entries)

	// Wishlist toggles never touch stock.
	assert.Equal(t, 5, productQuantity(t, db, product.ID))
}

func TestWishlistToggleRemovesPreexistingRow(t *testing.T) {
	db := newTestDB(t)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	product := seedProduct(t, db, "keyboard", 2)

	// A row created elsewhere, e.g. by a racing request, is removed rather
	// than tripping the unique index.
	require.NoError(t, db.Create(&models.Wishlist{UserID: "user-a", ProductID: product.ID}).Error)

	result, err := wishlistRepo.Toggle("user-a", product.ID)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ToggleRemoved, result)

	entries, err := wishlistRepo.GetByUser("user-a")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWishlistToggleUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)

	_, err := wishlistRepo.Toggle("user-a", "b5a9e4b1-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductSlugUniqueness(t *testing.T) {
	db := newTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	first := seedProduct(t, db, "Headphones", 2)
	assert.Equal(t, "headphones", first.Slug)

	second := &models.Product{
		Name:       "Headphones",
		Price:      50,
		Quantity:   1,
		CategoryID: first.CategoryID,
		OwnerID:    first.OwnerID,
	}
	assert.NoError(t, productRepo.Create(second))
	assert.Equal(t, "headphones1", second.Slug)

	third := &models.Product{
		Name:       "Headphones",
		Price:      60,
		Quantity:   1,
		CategoryID: first.CategoryID,
		OwnerID:    first.OwnerID,
	}
	assert.NoError(t, productRepo.Create(third))
	assert.Equal(t, "headphones11", third.Slug)
}

func TestProductUpdateRenamesSlug(t *testing.T) {
	db := newTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	product := seedProduct(t, db, "Tablet", 2)
	assert.Equal(t, "tablet", product.Slug)

	product.Name = "Tablet Pro"
	assert.NoError(t, productRepo.Update(product))
	assert.Equal(t, "tablet-pro", product.Slug)

	// Renaming back does not collide with the row's own slug history.
	updated, err := productRepo.GetBySlug("tablet-pro")
	assert.NoError(t, err)
	assert.Equal(t, product.ID, updated.ID)
}

func TestProductFilterAndSearch(t *testing.T) {
	db := newTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	laptop := seedProduct(t, db, "Laptop", 5)
	seedProduct(t, db, "Desk", 3)

	// Search matches name or description.
	found, err := productRepo.GetAll(repositories.ProductFilter{Search: "Lap"})
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, laptop.ID, found[0].ID)

	// Case does not matter; the predicate lowers both sides.
	found, err = productRepo.GetAll(repositories.ProductFilter{Search: "lApToP"})
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, laptop.ID, found[0].ID)

	// Category filter by slug.
	var category models.Category
	require.NoError(t, db.First(&category, "id = ?", laptop.CategoryID).Error)
	found, err = productRepo.GetAll(repositories.ProductFilter{CategorySlug: category.Slug})
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	// Ordering by descending quantity.
	found, err = productRepo.GetAll(repositories.ProductFilter{Ordering: "-quantity"})
	assert.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "Laptop", found[0].Name)

	// Owner filter.
	found, err = productRepo.GetAll(repositories.ProductFilter{OwnerID: laptop.OwnerID})
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	// Nested representation carries category and owner.
	assert.NotNil(t, found[0].Category)
	assert.NotNil(t, found[0].Owner)
}
