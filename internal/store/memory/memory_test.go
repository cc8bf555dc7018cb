package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
	"leatherworking_backend/internal/store/memory"
)

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	customer := &models.Customer{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, st.Customers.Create(ctx, customer))

	assert.False(t, customer.ID.IsZero())
	assert.False(t, customer.CreatedAt.IsZero())
	assert.Equal(t, customer.CreatedAt, customer.UpdatedAt)
}

func TestNotFoundOnAllMutations(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	absent := primitive.NewObjectID()

	_, err := st.Customers.Get(ctx, absent)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Customers.Update(ctx, absent, &models.Customer{Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, st.Customers.Delete(ctx, absent), store.ErrNotFound)

	_, err = st.Products.AppendImage(ctx, absent, models.ProductImage{Key: "k"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Orders.UpdateStatus(ctx, absent, models.OrderStatusPending)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Projects.UpdateStatus(ctx, absent, models.ProjectStatusPlanning, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePreservesIdentityAndCreatedAt(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	material := &models.Material{Name: "Thread", Type: "thread", Quantity: 10, Unit: "spool", Price: 4}
	require.NoError(t, st.Materials.Create(ctx, material))

	updated, err := st.Materials.Update(ctx, material.ID,
		&models.Material{Name: "Tiger Thread", Type: "thread", Quantity: 8, Unit: "spool", Price: 6})
	require.NoError(t, err)

	assert.Equal(t, material.ID, updated.ID)
	assert.Equal(t, material.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Tiger Thread", updated.Name)
	assert.False(t, updated.UpdatedAt.Before(material.UpdatedAt))
}

func TestProductUpdateKeepsImages(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	product := &models.Product{Name: "Wallet", Price: 80, Stock: 2, Images: []models.ProductImage{}}
	require.NoError(t, st.Products.Create(ctx, product))

	_, err := st.Products.AppendImage(ctx, product.ID,
		models.ProductImage{Key: "products/x/1.jpg", URL: "https://s/1.jpg", UploadedAt: time.Now()})
	require.NoError(t, err)

	updated, err := st.Products.Update(ctx, product.ID,
		&models.Product{Name: "Wallet v2", Price: 85, Stock: 2})
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "products/x/1.jpg", updated.Images[0].Key)
}

func TestOrderListNewestFirstAndPopulated(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	customer := &models.Customer{Name: "Bo", Email: "bo@example.com"}
	require.NoError(t, st.Customers.Create(ctx, customer))
	product := &models.Product{Name: "Belt", Price: 60, Stock: 5}
	require.NoError(t, st.Products.Create(ctx, product))

	for i := 1; i <= 3; i++ {
		order := &models.Order{
			CustomerID:  customer.ID,
			Items:       []models.OrderItem{{ProductID: product.ID, Quantity: i}},
			TotalAmount: float64(i),
			Status:      models.OrderStatusPending,
		}
		require.NoError(t, st.Orders.Create(ctx, order))
	}

	orders, err := st.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, float64(3), orders[0].TotalAmount)
	require.NotNil(t, orders[0].Customer)
	assert.Equal(t, "Bo", orders[0].Customer.Name)
	require.NotNil(t, orders[0].Items[0].Product)
	assert.Equal(t, "Belt", orders[0].Items[0].Product.Name)
}

func TestOrderDanglingReferencePopulatesNil(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	customer := &models.Customer{Name: "Cal", Email: "cal@example.com"}
	require.NoError(t, st.Customers.Create(ctx, customer))

	order := &models.Order{
		CustomerID:  customer.ID,
		Items:       []models.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}},
		TotalAmount: 10,
		Status:      models.OrderStatusPending,
	}
	require.NoError(t, st.Orders.Create(ctx, order))
	require.NoError(t, st.Customers.Delete(ctx, customer.ID))

	got, err := st.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Customer)
	assert.Nil(t, got.Items[0].Product)
}

func TestProjectUpdateStatusCompletionDate(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	project := &models.Project{Name: "Satchel", Status: models.ProjectStatusPlanning}
	require.NoError(t, st.Projects.Create(ctx, project))

	got, err := st.Projects.UpdateStatus(ctx, project.ID, models.ProjectStatusInProgress, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, got.Status)
	assert.Nil(t, got.ActualCompletionDate)

	now := time.Now().UTC()
	got, err = st.Projects.UpdateStatus(ctx, project.ID, models.ProjectStatusCompleted, &now)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, got.Status)
	require.NotNil(t, got.ActualCompletionDate)
	assert.Equal(t, now, *got.ActualCompletionDate)

	// A later non-Completed patch leaves the stamp in place.
	got, err = st.Projects.UpdateStatus(ctx, project.ID, models.ProjectStatusOnHold, nil)
	require.NoError(t, err)
	require.NotNil(t, got.ActualCompletionDate)
}

func TestListEmptyReturnsEmptySlice(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	customers, err := st.Customers.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}
