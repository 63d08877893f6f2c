package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/apperror"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

// memoryProducts is an in-memory ProductRepository.
type memoryProducts struct {
	products map[uint]*entity.Product
	nextID   uint
	SaveErr  error
}

func newMemoryProducts() *memoryProducts {
	return &memoryProducts{products: map[uint]*entity.Product{}}
}

func (m *memoryProducts) FindAll(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for id := uint(1); id <= m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memoryProducts) FindFeatured(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	all, _ := m.FindAll(ctx)
	for _, p := range all {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryProducts) FindByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var out []entity.Product
	all, _ := m.FindAll(ctx)
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryProducts) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryProducts) Create(ctx context.Context, product *entity.Product) error {
	m.nextID++
	product.ID = m.nextID
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *memoryProducts) Save(ctx context.Context, product *entity.Product) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *memoryProducts) Delete(ctx context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

// mockImageStore is a mock implementation of the ImageStore interface.
type mockImageStore struct {
	uploads    int
	failAfter  int
	destroyed  []string
	DestroyErr error
}

func (m *mockImageStore) UploadDataURI(ctx context.Context, uri string) (string, error) {
	if m.failAfter > 0 && m.uploads >= m.failAfter {
		return "", errors.New("disk full")
	}
	m.uploads++
	return fmt.Sprintf("/uploads/%d.png", m.uploads), nil
}

func (m *mockImageStore) Destroy(ctx context.Context, url string) error {
	m.destroyed = append(m.destroyed, url)
	return m.DestroyErr
}

func newTestUsecase() (*productUsecase, *memoryProducts, *mockImageStore) {
	repo := newMemoryProducts()
	images := &mockImageStore{}
	return NewProductUsecase(repo, images, validation.New()), repo, images
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func scarf() CreateInput {
	return CreateInput{Name: "Scarf", Description: "Wool", Price: 12.5, Category: "accessories"}
}

func TestProductUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to one featured item", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		p, err := uc.Create(ctx, scarf())

		require.NoError(t, err)
		assert.Equal(t, 1, p.Quantity)
		assert.True(t, p.IsFeatured)
		assert.Empty(t, p.Images)
	})

	t.Run("zero quantity is never featured", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		in := scarf()
		in.Quantity = intPtr(0)
		in.IsFeatured = boolPtr(true)

		p, err := uc.Create(ctx, in)

		require.NoError(t, err)
		assert.False(t, p.IsFeatured)
	})

	t.Run("data uris are uploaded, urls kept", func(t *testing.T) {
		uc, _, images := newTestUsecase()
		in := scarf()
		in.Images = []string{"data:image/png;base64,aGk=", "https://cdn.example.com/x.png"}

		p, err := uc.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, []string{"/uploads/1.png", "https://cdn.example.com/x.png"}, p.Images)
		assert.Equal(t, 1, images.uploads)
	})

	t.Run("failed upload removes earlier uploads", func(t *testing.T) {
		uc, repo, images := newTestUsecase()
		images.failAfter = 1
		in := scarf()
		in.Images = []string{"data:image/png;base64,aGk=", "data:image/png;base64,aGk="}

		_, err := uc.Create(ctx, in)

		assert.Error(t, err)
		assert.Equal(t, []string{"/uploads/1.png"}, images.destroyed)
		assert.Empty(t, repo.products)
	})

	t.Run("validation", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		in := scarf()
		in.Price = -1

		_, err := uc.Create(ctx, in)

		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Equal(t, "price must be at least 0", apperror.MessageOf(err))
	})
}

func TestProductUsecase_Featured_FiltersStock(t *testing.T) {
	uc, repo, _ := newTestUsecase()
	ctx := context.Background()
	_, err := uc.Create(ctx, scarf())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Stale", Quantity: 0, IsFeatured: true}))

	featured, err := uc.Featured(ctx)

	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Scarf", featured[0].Name)
}

func TestProductUsecase_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity to zero clears featured", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		p, err := uc.Create(ctx, scarf())
		require.NoError(t, err)

		edited, err := uc.Edit(ctx, p.ID, UpdateInput{Quantity: patch.Of(0)})

		require.NoError(t, err)
		assert.Equal(t, 0, edited.Quantity)
		assert.False(t, edited.IsFeatured)
		assert.Equal(t, "Scarf", edited.Name)
	})

	t.Run("null on required fields is rejected", func(t *testing.T) {
		tests := []struct {
			name    string
			in      UpdateInput
			wantMsg string
		}{
			{"price and quantity", UpdateInput{Price: patch.Null[float64](), Quantity: patch.Null[int]()}, "price cannot be null"},
			{"quantity", UpdateInput{Quantity: patch.Null[int]()}, "quantity cannot be null"},
			{"featured flag", UpdateInput{IsFeatured: patch.Null[bool]()}, "isFeatured cannot be null"},
			{"name", UpdateInput{Name: patch.Null[string]()}, "name cannot be null"},
			{"images", UpdateInput{Images: patch.Null[[]string]()}, "images cannot be null"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, repo, _ := newTestUsecase()
				in := scarf()
				qty := 4
				in.Quantity = &qty
				p, err := uc.Create(ctx, in)
				require.NoError(t, err)

				_, err = uc.Edit(ctx, p.ID, tt.in)

				assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
				assert.Equal(t, tt.wantMsg, apperror.MessageOf(err))
				stored := repo.products[p.ID]
				assert.Equal(t, 12.5, stored.Price)
				assert.Equal(t, 4, stored.Quantity)
				assert.True(t, stored.IsFeatured)
			})
		}
	})

	t.Run("empty image list keeps images", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		in := scarf()
		in.Images = []string{"/uploads/old.png"}
		p, err := uc.Create(ctx, in)
		require.NoError(t, err)

		edited, err := uc.Edit(ctx, p.ID, UpdateInput{Images: patch.Of([]string{})})

		require.NoError(t, err)
		assert.Equal(t, []string{"/uploads/old.png"}, edited.Images)
	})

	t.Run("new data uri images replace list", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		p, err := uc.Create(ctx, scarf())
		require.NoError(t, err)

		edited, err := uc.Edit(ctx, p.ID, UpdateInput{Images: patch.Of([]string{"data:image/png;base64,aGk="})})

		require.NoError(t, err)
		assert.Equal(t, []string{"/uploads/1.png"}, edited.Images)
	})

	t.Run("save failure removes new uploads", func(t *testing.T) {
		uc, repo, images := newTestUsecase()
		p, err := uc.Create(ctx, scarf())
		require.NoError(t, err)
		repo.SaveErr = errors.New("db down")

		_, err = uc.Edit(ctx, p.ID, UpdateInput{Images: patch.Of([]string{"data:image/png;base64,aGk="})})

		assert.Error(t, err)
		assert.Equal(t, []string{"/uploads/1.png"}, images.destroyed)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.Edit(ctx, 9, UpdateInput{})

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductUsecase_ToggleFeatured(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUsecase()
	in := scarf()
	in.Quantity = intPtr(0)
	empty, err := uc.Create(ctx, in)
	require.NoError(t, err)
	stocked, err := uc.Create(ctx, scarf())
	require.NoError(t, err)

	_, err = uc.ToggleFeatured(ctx, empty.ID)
	assert.ErrorIs(t, err, ErrNoStock)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	p, err := uc.ToggleFeatured(ctx, stocked.ID)
	require.NoError(t, err)
	assert.False(t, p.IsFeatured)

	p, err = uc.ToggleFeatured(ctx, stocked.ID)
	require.NoError(t, err)
	assert.True(t, p.IsFeatured)
}

func TestProductUsecase_Delete_DestroysImagesBestEffort(t *testing.T) {
	ctx := context.Background()
	uc, repo, images := newTestUsecase()
	images.DestroyErr = errors.New("gone")
	in := scarf()
	in.Images = []string{"/uploads/a.png", "/uploads/b.png"}
	p, err := uc.Create(ctx, in)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, p.ID))

	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png"}, images.destroyed)
	assert.Empty(t, repo.products)
	assert.ErrorIs(t, uc.Delete(ctx, p.ID), ErrProductNotFound)
}
