// Package usecase implements the merchandise catalogue.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/besteffort"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

const defaultQuantity = 1

// ProductRepository abstracts product persistence.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	// FindFeatured returns featured products that are in stock.
	FindFeatured(ctx context.Context) ([]entity.Product, error)
	FindByCategory(ctx context.Context, category string) ([]entity.Product, error)
	// FindByID returns ErrProductNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Save(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}

// ImageStore stores product images given as data URIs.
type ImageStore interface {
	UploadDataURI(ctx context.Context, uri string) (string, error)
	Destroy(ctx context.Context, url string) error
}

// CreateInput holds a new product. Nil Quantity means one item and nil
// IsFeatured means featured.
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Images      []string
	Category    string
	Quantity    *int
	IsFeatured  *bool
}

// UpdateInput is a partial product edit.
type UpdateInput struct {
	Name        patch.Field[string]
	Description patch.Field[string]
	Price       patch.Field[float64]
	Images      patch.Field[[]string]
	Category    patch.Field[string]
	Quantity    patch.Field[int]
	IsFeatured  patch.Field[bool]
}

type productFields struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,max=255"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}

type productUsecase struct {
	products  ProductRepository
	images    ImageStore
	validator *validation.Validator
}

// NewProductUsecase creates a product usecase.
func NewProductUsecase(products ProductRepository, images ImageStore, v *validation.Validator) *productUsecase {
	return &productUsecase{products: products, images: images, validator: v}
}

func (u *productUsecase) validate(ctx context.Context, p *entity.Product) error {
	return u.validator.Struct(ctx, productFields{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Quantity:    p.Quantity,
	})
}

// List returns every product.
func (u *productUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.products.FindAll(ctx)
}

// Featured returns featured products that are in stock.
func (u *productUsecase) Featured(ctx context.Context) ([]entity.Product, error) {
	products, err := u.products.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	inStock := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Quantity > 0 {
			inStock = append(inStock, p)
		}
	}
	return inStock, nil
}

// ByCategory returns the products of one category.
func (u *productUsecase) ByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return u.products.FindByCategory(ctx, category)
}

// Create stores a product, uploading data URI images first.
func (u *productUsecase) Create(ctx context.Context, in CreateInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Quantity:    defaultQuantity,
		IsFeatured:  true,
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if err := u.validate(ctx, product); err != nil {
		return nil, err
	}
	product.Normalize()

	images, err := u.storeImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}
	product.Images = images

	if err := u.products.Create(ctx, product); err != nil {
		u.destroyImages(ctx, uploadedOnly(in.Images, images))
		return nil, err
	}
	return product, nil
}

// Edit applies the present fields. A non-empty image list replaces the
// current one; data URIs in it are uploaded.
func (u *productUsecase) Edit(ctx context.Context, id uint, in UpdateInput) (*entity.Product, error) {
	if err := errors.Join(
		in.Name.NotNull("name"),
		in.Description.NotNull("description"),
		in.Price.NotNull("price"),
		in.Images.NotNull("images"),
		in.Category.NotNull("category"),
		in.Quantity.NotNull("quantity"),
		in.IsFeatured.NotNull("isFeatured"),
	); err != nil {
		return nil, err
	}
	product, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		product.Name = in.Name.Value
	}
	if in.Description.Set {
		product.Description = in.Description.Value
	}
	if in.Price.Set {
		product.Price = in.Price.Value
	}
	if in.Category.Set {
		product.Category = in.Category.Value
	}
	if in.Quantity.Set {
		product.Quantity = in.Quantity.Value
	}
	if in.IsFeatured.Set {
		product.IsFeatured = in.IsFeatured.Value
	}
	if err := u.validate(ctx, product); err != nil {
		return nil, err
	}
	product.Normalize()

	var uploaded []string
	if in.Images.HasValue() && len(in.Images.Value) > 0 {
		images, err := u.storeImages(ctx, in.Images.Value)
		if err != nil {
			return nil, err
		}
		uploaded = uploadedOnly(in.Images.Value, images)
		product.Images = images
	}

	if err := u.products.Save(ctx, product); err != nil {
		u.destroyImages(ctx, uploaded)
		return nil, err
	}
	return product, nil
}

// ToggleFeatured flips the featured flag. A product without stock cannot
// be featured.
func (u *productUsecase) ToggleFeatured(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsFeatured && product.Quantity <= 0 {
		return nil, ErrNoStock
	}
	product.IsFeatured = !product.IsFeatured
	if err := u.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product and, best-effort, its images.
func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	product, err := u.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.products.Delete(ctx, id); err != nil {
		return err
	}
	u.destroyImages(ctx, product.Images)
	return nil
}

// storeImages uploads data URIs and keeps other references as given.
func (u *productUsecase) storeImages(ctx context.Context, images []string) ([]string, error) {
	out := make([]string, 0, len(images))
	for i, img := range images {
		if !strings.HasPrefix(img, "data:") {
			out = append(out, img)
			continue
		}
		url, err := u.images.UploadDataURI(ctx, img)
		if err != nil {
			u.destroyImages(ctx, uploadedOnly(images[:i], out))
			return nil, fmt.Errorf("upload image %d: %w", i, err)
		}
		out = append(out, url)
	}
	return out, nil
}

func (u *productUsecase) destroyImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		besteffort.Do(ctx, "destroy_product_image", func(ctx context.Context) error {
			return u.images.Destroy(ctx, url)
		})
	}
}

// uploadedOnly returns the stored urls whose source was a data URI.
func uploadedOnly(sources, stored []string) []string {
	var out []string
	for i, src := range sources {
		if i < len(stored) && strings.HasPrefix(src, "data:") {
			out = append(out, stored[i])
		}
	}
	return out
}
