// internal/repository/product_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

var productSortFields = []string{"created_at", "name", "brand", "category"}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error)
	// Search matches name or brand case-insensitively; a non-empty tag must also be present.
	Search(ctx context.Context, query, tag string, limit int) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) List(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Product{})
		if params.Category != "" {
			query = query.Where("category = ?", params.Category)
		}
		if params.Search != "" {
			like := "%" + params.Search + "%"
			query = query.Where("name ILIKE ? OR brand ILIKE ?", like, like)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	query := utils.ApplySort(filtered(), params, productSortFields)
	if err := utils.ApplyPagination(query, params).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepo) FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at, id").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) Search(ctx context.Context, query, tag string, limit int) ([]models.Product, error) {
	like := "%" + query + "%"
	db := r.db.WithContext(ctx).Where("(name ILIKE ? OR brand ILIKE ?)", like, like)
	if tag != "" {
		db = db.Where("? = ANY(tags)", tag)
	}

	var products []models.Product
	err := db.Order("name").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.Product{}, id)
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}
