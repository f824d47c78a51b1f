package service

import (
	"context"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type SubCategoryRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubCategoryResponse embeds the parent category; nil when the parent
// reference no longer resolves.
type SubCategoryResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Category *CategoryResponse `json:"category"`
}

// CategoryService manages listing categories and their sub-categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (*CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateSubCategory(ctx context.Context, req SubCategoryRequest) (*SubCategoryResponse, error)
	GetSubCategory(ctx context.Context, id string) (*SubCategoryResponse, error)
	ListSubCategories(ctx context.Context) ([]SubCategoryResponse, error)
	ListSubCategoriesByCategory(ctx context.Context, categoryID string) ([]SubCategoryResponse, error)
	UpdateSubCategory(ctx context.Context, id string, req SubCategoryRequest) (*SubCategoryResponse, error)
	DeleteSubCategory(ctx context.Context, id string) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService returns a new instance of CategoryService
func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func toCategoryResponse(cat *model.Category) *CategoryResponse {
	return &CategoryResponse{ID: cat.ID.Hex(), Name: cat.Name, Description: cat.Description}
}

func (s *categoryService) toSubCategoryResponse(ctx context.Context, sub *model.SubCategory) *SubCategoryResponse {
	resp := &SubCategoryResponse{ID: sub.ID.Hex(), Name: sub.Name}
	if cat, err := s.categories.GetCategory(ctx, sub.CategoryID); err == nil {
		resp.Category = toCategoryResponse(cat)
	}
	return resp
}

func (s *categoryService) CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	cat := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.CreateCategory(ctx, cat); err != nil {
		return nil, apperrors.Storage(err)
	}
	return toCategoryResponse(cat), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*CategoryResponse, error) {
	oid, err := parseID(id, "category")
	if err != nil {
		return nil, err
	}
	cat, err := s.categories.GetCategory(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Category not found")
	}
	return toCategoryResponse(cat), nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		responses = append(responses, *toCategoryResponse(&cats[i]))
	}
	return responses, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*CategoryResponse, error) {
	oid, err := parseID(id, "category")
	if err != nil {
		return nil, err
	}

	fields := bson.M{"name": req.Name}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if err := s.categories.UpdateCategory(ctx, oid, fields); err != nil {
		return nil, storageErr(err, "Category not found")
	}
	return s.GetCategory(ctx, id)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	oid, err := parseID(id, "category")
	if err != nil {
		return err
	}
	if err := s.categories.DeleteCategory(ctx, oid); err != nil {
		return storageErr(err, "Category not found")
	}
	return nil
}

func (s *categoryService) CreateSubCategory(ctx context.Context, req SubCategoryRequest) (*SubCategoryResponse, error) {
	categoryID, err := parseID(req.CategoryID, "category")
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
		return nil, storageErr(err, "Category not found")
	}

	sub := &model.SubCategory{Name: req.Name, CategoryID: categoryID}
	if err := s.categories.CreateSubCategory(ctx, sub); err != nil {
		return nil, apperrors.Storage(err)
	}
	return s.toSubCategoryResponse(ctx, sub), nil
}

func (s *categoryService) GetSubCategory(ctx context.Context, id string) (*SubCategoryResponse, error) {
	oid, err := parseID(id, "sub-category")
	if err != nil {
		return nil, err
	}
	sub, err := s.categories.GetSubCategory(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Sub-category not found")
	}
	return s.toSubCategoryResponse(ctx, sub), nil
}

func (s *categoryService) ListSubCategories(ctx context.Context) ([]SubCategoryResponse, error) {
	subs, err := s.categories.ListSubCategories(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]SubCategoryResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, *s.toSubCategoryResponse(ctx, &subs[i]))
	}
	return responses, nil
}

func (s *categoryService) ListSubCategoriesByCategory(ctx context.Context, categoryID string) ([]SubCategoryResponse, error) {
	oid, err := parseID(categoryID, "category")
	if err != nil {
		return nil, err
	}
	subs, err := s.categories.ListSubCategoriesByCategory(ctx, oid)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]SubCategoryResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, *s.toSubCategoryResponse(ctx, &subs[i]))
	}
	return responses, nil
}

func (s *categoryService) UpdateSubCategory(ctx context.Context, id string, req SubCategoryRequest) (*SubCategoryResponse, error) {
	oid, err := parseID(id, "sub-category")
	if err != nil {
		return nil, err
	}

	fields := bson.M{"name": req.Name}
	if req.CategoryID != "" {
		categoryID, err := parseID(req.CategoryID, "category")
		if err != nil {
			return nil, err
		}
		if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
			return nil, storageErr(err, "Category not found")
		}
		fields["category_id"] = categoryID
	}

	if err := s.categories.UpdateSubCategory(ctx, oid, fields); err != nil {
		return nil, storageErr(err, "Sub-category not found")
	}
	return s.GetSubCategory(ctx, id)
}

func (s *categoryService) DeleteSubCategory(ctx context.Context, id string) error {
	oid, err := parseID(id, "sub-category")
	if err != nil {
		return err
	}
	if err := s.categories.DeleteSubCategory(ctx, oid); err != nil {
		return storageErr(err, "Sub-category not found")
	}
	return nil
}
