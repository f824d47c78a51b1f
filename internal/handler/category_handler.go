package handler

import (
	"net/http"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/api/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	subs := router.Group("/api/subcategories")
	{
		subs.POST("", h.CreateSubCategory)
		subs.GET("", h.ListSubCategories)
		subs.GET("/:id", h.GetSubCategory)
		subs.GET("/category/:category_id", h.ListSubCategoriesByCategory)
		subs.PUT("/:id", h.UpdateSubCategory)
		subs.DELETE("/:id", h.DeleteSubCategory)
	}
}

// CreateCategory creates a listing category
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CategoryRequest  true  "Category payload"
// @Success      201      {object}  response.Response{data=service.CategoryResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	cat, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, "create category", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, cat))
}

// ListCategories returns every category
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, "list categories", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cats))
}

// GetCategory returns a single category
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response{data=service.CategoryResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "get category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cat))
}

// UpdateCategory updates a category
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Category ID"
// @Param        payload  body      service.CategoryRequest  true  "Category payload"
// @Success      200      {object}  response.Response{data=service.CategoryResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	cat, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, "update category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cat))
}

// DeleteCategory removes a category
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "delete category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Category deleted successfully"}))
}

// CreateSubCategory creates a sub-category under an existing category
// @Summary      Create sub-category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubCategoryRequest  true  "Sub-category payload"
// @Success      201      {object}  response.Response{data=service.SubCategoryResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/subcategories [post]
func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	var req service.SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sub, err := h.categoryService.CreateSubCategory(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, "create sub-category", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, sub))
}

// ListSubCategories returns every sub-category with its parent embedded
// @Summary      List sub-categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/subcategories [get]
func (h *CategoryHandler) ListSubCategories(c *gin.Context) {
	subs, err := h.categoryService.ListSubCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, "list sub-categories", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, subs))
}

// GetSubCategory returns a single sub-category with its parent embedded
// @Summary      Get sub-category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Sub-category ID"
// @Success      200  {object}  response.Response{data=service.SubCategoryResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/subcategories/{id} [get]
func (h *CategoryHandler) GetSubCategory(c *gin.Context) {
	sub, err := h.categoryService.GetSubCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "get sub-category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sub))
}

// ListSubCategoriesByCategory returns sub-categories under a category
// @Summary      List sub-categories by category
// @Tags         categories
// @Produce      json
// @Param        category_id  path      string  true  "Category ID"
// @Success      200          {object}  response.Response
// @Router       /api/subcategories/category/{category_id} [get]
func (h *CategoryHandler) ListSubCategoriesByCategory(c *gin.Context) {
	subs, err := h.categoryService.ListSubCategoriesByCategory(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		response.FromError(c, "list sub-categories by category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, subs))
}

// UpdateSubCategory updates a sub-category
// @Summary      Update sub-category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Sub-category ID"
// @Param        payload  body      service.SubCategoryRequest  true  "Sub-category payload"
// @Success      200      {object}  response.Response{data=service.SubCategoryResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/subcategories/{id} [put]
func (h *CategoryHandler) UpdateSubCategory(c *gin.Context) {
	var req service.SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sub, err := h.categoryService.UpdateSubCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, "update sub-category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sub))
}

// DeleteSubCategory removes a sub-category
// @Summary      Delete sub-category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Sub-category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/subcategories/{id} [delete]
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	if err := h.categoryService.DeleteSubCategory(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "delete sub-category", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Sub-category deleted successfully"}))
}
