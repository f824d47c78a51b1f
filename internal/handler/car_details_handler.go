package handler

import (
	"net/http"
	"path/filepath"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CarDetailsHandler manages the 1:1 detail record attached to a car.
type CarDetailsHandler struct {
	carService service.CarService
	uploadDir  string
}

func NewCarDetailsHandler(carService service.CarService, uploadDir string) *CarDetailsHandler {
	return &CarDetailsHandler{carService: carService, uploadDir: uploadDir}
}

func (h *CarDetailsHandler) RegisterRoutes(router *gin.RouterGroup) {
	details := router.Group("/api/car-details")
	{
		details.POST("/", h.UpsertDetails)
		details.GET("/:car_id", h.GetCarWithDetails)
	}
}

// UpsertDetails creates or merges the detail record for a car
// @Summary      Upsert car details
// @Tags         car-details
// @Accept       multipart/form-data
// @Produce      json
// @Param        car_id       formData  string  true   "Car ID"
// @Param        description  formData  string  false  "Description"
// @Param        features     formData  string  false  "Feature (repeatable)"
// @Param        accessories  formData  string  false  "Accessory (repeatable)"
// @Param        image        formData  file    false  "Image file"
// @Success      200  {object}  response.Response{data=model.CarDetails}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/car-details/ [post]
func (h *CarDetailsHandler) UpsertDetails(c *gin.Context) {
	carID := c.PostForm("car_id")
	if carID == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "missing required field 'car_id'"))
		return
	}

	req := service.CarDetailsRequest{
		CarID:       carID,
		Description: c.PostForm("description"),
		Features:    c.PostFormArray("features"),
		Accessories: c.PostFormArray("accessories"),
	}

	// Image is optional. The stored name is generated, never the
	// client's, so uploads cannot collide or escape the upload dir.
	if file, err := c.FormFile("image"); err == nil {
		ext := filepath.Ext(file.Filename)
		dest := filepath.Join(h.uploadDir, uuid.NewString()+ext)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to save image"))
			return
		}
		req.ImagePath = dest
	}

	details, err := h.carService.AddCarDetails(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, "upsert car details", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, details))
}

// GetCarWithDetails returns the car document with detail fields merged in
// @Summary      Get car with details
// @Tags         car-details
// @Produce      json
// @Param        car_id  path      string  true  "Car ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/car-details/{car_id} [get]
func (h *CarDetailsHandler) GetCarWithDetails(c *gin.Context) {
	merged, err := h.carService.GetCarWithDetails(c.Request.Context(), c.Param("car_id"))
	if err != nil {
		response.FromError(c, "get car with details", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, merged))
}
