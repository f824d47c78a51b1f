package handler

import (
	"net/http"
	"strconv"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/pagination"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CarHandler struct {
	carService service.CarService
}

func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) RegisterRoutes(router *gin.RouterGroup) {
	cars := router.Group("/api/cars")
	{
		cars.POST("/create_car", h.CreateCar)
		cars.GET("/get_cars", h.ListCars)
		cars.GET("/get_car/:id", h.GetCar)
		cars.GET("/user/:user_id", h.ListCarsByUser)
		cars.PUT("/update_car/:id", h.UpdateCar)
		cars.DELETE("/delete_car/:id", h.DeleteCar)
	}
}

// CreateCar creates a car listing from form fields
// @Summary      Create car
// @Tags         cars
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        make       formData  string  true   "Make"
// @Param        model      formData  string  true   "Model"
// @Param        price      formData  string  true   "Price"
// @Param        color      formData  string  true   "Color"
// @Param        userId     formData  string  true   "Owner user ID"
// @Param        cityId     formData  string  true   "City ID"
// @Param        kmsDriven  formData  int     true   "Kilometers driven"
// @Success      201  {object}  response.Response{data=service.CarResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/cars/create_car [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	req, err := h.bindCreateForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), *req)
	if err != nil {
		response.FromError(c, "create car", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, car))
}

// ListCars returns a paginated list of car listings
// @Summary      List cars
// @Tags         cars
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response
// @Router       /api/cars/get_cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	params := pagination.Parse(c)

	cars, total, err := h.carService.ListCars(c.Request.Context(), params.Skip, int64(params.Limit))
	if err != nil {
		response.FromError(c, "list cars", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"cars":  cars,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// GetCar returns a single car by id
// @Summary      Get car
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Car ID"
// @Success      200  {object}  response.Response{data=service.CarResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/cars/get_car/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.carService.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "get car", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// ListCarsByUser returns all cars owned by a user
// @Summary      List cars by user
// @Tags         cars
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/cars/user/{user_id} [get]
func (h *CarHandler) ListCarsByUser(c *gin.Context) {
	cars, err := h.carService.ListCarsByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.FromError(c, "list cars by user", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cars))
}

// UpdateCar applies a partial update to a car from form fields
// @Summary      Update car
// @Tags         cars
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id         path      string  true   "Car ID"
// @Param        make       formData  string  false  "Make"
// @Param        model      formData  string  false  "Model"
// @Param        price      formData  string  false  "Price"
// @Param        color      formData  string  false  "Color"
// @Param        cityId     formData  string  false  "City ID"
// @Param        kmsDriven  formData  int     false  "Kilometers driven"
// @Success      200  {object}  response.Response{data=service.CarResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/cars/update_car/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	req, err := h.bindUpdateForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		response.FromError(c, "update car", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// DeleteCar removes a car listing and its detail record
// @Summary      Delete car
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Car ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/cars/delete_car/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.carService.DeleteCar(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "delete car", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Car deleted successfully"}))
}

// bindCreateForm collects the required creation form fields, reporting the
// first one that is missing or malformed.
func (h *CarHandler) bindCreateForm(c *gin.Context) (*service.CreateCarRequest, error) {
	req := &service.CreateCarRequest{
		Make:   c.PostForm("make"),
		Model:  c.PostForm("model"),
		Color:  c.PostForm("color"),
		UserID: c.PostForm("userId"),
		CityID: c.PostForm("cityId"),
	}
	for name, value := range map[string]string{
		"make": req.Make, "model": req.Model, "color": req.Color,
		"userId": req.UserID, "cityId": req.CityID,
	} {
		if value == "" {
			return nil, errMissingField(name)
		}
	}

	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		return nil, errInvalidField("price")
	}
	req.Price = price

	kms, err := strconv.Atoi(c.PostForm("kmsDriven"))
	if err != nil {
		return nil, errInvalidField("kmsDriven")
	}
	req.KmsDriven = kms

	return req, nil
}

// bindUpdateForm collects only the form fields that are present, so
// untouched columns stay as they are.
func (h *CarHandler) bindUpdateForm(c *gin.Context) (*service.UpdateCarRequest, error) {
	req := &service.UpdateCarRequest{}

	if v, ok := c.GetPostForm("make"); ok {
		req.Make = &v
	}
	if v, ok := c.GetPostForm("model"); ok {
		req.Model = &v
	}
	if v, ok := c.GetPostForm("color"); ok {
		req.Color = &v
	}
	if v, ok := c.GetPostForm("cityId"); ok {
		req.CityID = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errInvalidField("price")
		}
		req.Price = &price
	}
	if v, ok := c.GetPostForm("kmsDriven"); ok {
		kms, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidField("kmsDriven")
		}
		req.KmsDriven = &kms
	}

	return req, nil
}
