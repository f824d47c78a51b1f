package handler

import (
	"net/http"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// GeoHandler exposes the state, city and area hierarchy.
type GeoHandler struct {
	geoService service.GeoService
}

func NewGeoHandler(geoService service.GeoService) *GeoHandler {
	return &GeoHandler{geoService: geoService}
}

func (h *GeoHandler) RegisterRoutes(router *gin.RouterGroup) {
	states := router.Group("/api/states")
	{
		states.POST("", h.CreateState)
		states.GET("", h.ListStates)
		states.GET("/:id", h.GetState)
		states.PUT("/:id", h.UpdateState)
		states.DELETE("/:id", h.DeleteState)
	}

	cities := router.Group("/api/cities")
	{
		cities.POST("", h.CreateCity)
		cities.GET("", h.ListCities)
		cities.GET("/:id", h.GetCity)
		cities.GET("/state/:state_id", h.ListCitiesByState)
		cities.PUT("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)
	}

	areas := router.Group("/api/areas")
	{
		areas.POST("", h.CreateArea)
		areas.GET("", h.ListAreas)
		areas.GET("/:id", h.GetArea)
		areas.GET("/city/:city_id", h.ListAreasByCity)
		areas.PUT("/:id", h.UpdateArea)
		areas.DELETE("/:id", h.DeleteArea)
	}
}

// CreateState creates a state
// @Summary      Create state
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        payload  body      service.StateRequest  true  "State payload"
// @Success      201      {object}  response.Response{data=service.StateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/states [post]
func (h *GeoHandler) CreateState(c *gin.Context) {
	var req service.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	state, err := h.geoService.CreateState(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, "create state", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, state))
}

// ListStates returns every state
// @Summary      List states
// @Tags         geo
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/states [get]
func (h *GeoHandler) ListStates(c *gin.Context) {
	states, err := h.geoService.ListStates(c.Request.Context())
	if err != nil {
		response.FromError(c, "list states", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, states))
}

// GetState returns a single state
// @Summary      Get state
// @Tags         geo
// @Produce      json
// @Param        id   path      string  true  "State ID"
// @Success      200  {object}  response.Response{data=service.StateResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/states/{id} [get]
func (h *GeoHandler) GetState(c *gin.Context) {
	state, err := h.geoService.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "get state", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// UpdateState renames a state
// @Summary      Update state
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "State ID"
// @Param        payload  body      service.StateRequest  true  "State payload"
// @Success      200      {object}  response.Response{data=service.StateResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/states/{id} [put]
func (h *GeoHandler) UpdateState(c *gin.Context) {
	var req service.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	state, err := h.geoService.UpdateState(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, "update state", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, state))
}

// DeleteState removes a state
// @Summary      Delete state
// @Tags         geo
// @Produce      json
// @Param        id   path      string  true  "State ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/states/{id} [delete]
func (h *GeoHandler) DeleteState(c *gin.Context) {
	if err := h.geoService.DeleteState(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "delete state", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "State deleted successfully"}))
}

// CreateCity creates a city under an existing state
// @Summary      Create city
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CityRequest  true  "City payload"
// @Success      201      {object}  response.Response{data=service.CityResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/cities [post]
func (h *GeoHandler) CreateCity(c *gin.Context) {
	var req service.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	city, err := h.geoService.CreateCity(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, "create city", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, city))
}

// ListCities returns every city with its parent state embedded
// @Summary      List cities
// @Tags         geo
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/cities [get]
func (h *GeoHandler) ListCities(c *gin.Context) {
	cities, err := h.geoService.ListCities(c.Request.Context())
	if err != nil {
		response.FromError(c, "list cities", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cities))
}

// GetCity returns a single city with its parent state embedded
// @Summary      Get city
// @Tags         geo
// @Produce      json
// @Param        id   path      string  true  "City ID"
// @Success      200  {object}  response.Response{data=service.CityResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/cities/{id} [get]
func (h *GeoHandler) GetCity(c *gin.Context) {
	city, err := h.geoService.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "get city", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, city))
}

// ListCitiesByState returns cities under a state
// @Summary      List cities by state
// @Tags         geo
// @Produce      json
// @Param        state_id  path      string  true  "State ID"
// @Success      200       {object}  response.Response
// @Router       /api/cities/state/{state_id} [get]
func (h *GeoHandler) ListCitiesByState(c *gin.Context) {
	cities, err := h.geoService.ListCitiesByState(c.Request.Context(), c.Param("state_id"))
	if err != nil {
		response.FromError(c, "list cities by state", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cities))
}

// UpdateCity updates a city's name or parent state
// @Summary      Update city
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "City ID"
// @Param        payload  body      service.CityRequest  true  "City payload"
// @Success      200      {object}  response.Response{data=service.CityResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/cities/{id} [put]
func (h *GeoHandler) UpdateCity(c *gin.Context) {
	var req service.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	city, err := h.geoService.UpdateCity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, "update city", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, city))
}

// DeleteCity removes a city
// @Summary      Delete city
// @Tags         geo
// @Produce      json
// @Param        id   path      string  true  "City ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/cities/{id} [delete]
func (h *GeoHandler) DeleteCity(c *gin.Context) {
	if err := h.geoService.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "delete city", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "City deleted successfully"}))
}

// CreateArea creates an area under an existing city
// @Summary      Create area
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AreaRequest  true  "Area payload"
// @Success      201      {object}  response.Response{data=service.AreaResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/areas [post]
func (h *GeoHandler) CreateArea(c *gin.Context) {
	var req service.AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	area, err := h.geoService.CreateArea(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, "create area", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, area))
}

// ListAreas returns every area with its parent city embedded
// @Summary      List areas
// @Tags         geo
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/areas [get]
func (h *GeoHandler) ListAreas(c *gin.Context) {
	areas, err := h.geoService.ListAreas(c.Request.Context())
	if err != nil {
		response.FromError(c, "list areas", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, areas))
}

// GetArea returns a single area with its parent city embedded
// @Summary      Get area
// @Tags         geo
// @Produce      json
// @Param        id   path      string  true  "Area ID"
// @Success      200  {object}  response.Response{data=service.AreaResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/areas/{id} [get]
func (h *GeoHandler) GetArea(c *gin.Context) {
	area, err := h.geoService.GetArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "get area", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, area))
}

// ListAreasByCity returns areas under a city
// @Summary      List areas by city
// @Tags         geo
// @Produce      json
// @Param        city_id  path      string  true  "City ID"
// @Success      200      {object}  response.Response
// @Router       /api/areas/city/{city_id} [get]
func (h *GeoHandler) ListAreasByCity(c *gin.Context) {
	areas, err := h.geoService.ListAreasByCity(c.Request.Context(), c.Param("city_id"))
	if err != nil {
		response.FromError(c, "list areas by city", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, areas))
}

// UpdateArea updates an area's name or parent city
// @Summary      Update area
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Area ID"
// @Param        payload  body      service.AreaRequest  true  "Area payload"
// @Success      200      {object}  response.Response{data=service.AreaResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/areas/{id} [put]
func (h *GeoHandler) UpdateArea(c *gin.Context) {
	var req service.AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	area, err := h.geoService.UpdateArea(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, "update area", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, area))
}

// DeleteArea removes an area
// @Summary      Delete area
// @Tags         geo
// @Produce      json
// @Param        id   path      string  true  "Area ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/areas/{id} [delete]
func (h *GeoHandler) DeleteArea(c *gin.Context) {
	if err := h.geoService.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "delete area", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Area deleted successfully"}))
}
