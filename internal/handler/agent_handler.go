package handler

import (
	"net/http"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/middleware"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AgentHandler exposes the agent-gated car mutation endpoints. Every route
// requires a valid token; the role and ownership checks run in the service
// so a missing car reports 404 before authorization is considered.
type AgentHandler struct {
	carService service.CarService
}

func NewAgentHandler(carService service.CarService) *AgentHandler {
	return &AgentHandler{carService: carService}
}

func (h *AgentHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	agents := router.Group("/api/agents", authn)
	{
		agents.POST("/add_car", h.AddCar)
		agents.PUT("/update_car/:id", h.UpdateCar)
		agents.DELETE("/delete_car/:id", h.DeleteCar)
		agents.GET("/cars/:user_id", h.ListCars)
	}
}

// AddCar creates a car owned by the authenticated agent
// @Summary      Agent add car
// @Tags         agents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AgentCarRequest  true  "Car payload"
// @Success      201      {object}  response.Response{data=service.CarResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/agents/add_car [post]
func (h *AgentHandler) AddCar(c *gin.Context) {
	agent, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	var req service.AgentCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	car, err := h.carService.AgentAddCar(c.Request.Context(), agent, req)
	if err != nil {
		response.FromError(c, "agent add car", err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, car))
}

// UpdateCar updates a car the agent owns
// @Summary      Agent update car
// @Tags         agents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Car ID"
// @Param        payload  body      service.UpdateCarRequest  true  "Update payload"
// @Success      200      {object}  response.Response{data=service.CarResponse}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/agents/update_car/{id} [put]
func (h *AgentHandler) UpdateCar(c *gin.Context) {
	agent, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	var req service.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	car, err := h.carService.AgentUpdateCar(c.Request.Context(), agent, c.Param("id"), req)
	if err != nil {
		response.FromError(c, "agent update car", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// DeleteCar removes a car the agent owns
// @Summary      Agent delete car
// @Tags         agents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Car ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/agents/delete_car/{id} [delete]
func (h *AgentHandler) DeleteCar(c *gin.Context) {
	agent, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	if err := h.carService.AgentDeleteCar(c.Request.Context(), agent, c.Param("id")); err != nil {
		response.FromError(c, "agent delete car", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Car deleted successfully"}))
}

// ListCars lists the cars owned by the given agent
// @Summary      Agent cars
// @Tags         agents
// @Security     BearerAuth
// @Produce      json
// @Param        user_id  path      string  true  "Agent user ID"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/agents/cars/{user_id} [get]
func (h *AgentHandler) ListCars(c *gin.Context) {
	cars, err := h.carService.AgentListCars(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.FromError(c, "agent list cars", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, cars))
}
