package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink/backend/internal/service"
)

// ExerciseTypeInput defines the structure for creating or updating a catalog entry.
type ExerciseTypeInput struct {
	Name        string `json:"name" binding:"required" example:"Running"`
	Description string `json:"description" example:"Outdoor or treadmill running"`
}

// ExerciseTypeHandler serves the exercise-type catalog.
type ExerciseTypeHandler struct {
	types *service.ExerciseTypeService
}

// NewExerciseTypeHandler constructs an ExerciseTypeHandler.
func NewExerciseTypeHandler(types *service.ExerciseTypeService) *ExerciseTypeHandler {
	return &ExerciseTypeHandler{types: types}
}

// CreateExerciseType godoc
// @Summary      Create exercise type
// @Description  Adds a catalog entry. Admin only.
// @Tags         exercise-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ExerciseTypeInput true "Exercise type"
// @Success      201  {object}  models.ExerciseType
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /exercise-types [post]
func (h *ExerciseTypeHandler) CreateExerciseType(c *gin.Context) {
	var input ExerciseTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	et, err := h.types.Create(c.Request.Context(), actorID(c), service.ExerciseTypeInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, et)
}

// GetExerciseType godoc
// @Summary      Get exercise type
// @Tags         exercise-types
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Exercise type ID"
// @Success      200  {object}  models.ExerciseType
// @Failure      404  {object}  ErrorResponse
// @Router       /exercise-types/{id} [get]
func (h *ExerciseTypeHandler) GetExerciseType(c *gin.Context) {
	et, err := h.types.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

// ListExerciseTypes godoc
// @Summary      List exercise types
// @Tags         exercise-types
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.ExerciseType
// @Router       /exercise-types [get]
func (h *ExerciseTypeHandler) ListExerciseTypes(c *gin.Context) {
	types, err := h.types.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// UpdateExerciseType godoc
// @Summary      Update exercise type
// @Description  Renames or re-describes a catalog entry. Admin only.
// @Tags         exercise-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Exercise type ID"
// @Param        input body      ExerciseTypeInput  true  "Exercise type"
// @Success      200  {object}  models.ExerciseType
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /exercise-types/{id} [put]
func (h *ExerciseTypeHandler) UpdateExerciseType(c *gin.Context) {
	var input ExerciseTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	et, err := h.types.Update(c.Request.Context(), actorID(c), c.Param("id"), service.ExerciseTypeInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

// DeleteExerciseType godoc
// @Summary      Delete exercise type
// @Description  Removes a catalog entry. Admin only.
// @Tags         exercise-types
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Exercise type ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /exercise-types/{id} [delete]
func (h *ExerciseTypeHandler) DeleteExerciseType(c *gin.Context) {
	if err := h.types.Delete(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
