package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitlink/backend/internal/service"
)

// CreateActivityInput defines the structure for logging an activity.
type CreateActivityInput struct {
	UserID      string    `json:"user_id" binding:"required" example:"b9f2..."`
	Description string    `json:"description" binding:"required" example:"Ran 5km"`
	Duration    int       `json:"duration" binding:"required" example:"30"`
	Date        time.Time `json:"date" example:"2024-05-01T07:30:00Z"`
}

// UpdateActivityInput defines the structure for a partial activity update.
type UpdateActivityInput struct {
	Description *string    `json:"description" example:"Ran 10km"`
	Duration    *int       `json:"duration" example:"55"`
	Date        *time.Time `json:"date" example:"2024-05-01T07:30:00Z"`
}

// ActivityHandler serves activity CRUD and the friend feed.
type ActivityHandler struct {
	activities *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// CreateActivity godoc
// @Summary      Log an activity
// @Description  Creates an activity for the given owner. Only the owner or an admin may create it.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateActivityInput true "Activity"
// @Success      201  {object}  models.Activity
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var input CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activities.Create(c.Request.Context(), actorID(c), service.CreateActivityInput{
		UserID:      input.UserID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// GetActivity godoc
// @Summary      Get an activity
// @Description  Returns a single activity. Visible to its owner and admins.
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity ID"
// @Success      200  {object}  models.Activity
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activity, err := h.activities.Get(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// ListUserActivities godoc
// @Summary      List a user's activities
// @Description  Returns every activity owned by the given user. Restricted to the owner and admins.
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Owner User ID"
// @Success      200  {array}   models.Activity
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /users/{id}/activities [get]
func (h *ActivityHandler) ListUserActivities(c *gin.Context) {
	activities, err := h.activities.List(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// FriendFeed godoc
// @Summary      View a friend's activities
// @Description  Returns the given user's activities if the caller is their friend (or the owner, or an admin).
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Friend's User ID"
// @Success      200  {array}   models.Activity
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/activities/feed [get]
func (h *ActivityHandler) FriendFeed(c *gin.Context) {
	activities, err := h.activities.FriendFeed(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// UpdateActivity godoc
// @Summary      Update an activity
// @Description  Applies a partial update. Restricted to the owner and admins.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Activity ID"
// @Param        input body      UpdateActivityInput  true  "Fields to update"
// @Success      200  {object}  models.Activity
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var input UpdateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activities.Update(c.Request.Context(), actorID(c), c.Param("id"), service.UpdateActivityInput{
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// DeleteActivity godoc
// @Summary      Delete an activity
// @Description  Removes an activity. Restricted to the owner and admins.
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	if err := h.activities.Delete(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
