package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink/backend/internal/social"
)

// SendFriendRequestInput identifies the recipient by email.
type SendFriendRequestInput struct {
	Email string `json:"email" binding:"required,email" example:"friend@example.com"`
}

// FriendHandler serves the friend-request lifecycle.
type FriendHandler struct {
	graph *social.Graph
}

// NewFriendHandler constructs a FriendHandler.
func NewFriendHandler(graph *social.Graph) *FriendHandler {
	return &FriendHandler{graph: graph}
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to the user owning the given email.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendFriendRequestInput true "Recipient"
// @Success      201  {object}  models.FriendLink
// @Failure      400  {object}  ErrorResponse "Self-request or invalid input"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No user with that email"
// @Failure      409  {object}  ErrorResponse "Relation already exists"
// @Router       /friends/requests [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var input SendFriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.graph.SendFriendRequest(c.Request.Context(), actorID(c), input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request addressed to the caller.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  models.FriendLink
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the recipient"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/requests/{id}/accept [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	link, err := h.graph.AcceptFriendRequest(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// RejectRequest godoc
// @Summary      Reject friend request
// @Description  Rejects a pending friend request addressed to the caller. The request is deleted.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the recipient"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/requests/{id} [delete]
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	if err := h.graph.RejectFriendRequest(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFriend godoc
// @Summary      Remove friend
// @Description  Removes the friendship with the given user. Removing a non-friend is a no-op.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Friend's User ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/{id} [delete]
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	if err := h.graph.RemoveFriend(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFriends godoc
// @Summary      List friends
// @Description  Returns the caller's accepted friendships with the friend's profile.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   social.FriendView
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.graph.ListFriends(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// ListRequests godoc
// @Summary      List pending friend requests
// @Description  Returns pending requests addressed to the caller with the requester's profile.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   social.FriendView
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests [get]
func (h *FriendHandler) ListRequests(c *gin.Context) {
	requests, err := h.graph.ListPendingRequests(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
