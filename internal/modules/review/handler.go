package review

import (
	"errors"
	"net/http"
	"strconv"

	"campusfood/internal/pkg/response"
	"campusfood/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// topReviewsLimit bounds the "top reviews" fast path.
const topReviewsLimit = 3

type Handler struct {
	svc   *Service
	query *QueryService
}

func NewHandler(svc *Service, query *QueryService) *Handler {
	return &Handler{svc: svc, query: query}
}

func (h *Handler) RegisterRoutes(public, optional, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/locations/:id/reviews", h.List)
		public.GET("/locations/:id/reviews/top", h.Top)
	}

	// Optional auth: submissions without a session run as the default
	// anonymous identity.
	if optional != nil {
		optional.POST("/reviews", h.Create)
	}

	if protected != nil {
		protected.GET("/reviews/me", h.MyReviews)
		protected.DELETE("/reviews/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input", fields)
		return
	}

	userID := c.GetInt64("user_id")

	rv, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrEmptyText):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "CONFLICT", "You have already reviewed this location")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) List(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || locationID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid location ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	sortBy := c.Query("sortBy")

	result, err := h.query.List(c.Request.Context(), locationID, page, pageSize, sortBy)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Error retrieving reviews")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Top(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || locationID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid location ID")
		return
	}

	items, err := h.query.Top(c.Request.Context(), locationID, topReviewsLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Error retrieving reviews")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) MyReviews(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	items, err := h.query.ByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Error retrieving reviews")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Delete(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || reviewID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), reviewID, userID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can delete only your own reviews")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
