package location

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"campusfood/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/locations", h.GetAll)
	public.GET("/locations/top", h.GetTop)
	public.GET("/locations/categories", h.GetCategories)
	public.GET("/locations/search", h.Search)
	public.GET("/locations/:id", h.GetByID)
}

func (h *Handler) GetAll(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		items, err := h.svc.GetByCategory(c.Request.Context(), category)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to retrieve locations")
			return
		}
		response.Success(c, http.StatusOK, items)
		return
	}

	items, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to retrieve locations")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetTop(c *gin.Context) {
	items, err := h.svc.GetTop(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to retrieve top locations")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.svc.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to retrieve categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Search term is required")
		return
	}

	items, err := h.svc.Search(c.Request.Context(), term)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Search failed")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid location ID")
		return
	}

	view, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Location not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to retrieve location")
		return
	}
	response.Success(c, http.StatusOK, view)
}
