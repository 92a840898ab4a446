package handlers

import (
	"net/http"
	"strconv"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/dto"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookmarkHandler handles HTTP requests for bookmarks and folders
type BookmarkHandler struct {
	service bookmark.Service
}

// NewBookmarkHandler creates a new BookmarkHandler instance
func NewBookmarkHandler(service bookmark.Service) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// CreateBookmark godoc
// @Summary Create a new bookmark
// @Description Create a new bookmark with the provided information
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body dto.CreateBookmarkRequest true "Bookmark creation request"
// @Success 201 {object} dto.BookmarkResponse "Bookmark created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/bookmarks [post]
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBookmark(c.Request.Context(), bookmark.CreateBookmarkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		FolderID:    req.FolderID,
		Tags:        req.Tags,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrInvalidInput {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": BookmarkToResponse(created)})
}

// GetBookmark godoc
// @Summary Get a bookmark by ID
// @Description Get detailed information about a specific bookmark
// @Tags bookmarks
// @Produce json
// @Param id path string true "Bookmark ID" format(uuid)
// @Success 200 {object} dto.BookmarkResponse "Bookmark details"
// @Failure 404 {object} map[string]string "Bookmark not found"
// @Router /api/bookmarks/{id} [get]
func (h *BookmarkHandler) GetBookmark(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark ID"})
		return
	}

	b, err := h.service.GetBookmark(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrBookmarkNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": BookmarkToResponse(b)})
}

// ListBookmarks godoc
// @Summary List bookmarks
// @Description Get a filtered, paginated list of bookmarks
// @Tags bookmarks
// @Produce json
// @Param folder_id query string false "Filter by folder" format(uuid)
// @Param is_favorite query bool false "Filter by favorite flag"
// @Param search query string false "Search in title, URL and description"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.BookmarkListResponse "Bookmark list"
// @Router /api/bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	var filter bookmark.BookmarkFilter

	if raw := c.Query("folder_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder ID"})
			return
		}
		filter.FolderID = &id
	}
	if raw := c.Query("is_favorite"); raw != "" {
		fav, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_favorite value"})
			return
		}
		filter.IsFavorite = &fav
	}
	filter.Search = c.Query("search")
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	items, total, err := h.service.ListBookmarks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.BookmarkListResponse{
		Bookmarks:  BookmarksToResponse(items),
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}})
}

// UpdateBookmark godoc
// @Summary Update a bookmark
// @Description Apply a partial update to the bookmark with the given ID
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path string true "Bookmark ID" format(uuid)
// @Param bookmark body dto.UpdateBookmarkRequest true "Bookmark update request"
// @Success 200 {object} dto.BookmarkResponse "Updated bookmark"
// @Failure 404 {object} map[string]string "Bookmark not found"
// @Router /api/bookmarks/{id} [patch]
func (h *BookmarkHandler) UpdateBookmark(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark ID"})
		return
	}

	var req dto.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateBookmark(c.Request.Context(), id, bookmark.UpdateBookmarkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		FolderID:    req.FolderID,
		Tags:        req.Tags,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch err {
		case bookmark.ErrBookmarkNotFound:
			statusCode = http.StatusNotFound
		case bookmark.ErrInvalidInput:
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": BookmarkToResponse(updated)})
}

// DeleteBookmark godoc
// @Summary Delete a bookmark
// @Description Delete the bookmark with the given ID
// @Tags bookmarks
// @Param id path string true "Bookmark ID" format(uuid)
// @Success 204 "Bookmark deleted"
// @Failure 404 {object} map[string]string "Bookmark not found"
// @Router /api/bookmarks/{id} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark ID"})
		return
	}

	if err := h.service.DeleteBookmark(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrBookmarkNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// TrackClick godoc
// @Summary Record a bookmark click
// @Description Increment the bookmark's click counter, feeding the clicks analytics metric
// @Tags bookmarks
// @Param id path string true "Bookmark ID" format(uuid)
// @Success 204 "Click recorded"
// @Failure 404 {object} map[string]string "Bookmark not found"
// @Router /api/bookmarks/{id}/click [post]
func (h *BookmarkHandler) TrackClick(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark ID"})
		return
	}

	if err := h.service.TrackClick(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrBookmarkNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateFolder godoc
// @Summary Create a new folder
// @Description Create a folder, optionally nested under a parent
// @Tags folders
// @Accept json
// @Produce json
// @Param folder body dto.CreateFolderRequest true "Folder creation request"
// @Success 201 {object} dto.FolderResponse "Folder created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/folders [post]
func (h *BookmarkHandler) CreateFolder(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateFolder(c.Request.Context(), bookmark.CreateFolderInput{
		Name:     req.Name,
		Color:    req.Color,
		ParentID: req.ParentID,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrInvalidInput {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": FolderToResponse(created)})
}

// DeleteFolder godoc
// @Summary Delete a folder
// @Description Delete the folder with the given ID. Bookmarks in the folder are kept; widgets pointing at it are skipped in render.
// @Tags folders
// @Param id path string true "Folder ID" format(uuid)
// @Success 204 "Folder deleted"
// @Failure 404 {object} map[string]string "Folder not found"
// @Router /api/folders/{id} [delete]
func (h *BookmarkHandler) DeleteFolder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder ID"})
		return
	}

	if err := h.service.DeleteFolder(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrFolderNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFolder godoc
// @Summary Get a folder by ID
// @Description Get detailed information about a specific folder
// @Tags folders
// @Produce json
// @Param id path string true "Folder ID" format(uuid)
// @Success 200 {object} dto.FolderResponse "Folder details"
// @Failure 404 {object} map[string]string "Folder not found"
// @Router /api/folders/{id} [get]
func (h *BookmarkHandler) GetFolder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder ID"})
		return
	}

	f, err := h.service.GetFolder(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == bookmark.ErrFolderNotFound {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": FolderToResponse(f)})
}

// ListFolders godoc
// @Summary List folders
// @Description Get every folder in the hierarchy
// @Tags folders
// @Produce json
// @Success 200 {array} dto.FolderResponse "Folder list"
// @Router /api/folders [get]
func (h *BookmarkHandler) ListFolders(c *gin.Context) {
	folders, err := h.service.ListFolders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.FolderResponse, 0, len(folders))
	for i := range folders {
		out = append(out, FolderToResponse(&folders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
