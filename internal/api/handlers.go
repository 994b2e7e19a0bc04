// Package api exposes the review dashboard HTTP API.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/drafting"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/store"
)

// defaultListLimit caps list responses when the client does not ask for a
// specific page size.
const defaultListLimit = 50

// AnnouncementStore is the announcement persistence the handlers need.
type AnnouncementStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Announcement, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]domain.Announcement, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Update(ctx context.Context, a *domain.Announcement) error
	StatusCounts(ctx context.Context) (map[string]int, error)
}

// PostStore is the draft persistence the handlers need.
type PostStore interface {
	Create(ctx context.Context, post *domain.Post) error
	GetLatest(ctx context.Context, announcementID int64) (*domain.Post, error)
	Approve(ctx context.Context, id int64, approvedBy string) error
	MarkPosted(ctx context.Context, id int64, linkedInURL string) error
}

// Scanner triggers an aggregation run on demand.
type Scanner interface {
	Scan(ctx context.Context) (int, error)
}

// Handler handles HTTP requests for the dashboard API.
type Handler struct {
	announcements AnnouncementStore
	posts         PostStore
	drafter       *drafting.Drafter
	scanner       Scanner
	log           logger.Logger
}

// NewHandler creates a new API handler. scanner may be nil when the serve
// process runs without aggregation.
func NewHandler(announcements AnnouncementStore, posts PostStore, drafter *drafting.Drafter, scanner Scanner, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		announcements: announcements,
		posts:         posts,
		drafter:       drafter,
		scanner:       scanner,
		log:           log,
	}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ListAnnouncements handles GET /api/v1/announcements.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	status := c.DefaultQuery("status", domain.StatusPending)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}

	announcements, err := h.announcements.ListByStatus(c.Request.Context(), status, limit)
	if err != nil {
		h.log.Error("failed to list announcements", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list announcements"})
		return
	}
	if announcements == nil {
		announcements = []domain.Announcement{}
	}

	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"total":         len(announcements),
	})
}

// GetAnnouncement handles GET /api/v1/announcements/:id.
func (h *Handler) GetAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.announcements.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateAnnouncementRequest carries reviewer edits.
type UpdateAnnouncementRequest struct {
	PersonName      string `json:"person_name"`
	NewTitle        string `json:"new_title"`
	PreviousTitle   string `json:"previous_title"`
	PreviousCompany string `json:"previous_company"`
	Action          string `json:"action"`
}

// UpdateAnnouncement handles PUT /api/v1/announcements/:id.
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.announcements.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	if req.PersonName != "" {
		a.PersonName = req.PersonName
	}
	if req.NewTitle != "" {
		a.NewTitle = req.NewTitle
	}
	if req.PreviousTitle != "" {
		a.PreviousTitle = req.PreviousTitle
	}
	if req.PreviousCompany != "" {
		a.PreviousCompany = req.PreviousCompany
	}
	if req.Action != "" {
		a.Action = req.Action
	}

	if updateErr := h.announcements.Update(c.Request.Context(), a); updateErr != nil {
		h.respondStoreError(c, updateErr)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ApproveAnnouncement handles POST /api/v1/announcements/:id/approve. It
// moves the record to approved and creates the first post draft.
func (h *Handler) ApproveAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	a, err := h.announcements.GetByID(ctx, id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	if statusErr := h.announcements.UpdateStatus(ctx, id, domain.StatusApproved); statusErr != nil {
		h.respondStoreError(c, statusErr)
		return
	}

	post := &domain.Post{
		AnnouncementID: id,
		Content:        h.drafter.Draft(a),
	}
	if createErr := h.posts.Create(ctx, post); createErr != nil {
		h.log.Error("failed to draft post",
			logger.Int64("announcement_id", id),
			logger.Error(createErr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "approved, but drafting failed"})
		return
	}

	h.log.Info("announcement approved",
		logger.Int64("id", id),
		logger.String("person", a.PersonName))
	c.JSON(http.StatusOK, gin.H{"announcement_id": id, "post": post})
}

// RejectAnnouncement handles POST /api/v1/announcements/:id/reject.
func (h *Handler) RejectAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.announcements.UpdateStatus(c.Request.Context(), id, domain.StatusRejected); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcement_id": id, "status": domain.StatusRejected})
}

// GetPost handles GET /api/v1/announcements/:id/post.
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.posts.GetLatest(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// RegeneratePost handles POST /api/v1/announcements/:id/post. A new draft
// version is created from the current announcement fields.
func (h *Handler) RegeneratePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	a, err := h.announcements.GetByID(ctx, id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	post := &domain.Post{
		AnnouncementID: id,
		Content:        h.drafter.Draft(a),
	}
	if createErr := h.posts.Create(ctx, post); createErr != nil {
		h.respondStoreError(c, createErr)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ApprovePostRequest names the reviewer signing off.
type ApprovePostRequest struct {
	ApprovedBy string `json:"approved_by" binding:"required"`
}

// ApprovePost handles POST /api/v1/posts/:id/approve.
func (h *Handler) ApprovePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ApprovePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.posts.Approve(c.Request.Context(), id, req.ApprovedBy); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": id, "approved_by": req.ApprovedBy})
}

// MarkPostedRequest carries the live post URL.
type MarkPostedRequest struct {
	LinkedInURL string `json:"linkedin_url"`
}

// MarkPosted handles POST /api/v1/posts/:id/posted. The parent
// announcement moves to posted as well.
func (h *Handler) MarkPosted(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req MarkPostedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	if err := h.posts.MarkPosted(ctx, id, req.LinkedInURL); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": id, "status": domain.StatusPosted})
}

// TriggerScan handles POST /api/v1/scan.
func (h *Handler) TriggerScan(c *gin.Context) {
	if h.scanner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scanning not available"})
		return
	}

	stored, err := h.scanner.Scan(c.Request.Context())
	if err != nil {
		h.log.Error("manual scan failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": stored})
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	counts, err := h.announcements.StatusCounts(c.Request.Context())
	if err != nil {
		h.log.Error("failed to load stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": counts})
}

// pathID parses the :id path parameter, responding 400 itself on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.log.Error("storage operation failed", logger.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
