package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/octa-app/fengshui-backend/internal/domain/analysis"
	"github.com/octa-app/fengshui-backend/internal/domain/auth"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
	"github.com/octa-app/fengshui-backend/internal/infra/media"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc       auth.Service
	profileSvc    profile.Service
	analysisSvc   analysis.Service
	photos        media.Storage
	maxImageBytes int64
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, profileSvc profile.Service, analysisSvc analysis.Service, photos media.Storage, maxImageBytes int64, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc:       authSvc,
		profileSvc:    profileSvc,
		analysisSvc:   analysisSvc,
		photos:        photos,
		maxImageBytes: maxImageBytes,
		logger:        logger.With("component", "http.handler"),
	}
}

// Register creates a new email/password account.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	view, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Login issues a token pair for valid credentials.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OAuthLogin signs a user in with a provider id_token.
func (h *Handler) OAuthLogin(c *gin.Context) {
	var req auth.OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.OAuthLogin(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new pair.
func (h *Handler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing token", nil))
		return
	}
	view, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateProfile computes and stores a natal profile.
func (h *Handler) CreateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req profile.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	created, err := h.profileSvc.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProfiles returns the user's profiles, newest first.
func (h *Handler) ListProfiles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profiles, err := h.profileSvc.List(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": profiles})
}

// GetProfile returns one profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	found, err := h.profileSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateProfile changes the mutable profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	updated, err := h.profileSvc.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProfile removes a profile.
func (h *Handler) DeleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.profileSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitAnalysis runs a workspace feng-shui analysis.
func (h *Handler) SubmitAnalysis(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req analysis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	report, err := h.analysisSvc.Analyze(c.Request.Context(), userID, req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetReport returns a stored analysis report.
func (h *Handler) GetReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	report, err := h.analysisSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListReports returns the user's reports, newest first.
func (h *Handler) ListReports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reports, err := h.analysisSvc.List(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": reports})
}

// UploadPhoto stores a workspace photo and returns its serving path.
func (h *Handler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "file is required", err))
		return
	}
	if h.maxImageBytes > 0 && fileHeader.Size > h.maxImageBytes {
		abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "file_too_large", "photo exceeds the size limit", nil))
		return
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	if !media.AllowedImageType(mimeType) {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "unsupported_media_type", "photo must be jpeg, png or webp", nil))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read upload", err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "failed to read file", err))
		return
	}
	key := media.NewObjectKey(userID, mimeType)
	stored, err := h.photos.Put(c.Request.Context(), key, data, mimeType)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"key":  stored.Key,
		"size": stored.Size,
		"url":  "/api/v1/media/" + stored.Key,
	})
}

// GetPhoto streams a stored workspace photo.
func (h *Handler) GetPhoto(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	reader, mimeType, err := h.photos.Get(c.Request.Context(), key)
	if err != nil {
		if err == media.ErrNotFound {
			abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "photo not found", err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "fetch_failed", errMessage(err), err))
		return
	}
	defer reader.Close()
	c.DataFromReader(http.StatusOK, -1, mimeType, reader, nil)
}

func currentUserID(c *gin.Context) (string, bool) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing token", nil))
		return "", false
	}
	return strconv.FormatInt(claims.UserID, 10), true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
