package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/service"
	"github.com/inkpress/backend/internal/upload"
	"github.com/inkpress/backend/internal/validate"
)

type BlogHandler struct {
	svc     *service.BlogService
	tempDir string
	errs    *errorWriter
}

func NewBlogHandler(svc *service.BlogService, tempDir string, errs *errorWriter) *BlogHandler {
	return &BlogHandler{svc: svc, tempDir: tempDir, errs: errs}
}

// Create godoc
// @Summary Create a blog with an image
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param slug formData string true "Slug (unique per owner)"
// @Param content formData string true "Body content"
// @Param status formData string false "active or inactive"
// @Param file formData file true "Blog image"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /blogs/blog [post]
func (h *BlogHandler) Create(c *gin.Context) {
	localPath, contentType, err := stageFile(c, h.tempDir)
	if err != nil {
		writeStageError(c, err)
		return
	}

	in, err := validate.Blog(
		c.PostForm("title"),
		c.PostForm("slug"),
		c.PostForm("content"),
		c.PostForm("status"),
	)
	if err != nil {
		upload.SafeRemove(h.errs.logger, localPath)
		h.errs.write(c, err, "", "")
		return
	}

	if localPath == "" {
		fail(c, http.StatusBadRequest, "Image is required")
		return
	}

	blog, err := h.svc.Create(c.Request.Context(), GetAuthUserID(c), in, localPath, contentType)
	if err != nil {
		h.errs.write(c, err, "User not found", "Blog already exists with the same slug value")
		return
	}

	success(c, http.StatusCreated, "Blog created successfully", blog)
}

// Update godoc
// @Summary Update a blog, optionally replacing its image
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param title formData string true "Title"
// @Param slug formData string true "Slug"
// @Param content formData string true "Body content"
// @Param status formData string false "active or inactive"
// @Param file formData file false "Replacement image"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /blogs/update-blog/{id} [patch]
func (h *BlogHandler) Update(c *gin.Context) {
	localPath, contentType, err := stageFile(c, h.tempDir)
	if err != nil {
		writeStageError(c, err)
		return
	}

	in, err := validate.Blog(
		c.PostForm("title"),
		c.PostForm("slug"),
		c.PostForm("content"),
		c.PostForm("status"),
	)
	if err != nil {
		upload.SafeRemove(h.errs.logger, localPath)
		h.errs.write(c, err, "", "")
		return
	}

	blog, err := h.svc.Update(c.Request.Context(), GetAuthUserID(c), c.Param("id"), in, localPath, contentType)
	if err != nil {
		h.errs.write(c, err, "Blog not found", "Blog already exists with the same slug in your collection")
		return
	}

	success(c, http.StatusOK, "Blog updated successfully", blog)
}

// Get godoc
// @Summary Get a blog by id
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /blogs/blog/{id} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errs.write(c, err, "Blog not found", "")
		return
	}

	success(c, http.StatusOK, "Blog data fetched successfully", blog)
}

// MyBlogs godoc
// @Summary List the authenticated user's blogs
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 30)"
// @Param page query int false "Page number"
// @Success 200 {object} model.Response
// @Router /blogs/my-blogs [get]
func (h *BlogHandler) MyBlogs(c *gin.Context) {
	page, limit := pagingParams(c)

	result, err := h.svc.ListOwned(c.Request.Context(), GetAuthUserID(c), page, limit)
	if err != nil {
		h.errs.write(c, err, "Blogs not found", "")
		return
	}

	success(c, http.StatusOK, "Blogs fetched successfully", result)
}

// ActiveBlogs godoc
// @Summary List all published blogs
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 30)"
// @Param page query int false "Page number"
// @Success 200 {object} model.Response
// @Router /blogs/active-blogs [get]
func (h *BlogHandler) ActiveBlogs(c *gin.Context) {
	page, limit := pagingParams(c)

	result, err := h.svc.ListActive(c.Request.Context(), page, limit)
	if err != nil {
		h.errs.write(c, err, "Blogs not found", "")
		return
	}

	success(c, http.StatusOK, "Blogs fetched successfully", result)
}

// Delete godoc
// @Summary Delete a blog and its image
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.ErrorResponse
// @Router /blogs/blog/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetAuthUserID(c), c.Param("id")); err != nil {
		h.errs.write(c, err, "Blog not found", "")
		return
	}

	success(c, http.StatusOK, "Blog deleted successfully", nil)
}

func pagingParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
