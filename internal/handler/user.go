package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/service"
	"github.com/inkpress/backend/internal/upload"
	"github.com/inkpress/backend/internal/validate"
)

type UserHandler struct {
	svc     *service.UserService
	tempDir string
	errs    *errorWriter
}

func NewUserHandler(svc *service.UserService, tempDir string, errs *errorWriter) *UserHandler {
	return &UserHandler{svc: svc, tempDir: tempDir, errs: errs}
}

// Signup godoc
// @Summary Register a new user with an avatar
// @Tags users
// @Accept mpfd
// @Produce json
// @Param fullname formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param file formData file true "Avatar image"
// @Success 201 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	localPath, contentType, err := stageFile(c, h.tempDir)
	if err != nil {
		writeStageError(c, err)
		return
	}

	in, err := validate.Signup(
		c.PostForm("fullname"),
		c.PostForm("email"),
		c.PostForm("password"),
	)
	if err != nil {
		upload.SafeRemove(h.errs.logger, localPath)
		h.errs.write(c, err, "", "")
		return
	}

	if localPath == "" {
		fail(c, http.StatusBadRequest, "Avatar is required")
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), in, localPath, contentType)
	if err != nil {
		h.errs.write(c, err, "User not found", "User already exists. Please log in.")
		return
	}

	success(c, http.StatusCreated, "User created successfully", user)
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.svc.Profile(c.Request.Context(), GetAuthUserID(c))
	if err != nil {
		h.errs.write(c, err, "User not found", "")
		return
	}

	success(c, http.StatusOK, "User information fetched successfully", user)
}

// UpdateProfile godoc
// @Summary Update fullname and optionally replace the avatar
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param fullname formData string true "Full name"
// @Param file formData file false "Replacement avatar"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/update-profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	localPath, contentType, err := stageFile(c, h.tempDir)
	if err != nil {
		writeStageError(c, err)
		return
	}

	in, err := validate.Profile(c.PostForm("fullname"))
	if err != nil {
		upload.SafeRemove(h.errs.logger, localPath)
		h.errs.write(c, err, "", "")
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), GetAuthUserID(c), in, localPath, contentType)
	if err != nil {
		h.errs.write(c, err, "User not found", "")
		return
	}

	success(c, http.StatusOK, "User information updated successfully", user.Info())
}
