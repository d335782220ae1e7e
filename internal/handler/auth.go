package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/model"
	"github.com/inkpress/backend/internal/service"
	"github.com/inkpress/backend/internal/validate"
)

type CookieConfig struct {
	Domain        string
	Secure        bool
	AccessMaxAge  int
	RefreshMaxAge int
}

type AuthHandler struct {
	svc     *service.AuthService
	cookies CookieConfig
	errs    *errorWriter
}

func NewAuthHandler(svc *service.AuthService, cookies CookieConfig, errs *errorWriter) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies, errs: errs}
}

// Login godoc
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, err := validate.Login(req.Email, req.Password)
	if err != nil {
		h.errs.write(c, err, "", "")
		return
	}

	user, pair, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		// Unknown email and wrong password render identically so the
		// endpoint cannot be used to enumerate accounts.
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidCredential) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.errs.write(c, err, "User not found", "")
		return
	}

	h.setAuthCookies(c, pair)
	success(c, http.StatusOK, "User login successful", model.LoginResponse{
		ID:           user.ID,
		Fullname:     user.Fullname,
		Email:        user.Email,
		Avatar:       user.Avatar,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh godoc
// @Summary Rotate the refresh token and issue a new pair
// @Tags users
// @Produce json
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /users/refresh-access [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	presented := tokenFromRequest(c, refreshCookieName)
	if presented == "" {
		fail(c, http.StatusUnauthorized, "Refresh token is not present. User needs to login again.")
		return
	}

	userID, pair, err := h.svc.Refresh(c.Request.Context(), presented)
	if err != nil {
		h.errs.write(c, err, "User not found", "")
		return
	}

	h.setAuthCookies(c, pair)
	success(c, http.StatusOK, "Access token renewed successfully", model.RefreshResponse{
		ID:           userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout godoc
// @Summary Logout
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response
// @Failure 401 {object} model.ErrorResponse
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := GetAuthUserID(c)

	if err := h.svc.Logout(c.Request.Context(), userID); err != nil {
		h.errs.write(c, err, "User not found", "")
		return
	}

	h.clearAuthCookies(c)
	success(c, http.StatusOK, "User logout successful", nil)
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair model.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookieName, pair.AccessToken, h.cookies.AccessMaxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken, h.cookies.RefreshMaxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookieName, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
}
