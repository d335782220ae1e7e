package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/config"
	"github.com/inkpress/backend/internal/service"
)

type RouterDeps struct {
	Cfg      config.Config
	Logger   *slog.Logger
	DB       Pinger
	Tokens   *service.TokenService
	Auth     *service.AuthService
	Users    *service.UserService
	Blogs    *service.BlogService
}

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	errs := &errorWriter{
		logger: deps.Logger,
		dev:    deps.Cfg.App.Env == "development",
	}

	cookies := CookieConfig{
		Domain:        deps.Cfg.Auth.CookieDomain,
		Secure:        deps.Cfg.App.Env == "production",
		AccessMaxAge:  int(deps.Tokens.AccessTTL().Seconds()),
		RefreshMaxAge: int(deps.Tokens.RefreshTTL().Seconds()),
	}

	authHandler := NewAuthHandler(deps.Auth, cookies, errs)
	userHandler := NewUserHandler(deps.Users, deps.Cfg.Upload.TempDir, errs)
	blogHandler := NewBlogHandler(deps.Blogs, deps.Cfg.Upload.TempDir, errs)

	authRequired := AuthMiddleware(deps.Tokens)

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.GET("/health", Health(deps.DB))

	users := r.Group("/users")
	{
		users.POST("/signup", userHandler.Signup)
		users.POST("/login", authHandler.Login)
		users.POST("/refresh-access", authHandler.Refresh)
		users.POST("/logout", authRequired, authHandler.Logout)
		users.GET("/profile", authRequired, userHandler.Profile)
		users.PATCH("/update-profile", authRequired, userHandler.UpdateProfile)
	}

	blogs := r.Group("/blogs", authRequired)
	{
		blogs.POST("/blog", blogHandler.Create)
		blogs.PATCH("/update-blog/:id", blogHandler.Update)
		blogs.GET("/blog/:id", blogHandler.Get)
		blogs.GET("/my-blogs", blogHandler.MyBlogs)
		blogs.GET("/active-blogs", blogHandler.ActiveBlogs)
		blogs.DELETE("/blog/:id", blogHandler.Delete)
	}

	return r
}
