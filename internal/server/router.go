package server

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"stroydoc/internal/access"
	"stroydoc/internal/config"
	"stroydoc/internal/handlers"
	"stroydoc/internal/middleware"
)

// display приводит значение ячейки к печатному виду:
// NUMERIC/TEXT из драйвера приходят как []byte, NULL — как nil.
func display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprint(v)
	}
}

func NewRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"display": display,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("stroydoc_session", store))

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/", h.Dashboard)
	auth.GET("/logout", h.Logout)

	// РАЗДЕЛЫ ДОКУМЕНТАЦИИ: список/поиск, выгрузка, добавление, удаление
	for _, cat := range access.Categories {
		auth.GET("/"+cat.Slug,
			middleware.RequireAccess(cat, access.OpView),
			h.List(cat),
		)
		auth.GET("/"+cat.Slug+"/export",
			middleware.RequireAccess(cat, access.OpView),
			h.Export(cat),
		)
		auth.POST("/"+cat.Singular+"/add",
			middleware.RequireAccess(cat, access.OpEdit),
			h.Add(cat),
		)
		auth.GET("/"+cat.Singular+"/delete/:id",
			middleware.RequireAccess(cat, access.OpEdit),
			h.Delete(cat),
		)
	}

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
