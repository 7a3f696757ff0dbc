package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stroydoc/internal/access"
	"stroydoc/internal/flash"
	"stroydoc/internal/models"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAccess навешивается на маршрут раздела до обработчика.
// При отказе: предупреждение + редирект на дашборд, данные не трогаются.
func RequireAccess(cat *access.Category, op access.Op) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get("role").(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !cat.Allowed(models.UserRole(roleStr), op) {
			flash.Add(c, flash.Warning, "Доступ запрещён")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
