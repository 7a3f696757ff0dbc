package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stroydoc/internal/access"
	"stroydoc/internal/flash"
)

func (h *Handler) Dashboard(c *gin.Context) {
	role := currentRole(c)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"username":   currentUsername(c),
		"role":       string(role),
		"categories": access.ViewableBy(role),
		"flashes":    flash.Take(c),
	})
}
