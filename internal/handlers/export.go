package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stroydoc/internal/access"
	"stroydoc/internal/export"
	"stroydoc/internal/flash"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export отдаёт текущий листинг раздела (с учётом поиска) файлом xlsx.
func (h *Handler) Export(cat *access.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))

		rows, err := h.records.Search(c.Request.Context(), cat, q)
		if err != nil {
			h.log.Error().Err(err).Str("category", cat.Slug).Msg("export search failed")
			flash.Add(c, flash.Error, "Ошибка при чтении: "+err.Error())
			c.Redirect(http.StatusFound, "/"+cat.Slug)
			return
		}

		data, err := export.Workbook(cat, rows)
		if err != nil {
			h.log.Error().Err(err).Str("category", cat.Slug).Msg("export failed")
			flash.Add(c, flash.Error, "Ошибка при выгрузке: "+err.Error())
			c.Redirect(http.StatusFound, "/"+cat.Slug)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+cat.Slug+`.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, data)
	}
}
