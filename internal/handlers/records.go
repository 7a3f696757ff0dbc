package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stroydoc/internal/access"
	"stroydoc/internal/flash"
	"stroydoc/internal/schema"
)

// СПИСОК / ПОИСК

func (h *Handler) List(cat *access.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))

		rows, err := h.records.Search(c.Request.Context(), cat, q)
		if err != nil {
			h.log.Error().Err(err).Str("category", cat.Slug).Msg("search failed")
			flash.Add(c, flash.Error, "Ошибка при чтении: "+err.Error())
			c.Redirect(http.StatusFound, "/")
			return
		}

		role := currentRole(c)
		c.HTML(http.StatusOK, "records.html", gin.H{
			"category": cat,
			"rows":     rows,
			"q":        q,
			"canEdit":  cat.Allowed(role, access.OpEdit),
			"username": currentUsername(c),
			"role":     string(role),
			"flashes":  flash.Take(c),
		})
	}
}

// ДОБАВЛЕНИЕ

func (h *Handler) Add(cat *access.Category) gin.HandlerFunc {
	listURL := "/" + cat.Slug

	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			flash.Add(c, flash.Error, "Некорректные данные формы.")
			c.Redirect(http.StatusFound, listURL)
			return
		}

		rec, err := schema.Validate(c.Request.Context(), cat.Fields, c.Request.PostForm, h.records)
		if err != nil {
			var vErr *schema.ValidationError
			if errors.As(err, &vErr) {
				flash.Add(c, flash.Error, vErr.Message)
			} else {
				// упала проверка ссылки в БД
				h.log.Error().Err(err).Str("category", cat.Slug).Msg("reference check failed")
				flash.Add(c, flash.Error, "Ошибка при вставке: "+err.Error())
			}
			c.Redirect(http.StatusFound, listURL)
			return
		}

		if _, err := h.records.Insert(c.Request.Context(), cat, rec); err != nil {
			h.log.Error().Err(err).Str("category", cat.Slug).Msg("insert failed")
			flash.Add(c, flash.Error, "Ошибка при вставке: "+err.Error())
			c.Redirect(http.StatusFound, listURL)
			return
		}

		flash.Add(c, flash.Success, "Запись успешно добавлена.")
		c.Redirect(http.StatusFound, listURL)
	}
}

// УДАЛЕНИЕ

func (h *Handler) Delete(cat *access.Category) gin.HandlerFunc {
	listURL := "/" + cat.Slug

	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			flash.Add(c, flash.Error, "Некорректный ID записи.")
			c.Redirect(http.StatusFound, listURL)
			return
		}

		if err := h.records.Delete(c.Request.Context(), cat, id); err != nil {
			h.log.Error().Err(err).Str("category", cat.Slug).Int64("id", id).Msg("delete failed")
			flash.Add(c, flash.Error, "Ошибка при удалении: "+err.Error())
			c.Redirect(http.StatusFound, listURL)
			return
		}

		flash.Add(c, flash.Success, "Запись удалена.")
		c.Redirect(http.StatusFound, listURL)
	}
}
