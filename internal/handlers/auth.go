package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"stroydoc/internal/flash"
	"stroydoc/internal/models"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": flash.Take(c),
		"next":    c.Query("next"),
	})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Add(c, flash.Danger, "Некорректные данные")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	user, err := h.users.ByUsername(c.Request.Context(), form.Username)
	if err != nil {
		// не раскрываем, логин был неверным или пароль
		flash.Add(c, flash.Danger, "Неверный логин или пароль")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		flash.Add(c, flash.Danger, "Неверный логин или пароль")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	next := form.Next
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}

func currentRole(c *gin.Context) models.UserRole {
	sess := sessions.Default(c)
	roleStr, _ := sess.Get("role").(string)
	return models.UserRole(roleStr)
}

func currentUsername(c *gin.Context) string {
	sess := sessions.Default(c)
	name, _ := sess.Get("username").(string)
	return name
}
