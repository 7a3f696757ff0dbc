package flash

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Статусы сообщений соответствуют классам алертов в шаблонах.
const (
	Success = "success"
	Warning = "warning"
	Danger  = "danger"
	Error   = "error"
)

type Message struct {
	Severity string
	Text     string
}

const sep = "|"

// Add откладывает сообщение до следующего отрисованного запроса.
func Add(c *gin.Context, severity, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(severity + sep + text)
	_ = sess.Save()
}

// Take забирает накопленные сообщения и очищает их в сессии.
func Take(c *gin.Context) []Message {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()

	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		parts := strings.SplitN(s, sep, 2)
		if len(parts) == 2 {
			out = append(out, Message{Severity: parts[0], Text: parts[1]})
			continue
		}
		out = append(out, Message{Severity: Success, Text: s})
	}
	return out
}
