package response

import (
	"fmt"
	"html"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func SendAPIResponse(c *gin.Context, code int, success bool, message string, data any) {
	resp := APIResponse{
		Success:   success,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	c.JSON(code, resp)
}

// SendErrorPage writes a minimal styled HTML error page. Used by routes that
// serve browsers directly, where a JSON envelope would be unreadable.
func SendErrorPage(c *gin.Context, code int, title, message string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head><title>%s</title></head>
  <body style="font-family: Arial, sans-serif; text-align: center; padding: 50px;">
    <h2>%s</h2>
    <p>%s</p>
    <a href="/" style="color: #007bff; text-decoration: none;">&larr; Go back to home</a>
  </body>
</html>`, html.EscapeString(title), html.EscapeString(title), html.EscapeString(message))

	c.Data(code, "text/html; charset=utf-8", []byte(page))
}
