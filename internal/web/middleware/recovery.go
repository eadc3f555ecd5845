package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/freeplay/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Ошибка · freePlay</title></head>
<body>
<h1>Внутренняя ошибка сервера</h1>
<p>Что-то пошло не так. Попробуйте позже.</p>
<p><a href="/">На главную</a></p>
</body>
</html>`))
}
