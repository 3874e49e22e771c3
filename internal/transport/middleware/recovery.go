package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/medvault/medvault-backend/pkg/ctxutil"
)

// Recovery turns a panic into a logged 500. A panic mid-deletion leaves the
// pipeline wherever it stopped, so the record names the account to retry.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.String("stack", string(debug.Stack())),
				}
				if accountID, ok := ctxutil.AccountIDFromCtx(ctx); ok {
					attrs = append(attrs, slog.String("account_id", accountID.String()))
				}
				logger.ErrorContext(ctx, "panic recovered", attrs...)

				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
