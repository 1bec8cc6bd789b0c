package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/secmon-lab/riskmatrix/pkg/utils/errutil"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
)

// SessionCookieName is the cookie carrying the browser session ID
const SessionCookieName = "riskmatrix_session"

// accessLogger logs every request and records its latency
func accessLogger(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
			ctx := logging.With(r.Context(), logger)

			defer func() {
				elapsed := time.Since(start)
				m.ObserveRequest(r.Method, ww.Status(), elapsed)
				logger.Info("access",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", elapsed,
					"remote", r.RemoteAddr,
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

type ctxSessionKey struct{}

// sessionMiddleware resumes the session named by the cookie, or starts a
// new one and issues its cookie
func sessionMiddleware(sessions *usecase.SessionUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id model.SessionID
			if c, err := r.Cookie(SessionCookieName); err == nil {
				id = model.SessionID(c.Value)
			}

			session, err := sessions.Start(r.Context(), id, r.Header.Get("Accept-Language"))
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
				return
			}

			if session.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    session.ID.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ctxSessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(ctx context.Context) *model.Session {
	session, _ := ctx.Value(ctxSessionKey{}).(*model.Session)
	return session
}
