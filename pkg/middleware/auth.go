package middleware

import (
	"errors"
	"net/http"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"
	"github.com/aminafridi/PhysioCare-sub000/internal/session"
	applog "github.com/aminafridi/PhysioCare-sub000/pkg/logger"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

const sessionKey = "Session"

// RequireAdmin ensures the request carries a valid admin session. The account
// is re-read on every request so role and page changes apply without a new
// login; a refreshed session is written back to the cookie. Only a deleted
// account ends the session.
func RequireAdmin(sessions session.Store, auth *service.AuthService, logger *zap.Logger) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := sessions.Load(e.Request)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				logger.Info("Discarding invalid session cookie", zap.Error(err))
				sessions.Clear(e.Response)
			}
			return e.Redirect(http.StatusSeeOther, "/login")
		}

		fresh, err := auth.Refresh(e.Request.Context(), sess)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			logger.Info("Session account no longer available", zap.String("user_id", sess.ID))
			sessions.Clear(e.Response)
			return e.Redirect(http.StatusSeeOther, "/login")
		case err != nil:
			// Store unreachable: trust the signed cookie until it answers again.
			logger.Warn("Could not refresh admin session", zap.String("user_id", sess.ID), zap.Error(err))
			fresh = sess
		}

		if !service.SameSession(sess, fresh) {
			if err := sessions.Save(e.Response, fresh); err != nil {
				logger.Error("Failed to refresh session cookie", zap.Error(err))
			}
		}

		e.Set(sessionKey, fresh)
		e.Request = e.Request.WithContext(applog.With(e.Request.Context(), logger, zap.String("user_id", fresh.ID)))
		return e.Next()
	}
}

// RequirePage gates a route on the session's allowed pages. Admins without
// access are sent to their first allowed page.
func RequirePage(page string) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := SessionFrom(e)
		if sess.CanAccess(page) {
			return e.Next()
		}

		if home := HomePage(sess); home != "" {
			return e.Redirect(http.StatusSeeOther, PagePath(home)+"?error=You+do+not+have+access+to+that+page")
		}
		return e.Redirect(http.StatusSeeOther, "/admin/forbidden")
	}
}

// SessionFrom returns the session stored by RequireAdmin, or nil.
func SessionFrom(e *core.RequestEvent) *domain.Session {
	sess, _ := e.Get(sessionKey).(*domain.Session)
	return sess
}
