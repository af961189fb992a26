package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/pkg/broker"

	"go.uber.org/zap"
)

// Compiled-in fallback account, accepted only when no stored user has the email.
const (
	DefaultAdminEmail    = "admin@physiocare.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminID       = "default-admin"
	DefaultAdminName     = "Administrator"

	MinPasswordLength = 6
)

type AuthService struct {
	users  core.AdminUserRepository
	broker *broker.SegmentedBroker
	logger *zap.Logger
}

func NewAuthService(users core.AdminUserRepository, eventBroker *broker.SegmentedBroker, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, broker: eventBroker, logger: logger}
}

// DefaultSession is the superadmin session of the compiled-in account.
func DefaultSession() *core.Session {
	return &core.Session{
		ID:           DefaultAdminID,
		Email:        DefaultAdminEmail,
		Name:         DefaultAdminName,
		Role:         core.RoleSuperadmin,
		AllowedPages: slices.Clone(core.AllPages),
	}
}

// Login checks stored accounts first. A stored account with a wrong password
// fails outright; the default pair is only tried when no account matched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*core.Session, error) {
	email = strings.TrimSpace(email)

	if user := s.users.GetByEmail(ctx, email); user != nil {
		if user.Password != password {
			s.logger.Info("Login rejected", zap.String("email", email))
			return nil, core.ErrInvalidCredentials
		}
		s.logger.Info("Admin logged in", zap.String("user_id", user.ID))
		return core.NewSession(user), nil
	}

	if email == DefaultAdminEmail && password == DefaultAdminPassword {
		s.logger.Warn("Default admin account used")
		return DefaultSession(), nil
	}

	s.logger.Info("Login rejected", zap.String("email", email))
	return nil, core.ErrInvalidCredentials
}

// Refresh re-reads the account behind sess so role and page changes apply
// on the next request. Only a deleted account yields ErrNotFound; a store
// failure is returned as is so callers can keep the session.
func (s *AuthService) Refresh(ctx context.Context, sess *core.Session) (*core.Session, error) {
	if sess == nil {
		return nil, core.ErrNotFound
	}
	if sess.ID == DefaultAdminID {
		return DefaultSession(), nil
	}

	user, err := s.users.Find(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	fresh := core.NewSession(user)
	if !SameSession(sess, fresh) && s.broker != nil {
		s.broker.Publish(broker.ChannelUser, fresh.ID, broker.Event{
			Type:      broker.EventSessionUpdated,
			Timestamp: time.Now().Unix(),
			Data: map[string]any{
				"role":         fresh.Role,
				"allowedPages": fresh.AllowedPages,
			},
		})
	}
	return fresh, nil
}

// ChangePassword verifies current against the stored account before
// writing next. The compiled-in account cannot be changed.
func (s *AuthService) ChangePassword(ctx context.Context, sess *core.Session, current, next, confirm string) error {
	if sess == nil {
		return core.ErrInvalidCredentials
	}
	if sess.ID == DefaultAdminID {
		return core.ErrDefaultAccountReadOnly
	}

	errs := core.ValidationErrors{}
	required(errs, "currentPassword", current, "Enter your current password")
	if len(next) < MinPasswordLength {
		errs.Add("newPassword", "Password must be at least 6 characters")
	}
	if next != confirm {
		errs.Add("confirmPassword", "Passwords do not match")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	user := s.users.GetByID(ctx, sess.ID)
	if user == nil || user.Password != current {
		return core.ValidationErrors{"currentPassword": "Current password is incorrect"}
	}

	if err := s.users.Update(ctx, user.ID, core.Fields{"password": next}); err != nil {
		return err
	}
	s.logger.Info("Admin password changed", zap.String("user_id", user.ID))
	return nil
}

// SameSession reports whether two sessions carry the same identity and access.
func SameSession(a, b *core.Session) bool {
	return a.Email == b.Email &&
		a.Name == b.Name &&
		a.Role == b.Role &&
		slices.Equal(a.AllowedPages, b.AllowedPages)
}
