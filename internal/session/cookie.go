// Package session keeps the signed-in admin in a JWT-signed cookie. The
// session has no server-side state and no expiry: it lasts until logout or
// until the browser drops the cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "physio_session"
	cookieAge  = 10 * 365 * 24 * time.Hour
)

var ErrNoSession = errors.New("no session")

// Store is the durable client-side session storage.
type Store interface {
	Load(r *http.Request) (*core.Session, error)
	Save(w http.ResponseWriter, s *core.Session) error
	Clear(w http.ResponseWriter)
}

type claims struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	AllowedPages []string `json:"allowedPages"`
	jwt.RegisteredClaims
}

type CookieStore struct {
	secret []byte
	secure bool
	now    func() time.Time
}

func NewCookieStore(secret string, secure bool) *CookieStore {
	return &CookieStore{secret: []byte(secret), secure: secure, now: time.Now}
}

// Load returns ErrNoSession when the cookie is absent and an error wrapping
// the parse failure when it was tampered with or signed by another secret.
func (c *CookieStore) Load(r *http.Request) (*core.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	cl, ok := token.Claims.(*claims)
	if !ok || !token.Valid || cl.Subject == "" {
		return nil, errors.New("invalid session claims")
	}

	pages := cl.AllowedPages
	if pages == nil {
		pages = []string{}
	}
	return &core.Session{
		ID:           cl.Subject,
		Email:        cl.Email,
		Name:         cl.Name,
		Role:         cl.Role,
		AllowedPages: pages,
	}, nil
}

func (c *CookieStore) Save(w http.ResponseWriter, s *core.Session) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:        s.Email,
		Name:         s.Name,
		Role:         s.Role,
		AllowedPages: s.AllowedPages,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  s.ID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  c.now().Add(cookieAge),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (c *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
