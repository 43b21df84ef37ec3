package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/templui/folio/internal/model"
)

// SessionCookie carries the signed admin session.
const SessionCookie = "admin_token"

var ErrInvalidSession = errors.New("invalid session")

// SessionService signs admin sessions into an HttpOnly cookie.
type SessionService struct {
	jwtSecret    string
	isProduction bool
	jwtExpiry    time.Duration
}

func NewSessionService(jwtSecret string, isProduction bool, jwtExpiry time.Duration) *SessionService {
	return &SessionService{
		jwtSecret:    jwtSecret,
		isProduction: isProduction,
		jwtExpiry:    jwtExpiry,
	}
}

// Expiry is the cookie lifetime: the shorter of the configured expiry and the
// backend token's own expiry.
func (s *SessionService) Expiry(session *model.Session) time.Time {
	exp := time.Now().Add(s.jwtExpiry)
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(exp) {
		exp = session.ExpiresAt
	}
	return exp
}

func (s *SessionService) GenerateJWT(session *model.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"email": session.Email,
		"exp":   s.Expiry(session).Unix(),
		"iat":   time.Now().Unix(),
	}
	if session.AccessToken != "" {
		claims["tok"] = session.AccessToken
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *SessionService) VerifyJWT(tokenString string) (*model.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, ErrInvalidSession
	}
	email, _ := claims["email"].(string)
	accessToken, _ := claims["tok"].(string)

	session := &model.Session{
		ID:          sid,
		Email:       email,
		AccessToken: accessToken,
	}
	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}

func (s *SessionService) SetCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionService) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest returns the verified session carried by r, if any.
func (s *SessionService) FromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return s.VerifyJWT(cookie.Value)
}
