package notify

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FlashCookie is the cookie that carries pending banners across a redirect.
const FlashCookie = "notice"

// flashExpiry bounds how long a pending banner survives without a page view.
const flashExpiry = time.Minute

// flashClaims are the signed contents of the flash cookie.
type flashClaims struct {
	Notifications []Notification `json:"notifications"`
	jwt.RegisteredClaims
}

// Flash hands banners raised while handling a form post to the page render
// that follows the redirect.
type Flash struct {
	secret []byte
}

// NewFlash returns a Flash that signs cookies with secret.
func NewFlash(secret string) *Flash {
	return &Flash{secret: []byte(secret)}
}

// Push appends n to the banners pending for the next page view.
func (f *Flash) Push(w http.ResponseWriter, r *http.Request, n Notification) error {
	pending := f.read(r)
	pending = append(pending, n)

	token, err := f.sign(pending)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(flashExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Later pushes in the same request read the updated list.
	setRequestCookie(r, token)
	return nil
}

// Pop returns the pending banners and clears the cookie. A missing, expired
// or tampered cookie yields no banners.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []Notification {
	if _, err := r.Cookie(FlashCookie); err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return f.read(r)
}

func (f *Flash) read(r *http.Request) []Notification {
	cookie, err := r.Cookie(FlashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	pending, err := f.parse(cookie.Value)
	if err != nil {
		return nil
	}
	return pending
}

func (f *Flash) sign(pending []Notification) (string, error) {
	now := time.Now()
	claims := flashClaims{
		Notifications: pending,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(flashExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(f.secret)
	if err != nil {
		return "", fmt.Errorf("signing flash: %w", err)
	}
	return signed, nil
}

func (f *Flash) parse(tokenStr string) ([]Notification, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &flashClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return f.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing flash: %w", err)
	}

	claims, ok := token.Claims.(*flashClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid flash")
	}
	return claims.Notifications, nil
}

// setRequestCookie replaces the flash cookie on r.
func setRequestCookie(r *http.Request, value string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, c := range cookies {
		if c.Name != FlashCookie {
			r.AddCookie(c)
		}
	}
	r.AddCookie(&http.Cookie{Name: FlashCookie, Value: value})
}
