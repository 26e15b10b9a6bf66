package utils

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"litrevu/internal/shared/config"
)

const (
	// SessionTokenCookie carries the signed session token.
	SessionTokenCookie = "session_token"
	// FlashCookie carries a one-shot informational message across a redirect,
	// standing in for a framework message store. Consumed on the next render.
	FlashCookie = "flash"

	flashMaxAge = 60 // seconds; a flash only needs to survive one redirect
)

// SetSessionCookie sets the session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieCfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(SessionTokenCookie, token, maxAge, cookieCfg.Path, cookieCfg.Domain, cookieCfg.Secure, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, cookieCfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(SessionTokenCookie, "", -1, cookieCfg.Path, cookieCfg.Domain, cookieCfg.Secure, true)
}

// GetSessionToken reads the session token cookie, returning "" when absent.
func GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// SetFlash stores a one-shot message delivered with the next rendered page.
func SetFlash(c *gin.Context, cookieCfg config.CookieConfig, message string) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(FlashCookie, url.QueryEscape(message), flashMaxAge, cookieCfg.Path, cookieCfg.Domain, cookieCfg.Secure, true)
}

// ConsumeFlash returns the pending flash message, clearing it.
func ConsumeFlash(c *gin.Context, cookieCfg config.CookieConfig) string {
	raw, err := c.Cookie(FlashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(FlashCookie, "", -1, cookieCfg.Path, cookieCfg.Domain, cookieCfg.Secure, true)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
