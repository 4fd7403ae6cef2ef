package middleware

import (
	"net/http"
	"strings"
	"time"

	"hraktech_web/services/i18n"

	"github.com/labstack/echo/v4"
)

// Locale middleware picks the interface language.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("fr")
func Locale(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := ""
			if q := c.QueryParam("lang"); q != "" {
				lang = i18n.Normalize(q)
				if lang == "" {
					lang = i18n.Default()
				}
				SetLanguageCookie(c, lang, secure)
			} else if cookie, err := c.Cookie("lang"); err == nil {
				lang = i18n.Normalize(cookie.Value)
			}

			if lang == "" {
				lang = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set("locale", lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))
			return next(c)
		}
	}
}

// fromAcceptLanguage returns the first supported language in header order.
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		if lang := i18n.Normalize(part); lang != "" {
			return lang
		}
	}
	return i18n.Default()
}

// SetLanguageCookie sets the language cookie
func SetLanguageCookie(c echo.Context, lang string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     "lang",
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour), // 1 year
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.Default()
}
