// Package middleware provides the cross-cutting gin middleware chain:
// request ids, access logging and response language selection.
package middleware

import (
	"github.com/gin-gonic/gin"

	"taskmaster/pkg/translator"
)

const contextLang = "lang"

// Language sets the response language from the Accept-Language header,
// defaulting to English.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set(contextLang, lang)
		c.Next()
	}
}

// GetLang returns the language bound for this request.
func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(contextLang); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
