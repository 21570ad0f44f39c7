package i18n

import "github.com/gin-gonic/gin"

const localizerKey = "localizer"

// Middleware resolves the request language and stores a Localizer in the gin context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, persist := ResolveTag(c.Request)
		if persist {
			SetLanguageCookie(c.Writer, tag)
		}
		c.Set(localizerKey, NewLocalizer(tag, nil))
		c.Next()
	}
}

// FromContext returns the request Localizer, or an English one when the middleware did not run.
func FromContext(c *gin.Context) *Localizer {
	if v, ok := c.Get(localizerKey); ok {
		if loc, ok := v.(*Localizer); ok {
			return loc
		}
	}
	return NewLocalizer(Default(), nil)
}
