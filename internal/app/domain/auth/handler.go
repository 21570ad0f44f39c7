package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

// AfterLoginPath is where a successful login lands.
const AfterLoginPath = "/admin"

type Handler struct {
	jwtConfig JWTConfig
	tokens    *Tokens
	devLogin  bool
	logger    *zap.Logger
}

func NewHandler(jwtConfig JWTConfig, devLogin bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{jwtConfig: jwtConfig, tokens: NewTokens(jwtConfig), devLogin: devLogin, logger: logger}
}

type loginForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
}

// UserID derives a stable user id from an email address so preferences
// survive between logins.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

// ShowLogin renders the sign-in page. The form only appears when dev login is on.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.loginPage("").Render(c.Writer); err != nil {
		h.logger.Error("Failed to render login page", zap.Error(err))
	}
}

// Login signs the submitted user in and redirects to the admin home.
func (h *Handler) Login(c *gin.Context) {
	if !h.devLogin {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("Invalid login form", zap.Error(err))
		c.Status(http.StatusUnprocessableEntity)
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := h.loginPage("Name and a valid email are required.").Render(c.Writer); err != nil {
			h.logger.Error("Failed to render login page", zap.Error(err))
		}
		return
	}

	userID := UserID(form.Email)
	token, err := h.tokens.Issue(userID, strings.TrimSpace(form.Name))
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, token, int(h.jwtConfig.TokenExpiration.Seconds()), "/", "", false, true)
	h.logger.Info("User logged in", zap.String("user_id", userID))
	c.Redirect(http.StatusFound, AfterLoginPath)
}

func (h *Handler) loginPage(problem string) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    "Sign in",
		Language: "en",
		Body: []g.Node{
			html.Main(html.Class("mx-auto mt-24 max-w-sm space-y-4"),
				html.H1(html.Class("text-xl font-semibold"), g.Text("Sign in")),
				g.If(problem != "", html.P(html.Class("text-danger-600"), html.Role("alert"), g.Text(problem))),
				g.If(!h.devLogin, html.P(g.Text("You have been signed out."))),
				g.If(h.devLogin, html.Form(html.Method("post"), html.Action("/auth/login"), html.Class("space-y-3"),
					html.Label(g.Text("Name"), html.Input(html.Type("text"), html.Name("name"), html.Required())),
					html.Label(g.Text("Email"), html.Input(html.Type("email"), html.Name("email"), html.Required())),
					html.Button(html.Type("submit"), g.Text("Sign in")),
				)),
			),
		},
	})
}
