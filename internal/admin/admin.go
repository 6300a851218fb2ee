// Package admin serves the password-protected dashboard over the tracking
// data. Sessions are HS256 tokens in an HttpOnly cookie scoped to /admin.
package admin

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/tracking"
)

const (
	cookieName = "admin_token"
	cookiePath = "/admin"
	tokenTTL   = 24 * time.Hour
	issuer     = "portfolio-admin"
)

var ErrInvalidToken = errors.New("invalid admin token")

// Store is the tracking data the dashboard reads.
type Store interface {
	Stats(ctx context.Context) (*tracking.Stats, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
	Hash(value string) string
}

// Config holds the admin credentials and cookie settings.
type Config struct {
	Username      string
	Password      string
	Secret        string
	Retention     time.Duration
	SecureCookies bool
}

// Handler serves the admin routes.
type Handler struct {
	username     string
	passwordHash []byte
	secret       []byte
	retention    time.Duration
	secure       bool
	store        Store
	lib          *content.Library
	log          *slog.Logger
	now          func() time.Time
}

// New hashes the configured password and prepares the token secret. An
// empty secret is replaced by a random one.
func New(cfg Config, store Store, lib *content.Library, log *slog.Logger) (*Handler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
	}

	return &Handler{
		username:     cfg.Username,
		passwordHash: hash,
		secret:       secret,
		retention:    cfg.Retention,
		secure:       cfg.SecureCookies,
		store:        store,
		lib:          lib,
		log:          log,
		now:          time.Now,
	}, nil
}

// CheckCredentials reports whether username and password match.
func (h *Handler) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// IssueToken signs a session token for username.
func (h *Handler) IssueToken(username string) (string, error) {
	now := h.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// VerifyToken checks the signature, issuer and expiry of token.
func (h *Handler) VerifyToken(token string) error {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(h.now),
	)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	return nil
}

// AuthMiddleware redirects to the login page unless the request carries a
// valid session cookie.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || h.VerifyToken(token) != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Register attaches the admin routes to r.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/admin/login", h.loginPage)
	r.POST("/admin/login", h.login)
	r.GET("/admin/logout", h.logout)

	group := r.Group("/admin")
	group.Use(h.AuthMiddleware())
	group.GET("/dashboard", h.dashboard)
	group.GET("/api/stats", h.statsJSON)
	group.GET("/export/stats", h.exportStats)
	group.POST("/privacy/cleanup", h.cleanup)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"title": "Admin Login",
	})
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.CheckCredentials(username, password) {
		h.log.Warn("failed admin login attempt", "client", h.store.Hash(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.IssueToken(username)
	if err != nil {
		h.log.Error("error issuing admin token", "error", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"error": "Failed to sign in",
		})
		return
	}

	c.SetCookie(cookieName, token, int(tokenTTL.Seconds()), cookiePath, "", h.secure, true)
	h.log.Info("admin login successful", "client", h.store.Hash(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, cookiePath, "", h.secure, true)
	h.log.Info("admin logout", "client", h.store.Hash(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/login")
}
