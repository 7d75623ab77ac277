package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arcanusdsp/server/darkstar"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler handles the /account pages: login, logout, the profile
// and the email and password forms.
type AccountHandler struct {
	accounts *darkstar.Accounts
	chars    *darkstar.Characters
	sessions *mw.Sessions
	pages    *Pages
	hooks    *hook.Center
	logger   *zap.Logger
}

func NewAccountHandler(
	accounts *darkstar.Accounts,
	chars *darkstar.Characters,
	sessions *mw.Sessions,
	pages *Pages,
	hooks *hook.Center,
	logger *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		chars:    chars,
		sessions: sessions,
		pages:    pages,
		hooks:    hooks,
		logger:   logger,
	}
}

// LoginPage handles GET /account/login.
func (h *AccountHandler) LoginPage(c *gin.Context) {
	h.pages.Render(c, "account/login", Meta{
		Title:       "Login",
		Description: "Log into your account to access more features.",
	}, nil)
}

// Login handles POST /account/login.
func (h *AccountHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.pages.FlashRedirect(c, mw.FlashError, "Invalid account name or password!", "/account/login")
		return
	}

	acc, err := h.accounts.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		msg := "Failed to query database for login attempt."
		switch {
		case errors.Is(err, darkstar.ErrInvalidCredentials):
			msg = "Invalid account name or password!"
		case errors.Is(err, darkstar.ErrBanned):
			msg = "Cannot login; that account is banned."
		}
		h.logger.Info("login rejected", zap.String("login", username), zap.String("ip", c.ClientIP()), zap.Error(err))
		h.pages.FlashRedirect(c, mw.FlashError, msg, "/account/login")
		return
	}

	if err := h.sessions.Login(c, acc); err != nil {
		h.logger.Error("session start failed", zap.Int64("account_id", acc.ID), zap.Error(err))
		h.pages.FlashRedirect(c, mw.FlashError, "Failed to query database for login attempt.", "/account/login")
		return
	}
	h.trigger(c, hook.AfterLogin, acc.ID, nil)
	c.Redirect(http.StatusFound, "/account/profile")
}

// Logout handles GET /account/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	if user := mw.GetUser(c); user != nil {
		h.trigger(c, hook.AfterLogout, user.ID, nil)
	}
	h.sessions.Logout(c)
	c.Redirect(http.StatusFound, "/")
}

type profileAccount struct {
	ID             int64                       `json:"id"`
	Name           string                      `json:"name"`
	Email1         string                      `json:"email1"`
	Email2         string                      `json:"email2"`
	Priv           int                         `json:"priv"`
	Status         int                         `json:"status"`
	ContentIDs     int                         `json:"content_ids"`
	TimeLastModify interface{}                 `json:"timelastmodify"`
	Characters     []darkstar.AccountCharacter `json:"characters"`
}

// Profile handles GET /account/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	user := mw.GetUser(c)
	meta := Meta{Title: "Profile", Description: "View and manager your account."}

	chars, err := h.chars.ByAccountID(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Warn("profile characters failed", zap.Int64("account_id", user.ID), zap.Error(err))
		h.pages.Render(c, "account/profile", meta, gin.H{
			"errorMessage": "Failed to obtain critical account information! Please try again later.",
		})
		return
	}
	h.pages.Render(c, "account/profile", meta, gin.H{
		"account": profileAccount{
			ID:             user.ID,
			Name:           user.Login,
			Email1:         user.Email,
			Email2:         user.Email2,
			Priv:           user.Priv,
			Status:         user.Status,
			ContentIDs:     user.ContentIDs,
			TimeLastModify: user.TimeLastModify,
			Characters:     chars,
		},
	})
}

// ChangeEmailPage handles GET /account/changeemail.
func (h *AccountHandler) ChangeEmailPage(c *gin.Context) {
	h.pages.Render(c, "account/changeemail", Meta{
		Title:       "Change Email",
		Description: "Change your account email address.",
	}, nil)
}

// ChangeEmail handles POST /account/changeemail.
func (h *AccountHandler) ChangeEmail(c *gin.Context) {
	user := mw.GetUser(c)
	ctx := c.Request.Context()
	email := c.PostForm("newemail")
	err := h.accounts.ChangeEmail(ctx, user.ID, darkstar.EmailChange{
		NewEmail:        email,
		RepeatEmail:     c.PostForm("repeatemail"),
		CurrentPassword: c.PostForm("currentpassword"),
	})
	if err != nil {
		h.pages.FlashRedirect(c, mw.FlashError, formFailure("Failed to change the email address", err), "/account/changeemail")
		return
	}

	if acc, err := h.accounts.ByID(ctx, user.ID); err == nil {
		if err := h.sessions.Refresh(c, acc); err != nil {
			h.logger.Warn("session refresh failed", zap.Int64("account_id", user.ID), zap.Error(err))
		}
	}
	h.trigger(c, hook.AfterEmailChange, user.ID, map[string]interface{}{"email": email})
	h.pages.FlashRedirect(c, mw.FlashSuccess, "Your email address is now changed.", "/account/changeemail")
}

// ChangePasswordPage handles GET /account/changepassword.
func (h *AccountHandler) ChangePasswordPage(c *gin.Context) {
	h.pages.Render(c, "account/changepassword", Meta{
		Title:       "Change Password",
		Description: "Change your account password.",
	}, nil)
}

// ChangePassword handles POST /account/changepassword.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	user := mw.GetUser(c)
	err := h.accounts.ChangePassword(c.Request.Context(), user.ID, darkstar.PasswordChange{
		CurrentPassword: c.PostForm("currentpassword"),
		NewPassword:     c.PostForm("newpassword"),
		RepeatPassword:  c.PostForm("repeatpassword"),
	})
	if err != nil {
		h.pages.FlashRedirect(c, mw.FlashError, formFailure("Failed to change the account password", err), "/account/changepassword")
		return
	}
	h.trigger(c, hook.AfterPasswordChange, user.ID, nil)
	h.pages.FlashRedirect(c, mw.FlashSuccess, "Your account password is now changed.", "/account/changepassword")
}

// formFailure renders every message of a rejected form as one bulleted
// flash.
func formFailure(prefix string, err error) string {
	return prefix + ": <br> &bull; " + strings.Join(darkstar.FormMessages(err), "<br> &bull; ")
}

func (h *AccountHandler) trigger(c *gin.Context, event string, accountID int64, detail map[string]interface{}) {
	_, _ = h.hooks.Trigger(c.Request.Context(), event, hook.AccountEvent{
		TraceID:   mw.GetTraceID(c),
		AccountID: accountID,
		IP:        c.ClientIP(),
		Detail:    detail,
	})
}
