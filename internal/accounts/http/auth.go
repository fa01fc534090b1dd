package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/starterhq/accounts/internal/accounts/service"
	"github.com/starterhq/accounts/pkg/httpx"
	"github.com/starterhq/accounts/pkg/slogx"
)

const (
	msgSignedOut      = "Signed out"
	msgBadCredentials = "Email and password don't match"

	// cookieTTL bounds the browser session. The signed token itself carries
	// no expiry; see AuthService.TokenTTL.
	cookieTTL = 24 * time.Hour
)

// AuthHandler serves sign-in and sign-out.
type AuthHandler struct {
	AuthService *service.AuthService
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type signinResponse struct {
	Token string     `json:"token"`
	User  signinUser `json:"user"`
}

// HandleSignin verifies credentials and hands out an identity token, both in
// the response body and as the session cookie.
//
//	@Summary	Sign in
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		signinRequest	true	"Credentials"
//	@Success	200		{object}	signinResponse	"token plus public user fields; also sets the session cookie"
//	@Failure	401		{object}	map[string]string	"error"
//	@Router		/auth/signin [post].
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotFound)
		return
	}

	token, user, err := h.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, msgBadCredentials)
			return
		}
		if !errors.Is(err, service.ErrUserNotFound) {
			log.Error("signin failed", "err", err)
		}
		httpx.WriteError(w, http.StatusUnauthorized, msgNotFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, signinResponse{
		Token: token,
		User:  signinUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// HandleSignout clears the session cookie. The issued token itself stays
// valid until it would naturally expire; there is no server-side revocation.
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	map[string]string	"message"
//	@Router		/auth/signout [get].
func (h *AuthHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msgSignedOut})
}
