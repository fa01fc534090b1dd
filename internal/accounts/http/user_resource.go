package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/starterhq/accounts/internal/accounts/domain"
	"github.com/starterhq/accounts/internal/accounts/service"
	"github.com/starterhq/accounts/pkg/httpx"
	"github.com/starterhq/accounts/pkg/slogx"
)

// profileKey carries the loaded target account through the pipeline.
type profileKey struct{}

func profileFromCtx(ctx context.Context) (domain.Account, bool) {
	a, ok := ctx.Value(profileKey{}).(domain.Account)
	return a, ok
}

// UserResourceHandler serves the /{id} routes. LoadAccount resolves the path
// parameter into a loaded account before read/update/delete run.
type UserResourceHandler struct {
	AccountService *service.AccountService
}

// LoadAccount is the resource-loader step: it fetches the account named by
// the path parameter and attaches it to the request context, alongside its id
// for the ownership check. Unknown or malformed ids short-circuit with 400.
func (h *UserResourceHandler) LoadAccount() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			account, err := h.AccountService.GetByID(ctx, r.PathValue("id"))
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, msgNotFound)
				return
			}

			ctx = context.WithValue(ctx, profileKey{}, account)
			ctx = context.WithValue(ctx, httpx.CtxKeyProfileID, account.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HandleRead returns the loaded account with credential fields cleared.
//
//	@Summary	Read an account
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	domain.Account
//	@Failure	400	{object}	map[string]string	"error"
//	@Failure	401	{object}	map[string]string	"error"
//	@Router		/api/users/{id} [get].
func (h *UserResourceHandler) HandleRead(w http.ResponseWriter, r *http.Request) {
	account, ok := profileFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, msgNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, account.Sanitize())
}

// HandleUpdate shallow-merges the request body onto the loaded account,
// refreshes the updated timestamp, and persists.
//
//	@Summary	Update an account
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Patch	true	"Fields to merge"
//	@Success	200		{object}	domain.Account
//	@Failure	400		{object}	map[string]string	"error"
//	@Failure	401		{object}	map[string]string	"error"
//	@Failure	403		{object}	map[string]string	"error"
//	@Router		/api/users/{id} [put].
func (h *UserResourceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	account, ok := profileFromCtx(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, msgNotFound)
		return
	}

	var patch domain.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgUpdateError)
		return
	}

	// The password policy applies to changes, same as at registration.
	if patch.Password != nil {
		if *patch.Password == "" {
			httpx.WriteError(w, http.StatusBadRequest, "Password is required")
			return
		}
		if len(*patch.Password) < 6 {
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		}
	}

	updated, err := h.AccountService.Update(ctx, account, patch)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			httpx.WriteError(w, http.StatusBadRequest, msgDuplicateEmail)
			return
		}
		log.Error("account update failed", "account_id", account.ID, "err", err)
		httpx.WriteError(w, http.StatusBadRequest, msgUpdateError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, updated.Sanitize())
}

// HandleDelete removes the loaded account and returns the deleted record.
//
//	@Summary	Delete an account
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	domain.Account
//	@Failure	400	{object}	map[string]string	"error"
//	@Failure	401	{object}	map[string]string	"error"
//	@Failure	403	{object}	map[string]string	"error"
//	@Router		/api/users/{id} [delete].
func (h *UserResourceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	account, ok := profileFromCtx(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, msgNotFound)
		return
	}

	deleted, err := h.AccountService.Delete(ctx, account)
	if err != nil {
		log.Error("account delete failed", "account_id", account.ID, "err", err)
		httpx.WriteError(w, http.StatusBadRequest, msgDeleteError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, deleted.Sanitize())
}
