package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/starterhq/accounts/internal/accounts/domain"
	"github.com/starterhq/accounts/internal/accounts/service"
	"github.com/starterhq/accounts/pkg/httpx"
	"github.com/starterhq/accounts/pkg/slogx"
)

// Error messages for the user endpoints. Kept stable because the single-page
// client surfaces them verbatim.
const (
	msgSignedUp       = "Successfully signed up!"
	msgSaveError      = "There was an error saving the object to DB"
	msgListError      = "Couldnt fetch objects from DB"
	msgNotFound       = "User not found"
	msgUpdateError    = "Error while updating object"
	msgDeleteError    = "Couldn't delete object from DB"
	msgDuplicateEmail = "Email already exists"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// UsersHandler serves the collection-level routes: signup and listing.
type UsersHandler struct {
	AccountService *service.AccountService
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r createUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			validation.Match(emailPattern).Error("Please fill a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 0).Error("Password must be at least 6 characters"),
		),
	)
}

// HandleCreate registers a new account.
//
//	@Summary		Register a new account
//	@Description	Creates an account from name, email and password. The response does not echo the created account.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createUserRequest	true	"Account fields"
//	@Success		200		{object}	map[string]string	"message"
//	@Failure		400		{object}	map[string]string	"error"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgSaveError)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, err := h.AccountService.Create(ctx, req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			httpx.WriteError(w, http.StatusBadRequest, msgDuplicateEmail)
			return
		}
		log.Error("account create failed", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, msgSaveError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": msgSignedUp})
}

// HandleList returns every account, projected to the public fields.
//
//	@Summary	List accounts
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}		domain.Account	"id, name, email, created, updated - never credential fields"
//	@Failure	400	{object}	map[string]string	"error"
//	@Router		/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accounts, err := h.AccountService.List(ctx)
	if err != nil {
		log.Error("account list failed", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, msgListError)
		return
	}

	for i := range accounts {
		accounts[i] = accounts[i].Sanitize()
	}
	if accounts == nil {
		// An empty collection is [] on the wire, never null.
		accounts = []domain.Account{}
	}

	httpx.WriteJSON(w, http.StatusOK, accounts)
}

// validationMessage extracts a single field-specific message from an ozzo
// validation error, in a stable field order.
func validationMessage(err error) string {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return err.Error()
	}

	for _, key := range []string{"name", "email", "password"} {
		if fieldErr, ok := fields[key]; ok {
			return fieldErr.Error()
		}
	}
	return err.Error()
}
