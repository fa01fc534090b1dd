package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func doOwnerRequest(t *testing.T, authID, profileID string) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), RequireOwner())

	req := httptest.NewRequest(http.MethodPut, "/api/users/x", nil)
	ctx := req.Context()
	if authID != "" {
		ctx = context.WithValue(ctx, CtxKeyUserID, authID)
	}
	if profileID != "" {
		ctx = context.WithValue(ctx, CtxKeyProfileID, profileID)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code == http.StatusOK {
		require.True(t, called)
	} else {
		require.False(t, called, "handler must not run after a 403")
	}
	return rec
}

func TestRequireOwner(t *testing.T) {
	tests := []struct {
		name      string
		authID    string
		profileID string
		want      int
	}{
		{"owner", "acc-1", "acc-1", http.StatusOK},
		{"different account", "acc-1", "acc-2", http.StatusForbidden},
		{"no authenticated id", "", "acc-2", http.StatusForbidden},
		{"no loaded profile", "acc-1", "", http.StatusForbidden},
		{"neither present", "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doOwnerRequest(t, tt.authID, tt.profileID)
			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				require.Contains(t, rec.Body.String(), "You are not authorized")
			}
		})
	}
}
