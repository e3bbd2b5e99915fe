package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/starleap/starleap-go/internal/auth"
	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/store"
	"github.com/starleap/starleap-go/internal/testutil"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func seedAdmin(t *testing.T, q *store.Queries, email string, active bool) model.Admin {
	t.Helper()

	now := time.Now()
	admin, err := q.CreateAdmin(context.Background(), store.CreateAdminParams{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test",
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if !active {
		if err := q.SetAdminActive(context.Background(), admin.ID, false); err != nil {
			t.Fatalf("SetAdminActive: %v", err)
		}
	}
	return admin
}

// okHandler records whether the gate called through and echoes context data.
func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := GetAdmin(r)
		if admin == nil {
			t.Error("admin missing from context after Auth")
			return
		}
		if admin.PasswordHash != "" {
			t.Error("password hash must be stripped from context admin")
		}
		if GetToken(r) == "" {
			t.Error("raw token missing from context after Auth")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decoding error body %q: %v", body, err)
	}
	return resp.Error.Message
}

func TestAuth_Success(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	admin := seedAdmin(t, q, "gate@x.com", true)

	tokens := auth.NewTokenManager(testSecret, time.Hour)
	token, err := tokens.Issue(admin.ID, admin.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(tokens, db)(okHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
}

func TestAuth_Rejections(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	active := seedAdmin(t, q, "active@x.com", true)
	disabled := seedAdmin(t, q, "disabled@x.com", false)

	tokens := auth.NewTokenManager(testSecret, time.Hour)

	validToken, err := tokens.Issue(active.ID, active.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	disabledToken, err := tokens.Issue(disabled.ID, disabled.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	expiredToken, err := auth.NewTokenManager(testSecret, -time.Hour).Issue(active.ID, active.Role)
	if err != nil {
		t.Fatalf("Issue expired: %v", err)
	}
	missingToken, err := tokens.Issue(active.ID+999, active.Role)
	if err != nil {
		t.Fatalf("Issue missing: %v", err)
	}

	tests := []struct {
		name        string
		authHeader  string
		wantMessage string
	}{
		{"no header", "", "Authentication token required"},
		{"malformed header", "Token abc", "Authentication token required"},
		{"garbage token", "Bearer not.a.token", "Authentication failed"},
		{"expired token", "Bearer " + expiredToken, "Authentication failed"},
		{"tampered token", "Bearer " + validToken + "x", "Authentication failed"},
		{"deactivated account", "Bearer " + disabledToken, "Invalid or expired token"},
		{"unknown admin", "Bearer " + missingToken, "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/auth/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			Auth(tokens, db)(next).ServeHTTP(rec, req)

			if called {
				t.Fatal("handler called through a rejected request")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if got := errorMessage(t, rec.Body.Bytes()); got != tt.wantMessage {
				t.Errorf("message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

// A deactivated account and an unknown admin id must be indistinguishable.
func TestAuth_DeactivatedIndistinguishable(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	disabled := seedAdmin(t, q, "d@x.com", false)

	tokens := auth.NewTokenManager(testSecret, time.Hour)
	disabledToken, _ := tokens.Issue(disabled.ID, disabled.Role)
	missingToken, _ := tokens.Issue(disabled.ID+999, model.RoleAdmin)

	bodies := make([]string, 0, 2)
	for _, token := range []string{disabledToken, missingToken} {
		req := httptest.NewRequest("GET", "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		Auth(tokens, db)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)
		bodies = append(bodies, rec.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Errorf("response bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"super admin allowed", model.RoleSuperAdmin, http.StatusOK},
		{"admin forbidden", model.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin := model.Admin{ID: 1, Role: tt.role, IsActive: true}
			req := httptest.NewRequest("GET", "/events", nil)
			req = req.WithContext(context.WithValue(req.Context(), ContextKeyAdmin, admin))
			rec := httptest.NewRecorder()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			RequireSuperAdmin(nil)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireSuperAdmin_NoAdmin(t *testing.T) {
	req := httptest.NewRequest("GET", "/events", nil)
	rec := httptest.NewRecorder()

	RequireSuperAdmin(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler called without admin in context")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"valid", "Bearer abc123", "abc123", true},
		{"lowercase scheme", "bearer abc123", "abc123", true},
		{"empty", "", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"no token", "Bearer ", "", false},
		{"scheme only", "Bearer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			got, ok := bearerToken(req)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("bearerToken() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
