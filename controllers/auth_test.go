package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-eats/controllers"
	"campus-eats/middleware"
	"campus-eats/store/memstore"
	"campus-eats/utils"
)

func newAuthRouter() *mux.Router {
	utils.JwtKey = []byte("unit-test-secret")
	st := memstore.New()
	ac := controllers.NewAuthController(st.Users())

	router := mux.NewRouter()
	router.HandleFunc("/auth/signup", ac.Signup).Methods("POST")
	router.HandleFunc("/auth/login", ac.Login).Methods("POST")
	router.HandleFunc("/auth/verify-token", ac.VerifyToken).Methods("POST")

	protected := router.PathPrefix("/protected").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.Use(middleware.AdminMiddleware)
	protected.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	return router
}

func postJSON(t *testing.T, router *mux.Router, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func signupBody(role string) map[string]string {
	return map[string]string{
		"name":     "Meera Iyer",
		"email":    "meera@campus.edu",
		"password": "secret123",
		"phone":    "555-0102",
		"city":     "Chennai",
		"state":    "TN",
		"role":     role,
	}
}

func TestSignupLoginRoundTrip(t *testing.T) {
	router := newAuthRouter()

	rec := postJSON(t, router, "/auth/signup", signupBody("user"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate email rejected
	rec = postJSON(t, router, "/auth/signup", signupBody("user"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/auth/login", map[string]string{
		"email": "meera@campus.edu", "password": "secret123", "role": "user",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "meera@campus.edu", resp.User.Email)

	// the token round-trips through verify-token
	header := http.Header{"Authorization": []string{"Bearer " + resp.Token}}
	rec = postJSON(t, router, "/auth/verify-token", map[string]string{}, header)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPasswordOrRole(t *testing.T) {
	router := newAuthRouter()
	postJSON(t, router, "/auth/signup", signupBody("user"), nil)

	rec := postJSON(t, router, "/auth/login", map[string]string{
		"email": "meera@campus.edu", "password": "wrong", "role": "user",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/auth/login", map[string]string{
		"email": "meera@campus.edu", "password": "secret123", "role": "admin",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminMiddlewareBlocksUsers(t *testing.T) {
	router := newAuthRouter()
	postJSON(t, router, "/auth/signup", signupBody("user"), nil)

	rec := postJSON(t, router, "/auth/login", map[string]string{
		"email": "meera@campus.edu", "password": "secret123", "role": "user",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	out := httptest.NewRecorder()
	router.ServeHTTP(out, req)
	assert.Equal(t, http.StatusForbidden, out.Code)

	// no token at all
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	out = httptest.NewRecorder()
	router.ServeHTTP(out, req)
	assert.Equal(t, http.StatusUnauthorized, out.Code)
}
