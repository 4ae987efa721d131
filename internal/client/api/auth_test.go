package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mesto-cli/internal/client/models"
)

// fakeTokenStore records Save calls.
type fakeTokenStore struct {
	saved   []string
	saveErr error
}

func (f *fakeTokenStore) Save(ctx context.Context, token string) error {
	f.saved = append(f.saved, token)
	return f.saveErr
}

func TestLogIn_PersistsTokenBeforeReturning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/signin", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "user@example.com", creds.Email)
		require.Equal(t, "secret", creds.Password)

		_, _ = w.Write([]byte(`{"token":"t-123"}`))
	}))
	defer srv.Close()

	store := &fakeTokenStore{}
	a := NewAuthClient(srv.URL, store)

	token, err := a.LogIn(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "t-123", token)
	require.Equal(t, []string{"t-123"}, store.saved)
}

func TestLogIn_Rejected_StoreUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := &fakeTokenStore{}
	a := NewAuthClient(srv.URL, store)

	_, err := a.LogIn(context.Background(), models.Credentials{Email: "user@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, store.saved)
}

func TestLogIn_EmptyToken_StoreUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := &fakeTokenStore{}
	a := NewAuthClient(srv.URL, store)

	_, err := a.LogIn(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, store.saved)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/signup", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"_id":"u1","email":"user@example.com"}}`))
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, &fakeTokenStore{})

	id, err := a.Register(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "user@example.com", id.Data.Email)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, &fakeTokenStore{})

	_, err := a.Register(context.Background(), models.Credentials{Email: "user@example.com", Password: "secret"})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusConflict, se.Code)
}

func TestTokenValid_SendsBearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/me", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"_id":"u1","email":"user@example.com"}}`))
	}))
	defer srv.Close()

	store := &fakeTokenStore{}
	a := NewAuthClient(srv.URL, store)

	id, err := a.TokenValid(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", id.Data.Email)
	// introspection never writes the store
	require.Empty(t, store.saved)
}

func TestTokenValid_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, &fakeTokenStore{})

	_, err := a.TokenValid(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthClient_TransportFailure_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := NewAuthClient(srv.URL, &fakeTokenStore{})

	_, err := a.Register(context.Background(), models.Credentials{Email: "e", Password: "p"})
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = a.TokenValid(context.Background(), "tok")
	require.ErrorIs(t, err, ErrUnavailable)
}
