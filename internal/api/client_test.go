package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paoox/redsocial-desktop/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestLoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/usuarios/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc123","usuario":{"id":7,"nombre":"Paola","nickname":"paoox"}}`))
	}))

	session, err := client.Login(context.Background(), "paola@example.com", "Secret1")
	require.NoError(t, err)

	assert.Equal(t, "abc123", session.Token)
	assert.Equal(t, int64(7), session.User.ID)
	assert.True(t, session.LoggedIn())
}

func TestLoginFailureCarriesBodyText(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "credenciales incorrectas", http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), "paola@example.com", "wrong")
	require.Error(t, err)

	assert.Equal(t, "credenciales incorrectas", Message(err, "fallback"))
	assert.False(t, IsConflict(err))
	assert.False(t, IsServerError(err))
}

func TestRegisterConflictMapping(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"duplicate email", "ya existe un usuario con ese email", "email"},
		{"duplicate nickname", "nickname already taken", "nickname"},
		{"generic duplicate", "duplicate user", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, test.body, http.StatusConflict)
			}))

			_, err := client.Register(context.Background(), model.Registration{Email: "a@b.c"})
			require.Error(t, err)

			assert.True(t, IsConflict(err))
			assert.Equal(t, test.expected, ConflictField(err))
		})
	}
}

func TestConflictFieldIgnoresOtherErrors(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email service exploded", http.StatusInternalServerError)
	}))

	_, err := client.Register(context.Background(), model.Registration{})
	require.Error(t, err)

	// A 500 mentioning "email" must not map onto the email field
	assert.Equal(t, "", ConflictField(err))
	assert.True(t, IsServerError(err))
}

func TestListUsers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/usuarios", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"nombre":"Paola","nickname":"paoox","visualizaciones":42},
			{"id":2,"nombre":"Marco","nickname":"marco_b","visualizaciones":7}
		]`))
	}))

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, "paoox", users[0].Nickname)
	assert.Equal(t, 42, users[0].Views)
	assert.Equal(t, "Marco", users[1].Name)
}

func TestUpdateUserNeverBlanksPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/usuarios/7", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, model.PasswordFallback, body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"nombre":"Paola"}`))
	}))

	upd := model.ProfileUpdate{
		Name:     "Paola",
		Nickname: "paoox",
		Email:    "paola@example.com",
		Password: model.EffectivePassword(""),
	}
	_, err := client.UpdateUser(context.Background(), 7, upd)
	require.NoError(t, err)
}

func TestUploadAvatarMultipart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/usuarios/7/avatar", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("archivo")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "me.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"/uploads/avatar-7.png"}`))
	}))

	url, err := client.UploadAvatar(context.Background(), 7, "me.png", strings.NewReader("fake-png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatar-7.png", url)
}

func TestCreatePostMultipartFields(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/publicaciones/crear", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "hola mundo", r.FormValue("contenido"))
		assert.Equal(t, "7", r.FormValue("usuarioId"))

		file, _, err := r.FormFile("imagen")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":11,"contenido":"hola mundo","usuario":{"id":7}}`))
	}))

	post, err := client.CreatePost(context.Background(), 7, "hola mundo", "pic.jpg", strings.NewReader("jpg"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), post.ID)
	assert.True(t, post.OwnedBy(7))
}

func TestCreatePostWithoutImage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, _, err := r.FormFile("imagen")
		assert.Error(t, err, "no image part expected")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":12,"contenido":"solo texto","usuario":{"id":7}}`))
	}))

	post, err := client.CreatePost(context.Background(), 7, "solo texto", "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), post.ID)
}

func TestUpdatePostRemoveImageFlag(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/publicaciones/11", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "editado", r.FormValue("contenido"))
		assert.Equal(t, "true", r.FormValue("eliminarImagen"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":11,"contenido":"editado","usuario":{"id":7}}`))
	}))

	post, err := client.UpdatePost(context.Background(), 11, "editado", "", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "editado", post.Content)
}

func TestLikePostReturnsUpdatedSnapshot(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/publicaciones/3/like", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"likes":6,"reacciones":2,"usuario":{"id":1}}`))
	}))

	post, err := client.LikePost(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 6, post.Likes)
	assert.Equal(t, 2, post.Reactions)
}

func TestDeletePost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/publicaciones/eliminar/3", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.DeletePost(context.Background(), 3))
}

func TestCheckEmail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/usuarios/email/known@example.com" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "correo no encontrado", http.StatusNotFound)
	}))

	assert.NoError(t, client.CheckEmail(context.Background(), "known@example.com"))

	err := client.CheckEmail(context.Background(), "missing@example.com")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestResetPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/usuarios/reset-password", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.ResetPassword(context.Background(), "paola@example.com", "NewSecret1"))
}

func TestContextCancellationAborts(t *testing.T) {
	started := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.ListPosts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	client := New("http://localhost:8080/", time.Second)
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
}
