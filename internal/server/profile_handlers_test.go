package server

import (
	"net/http"
	"testing"

	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func profileApp(s *Server) *fiber.App {
	app := fiber.New()
	profile := app.Group("/api/profile", s.AuthRequired())
	profile.Get("/userdata", s.GetMyProfile)
	profile.Post("/updatedata", s.UpdateMyProfile)
	profile.Get("/:id", s.GetUserProfile)
	return app
}

func TestGetMyProfile(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, NameFirst: "Ada", Email: "ada@example.com"}, nil)

	s := newTestServer(mockUsers, new(MockGraphRepository), new(MockPostRepository), new(MockCommentRepository))
	app := profileApp(s)

	resp, err := app.Test(authedReq(t, s, http.MethodGet, "/api/profile/userdata", 1))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]any)
	if assert.True(t, ok, "user missing") {
		assert.Equal(t, "Ada", user["nameFirst"])
		// The password hash must never be serialized
		assert.NotContains(t, user, "password")
	}
}

func TestGetUserProfileNotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
	mockUsers.On("GetByID", mock.Anything, uint(42)).Return(nil, models.NewNotFoundError("User", 42))

	s := newTestServer(mockUsers, new(MockGraphRepository), new(MockPostRepository), new(MockCommentRepository))
	app := profileApp(s)

	resp, err := app.Test(authedReq(t, s, http.MethodGet, "/api/profile/42", 1))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMyProfile(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, NameFirst: "Ada", Email: "ada@example.com"}, nil)
	mockUsers.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newTestServer(mockUsers, new(MockGraphRepository), new(MockPostRepository), new(MockCommentRepository))
	app := profileApp(s)

	resp, err := app.Test(authedJSON(t, s, http.MethodPost, "/api/profile/updatedata", 1,
		map[string]any{"bio": "tinkerer", "isPrivate": true}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]any)
	if assert.True(t, ok, "user missing") {
		assert.Equal(t, "tinkerer", user["bio"])
		assert.Equal(t, true, user["isPrivate"])
	}
}

func TestUpdateMyProfileNoFields(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)

	s := newTestServer(mockUsers, new(MockGraphRepository), new(MockPostRepository), new(MockCommentRepository))
	app := profileApp(s)

	resp, err := app.Test(authedJSON(t, s, http.MethodPost, "/api/profile/updatedata", 1,
		map[string]any{"unknownField": "ignored"}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
