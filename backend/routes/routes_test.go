package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/store"
)

func newTestApp(t *testing.T) (*fiber.App, *session.Manager) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}
	mgr, err := session.New(store.NewMemStore(), log.New(io.Discard, "", 0), 0)
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, mgr, cfg)
	return app, mgr
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, email, password, name string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	result := decode(t, resp)
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "a@x.com", "p", "Ann")

	// Duplicate registration is rejected.
	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "other", "name": "Bob",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Missing fields are a bad request.
	resp = doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{"email": "b@x.com"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/logout", token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Wrong password, then the real one.
	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "p",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode(t, resp)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "Ann", user["name"])
	assert.NotContains(t, user, "credential")
	token = result["token"].(string)

	resp = doJSON(t, app, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// No token, no access.
	resp = doJSON(t, app, "GET", "/api/user/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenForLoggedOutSessionIsRejected(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "a@x.com", "p", "Ann")
	resp := doJSON(t, app, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The token is still cryptographically valid but the session is gone.
	resp = doJSON(t, app, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnboardingFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "a@x.com", "p", "Ann")

	resp := doJSON(t, app, "GET", "/api/session", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := decode(t, resp)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, true, user["isNewUser"])

	// An empty language list does not complete onboarding.
	resp = doJSON(t, app, "PUT", "/api/user/preferences", token, map[string]interface{}{
		"year": "2", "branch": "cse", "languages": []string{},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/user/preferences", token, map[string]interface{}{
		"year": "2", "branch": "cse", "languages": []string{"java", "golang"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, false, updated["isNewUser"])

	resp = doJSON(t, app, "PUT", "/api/user/preferences", token, map[string]interface{}{
		"languages": []string{"cobol"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProgressAndCompletion(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "a@x.com", "p", "Ann")

	resp := doJSON(t, app, "PUT", "/api/progress/java", token, map[string]int{"progress": 40})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	progress := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(40), progress["java"])

	resp = doJSON(t, app, "PUT", "/api/progress/java", token, map[string]int{"progress": 120})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Completing the same module twice keeps a single entry.
	resp = doJSON(t, app, "POST", "/api/courses/java-basics-1/complete", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, "POST", "/api/courses/java-basics-1/complete", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/courses/completed", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	completed := decode(t, resp)["data"].([]interface{})
	assert.Equal(t, []interface{}{"java-basics-1"}, completed)
}

func TestPerformanceEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "a@x.com", "p", "Ann")

	for _, score := range []float64{8, 5, 9} {
		resp := doJSON(t, app, "POST", "/api/performance", token, map[string]interface{}{
			"type":         "practice",
			"language":     "java",
			"score":        score,
			"maxScore":     10,
			"timeTaken":    600,
			"platformName": "LeetCode",
			"title":        "Practice session",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, "POST", "/api/performance", token, map[string]interface{}{
		"type": "homework", "language": "java", "score": 1, "maxScore": 10,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/performance/stats?type=practice", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode(t, resp)["data"].(map[string]interface{})
	assert.InDelta(t, 73.333, summary["averageScore"].(float64), 0.01)
	assert.InDelta(t, 90, summary["bestScore"].(float64), 0.001)
	assert.Equal(t, float64(3), summary["totalAttempts"])

	// An unmatched filter yields zeros, not an error.
	resp = doJSON(t, app, "GET", "/api/performance/stats?type=contest", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary = decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), summary["totalAttempts"])

	resp = doJSON(t, app, "GET", "/api/performance?language=java", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	records := decode(t, resp)["data"].([]interface{})
	assert.Len(t, records, 3)
}

func TestCatalogEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	// Catalog routes sit behind the session gate.
	resp := doJSON(t, app, "GET", "/api/languages", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token := registerUser(t, app, "a@x.com", "p", "Ann")

	resp = doJSON(t, app, "GET", "/api/languages", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	langs := decode(t, resp)["data"].([]interface{})
	assert.Len(t, langs, 6)

	resp = doJSON(t, app, "GET", "/api/languages/java/roadmap", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	roadmap := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(6), roadmap["modules"])

	resp = doJSON(t, app, "GET", "/api/languages/java/resources?module=java-basics-1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/languages/cobol/roadmap", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
