package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/database/dbtest"
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/repository"
	"github.com/gofiber/fiber/v2"
)

var testSettings = config.Settings{AllowOrigins: "*", TimeZone: "UTC"}

func newTestApp(t testing.TB) *fiber.App {
	t.Helper()
	repo := repository.NewGormRepository(dbtest.Seeded(t))
	return NewApp(handlers.New(repo), testSettings)
}

type response struct {
	status int
	header http.Header
	body   map[string]any
}

func send(app *fiber.App, method, path string, body []byte) (response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, err
	}
	out := response{status: resp.StatusCode, header: resp.Header}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out.body); err != nil {
			return response{}, err
		}
	}
	return out, nil
}

func do(t *testing.T, app *fiber.App, method, path string, body any) response {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		if raw, err = json.Marshal(body); err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}
	resp, err := send(app, method, path, raw)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func expectStatus(t *testing.T, resp response, want int) {
	t.Helper()
	if resp.status != want {
		t.Fatalf("status = %d, want %d (body %v)", resp.status, want, resp.body)
	}
}

func expectFailure(t *testing.T, resp response, code int, message string) {
	t.Helper()
	expectStatus(t, resp, code)
	if resp.body["success"] != false {
		t.Fatalf("success = %v, want false", resp.body["success"])
	}
	if resp.body["error"] != float64(code) {
		t.Fatalf("error = %v, want %d", resp.body["error"], code)
	}
	if resp.body["message"] != message {
		t.Fatalf("message = %v, want %q", resp.body["message"], message)
	}
}

func list(t *testing.T, body map[string]any, key string) []any {
	t.Helper()
	items, ok := body[key].([]any)
	if !ok {
		t.Fatalf("%s = %#v, want a list", key, body[key])
	}
	return items
}

func number(t *testing.T, body map[string]any, key string) int {
	t.Helper()
	n, ok := body[key].(float64)
	if !ok {
		t.Fatalf("%s = %#v, want a number", key, body[key])
	}
	return int(n)
}
