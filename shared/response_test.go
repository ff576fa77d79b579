package shared

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: JSONEncoder,
		JSONDecoder: JSONDecoder,
	})
	app.Get("/test", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(body)
}

func TestResponseOKEnvelope(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return ResponseOK(c, map[string]string{"hello": "world"})
	})

	resp, body := doRequest(t, app)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{`"code":200`, `"message":"Success"`, `"hello":"world"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestResponseJSONPrebaked(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return ResponseNotFound(c)
	})

	resp, body := doRequest(t, app)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if !strings.Contains(body, `"message":"Not Found"`) {
		t.Errorf("body = %q", body)
	}
	// Prebaked bodies omit the data field entirely.
	if strings.Contains(body, `"data"`) {
		t.Errorf("prebaked body should not carry data: %q", body)
	}
}

func TestResponseJSONCustomMessage(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return ResponseJSON(c, http.StatusConflict, "student already in group", nil)
	})

	resp, body := doRequest(t, app)

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
	if !strings.Contains(body, `"message":"student already in group"`) {
		t.Errorf("body = %q", body)
	}
}
