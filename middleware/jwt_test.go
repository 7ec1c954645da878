package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-secret")

func runJWT(t *testing.T, header string) (string, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reset", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var player string
	err := JWT(testKey)(func(c echo.Context) error {
		player, _ = c.Get("player").(string)
		return nil
	})(c)
	return player, err
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func TestJWT_Valid(t *testing.T) {
	token, err := NewToken("player", testKey, time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	for _, header := range []string{token, "Bearer " + token} {
		player, err := runJWT(t, header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if player != "player" {
			t.Errorf("expected player claim, got %q", player)
		}
	}
}

func TestJWT_Rejected(t *testing.T) {
	wrongKey, _ := NewToken("player", []byte("other"), time.Now())
	expired, _ := NewToken("player", testKey, time.Now().Add(-2*TokenTTL))

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"garbage", "not-a-token"},
		{"wrong key", wrongKey},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runJWT(t, tt.header)
			if statusOf(err) != http.StatusUnauthorized {
				t.Errorf("expected 401, got %v", err)
			}
		})
	}
}
