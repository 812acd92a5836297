package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"valid value", "page=3", 3},
		{"absent", "", 7},
		{"empty value", "page=", 7},
		{"not a number", "page=abc", 7},
		{"negative passes through", "page=-2", -2},
	}

	e := echo.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())
			if got := QueryInt(c, "page", 7); got != tc.want {
				t.Errorf("QueryInt = %d, want %d", got, tc.want)
			}
		})
	}
}
