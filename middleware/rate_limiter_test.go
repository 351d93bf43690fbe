package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIPHeaderPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"forwarded for wins", "10.0.0.1:443", map[string]string{
			"X-Forwarded-For": "203.0.113.7, 10.0.0.2",
			"X-Real-IP":       "198.51.100.9",
		}, "203.0.113.7"},
		{"real ip next", "10.0.0.1:443", map[string]string{
			"X-Real-IP": "198.51.100.9",
		}, "198.51.100.9"},
		{"remote addr port stripped", "192.0.2.4:51234", nil, "192.0.2.4"},
		{"remote addr without port", "192.0.2.4", nil, "192.0.2.4"},
		{"empty forwarded entry ignored", "192.0.2.4:51234", map[string]string{
			"X-Forwarded-For": " , 10.0.0.2",
		}, "192.0.2.4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clientIP(requestContext(tc.remote, tc.headers)); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
