package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		header     map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:   "first forwarded entry",
			header: map[string]string{"X-Forwarded-For": " 81.2.69.142 , 10.0.0.1"},
			want:   "81.2.69.142",
		},
		{
			name: "forwarded wins over cloudflare",
			header: map[string]string{
				"X-Forwarded-For":  "81.2.69.142",
				"CF-Connecting-IP": "126.0.0.1",
			},
			want: "81.2.69.142",
		},
		{
			name:   "cloudflare",
			header: map[string]string{"CF-Connecting-IP": "126.0.0.1"},
			want:   "126.0.0.1",
		},
		{
			name:       "public remote address",
			remoteAddr: "81.2.69.142:51234",
			want:       "81.2.69.142",
		},
		{
			name:       "loopback remote address",
			remoteAddr: "127.0.0.1:51234",
			want:       "",
		},
		{
			name:       "private remote address",
			remoteAddr: "10.1.2.3:51234",
			want:       "",
		},
		{
			name:       "garbage remote address",
			remoteAddr: "unknown",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestRequestClientID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "header", header: "abc", want: "abc"},
		{name: "cookie", cookie: "def", want: "def"},
		{name: "header wins", header: "abc", cookie: "def", want: "abc"},
		{name: "none", want: ""},
		{name: "too long", header: strings.Repeat("x", maxClientIDLen+1), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(clientIDHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: clientIDCookie, Value: tt.cookie})
			}

			assert.Equal(t, tt.want, requestClientID(req))
		})
	}
}
