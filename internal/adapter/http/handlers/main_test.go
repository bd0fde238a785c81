package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	request "marcenaria_gestao/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidations(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// serve runs one request through a router holding a single route.
func serve(method, pattern string, h gin.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, pattern, h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
