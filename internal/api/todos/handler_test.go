package todos

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The router below fakes an authenticated user. Every case here must be
// rejected by validation before any storage access happens; a case that
// slipped past validation would panic on the nil database handle, failing
// the test loudly.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})
	r.POST("/todos", CreateTodo)
	r.PUT("/todos/:id/status", SetStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTodoValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "empty title",
			body:    `{"property_id": 5, "title": ""}`,
			wantMsg: "Title is required",
		},
		{
			name:    "whitespace title",
			body:    `{"property_id": 5, "title": "   "}`,
			wantMsg: "Title is required",
		},
		{
			name:    "missing property",
			body:    `{"title": "Inspect boiler"}`,
			wantMsg: "Property is required",
		},
		{
			name:    "invalid priority",
			body:    `{"property_id": 5, "title": "Inspect boiler", "priority": "asap"}`,
			wantMsg: "Invalid priority",
		},
		{
			name:    "invalid due date",
			body:    `{"property_id": 5, "title": "Inspect boiler", "due_date": "next week"}`,
			wantMsg: "Invalid due date",
		},
	}

	r := testRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/todos", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestSetStatusValidation(t *testing.T) {
	r := testRouter()

	w := doJSON(t, r, http.MethodPut, "/todos/3/status", `{"status": "done"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")
}

func TestNilIfBlank(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{name: "empty becomes nil", in: "", want: nil},
		{name: "whitespace becomes nil", in: "   \t", want: nil},
		{name: "value survives", in: "Check smoke alarms", want: strPtr("Check smoke alarms")},
		{name: "value is trimmed", in: "  Jane Doe  ", want: strPtr("Jane Doe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nilIfBlank(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestCreateTodoRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/todos", CreateTodo)

	w := doJSON(t, r, http.MethodPost, "/todos", `{"property_id": 5, "title": "Inspect boiler"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
