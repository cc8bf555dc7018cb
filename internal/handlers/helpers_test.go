package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"leatherworking_backend/internal/handlers"
	"leatherworking_backend/internal/routes"
	"leatherworking_backend/internal/services"
	"leatherworking_backend/internal/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer mounts the real route table over the in-memory store.
func newTestServer(storage services.ObjectStorage, index services.ProductIndex) (*gin.Engine, *memory.Store) {
	st := memory.New()
	r := gin.New()
	routes.RegisterAPI(r,
		handlers.NewCustomerHandler(st.Customers),
		handlers.NewProductHandler(st.Products, storage, index),
		handlers.NewMaterialHandler(st.Materials),
		handlers.NewOrderHandler(st.Orders),
		handlers.NewProjectHandler(st.Projects),
	)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// fieldsOf extracts the failing field paths from a 400 response body.
func fieldsOf(errs []map[string]interface{}) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		if f, ok := e["field"].(string); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
