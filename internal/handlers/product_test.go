package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leatherworking_backend/internal/models"
)

// fakeStorage records uploads and hands out deterministic URLs.
type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://storage.test/" + key + "?sig=abc", nil
}

func uploadRequest(t *testing.T, path, field, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreateProduct(t *testing.T) {
	r, _ := newTestServer(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/products",
		`{"name":"Bifold Wallet","description":"Hand stitched","price":89.5,"stock":4,"category":"wallets"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.False(t, product.ID.IsZero())
	assert.Equal(t, 89.5, product.Price)
	assert.NotNil(t, product.Images, "image list starts as an empty array")
	assert.Empty(t, product.Images)
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := newTestServer(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Bad","price":-1,"stock":-2}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := fieldsOf(resp.Errors)
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "stock")

	// Zero is a legitimate price and stock.
	w = doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Freebie","price":0,"stock":0}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProductMaterialQuantityAtLeastOne(t *testing.T) {
	r, st := newTestServer(nil, nil)
	material := seedMaterial(t, st, "Chrome Tanned Leather")

	body := fmt.Sprintf(`{"name":"Duffel","price":250,"stock":1,"materials":[{"materialId":%q,"quantity":0}]}`,
		material.ID.Hex())
	w := doJSON(t, r, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = fmt.Sprintf(`{"name":"Duffel","price":250,"stock":1,"materials":[{"materialId":%q,"quantity":1}]}`,
		material.ID.Hex())
	w = doJSON(t, r, http.MethodPost, "/api/products", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateProductRevalidatesAndKeepsImages(t *testing.T) {
	storage := &fakeStorage{}
	r, _ := newTestServer(storage, nil)

	w := doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Keychain","price":12,"stock":30}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := uploadRequest(t, "/api/products/"+created.ID.Hex()+"/images", "image", "keychain.jpg")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// A full replace with a negative price is rejected.
	w = doJSON(t, r, http.MethodPut, "/api/products/"+created.ID.Hex(),
		`{"name":"Keychain","price":-5,"stock":30}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A valid replace keeps the attached images.
	w = doJSON(t, r, http.MethodPut, "/api/products/"+created.ID.Hex(),
		`{"name":"Keychain Deluxe","price":15,"stock":25}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Keychain Deluxe", updated.Name)
	assert.Len(t, updated.Images, 1)
}

func TestUploadImage(t *testing.T) {
	storage := &fakeStorage{}
	r, _ := newTestServer(storage, nil)

	w := doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Passport Cover","price":45,"stock":7}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := uploadRequest(t, "/api/products/"+created.ID.Hex()+"/images", "image", "cover.png")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	require.Len(t, product.Images, 1)
	image := product.Images[0]
	assert.True(t, strings.HasPrefix(image.Key, "products/"+created.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(image.Key, ".png"))
	assert.Equal(t, "https://storage.test/"+image.Key+"?sig=abc", image.URL)
	assert.False(t, image.UploadedAt.IsZero())
	assert.Equal(t, []string{image.Key}, storage.uploads)
}

func TestUploadImageProductNotFoundBeforeStorageCall(t *testing.T) {
	storage := &fakeStorage{}
	r, _ := newTestServer(storage, nil)

	req := uploadRequest(t, "/api/products/507f1f77bcf86cd799439011/images", "image", "ghost.jpg")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
	assert.Empty(t, storage.uploads, "nothing reaches the object store for a missing product")
}

func TestUploadImageRequiresFile(t *testing.T) {
	storage := &fakeStorage{}
	r, _ := newTestServer(storage, nil)

	w := doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Valet Tray","price":35,"stock":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, "/api/products/"+created.ID.Hex()+"/images", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"No image file provided"}`, w.Body.String())
}

func TestSearchFallsBackToStoreScan(t *testing.T) {
	r, _ := newTestServer(nil, nil)

	doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Leather Belt","price":60,"stock":5}`)
	doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Wallet","description":"with belt loop","price":80,"stock":2}`)
	doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Tote Bag","price":140,"stock":1}`)

	w := doJSON(t, r, http.MethodGet, "/api/products/search?q=belt", "")
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)

	w = doJSON(t, r, http.MethodGet, "/api/products/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
