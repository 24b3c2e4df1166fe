package admin

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, fields map[string]string, files map[string]string) *gin.Context {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, _ = part.Write([]byte("data"))
	}
	require.NoError(t, w.Close())

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/products", buf)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())
	return c
}

func TestProductFromForm(t *testing.T) {
	c := formContext(t, map[string]string{
		"name":          "Bague",
		"description":   "Argent",
		"price":         "120.5",
		"originalPrice": "150",
		"category":      "Rings",
		"inStock":       "true",
		"stockQuantity": "4",
		"materials":     "argent, , émail",
	}, map[string]string{"image0": "a.jpg", "image1": "b.jpg", "image3": "ignorée.jpg"})

	in, images, err := productFromForm(c)
	require.NoError(t, err)
	assert.Equal(t, 120.5, in.Price)
	require.NotNil(t, in.OriginalPrice)
	assert.Equal(t, 150.0, *in.OriginalPrice)
	assert.Equal(t, 4, in.StockQuantity)
	assert.True(t, in.InStock)
	assert.Equal(t, []string{"argent", "émail"}, in.Materials)
	// les images s'arrêtent au premier trou
	require.Len(t, images, 2)
	assert.Equal(t, "b.jpg", images[1].Filename)
}

func TestProductFromFormRejectsBadPrice(t *testing.T) {
	c := formContext(t, map[string]string{"name": "Bague", "price": "gratuit"}, nil)

	_, _, err := productFromForm(c)
	assert.ErrorContains(t, err, "prix invalide")
}
