package admin

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"jewelry_storefront/internal/api"
	"jewelry_storefront/internal/handlers"
	"jewelry_storefront/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	maxImages    = 10
	maxImageSize = 10 << 20
)

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func formBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.PostForm(name))
	return v
}

// productFromForm lit le formulaire multipart produit : listes séparées par
// des virgules, images dans image0..imageN
func productFromForm(c *gin.Context) (models.ProductInput, []api.ImageFile, error) {
	var in models.ProductInput

	in.Name = c.PostForm("name")
	in.Description = c.PostForm("description")
	in.Category = c.PostForm("category")
	in.EstimatedDispatch = c.PostForm("estimatedDispatch")
	in.InStock = formBool(c, "inStock")
	in.PreOrder = formBool(c, "preOrder")
	in.IsFeatured = formBool(c, "isFeatured")
	in.Materials = splitList(c.PostForm("materials"))
	in.Sizes = splitList(c.PostForm("sizes"))
	in.Colors = splitList(c.PostForm("colors"))
	in.Tags = splitList(c.PostForm("tags"))

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		return in, nil, fmt.Errorf("prix invalide: %w", err)
	}
	in.Price = price
	if v := c.PostForm("originalPrice"); v != "" {
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, nil, fmt.Errorf("prix barré invalide: %w", err)
		}
		in.OriginalPrice = &op
	}
	if v := c.PostForm("stockQuantity"); v != "" {
		if in.StockQuantity, err = strconv.Atoi(v); err != nil {
			return in, nil, fmt.Errorf("stock invalide: %w", err)
		}
	}

	var images []api.ImageFile
	for i := 0; i < maxImages; i++ {
		fh, err := c.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			break
		}
		if fh.Size > maxImageSize {
			return in, nil, fmt.Errorf("image %s trop volumineuse", fh.Filename)
		}
		f, err := fh.Open()
		if err != nil {
			return in, nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return in, nil, err
		}
		images = append(images, api.ImageFile{Filename: fh.Filename, Data: data})
	}
	return in, images, nil
}

// bindProduct accepte le formulaire multipart ou un corps JSON sans images
func bindProduct(c *gin.Context) (models.ProductInput, []api.ImageFile, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		in, images, err := productFromForm(c)
		if err != nil {
			handlers.BadRequest(c, err)
			return in, nil, false
		}
		return in, images, true
	}

	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.BadRequest(c, err)
		return in, nil, false
	}
	return in, nil, true
}

func CreateProduct(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	in, images, ok := bindProduct(c)
	if !ok {
		return
	}

	created, err := st.CreateProduct(c.Request.Context(), in, images)
	if err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateProduct(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	in, images, ok := bindProduct(c)
	if !ok {
		return
	}

	if err := st.UpdateProduct(c.Request.Context(), c.Param("id"), in, images); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour"})
}

func DeleteProduct(c *gin.Context) {
	st, ok := handlers.Store(c)
	if !ok {
		return
	}
	if err := st.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		handlers.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
