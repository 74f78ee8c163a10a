package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/example/cravecurve/pkg/repository"
	"github.com/example/cravecurve/pkg/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// createProduct takes a multipart body: metadata fields plus an "image"
// file. The file is staged under the OS temp dir before ingestion; the media
// pipeline removes it again on every path.
func (s *Server) createProduct(c *gin.Context) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	in := service.ProductInput{
		ProductName:    c.PostForm("productName"),
		Price:          price,
		Description:    c.PostForm("description"),
		Category:       c.PostForm("category"),
		RestaurantName: c.PostForm("restaurantName"),
	}

	var staged string
	if file, err := c.FormFile("image"); err == nil {
		staged = filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, staged); err != nil {
			respondError(c, "Failed to stage uploaded image.", err)
			return
		}
	}

	p, err := s.catalog.Create(c.Request.Context(), in, staged)
	if err != nil {
		respondError(c, "Failed to create product.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully.", "product": p})
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, "Error fetching products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	p, err := s.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Product not found", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateProductReq struct {
	ProductName    *string  `json:"productName"`
	Price          *float64 `json:"price"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	RestaurantName *string  `json:"restaurantName"`
	ImageURL       *string  `json:"imageUrl"`
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating product", "error": err.Error()})
		return
	}

	p, err := s.catalog.Update(c.Request.Context(), id, repository.ProductUpdate{
		ProductName:    req.ProductName,
		Price:          req.Price,
		Description:    req.Description,
		Category:       req.Category,
		RestaurantName: req.RestaurantName,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		respondError(c, "Error updating product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": p})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	if err := s.catalog.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Product not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
