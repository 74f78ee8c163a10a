package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type addToCartReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding item to cart", "error": err.Error()})
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid productId", "error": err.Error()})
		return
	}

	item, created, err := s.cart.AddItem(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		respondError(c, "Error adding item to cart", err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart successfully", "cart": item})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "cart": item})
}

func (s *Server) listCart(c *gin.Context) {
	rows, err := s.cart.List(c.Request.Context())
	if err != nil {
		respondError(c, "Error fetching cart items", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) removeFromCart(c *gin.Context) {
	productID, ok := parseObjectID(c, "productId")
	if !ok {
		return
	}
	if err := s.cart.RemoveByProductID(c.Request.Context(), productID); err != nil {
		respondError(c, "Item not found in cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}
