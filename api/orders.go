package api

import (
	"net/http"

	"github.com/example/cravecurve/pkg/models"
	"github.com/example/cravecurve/pkg/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type placeOrderReq struct {
	ProductID    string             `json:"productId" binding:"required"`
	ProductName  string             `json:"productName"`
	ProductPrice float64            `json:"productPrice"`
	ProductImage string             `json:"productImage"`
	UserDetails  models.UserDetails `json:"userDetails"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error placing order", "error": err.Error()})
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid productId", "error": err.Error()})
		return
	}

	o, err := s.orders.Place(c.Request.Context(), service.PlaceOrderInput{
		ProductID:    productID,
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		ProductImage: req.ProductImage,
		UserDetails:  req.UserDetails,
	})
	if err != nil {
		respondError(c, "Error placing order", err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, "Error fetching orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type setOrderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) setOrderStatus(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var req setOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating order status", "error": err.Error()})
		return
	}

	o, err := s.orders.SetStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, "Error updating order status", err)
		return
	}
	c.JSON(http.StatusOK, o)
}
