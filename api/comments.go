package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listComments(c *gin.Context) {
	productID, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	comments, err := s.comments.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, "Error fetching comments", err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

type addCommentReq struct {
	Text string `json:"text"`
}

func (s *Server) addComment(c *gin.Context) {
	productID, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var req addCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding comment", "error": err.Error()})
		return
	}

	comment, err := s.comments.Add(c.Request.Context(), productID, req.Text)
	if err != nil {
		respondError(c, "Error adding comment", err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
