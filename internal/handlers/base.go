package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {success: bool, data?: any, message?: string}. Never a bare array.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, message)
}

func respondUnauthorized(c *gin.Context, message string) {
	respondError(c, http.StatusUnauthorized, message)
}

// respondInternal logs the real error server-side and hands the
// client a generic message only.
func respondInternal(c *gin.Context, message string, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, message)
}
