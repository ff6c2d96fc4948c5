// Package responses defines the standard JSON envelope of the API.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// APIResponse is the standard envelope for API responses.
type APIResponse struct {
	Status  string      `json:"status"` // "success" or "error"
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// Success sends a successful response with the provided data and message.
func Success(c *gin.Context, data interface{}, message string) {
	resp := APIResponse{Status: "success", Data: data, Message: message}
	c.JSON(http.StatusOK, resp)
	logger.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": http.StatusOK,
	}).Debug("API success")
}

// Created sends a 201 response with the provided data.
func Created(c *gin.Context, data interface{}, message string) {
	resp := APIResponse{Status: "success", Data: data, Message: message}
	c.JSON(http.StatusCreated, resp)
}

// Error sends an error response with the provided code, message and optional
// error details.
func Error(c *gin.Context, code int, message string, errs ...string) {
	resp := APIResponse{Status: "error", Message: message, Errors: errs}
	c.JSON(code, resp)
	logger.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": code,
		"errors": errs,
	}).Warn("API error")
}
