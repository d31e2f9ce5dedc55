package handler

import (
	"log/slog"
	"net/http"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
	"taskapp/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc     port.AuthService
	metrics *metrics.AppMetrics
}

func NewAuthHandler(svc port.AuthService, m *metrics.AppMetrics) *AuthHandler {
	return &AuthHandler{svc: svc, metrics: m}
}

func (a *AuthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Auth service is running",
	})
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.SignUpRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendFieldError(c, http.StatusBadRequest, "BAD_REQUEST", "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := a.svc.Register(ctx, &params)

	if err != nil {
		slog.Warn("Auth#Register", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("register")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"username": user.Username,
		"email":    user.Email,
	})
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendFieldError(c, http.StatusBadRequest, "BAD_REQUEST", "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	resp, err := a.svc.Login(ctx, &params)

	if err != nil {
		slog.Warn("Auth#Login", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("login")
	}

	c.JSON(http.StatusOK, resp)
}
