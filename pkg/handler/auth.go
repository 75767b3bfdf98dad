// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"

	"github.com/AccelByte/extend-word-groups/pkg/account"
	"github.com/AccelByte/extend-word-groups/pkg/common"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	WalletAddress string `json:"walletAddress"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type walletConnectRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Auth.Register")
	defer scope.Finish()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Username, email and password are required")
		return
	}

	result, err := h.accounts.Register(scope.Ctx, account.RegisterRequest{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		fail(c, scope, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *Handler) Login(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Auth.Login")
	defer scope.Finish()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required")
		return
	}

	result, err := h.accounts.Login(scope.Ctx, req.Email, req.Password)
	if err != nil {
		fail(c, scope, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *Handler) WalletConnect(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Auth.WalletConnect")
	defer scope.Finish()

	var req walletConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Wallet address, signature and message are required")
		return
	}

	result, err := h.accounts.ConnectWallet(scope.Ctx, req.WalletAddress, req.Signature, req.Message)
	if err != nil {
		fail(c, scope, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wallet connected successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *Handler) Profile(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Auth.Profile")
	defer scope.Finish()

	profile, err := h.accounts.Profile(scope.Ctx, identityOf(c).AccountID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}
