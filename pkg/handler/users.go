// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"fmt"
	"net/http"

	"github.com/AccelByte/extend-word-groups/pkg/common"

	"github.com/gin-gonic/gin"
)

type useItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	GameID string `json:"gameId"`
}

// Progression accepts an explicit ?player= identifier, otherwise the caller's own.
func (h *Handler) Progression(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Users.Progression")
	defer scope.Finish()

	identifier := c.Query("player")
	if identifier == "" {
		identifier = identityOf(c).PlayerID
	}

	progression, err := h.accounts.Progression(scope.Ctx, identifier)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progression": progression})
}

func (h *Handler) Inventory(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Users.Inventory")
	defer scope.Finish()

	items, err := h.shop.Inventory(scope.Ctx, identityOf(c).AccountID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": items})
}

func (h *Handler) UseItem(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Users.UseItem")
	defer scope.Finish()

	var req useItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Item ID is required")
		return
	}

	result, err := h.shop.UseItem(scope.Ctx, identityOf(c).AccountID, req.ItemID, req.GameID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Item %s used successfully", req.ItemID),
		"success":       true,
		"effectApplied": result.EffectApplied,
		"effect":        result.Effect,
		"word":          result.Word,
		"remaining":     result.Remaining,
	})
}
