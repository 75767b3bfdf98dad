// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"

	"github.com/AccelByte/extend-word-groups/pkg/common"

	"github.com/gin-gonic/gin"
)

type rewardRequest struct {
	RewardID string `json:"rewardId" binding:"required"`
}

func (h *Handler) ListRewards(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Rewards.List")
	defer scope.Finish()

	rewards, err := h.shop.List(scope.Ctx)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

func (h *Handler) GetReward(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Rewards.Get")
	defer scope.Finish()

	reward, err := h.shop.Get(scope.Ctx, c.Param("id"))
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reward": reward})
}

func (h *Handler) InitRewards(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Rewards.Init")
	defer scope.Finish()

	count, err := h.shop.InitCatalog(scope.Ctx)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Initial rewards created successfully",
		"count":   count,
	})
}

func (h *Handler) PurchaseReward(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Rewards.Purchase")
	defer scope.Finish()

	var req rewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Reward ID is required")
		return
	}

	result, err := h.shop.Purchase(scope.Ctx, identityOf(c).AccountID, req.RewardID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Reward purchased successfully",
		"reward":          result.Reward,
		"quantity":        result.Quantity,
		"remainingPoints": result.RemainingPoints,
		"txHash":          result.TxHash,
		"achievements":    result.Achievements,
	})
}

func (h *Handler) ClaimReward(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Rewards.Claim")
	defer scope.Finish()

	var req rewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Reward ID is required")
		return
	}

	result, err := h.shop.Claim(scope.Ctx, identityOf(c).AccountID, req.RewardID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Reward claimed successfully",
		"reward":       result.Reward,
		"quantity":     result.Quantity,
		"period":       result.Period,
		"periodKey":    result.PeriodKey,
		"txHash":       result.TxHash,
		"achievements": result.Achievements,
	})
}
