// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"
	"strconv"

	"github.com/AccelByte/extend-word-groups/pkg/common"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GlobalLeaderboard(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Leaderboard.Global")
	defer scope.Finish()

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.leaderboard.Global(scope.Ctx, limit)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (h *Handler) PlayerRank(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Leaderboard.Rank")
	defer scope.Finish()

	rank, err := h.leaderboard.Rank(scope.Ctx, identityOf(c).PlayerID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"playerRank": rank})
}
