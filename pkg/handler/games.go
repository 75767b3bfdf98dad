// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"

	"github.com/AccelByte/extend-word-groups/pkg/common"

	"github.com/gin-gonic/gin"
)

type guessRequest struct {
	GameID        string   `json:"gameId" binding:"required"`
	SelectedWords []string `json:"selectedWords" binding:"required"`
}

func (h *Handler) NewGame(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Games.New")
	defer scope.Finish()

	g, err := h.games.NewPractice(scope.Ctx, identityOf(c).PlayerID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "New practice game created successfully",
		"game":     g.Puzzle,
		"progress": g.Progress,
	})
}

func (h *Handler) DailyChallenge(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Games.Daily")
	defer scope.Finish()

	g, err := h.games.Daily(scope.Ctx, identityOf(c).PlayerID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Daily challenge retrieved successfully",
		"game":     g.Puzzle,
		"progress": g.Progress,
	})
}

func (h *Handler) SubmitGuess(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Games.SubmitGuess")
	defer scope.Finish()

	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Valid game ID and exactly 4 selected words are required")
		return
	}
	scope.SetAttributes("puzzle_id", req.GameID)

	result, err := h.games.SubmitGuess(scope.Ctx, identityOf(c), req.GameID, req.SelectedWords)
	if err != nil {
		fail(c, scope, err)
		return
	}
	scope.SetAttributes("correct", result.Correct)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GameStats(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Games.Stats")
	defer scope.Finish()

	stats, err := h.games.Stats(scope.Ctx, identityOf(c))
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Game stats retrieved successfully",
		"gameCount": stats.GameCount,
		"userStats": stats.UserStats,
	})
}

func (h *Handler) ActiveGames(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Progress.Active")
	defer scope.Finish()

	active, err := h.games.ActiveGames(scope.Ctx, identityOf(c).PlayerID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeGames": active})
}

func (h *Handler) PlayerStats(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Progress.Stats")
	defer scope.Finish()

	stats, err := h.games.PlayerStats(scope.Ctx, identityOf(c).PlayerID)
	if err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) ResetGame(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Progress.Reset")
	defer scope.Finish()

	puzzleID := c.Param("puzzleId")
	if err := h.games.Reset(scope.Ctx, identityOf(c).PlayerID, puzzleID); err != nil {
		fail(c, scope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Game progress reset successfully",
		"gameId":  puzzleID,
	})
}
