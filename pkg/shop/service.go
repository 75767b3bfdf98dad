// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package shop

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/common"
	"github.com/AccelByte/extend-word-groups/pkg/metrics"
	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	signalBuiltin "github.com/AccelByte/extend-word-groups/pkg/signal/builtin"
	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/sirupsen/logrus"
)

// Items with an effect on a puzzle.
const (
	ItemHint         = "hint"
	ItemDoublePoints = "double_points"
)

// Effects reported by UseItem.
const (
	EffectHint         = "hint"
	EffectDoublePoints = "double_points"
	EffectAcknowledged = "acknowledged"
)

const (
	SourcePurchase = "purchase"
	SourceClaim    = "claim"
)

type Dependencies struct {
	Rewards  service.RewardStore
	Accounts service.AccountStore
	Puzzles  service.PuzzleStore
	Progress service.ProgressStore
	Minter   service.Minter
	Events   pipeline.Publisher
}

type Config struct {
	// Catalog seeds an empty reward store.
	Catalog []state.Reward
	// Location decides where claim periods roll over.
	Location *time.Location
}

// Service sells, grants and consumes shop items.
type Service struct {
	rewards  service.RewardStore
	accounts service.AccountStore
	puzzles  service.PuzzleStore
	progress service.ProgressStore
	minter   service.Minter
	events   pipeline.Publisher
	catalog  []state.Reward
	location *time.Location
	now      func() time.Time
}

func NewService(deps Dependencies, cfg Config) *Service {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Service{
		rewards:  deps.Rewards,
		accounts: deps.Accounts,
		puzzles:  deps.Puzzles,
		progress: deps.Progress,
		minter:   deps.Minter,
		events:   deps.Events,
		catalog:  cfg.Catalog,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]*state.Reward, error) {
	rewards, err := s.rewards.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []*state.Reward{}
	}
	return rewards, nil
}

// Get returns an active reward. Inactive rewards are reported as missing.
func (s *Service) Get(ctx context.Context, id string) (*state.Reward, error) {
	reward, err := s.rewards.FindByID(ctx, id)
	if errors.Is(err, service.ErrNotFound) || (err == nil && !reward.Active) {
		return nil, service.NewError(service.ErrNotFound, "reward not found")
	}
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// InitCatalog writes the configured catalog. It refuses when rewards already exist.
func (s *Service) InitCatalog(ctx context.Context) (int, error) {
	count, err := s.rewards.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, service.NewError(service.ErrConflict, "rewards already initialized")
	}
	if len(s.catalog) == 0 {
		return 0, service.NewError(service.ErrValidation, "no reward catalog configured")
	}
	if err := s.rewards.CreateMany(ctx, s.catalog); err != nil {
		return 0, err
	}
	logrus.Infof("initialized reward catalog with %d rewards", len(s.catalog))
	return len(s.catalog), nil
}

// SeedIfEmpty writes the configured catalog unless rewards already exist.
func (s *Service) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := s.InitCatalog(ctx)
	if errors.Is(err, service.ErrConflict) {
		return 0, nil
	}
	return n, err
}

// Purchase spends points on a reward. Nothing changes when the level gate or the balance rejects it.
func (s *Service) Purchase(ctx context.Context, accountID, rewardID string) (*PurchaseResult, error) {
	reward, err := s.Get(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward.ClaimPeriod != "" {
		return nil, service.NewError(service.ErrValidation, "reward %s can only be claimed", rewardID)
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Level < reward.LevelRequired {
		return nil, service.NewError(service.ErrForbidden, "level %d required", reward.LevelRequired)
	}
	if account.TotalPoints < reward.Cost {
		return nil, service.NewError(service.ErrForbidden, "insufficient points")
	}

	account.TotalPoints -= reward.Cost
	quantity := grant(account, reward.ID)
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	logrus.Infof("account %s bought %s for %d points", account.ID, reward.ID, reward.Cost)

	return &PurchaseResult{
		Reward:          reward,
		Quantity:        quantity,
		RemainingPoints: account.TotalPoints,
		TxHash:          s.mint(ctx, account, reward),
		Achievements:    s.acquired(ctx, account.ID, reward, SourcePurchase),
	}, nil
}

// Claim grants one unit of a periodic free reward, once per period.
func (s *Service) Claim(ctx context.Context, accountID, rewardID string) (*ClaimResult, error) {
	reward, err := s.Get(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	key, ok := s.periodKey(reward.ClaimPeriod)
	if !ok {
		return nil, service.NewError(service.ErrValidation, "reward %s is not claimable", rewardID)
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Level < reward.LevelRequired {
		return nil, service.NewError(service.ErrForbidden, "level %d required", reward.LevelRequired)
	}
	if account.Claims[reward.ID] == key {
		return nil, service.NewError(service.ErrForbidden, "reward already claimed this %s period", reward.ClaimPeriod)
	}

	if account.Claims == nil {
		account.Claims = make(map[string]string)
	}
	account.Claims[reward.ID] = key
	quantity := grant(account, reward.ID)
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	logrus.Infof("account %s claimed %s for period %s", account.ID, reward.ID, key)

	return &ClaimResult{
		Reward:       reward,
		Quantity:     quantity,
		Period:       reward.ClaimPeriod,
		PeriodKey:    key,
		TxHash:       s.mint(ctx, account, reward),
		Achievements: s.acquired(ctx, account.ID, reward, SourceClaim),
	}, nil
}

func (s *Service) periodKey(period string) (string, bool) {
	now := s.now().In(s.location)
	switch period {
	case state.ClaimPeriodDaily:
		return common.DateKey(now), true
	case state.ClaimPeriodWeekly:
		return common.WeekKey(now), true
	}
	return "", false
}

func grant(account *state.Account, itemID string) int {
	if account.Inventory == nil {
		account.Inventory = make(map[string]int)
	}
	account.Inventory[itemID]++
	return account.Inventory[itemID]
}

// mint is best-effort: accounts without a wallet and gateway failures are skipped.
func (s *Service) mint(ctx context.Context, account *state.Account, reward *state.Reward) string {
	if !reward.Blockchain.IsOnChain || s.minter == nil {
		return ""
	}
	if account.WalletAddress == "" {
		logrus.Infof("account %s has no wallet, skipping mint of %s", account.ID, reward.ID)
		return ""
	}

	receipt, err := s.minter.Mint(ctx, service.MintRequest{
		Recipient:       account.WalletAddress,
		RewardID:        reward.ID,
		RewardType:      string(reward.Type),
		ContractAddress: reward.Blockchain.ContractAddress,
		TokenID:         reward.Blockchain.TokenID,
	})
	if err != nil {
		metrics.MintFailuresTotal.Inc()
		logrus.Errorf("failed to mint %s for %s: %v", reward.ID, account.ID, err)
		return ""
	}
	return receipt.TxHash
}

func (s *Service) acquired(ctx context.Context, accountID string, reward *state.Reward, source string) []string {
	metrics.RewardsAcquiredTotal.WithLabelValues(reward.ID, source).Inc()
	return pipeline.Publish(ctx, s.events, signalBuiltin.TypeRewardAcquired, &signalBuiltin.RewardAcquiredEvent{
		UserID:     accountID,
		RewardID:   reward.ID,
		RewardType: string(reward.Type),
		Source:     source,
		OccurredAt: s.now(),
	})
}

// Inventory lists owned items with their catalog name and description.
func (s *Service) Inventory(ctx context.Context, accountID string) ([]InventoryItem, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	items := []InventoryItem{}
	for itemID, qty := range account.Inventory {
		if qty <= 0 {
			continue
		}
		item := InventoryItem{ItemID: itemID, Name: itemID, Quantity: qty}
		reward, err := s.rewards.FindByID(ctx, itemID)
		switch {
		case err == nil:
			item.Name = reward.Name
			item.Description = reward.Description
			item.Type = reward.Type
		case !errors.Is(err, service.ErrNotFound):
			return nil, err
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

// UseItem spends one unit of an owned item. Hints and double points act on the
// caller's progress for puzzleID; other items are acknowledged.
func (s *Service) UseItem(ctx context.Context, accountID, itemID, puzzleID string) (*UseResult, error) {
	if itemID == "" {
		return nil, service.NewError(service.ErrValidation, "item id is required")
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Inventory[itemID] <= 0 {
		return nil, service.NewError(service.ErrValidation, "item %s not in inventory", itemID)
	}

	consumable, err := s.consumable(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := &UseResult{ItemID: itemID, EffectApplied: true, Effect: EffectAcknowledged}
	var progress *state.Progress
	switch itemID {
	case ItemHint:
		progress, result.Word, err = s.revealHint(ctx, accountID, puzzleID)
		if err != nil {
			return nil, err
		}
		result.Effect = EffectHint
	case ItemDoublePoints:
		if progress, err = s.armDoublePoints(ctx, accountID, puzzleID); err != nil {
			return nil, err
		}
		result.Effect = EffectDoublePoints
	}

	// The item is spent before its effect is stored, so a failed save never
	// leaves a free effect behind.
	if consumable {
		spend(account.Inventory, itemID, -1)
		if err := s.accounts.Save(ctx, account); err != nil {
			return nil, err
		}
	}
	if progress != nil {
		if err := s.progress.Save(ctx, progress); err != nil {
			if consumable {
				spend(account.Inventory, itemID, 1)
				if restoreErr := s.accounts.Save(ctx, account); restoreErr != nil {
					logrus.Errorf("failed to restore %s for account %s: %v", itemID, accountID, restoreErr)
				}
			}
			return nil, err
		}
	}
	result.Remaining = account.Inventory[itemID]

	logrus.Infof("account %s used %s (%s)", accountID, itemID, result.Effect)
	return result, nil
}

func (s *Service) playableProgress(ctx context.Context, playerID, puzzleID string) (*state.Puzzle, *state.Progress, error) {
	if puzzleID == "" {
		return nil, nil, service.NewError(service.ErrValidation, "puzzle id is required")
	}
	p, err := s.puzzles.FindByID(ctx, puzzleID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, nil, service.NewError(service.ErrNotFound, "puzzle not found")
	}
	if err != nil {
		return nil, nil, err
	}

	progress, err := s.progress.Find(ctx, playerID, puzzleID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, nil, service.NewError(service.ErrNotFound, "game progress not found")
	}
	if err != nil {
		return nil, nil, err
	}
	if progress.IsCompleted || progress.IsEliminated {
		return nil, nil, service.NewError(service.ErrValidation, "game is already over")
	}
	return p, progress, nil
}

// consumable reports whether using itemID spends it. Items with an in-game
// effect are always spent, listed in the catalog or not.
func (s *Service) consumable(ctx context.Context, itemID string) (bool, error) {
	if itemID == ItemHint || itemID == ItemDoublePoints {
		return true, nil
	}
	reward, err := s.rewards.FindByID(ctx, itemID)
	if errors.Is(err, service.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return reward.Type == state.RewardTypeConsumable, nil
}

func spend(inventory map[string]int, itemID string, delta int) {
	inventory[itemID] += delta
	if inventory[itemID] <= 0 {
		delete(inventory, itemID)
	}
}

// revealHint returns one word of the first unsolved group. Repeated hints walk
// through its words. The caller stores the returned progress.
func (s *Service) revealHint(ctx context.Context, playerID, puzzleID string) (*state.Progress, string, error) {
	p, progress, err := s.playableProgress(ctx, playerID, puzzleID)
	if err != nil {
		return nil, "", err
	}

	idx := state.FirstUnsolvedGroup(p, progress)
	words := p.Groups[idx].Words
	word := words[progress.HintsUsed%len(words)]

	progress.HintsUsed++
	progress.UpdatedAt = s.now()
	return progress, word, nil
}

func (s *Service) armDoublePoints(ctx context.Context, playerID, puzzleID string) (*state.Progress, error) {
	_, progress, err := s.playableProgress(ctx, playerID, puzzleID)
	if err != nil {
		return nil, err
	}
	if progress.DoublePointsActive {
		return nil, service.NewError(service.ErrValidation, "double points already active")
	}

	progress.DoublePointsActive = true
	progress.UpdatedAt = s.now()
	return progress, nil
}
