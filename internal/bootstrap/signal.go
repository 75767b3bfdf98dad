// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	signalBuiltin "github.com/AccelByte/extend-word-groups/pkg/signal/builtin"
	"github.com/sirupsen/logrus"
)

// InitSignalProcessor creates a signal processor with the builtin event processors.
// Player context is loaded from the account, progress and daily stores.
//
// To handle a new gameplay event, add a processor in pkg/signal/builtin and
// register it in RegisterEventProcessors.
func InitSignalProcessor(accounts service.AccountStore, progress service.ProgressStore, daily service.DailyTracker) *signal.Processor {
	loader := signal.NewStoreContextLoader(accounts, progress, daily)
	processor := signal.NewProcessor(loader)

	signalBuiltin.RegisterEventProcessors(processor.GetEventProcessorRegistry())

	logrus.Infof("initialized signal processor with %d event processors",
		processor.GetEventProcessorRegistry().Count())

	return processor
}
