// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package action

import "errors"

var (
	// ErrRollbackNotSupported indicates that an action cannot be undone.
	ErrRollbackNotSupported = errors.New("rollback not supported for this action")

	ErrActionNotFound = errors.New("action not found in registry")

	// ErrInvalidConfig is returned by factories for unusable parameters.
	ErrInvalidConfig = errors.New("invalid action configuration")
)
