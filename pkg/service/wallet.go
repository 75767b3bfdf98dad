// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// PrefixWalletVerifier accepts a signature when the address carries the expected
// bech32 prefix and the signature and message are present. Cryptographic checks
// belong to the wallet provider in front of this service.
type PrefixWalletVerifier struct {
	prefix string
}

// NewPrefixWalletVerifier creates a verifier for addresses such as "cosmos1...".
func NewPrefixWalletVerifier(prefix string) *PrefixWalletVerifier {
	return &PrefixWalletVerifier{prefix: prefix}
}

func (v *PrefixWalletVerifier) Verify(ctx context.Context, address, signature, message string) (bool, error) {
	if signature == "" || message == "" {
		return false, nil
	}
	if v.prefix != "" && !strings.HasPrefix(address, v.prefix+"1") {
		logrus.Debugf("wallet %s rejected: expected prefix %s1", address, v.prefix)
		return false, nil
	}
	return true, nil
}
