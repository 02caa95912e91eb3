// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 instances for Digest.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest returns the hex-encoded SHA-256 of data. The backend uses it as
// the entity tag of a published template.
func Digest(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// QuoteETag wraps a digest into a strong entity tag ("...").
func QuoteETag(digest string) string {
	return `"` + digest + `"`
}
