// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_KnownVector(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Digest(nil))
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Digest([]byte("hello")))
}

func TestDigest_ConcurrentUse(t *testing.T) {
	want := Digest([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Digest([]byte("payload")))
		}()
	}
	wg.Wait()
}

func TestQuoteETag(t *testing.T) {
	assert.Equal(t, `"abc"`, QuoteETag("abc"))
}
