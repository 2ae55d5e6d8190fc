// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Contents returns the hex encoded SHA-256 digest of data. It's used to
// fingerprint uploaded spreadsheets so duplicate submissions can be spotted.
func Contents(data []byte) (string, error) {
	ss := sha256.New()
	n, err := ss.Write(data)
	if n == 0 || err != nil {
		return "", fmt.Errorf("sha256: n=%d: %v", n, err)
	}
	return hex.EncodeToString(ss.Sum(nil)), nil
}
