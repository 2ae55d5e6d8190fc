// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package id

import "strings"

type Batch string

func (id Batch) String() string {
	return string(id)
}

func (id Batch) Equal(s string) bool {
	return strings.EqualFold(string(id), s)
}
