// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package hash

import "testing"

func TestContents(t *testing.T) {
	digest, err := Contents([]byte("hello, world"))
	if err != nil {
		t.Fatal(err)
	}
	if digest != "09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b" {
		t.Errorf("got %q", digest)
	}

	if _, err := Contents(nil); err == nil {
		t.Error("expected error")
	}
}
