// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache(30 * time.Minute)
	rendered := "   2\n1     3\n"

	// Initially, nothing is cached for the revision.
	if got, ok := GetRender(c, 1); ok || got != "" {
		t.Errorf("GetRender(1) = %q, %v; want empty, false", got, ok)
	}

	CacheRender(c, 1, rendered)

	if got, ok := GetRender(c, 1); !ok || got != rendered {
		t.Errorf("GetRender(1) = %q, %v; want %q, true", got, ok, rendered)
	}
	// Other revisions stay empty
	if _, ok := GetRender(c, 2); ok {
		t.Errorf("GetRender(2) unexpectedly found an entry")
	}
}

func TestRenderCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewRenderCache(100 * time.Millisecond)
	CacheRender(c, 7, "7")

	if got, ok := GetRender(c, 7); !ok || got != "7" {
		t.Errorf("GetRender(7) = %q, %v; want \"7\", true", got, ok)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRender(c, 7); ok {
		t.Errorf("After expiration, GetRender(7) = %q; want no entry", got)
	}
}
