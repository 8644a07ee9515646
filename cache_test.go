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

	"github.com/cybrota/avlscope/avl"
	"github.com/patrickmn/go-cache"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache(0)
	key := "int/00000000000000ff/h=true/bf=true"
	text := "─── 1 [h=1, bf=0]\n"

	// Initially, GetRender should return an empty string for a missing key.
	if got := GetRender(c, key); got != "" {
		t.Errorf("GetRender(%q) = %q; want empty string", key, got)
	}

	CacheRender(c, key, text)

	if got := GetRender(c, key); got != text {
		t.Errorf("GetRender(%q) = %q; want %q", key, got, text)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"
	text := "This rendering should expire soon."

	c.Set(key, text, 100*time.Millisecond)

	if got := GetRender(c, key); got != text {
		t.Errorf("GetRender(%q) = %q; want %q", key, got, text)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetRender(c, key); got != "" {
		t.Errorf("After expiration, GetRender(%q) = %q; want empty string", key, got)
	}
}

func TestGetOrFillRender(t *testing.T) {
	c := NewRenderCache(time.Minute)
	s, _ := NewSession("string")
	s.Insert("b")
	s.Insert("a")

	opts := avl.RenderOptions{ShowHeight: true}
	first := GetOrFillRender(c, s, opts)
	if first != s.Render(opts) {
		t.Fatalf("GetOrFillRender() = %q; want %q", first, s.Render(opts))
	}
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount() = %d; want 1", c.ItemCount())
	}

	// Same shape, same options: served from the cache
	GetOrFillRender(c, s, opts)
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount() = %d after a hit; want 1", c.ItemCount())
	}

	// Different options are cached separately
	GetOrFillRender(c, s, avl.DefaultRenderOptions)
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount() = %d; want 2", c.ItemCount())
	}
}
