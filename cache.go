// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"fmt"
	"time"

	"github.com/cybrota/avlscope/avl"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered trees are cheap to rebuild, so keep them for a short while only
	renderCacheExpiration = 10 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree text. A non-positive ttl
// falls back to renderCacheExpiration.
func NewRenderCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = renderCacheExpiration
	}
	return cache.New(ttl, renderCacheCleanup)
}

// renderKey identifies a rendering by tree shape, size and the annotations shown.
func renderKey(s Session, opts avl.RenderOptions) string {
	return fmt.Sprintf("%s/%d/%016x/h=%t/bf=%t", s.Kind(), s.Len(), s.Fingerprint(), opts.ShowHeight, opts.ShowBalance)
}

func CacheRender(c *cache.Cache, key string, text string) {
	c.SetDefault(key, text)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillRender returns the cached rendering of s, rendering and storing it
// on a miss.
func GetOrFillRender(c *cache.Cache, s Session, opts avl.RenderOptions) string {
	key := renderKey(s, opts)
	if text := GetRender(c, key); text != "" {
		return text
	}
	text := s.Render(opts)
	CacheRender(c, key, text)
	return text
}
