package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// UsernameCache memoizes user id to username lookups.
type UsernameCache interface {
	Get(userID string) (string, bool)
	Set(userID, username string)
	Invalidate(userID string)
}

type lruUsernameCache struct {
	lru *expirable.LRU[string, string]
}

// NewUsernameCache returns an in-process cache whose entries expire after ttl.
func NewUsernameCache(size int, ttl time.Duration) UsernameCache {
	return &lruUsernameCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *lruUsernameCache) Get(userID string) (string, bool) {
	return c.lru.Get(userID)
}

func (c *lruUsernameCache) Set(userID, username string) {
	c.lru.Add(userID, username)
}

func (c *lruUsernameCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
