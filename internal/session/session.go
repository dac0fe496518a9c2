// Package session holds the identity of the currently logged-in user for
// the lifetime of the process. There is no token and no expiry; login
// replaces the held profile and logout clears it.
package session

import (
	"sync"

	"skillbridge-backend/internal/domain"
)

type Context struct {
	mu      sync.RWMutex
	current *domain.UserProfile
}

func New() *Context {
	return &Context{}
}

func (c *Context) Login(profile *domain.UserProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = profile
}

func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

func (c *Context) Current() (*domain.UserProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil, false
	}
	return c.current, true
}
