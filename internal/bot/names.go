package bot

import (
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// nameCache remembers display names of users we have seen updates from.
// Rendering only; core logic never consults it.
type nameCache struct {
	mu    sync.Mutex
	names map[int64]string
}

func newNameCache() *nameCache {
	return &nameCache{names: make(map[int64]string)}
}

func (c *nameCache) remember(u *tgbotapi.User) {
	if u == nil {
		return
	}
	name := u.UserName
	if name == "" {
		name = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	if name == "" {
		return
	}
	c.mu.Lock()
	c.names[u.ID] = name
	c.mu.Unlock()
}

// display renders "name (id)", falling back to the bare id for users we
// have never heard from.
func (c *nameCache) display(id int64) string {
	c.mu.Lock()
	name := c.names[id]
	c.mu.Unlock()
	if name == "" {
		return fmt.Sprintf("user %d", id)
	}
	return fmt.Sprintf("%s (%d)", name, id)
}
