// Package cache keeps rendered note previews in a byte-bounded LRU.
package cache

import (
	"container/list"
	"errors"
	"fmt"
	"hash/fnv"
)

var ErrInvalidSize = errors.New("cache size must be positive")

// LRUCache evicts the least recently used previews once the stored bytes
// exceed its budget.
type LRUCache struct {
	maxBytes  int64
	size      int64
	evictList *list.List
	items     map[string]*list.Element
}

type Entry struct {
	Key   string
	Value string
}

func sizeof(e *Entry) int64 {
	return int64(len(e.Key) + len(e.Value))
}

// New returns a cache holding at most maxMB megabytes of previews.
func New(maxMB int) (*LRUCache, error) {
	if maxMB <= 0 {
		return nil, ErrInvalidSize
	}
	return NewWithBytes(int64(maxMB) * 1024 * 1024)
}

func NewWithBytes(maxBytes int64) (*LRUCache, error) {
	if maxBytes <= 0 {
		return nil, ErrInvalidSize
	}
	return &LRUCache{
		maxBytes:  maxBytes,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}, nil
}

// PreviewKey identifies one rendering of a note's content at a given width
// and theme.
func PreviewKey(noteID, content string, width int, theme string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(content))
	return fmt.Sprintf("%s:%x:%d:%s", noteID, h.Sum64(), width, theme)
}

func (c *LRUCache) Get(key string) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*Entry).Value, true
	}
	return "", false
}

// Put stores value under key. A value larger than the whole budget is not
// cached.
func (c *LRUCache) Put(key, value string) {
	e := &Entry{Key: key, Value: value}
	if sizeof(e) > c.maxBytes {
		c.Remove(key)
		return
	}

	if ele, hit := c.items[key]; hit {
		old := ele.Value.(*Entry)
		c.size += sizeof(e) - sizeof(old)
		ele.Value = e
		c.evictList.MoveToFront(ele)
	} else {
		c.items[key] = c.evictList.PushFront(e)
		c.size += sizeof(e)
	}

	for c.size > c.maxBytes {
		c.removeOldest()
	}
}

func (c *LRUCache) Remove(key string) {
	if ele, hit := c.items[key]; hit {
		c.removeElement(ele)
	}
}

// SizeOf reports the bytes currently held.
func (c *LRUCache) SizeOf() int64 {
	return c.size
}

func (c *LRUCache) Len() int {
	return c.evictList.Len()
}

func (c *LRUCache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*Entry)
	delete(c.items, kv.Key)
	c.size -= sizeof(kv)
}
