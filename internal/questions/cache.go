package questions

import (
	"container/list"
	"sync"

	"github.com/jonathan/interview-scripter/internal/types"
)

// cacheKey identifies one generation result. Collisions only occur for
// identical inputs, which is the intended memoization behavior.
type cacheKey struct {
	requirementID string
	category      types.KSAOCategory
	definition    string
}

type cacheEntry struct {
	key       cacheKey
	questions []types.InterviewQuestion
}

// questionCache is a bounded LRU over generated question lists. The bound
// keeps a long-running server process flat; a single session never comes
// close to it.
type questionCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[cacheKey]*list.Element
}

func newQuestionCache(capacity int) *questionCache {
	return &questionCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[cacheKey]*list.Element, capacity),
	}
}

func (c *questionCache) get(key cacheKey) ([]types.InterviewQuestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).questions, true
}

func (c *questionCache) put(key cacheKey, questions []types.InterviewQuestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).questions = questions
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, questions: questions})
	c.entries[key] = elem

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

func (c *questionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
