package snowflake

import (
	"fmt"
	"sync"

	bsnowflake "github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *bsnowflake.Node
)

// Init configures the generator for the given node ID (0-1023).
func Init(nodeID int64) error {
	n, err := bsnowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns a new unique ID. Init must have been called first;
// otherwise node 0 is used.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		if err := Init(0); err != nil {
			panic(err)
		}
		mu.RLock()
		n = node
		mu.RUnlock()
	}
	return n.Generate().Int64()
}
