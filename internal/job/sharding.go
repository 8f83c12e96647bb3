package job

import (
	"fmt"
	"hash/fnv"
)

// ShardLabel hashes a section key to a stable small-cardinality metric
// label (0-31).
func ShardLabel(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
