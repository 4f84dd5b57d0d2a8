package datamanager

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator mints ids for new todos. size is the current index size and
// taken reports whether an id is already in the index.
type IDGenerator interface {
	NextID(size int, taken func(id string) bool) string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func(size int, taken func(id string) bool) string

func (f IDFunc) NextID(size int, taken func(id string) bool) string { return f(size, taken) }

// Sequential returns size+1 and ignores taken. Ids collide if the index
// ever holds ids that are not the dense range 1..size.
func Sequential() IDGenerator {
	return IDFunc(func(size int, _ func(string) bool) string { return strconv.Itoa(size + 1) })
}

// Counter returns a monotonically increasing id starting after start. Ids
// already in the index are skipped, so fetched records are never shadowed.
func Counter(start int64) IDGenerator {
	n := &atomic.Int64{}
	n.Store(start)
	return IDFunc(func(_ int, taken func(string) bool) string {
		for {
			id := strconv.FormatInt(n.Add(1), 10)
			if taken == nil || !taken(id) {
				return id
			}
		}
	})
}

// UUIDs returns random v4 UUIDs.
func UUIDs() IDGenerator {
	return IDFunc(func(int, func(string) bool) string { return uuid.NewString() })
}

// ULIDs returns lexically sortable ULIDs.
func ULIDs() IDGenerator {
	return IDFunc(func(int, func(string) bool) string { return ulid.Make().String() })
}

// Strategy names accepted by ParseIDStrategy.
const (
	IDSequential = "sequential"
	IDCounter    = "counter"
	IDUUID       = "uuid"
	IDULID       = "ulid"
)

// ParseIDStrategy maps a config name to a generator.
func ParseIDStrategy(name string) (IDGenerator, error) {
	switch name {
	case "", IDSequential:
		return Sequential(), nil
	case IDCounter:
		return Counter(0), nil
	case IDUUID:
		return UUIDs(), nil
	case IDULID:
		return ULIDs(), nil
	}
	return nil, fmt.Errorf("unknown id strategy %q (expected: sequential, counter, uuid or ulid)", name)
}
