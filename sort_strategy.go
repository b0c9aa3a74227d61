package main

import (
	"sort"

	"github.com/maruel/natural"
)

// SortStrategy defines the interface for different ordering strategies
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(paths []string) []string
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// EntryOrderSortStrategy preserves the enumeration order. This is the
// default: directory rescans keep the order the entries were listed in.
type EntryOrderSortStrategy struct{}

func (s *EntryOrderSortStrategy) Sort(paths []string) []string {
	if len(paths) == 0 {
		return []string{}
	}

	result := make([]string, len(paths))
	copy(result, paths)

	return result
}

func (s *EntryOrderSortStrategy) Name() string {
	return "Entry Order"
}

func (s *EntryOrderSortStrategy) ID() int {
	return SortEntryOrder
}

// NaturalSortStrategy implements natural sorting using maruel/natural
type NaturalSortStrategy struct{}

func (s *NaturalSortStrategy) Sort(paths []string) []string {
	if len(paths) == 0 {
		return []string{}
	}

	result := make([]string, len(paths))
	copy(result, paths)

	sort.Slice(result, func(i, j int) bool {
		return natural.Less(result[i], result[j])
	})

	return result
}

func (s *NaturalSortStrategy) Name() string {
	return "Natural"
}

func (s *NaturalSortStrategy) ID() int {
	return SortNatural
}

// SimpleSortStrategy implements lexicographical sorting
type SimpleSortStrategy struct{}

func (s *SimpleSortStrategy) Sort(paths []string) []string {
	if len(paths) == 0 {
		return []string{}
	}

	result := make([]string, len(paths))
	copy(result, paths)

	sort.Strings(result)

	return result
}

func (s *SimpleSortStrategy) Name() string {
	return "Simple"
}

func (s *SimpleSortStrategy) ID() int {
	return SortSimple
}

// GetSortStrategy returns the appropriate strategy based on the sort method ID
func GetSortStrategy(sortMethod int) SortStrategy {
	switch sortMethod {
	case SortEntryOrder:
		return &EntryOrderSortStrategy{}
	case SortNatural:
		return &NaturalSortStrategy{}
	case SortSimple:
		return &SimpleSortStrategy{}
	default:
		return &EntryOrderSortStrategy{} // Default fallback
	}
}
