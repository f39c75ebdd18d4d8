package model

import "math"

// Stats are the illustrative impact numbers shown above the grid.
type Stats struct {
	ItemCount       int `json:"items_count"`
	PoundsSaved     int `json:"pounds_saved"`
	NeighborsHelped int `json:"neighbors_helped"`
}

// Impact multipliers per shared item.
const (
	poundsPerItem    = 2.3
	neighborsPerItem = 1.8
)

// NewStats derives the board statistics from the number of items.
func NewStats(itemCount int) Stats {
	n := float64(itemCount)
	return Stats{
		ItemCount:       itemCount,
		PoundsSaved:     int(math.Floor(n * poundsPerItem)),
		NeighborsHelped: int(math.Floor(n * neighborsPerItem)),
	}
}
