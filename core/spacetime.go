package core

import "strconv"

// SpaceTimeKey encodes a (location, timepoint-index) pair as a single vertex
// ID suitable for use with Graph. Locations and timepoints are planner-level
// concepts (packages ftr/timeline); core stays ignorant of their meaning and
// only needs a stable, collision-free string key.
//
// Complexity: O(len(location)) time, O(1) extra allocations beyond the result.
func SpaceTimeKey(location string, timepointIdx int) string {
	return location + "@" + strconv.Itoa(timepointIdx)
}
