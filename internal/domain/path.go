package domain

import "sort"

// BuildPaths partitions markers by individual identifier, preserving
// first-seen group order, and sorts each group chronologically. A marker
// whose timestamp cannot be parsed keeps its original relative position:
// the sort is stable and unparsable times compare equal to everything.
func BuildPaths(markers []Marker) []Path {
	var order []string
	groups := make(map[string][]Marker)
	for _, m := range markers {
		if _, ok := groups[m.IndividualID]; !ok {
			order = append(order, m.IndividualID)
		}
		groups[m.IndividualID] = append(groups[m.IndividualID], m)
	}

	paths := make([]Path, 0, len(order))
	for _, id := range order {
		group := groups[id]
		sortByTimestamp(group)
		paths = append(paths, Path{
			IndividualID: id,
			Taxon:        group[0].Taxon,
			Species:      group[0].Species,
			BaseColor:    group[0].BaseColor,
			Markers:      group,
		})
	}
	return paths
}

func sortByTimestamp(group []Marker) {
	sort.SliceStable(group, func(i, j int) bool {
		ti, okI := ParseTimestamp(group[i].Timestamp)
		tj, okJ := ParseTimestamp(group[j].Timestamp)
		if !okI || !okJ {
			return false
		}
		return ti.Before(tj)
	})
}
