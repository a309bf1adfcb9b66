package wealth

import (
	"sort"
)

// AssetGroup aggregates all assets sharing an asset type. Members are
// shared with the report's asset list, the group only owns its combined
// performance.
type AssetGroup struct {
	Type   AssetType
	Assets []*Asset

	Performance
}

// groupAssets groups assets by type and derives each group's combined
// performance. Groups come out in the AssetTypes declaration order, empty
// types are skipped.
func groupAssets(assets []*Asset, now Date) []*AssetGroup {
	byType := make(map[AssetType][]*Asset)
	for _, a := range assets {
		byType[a.Type] = append(byType[a.Type], a)
	}

	groups := make([]*AssetGroup, 0, len(byType))
	for _, t := range AssetTypes() {
		members := byType[t]
		if len(members) == 0 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
		groups = append(groups, &AssetGroup{
			Type:        t,
			Assets:      members,
			Performance: combine(members, now),
		})
	}
	return groups
}

// combine sums the daily series of several assets date-wise and merges their
// contribution lists, producing the performance shape at any aggregate
// level. An asset contributes to a date only once it exists, its own series
// is already forward-filled from its opening to now.
func combine(assets []*Asset, now Date) Performance {
	series := make([][]DailyValue, len(assets))
	for i, a := range assets {
		series[i] = a.Daily
	}
	merged := mergeDaily(series...)

	var all []Contribution
	for _, a := range assets {
		all = append(all, a.Contributions...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].On.Before(all[j].On) })
	total := Money{}
	for i := range all {
		total = total.Add(all[i].Amount)
		all[i].Total = total
	}

	return Performance{
		Contributions: all,
		Daily:         merged.FillDaily(now),
	}
}
