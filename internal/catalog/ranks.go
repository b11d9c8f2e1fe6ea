package catalog

// StoreRank is a reputation milestone with a display title.
type StoreRank struct {
	Name          string
	MinReputation int
}

// StoreRanks is ordered by minimum reputation ascending.
var StoreRanks = []StoreRank{
	{"Budding Business", 0},
	{"Neighborhood Favorite", 100},
	{"Talk of the Town", 250},
	{"City Hotspot", 500},
	{"Regional Hub", 800},
	{"National Star", 1200},
	{"Global Icon", 2000},
	{"Legend of Retail ⭐", 3500},
}

// RankIndex returns the index of the highest rank at or below the given
// reputation.
func RankIndex(reputation int) int {
	idx := 0
	for i, r := range StoreRanks {
		if reputation >= r.MinReputation {
			idx = i
		}
	}
	return idx
}

// RankAt returns the rank for the given reputation.
func RankAt(reputation int) StoreRank {
	return StoreRanks[RankIndex(reputation)]
}
