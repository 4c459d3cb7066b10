package match

// Default returns the built-in alias table. The entries come from real
// attendance data: known typos, word-order swaps and synonyms that field
// supervisors use for SOP task names. Keys and variants are already
// normalized. Do not edit casually — a silently missing alias turns real
// work into "missed" without any error surfacing anywhere.
func Default() *Table {
	return &Table{
		Version: "2025-11",
		Aliases: map[string][]string{
			"carrying compost": {
				"carring compost",
				"tranporting compost",
				"transporting compost",
				"manure transportation",
			},
			"weeding": {
				"weedind",
				"hand weeding",
				"weeding and top dressing",
			},
			"land preparation": {
				"land prep",
				"ploughing",
				"plouging",
				"harrowing",
			},
			"sowing": {
				"sowing media preparation",
				"planting",
				"transplanting",
			},
			"spraying/drenching": {
				"spraying",
				"drenching",
				"sparying",
				"chemical application",
			},
			"top dressing": {
				"topdressing",
				"top dresing",
				"fertilizer application",
			},
			"trellising": {
				"trelising",
				"staking",
				"stringing",
			},
			"scouting": {
				"crop scouting",
				"pest scouting",
				"scauting",
			},
			"irrigation": {
				"watering",
				"irigation",
				"drip line flushing",
			},
			"thinning/gapping": {
				"thinning",
				"gapping",
				"gaping",
			},
			"pruning": {
				"prunning",
				"desuckering",
				"de-suckering",
			},
			"grading and packing": {
				"grading",
				"packing",
				"sorting and grading",
			},
			"nursery management": {
				"nursery watering",
				"nursery weeding",
				"nusery management",
			},
			"compost application": {
				"manure application",
				"compost aplication",
				"applying compost",
			},
		},
	}
}
