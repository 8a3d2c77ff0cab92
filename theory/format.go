package theory

import (
	"strings"

	"github.com/jsphweid/changes/model"
)

// Replacement order matters: quality tokens are rewritten by substring,
// so e.g. m7b5 must fire before any bare m7 rule could.
var qualityReplacements = [][2]string{
	{"maj7", "Δ7"},
	{"maj9", "Δ9"},
	{"m7b5", "ø7"},
	{"dim7", "°7"},
	{"7#11", "7♯11"},
	{"7b9", "7♭9"},
	{"7#9", "7♯9"},
	{"m7", "-7"},
	{"m9", "-9"},
	{"m11", "-11"},
	{"m6", "-6"},
	{"m69", "-6/9"},
	{"69", "6/9"},
}

func FormatQuality(q string) string {
	res := q
	for _, r := range qualityReplacements {
		res = strings.ReplaceAll(res, r[0], r[1])
	}
	return res
}

func FormatDegree(d model.Degree) string {
	s := string(d)
	s = strings.ReplaceAll(s, "b", "♭")
	s = strings.ReplaceAll(s, "#", "♯")
	return s
}
