package xssp

import "math"

// homologyThreshold holds the minimal fraction of identical residues
// required for an alignment of a given length to count as a true homolog,
// for lengths 10 through 80. The values follow the formula
// t(L) = (290.15 * L ** -0.562 + 5) / 100 used by the original HSSP.
var homologyThreshold = [71]float64{
	0.845468, 0.80398, 0.767997, 0.736414, 0.708413, 0.683373, 0.660811,
	0.640351, 0.621688, 0.604579,
	0.58882, 0.574246, 0.560718, 0.548117, 0.536344, 0.525314, 0.514951,
	0.505194, 0.495984, 0.487275,
	0.479023, 0.471189, 0.463741, 0.456647, 0.449882, 0.44342, 0.43724,
	0.431323, 0.425651, 0.420207,
	0.414976, 0.409947, 0.405105, 0.40044, 0.395941, 0.391599, 0.387406,
	0.383352, 0.379431, 0.375636,
	0.37196, 0.368396, 0.364941, 0.361587, 0.358331, 0.355168, 0.352093,
	0.349103, 0.346194, 0.343362,
	0.340604, 0.337917, 0.335298, 0.332744, 0.330252, 0.327821, 0.325448,
	0.323129, 0.320865, 0.318652,
	0.316488, 0.314372, 0.312302, 0.310277, 0.308294, 0.306353, 0.304452,
	0.302589, 0.300764, 0.298975,
	0.297221,
}

// HomologyThreshold returns the identity fraction a hit must reach for an
// aligned length of lali residues. Lengths are clamped to the table's
// 10..80 range.
func HomologyThreshold(lali int) float64 {
	ix := lali
	if ix < 10 {
		ix = 10
	} else if ix > 80 {
		ix = 80
	}
	return homologyThreshold[ix-10]
}

// homologyCurve is the closed form of the threshold table. The table is
// authoritative; this is kept for documentation and checked against the
// table in the tests.
func homologyCurve(lali int) float64 {
	return 2.9015*math.Pow(float64(lali), -0.562) + 0.05
}
