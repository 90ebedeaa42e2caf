package scraper

// FamilyDescriptor tells the scraper where one product line lives and which
// model numbers we expect in its comparison table. Expected models are only
// used for the status report; the table itself is authoritative.
type FamilyDescriptor struct {
	Code           string
	Series         int
	Path           string
	ExpectedModels []string
}

// Families is the catalog of manufacturer product lines we sell.
var Families = []FamilyDescriptor{
	{Code: "hd6", Series: 6, Path: "/products/hd6", ExpectedModels: []string{"HD226", "HD1026"}},
	{Code: "xd6", Series: 6, Path: "/products/xd6", ExpectedModels: []string{"XD236", "XD1036"}},
	{Code: "xt5", Series: 5, Path: "/products/xt5", ExpectedModels: []string{"XT245", "XT1145", "XT2145"}},
	{Code: "ls5", Series: 5, Path: "/products/ls5", ExpectedModels: []string{"LS426", "LS446"}},
	{Code: "au5", Series: 5, Path: "/products/au5", ExpectedModels: []string{"AU335"}},
}

// BySeries returns the descriptors belonging to one hardware series.
func BySeries(series int) []FamilyDescriptor {
	var out []FamilyDescriptor
	for _, f := range Families {
		if f.Series == series {
			out = append(out, f)
		}
	}
	return out
}

// ByCode returns the descriptor for a family code, if known.
func ByCode(code string) (FamilyDescriptor, bool) {
	for _, f := range Families {
		if f.Code == code {
			return f, true
		}
	}
	return FamilyDescriptor{}, false
}
