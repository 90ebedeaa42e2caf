package sync

import (
	"strings"

	"github.com/brightsign-store/product-agent/internal/catalog"
)

// Two independent classification maps: series-family to its own category,
// and product line prefix to the line's umbrella category. A model lands in
// both when both exist in the catalog.
var seriesFamilyCategories = map[string]string{
	"hd6": "hd6-serie",
	"xd6": "xd6-serie",
	"xt5": "xt5-serie",
	"ls5": "ls5-serie",
	"au5": "au5-serie",
}

var lineCategories = map[string]string{
	"hd": "hd-prehravace",
	"xd": "xd-prehravace",
	"xt": "xt-prehravace",
	"ls": "ls-prehravace",
	"au": "au-audio",
}

// CategoryHandles returns the candidate category handles for a family code,
// series-family first.
func CategoryHandles(familyCode string) []string {
	var handles []string
	if h, ok := seriesFamilyCategories[familyCode]; ok {
		handles = append(handles, h)
	}
	if h, ok := lineCategories[linePrefix(familyCode)]; ok {
		handles = append(handles, h)
	}
	return handles
}

// linePrefix is the leading letters of a family code ("xt5" -> "xt").
func linePrefix(code string) string {
	return strings.TrimRight(code, "0123456789")
}

// ResolveCategories maps candidate handles to category ids. Handles missing
// from the catalog are silently dropped; resolution never errors.
func ResolveCategories(handles []string, categories []catalog.Category) []string {
	byHandle := make(map[string]string, len(categories))
	for _, c := range categories {
		byHandle[c.Handle] = c.ID
	}
	var ids []string
	for _, h := range handles {
		if id, ok := byHandle[h]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
