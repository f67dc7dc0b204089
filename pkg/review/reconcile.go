package review

import (
	"strings"

	"github.com/dmitrymomot/transreview/pkg/catalog"
)

// Reconcile pairs every key of the source catalog with its target text.
// Rows come out sorted by key. Keys with an empty source text or a first
// segment starting with ReservedPrefix are skipped; a key missing from
// target yields an empty Target.
func Reconcile(source, target catalog.Flat) []Row {
	rows := make([]Row, 0, len(source))
	for _, key := range source.Keys() {
		text := source[key]
		if text == "" || strings.HasPrefix(key, ReservedPrefix) {
			continue
		}
		rows = append(rows, Row{
			Key:    key,
			Source: text,
			Target: target.Lookup(key),
			Status: StatusNeedsReview,
		})
	}
	return rows
}
