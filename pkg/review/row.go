package review

// StatusNeedsReview is the status of every freshly created row.
const StatusNeedsReview = "Needs Review"

// ReservedPrefix marks internal keys that are never sent for review.
const ReservedPrefix = "_"

// Row pairs one translation key with its source and target texts.
type Row struct {
	Key           string
	Source        string
	Target        string
	ReviewerNotes string
	Status        string
}

// Translated reports whether the row carries a target text.
func (r Row) Translated() bool {
	return r.Target != ""
}

// Untranslated counts rows whose target text is empty.
func Untranslated(rows []Row) int {
	n := 0
	for _, r := range rows {
		if !r.Translated() {
			n++
		}
	}
	return n
}
