// Package catalog loads nested translation catalogs and flattens them into
// dot-separated keys.
//
// A catalog document is a JSON or YAML mapping whose top-level keys are
// language identifiers. Each language section is an arbitrarily nested
// mapping of string keys to translation strings:
//
//	{
//		"en": {"nav": {"home": "Home", "about": "About"}},
//		"id": {"nav": {"home": "Beranda"}}
//	}
//
// # Loading
//
// LoadFile detects the format from the file extension (.json, .yaml, .yml):
//
//	cat, err := catalog.LoadFile("translations.json")
//	if errors.Is(err, catalog.ErrNotFound) {
//		// the file does not exist
//	}
//
// LoadFS does the same for an fs.FS, and Decode parses an io.Reader with an
// explicit Format. Malformed documents fail with ErrParse.
//
// # Values
//
// Decoded documents are converted into the Value variant: a Node for every
// mapping and a Leaf for every other value. Scalars keep the text written
// in the document (see FromAny and FromYAML). Input that is not valid
// UTF-8 is rejected rather than repaired.
//
// # Flattening
//
// Flatten walks a Value and joins the path to every leaf with ".":
//
//	flat, err := cat.Flatten("en")
//	// flat["nav.home"] == "Home"
//
// Empty mappings contribute no entries. Two paths that join to the same
// key fail with ErrKeyCollision. Flat.Keys returns keys sorted in
// ascending byte order.
package catalog
