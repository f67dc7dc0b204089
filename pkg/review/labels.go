package review

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageLabel returns the English display name of tag, such as
// "English" for en or "Indonesian" for id. Tags without a known name
// fall back to their BCP 47 form.
func LanguageLabel(tag language.Tag) string {
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return tag.String()
}
