package scaffold

import (
	"path/filepath"
	"strings"
	"unicode"
)

const exportNameSeparatorConstant = "-"

// FileStem returns the file name without its final extension. Dot files keep their name.
func FileStem(path string) string {
	fileName := filepath.Base(path)
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if len(stem) == 0 {
		return fileName
	}
	return stem
}

// ExportName guesses the main export of a kebab-case module, so lesson-plan-generator becomes lessonPlanGenerator.
func ExportName(stem string) string {
	nameParts := strings.Split(stem, exportNameSeparatorConstant)
	var builder strings.Builder
	builder.WriteString(nameParts[0])
	for _, namePart := range nameParts[1:] {
		builder.WriteString(titleCase(namePart))
	}
	return builder.String()
}

// titleCase upper-cases every letter that follows a non-letter and lower-cases the rest.
func titleCase(word string) string {
	var builder strings.Builder
	previousWasLetter := false
	for _, character := range word {
		isLetter := unicode.IsLetter(character)
		switch {
		case isLetter && !previousWasLetter:
			builder.WriteRune(unicode.ToUpper(character))
		case isLetter:
			builder.WriteRune(unicode.ToLower(character))
		default:
			builder.WriteRune(character)
		}
		previousWasLetter = isLetter
	}
	return builder.String()
}
