package utils

import "regexp"

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

var fileNameRe = regexp.MustCompile(`[\/\?<>\\:\*\|"]`)

// SanitizeFileName заменяет недопустимые символы имени файла на подчёркивания
func SanitizeFileName(name string) string {
	return fileNameRe.ReplaceAllString(name, "_")
}
