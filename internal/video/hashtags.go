package video

import "regexp"

var hashtagRe = regexp.MustCompile(`#[\w\p{Han}]+`)

const maxHashtags = 10

// ExtractHashtags собирает теги сначала из title, при их отсутствии из
// description. Не больше 10; если тегов нет вовсе - сентинел ["tiktok"].
func ExtractHashtags(title, description string) []string {
	tags := scanHashtags(title)
	if len(tags) == 0 {
		tags = scanHashtags(description)
	}

	if len(tags) == 0 {
		return []string{"tiktok"}
	}

	return tags
}

func scanHashtags(text string) []string {
	if text == "" {
		return nil
	}

	matches := hashtagRe.FindAllString(text, maxHashtags)

	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1:])
	}

	return tags
}
