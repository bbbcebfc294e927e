package video

import (
	"fmt"
	"unicode"
)

// Цвета продублированы в палитре веб-интерфейса ("#" закодирован для data URI)
var avatarPalette = []string{
	"%23ff0050", "%2300f2ea", "%23667eea", "%23764ba2",
	"%23f093fb", "%23f5576c", "%234facfe", "%2300f2fe",
}

// FallbackAvatar строит инлайновую SVG-заглушку: первая буква ника
// на цветном скруглённом квадрате. Для одного ника результат всегда одинаковый.
func FallbackAvatar(nickname string) string {
	if nickname == "" {
		nickname = defaultNickname
	}

	initial := unicode.ToUpper([]rune(nickname)[0])
	color := avatarPalette[nicknameHash(nickname)%len(avatarPalette)]

	return fmt.Sprintf(
		`data:image/svg+xml;utf8,<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100"><rect width="100" height="100" fill="%s" rx="20"/><text x="50" y="62" text-anchor="middle" fill="white" font-size="44" font-family="Arial, sans-serif">%c</text></svg>`,
		color, initial,
	)
}

// nicknameHash - полиномиальный rolling hash по кодам символов
func nicknameHash(s string) int {
	h := 0
	for _, r := range s {
		h = int(r) + ((h << 5) - h)
	}

	if h < 0 {
		h = -h
	}

	return h
}
