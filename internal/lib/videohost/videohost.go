// Package videohost проверяет ссылки на видео по списку разрешённых хостов.
package videohost

import (
	"net/url"
	"strings"

	"github.com/magabrotheeeer/course-platform/internal/errs"
)

// AllowedHosts — разрешённые видеохостинги. Ссылки на любые другие
// домены отклоняются до сохранения урока.
var AllowedHosts = []string{"youtube.com", "youtu.be"}

// Validate проверяет, что value — корректный URL на разрешённый видеохостинг.
// Пустое значение допустимо: урок может не иметь видео.
func Validate(value string) error {
	if value == "" {
		return nil
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return errs.NewValidation("video_url", "укажите корректную ссылку на видео")
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return errs.NewValidation("video_url", "укажите корректную ссылку на видео")
	}
	for _, allowed := range AllowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}
	return errs.NewValidation("video_url", "ссылки на сторонние ресурсы запрещены")
}
