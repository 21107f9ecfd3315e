// Package filter narrows article sets by subscription keywords.
package filter

import (
	"strings"

	"github.com/samber/lo"

	"github.com/snchkv/newswatcher/internal/model"
)

// ByKeywords keeps the articles whose title or description contains at
// least one of the keywords, case-insensitively. An empty keyword list
// means no filtering: the input is returned unchanged, not an empty
// result. Relative order is preserved.
func ByKeywords(articles []model.Article, keywords []string) []model.Article {
	if len(keywords) == 0 {
		return articles
	}

	return lo.Filter(articles, func(a model.Article, _ int) bool {
		content := strings.ToLower(a.Title) + " " + strings.ToLower(a.Description)
		return lo.SomeBy(keywords, func(kw string) bool {
			return strings.Contains(content, strings.ToLower(kw))
		})
	})
}
