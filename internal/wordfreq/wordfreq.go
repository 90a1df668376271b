// Package wordfreq builds word frequency maps from tutor transcript text
// for the word-cloud figure.
package wordfreq

import (
	"regexp"
	"strings"
)

var wordRE = regexp.MustCompile(`[a-z]{3,}`)

// stopWords removes generic terms common to both conditions so the clouds
// highlight what differs. Standard English stop words plus tutoring terms
// shared by base and recognition transcripts.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// Standard English stop words
		"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "shall", "can", "need", "dare", "ought",
		"used", "to", "of", "in", "for", "on", "with", "at", "by", "from",
		"as", "into", "through", "during", "before", "after", "above", "below",
		"between", "out", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how", "all", "each",
		"every", "both", "few", "more", "most", "other", "some", "such", "no",
		"nor", "not", "only", "own", "same", "so", "than", "too", "very",
		"just", "because", "but", "and", "or", "if", "while", "about", "up",
		"that", "this", "these", "those", "it", "its", "he", "she", "they",
		"them", "their", "we", "our", "you", "your", "i", "me", "my", "also",
		"which", "who", "whom", "what", "any", "much", "many", "well",
		"still", "even", "back", "get", "go", "make", "like", "take",
		"one", "two", "first", "new", "way", "us",
		// Common tutoring terms shared by both conditions
		"lecture", "student", "course", "content", "topic", "material",
		"next", "current", "help", "suggest", "review", "start", "continue",
		"see", "know", "think", "let", "look", "want", "come",
	} {
		stopWords[w] = struct{}{}
	}
}

// Frequencies counts lowercase words of three or more letters in corpus,
// excluding stop words.
func Frequencies(corpus string) map[string]int {
	freq := map[string]int{}
	for _, w := range wordRE.FindAllString(strings.ToLower(corpus), -1) {
		if _, skip := stopWords[w]; skip {
			continue
		}
		freq[w]++
	}
	return freq
}
