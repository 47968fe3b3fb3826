// Package scoring implements the stateless per-prompt text analysis:
// readability, sentiment, keyword extraction, and improvement suggestions.
// It shares no state with the loaded dataset.
package scoring

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/promptlens/promptlens/output"
)

// Result is the analysis of a single prompt.
type Result struct {
	WordCount        int           `json:"word_count"`
	CharacterCount   int           `json:"character_count"`
	SentenceCount    int           `json:"sentence_count"`
	ParagraphCount   int           `json:"paragraph_count"`
	ReadabilityScore output.Number `json:"readability_score"`
	ComplexityLevel  string        `json:"complexity_level"`
	Keywords         []string      `json:"keywords"`
	Sentiment        string        `json:"sentiment"`
	Suggestions      []string      `json:"suggestions"`
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	nonLetterRe     = regexp.MustCompile(`[^a-zA-Z]`)
	vowelGroupRe    = regexp.MustCompile(`[aeiouy]+`)
	keywordRe       = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
	wordRe          = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	punctuationRe   = regexp.MustCompile(`[.!?]`)
)

var stopWords = wordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "is", "are", "was", "were", "be", "been", "have", "has", "had", "do", "does",
	"did", "will", "would", "could", "should", "may", "might", "can", "this", "that",
	"these", "those", "i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
	"us", "them", "my", "your", "his", "its", "our", "their",
)

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome",
	"love", "like", "enjoy", "happy", "pleased", "satisfied", "positive", "best",
	"perfect", "outstanding", "brilliant", "superb", "magnificent",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "worst", "hate", "dislike", "angry",
	"sad", "disappointed", "frustrated", "annoyed", "negative", "poor", "weak",
	"failed", "broken", "wrong", "error", "problem",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Analyze scores a prompt.
func Analyze(prompt string) Result {
	wordCount := len(strings.Fields(prompt))
	sentenceCount := countSentences(prompt)
	paragraphCount := countParagraphs(prompt)

	avgSentenceLength := float64(wordCount) / float64(max(sentenceCount, 1))
	avgSyllables := estimateSyllablesPerWord(prompt)
	readability := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllables

	return Result{
		WordCount:        wordCount,
		CharacterCount:   utf8.RuneCountInString(prompt),
		SentenceCount:    sentenceCount,
		ParagraphCount:   paragraphCount,
		ReadabilityScore: output.Float(readability, 2),
		ComplexityLevel:  complexityLevel(readability),
		Keywords:         extractKeywords(prompt),
		Sentiment:        analyzeSentiment(prompt),
		Suggestions:      generateSuggestions(prompt, wordCount, sentenceCount),
	}
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func countParagraphs(text string) int {
	count := 0
	for _, part := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

// complexityLevel maps a Flesch-style score to the reading-difficulty bands.
func complexityLevel(readability float64) string {
	switch {
	case readability >= 80:
		return "Very Easy"
	case readability >= 60:
		return "Easy"
	case readability >= 40:
		return "Moderate"
	case readability >= 20:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

// estimateSyllablesPerWord uses a vowel-group heuristic with a silent-e
// adjustment.
func estimateSyllablesPerWord(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	totalSyllables := 0
	for _, word := range words {
		word = nonLetterRe.ReplaceAllString(word, "")
		if word == "" {
			continue
		}

		syllables := len(vowelGroupRe.FindAllString(word, -1))
		if strings.HasSuffix(word, "e") && syllables > 1 {
			syllables--
		}
		totalSyllables += max(syllables, 1)
	}

	return float64(totalSyllables) / float64(len(words))
}

// extractKeywords returns the ten most frequent non-stop-words of at least
// three letters, ties broken by first occurrence.
func extractKeywords(text string) []string {
	words := keywordRe.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, word := range words {
		if stopWords[word] {
			continue
		}
		if _, ok := freq[word]; !ok {
			firstSeen[word] = i
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}
	return order
}

// analyzeSentiment classifies the prompt by counting lexicon hits.
func analyzeSentiment(text string) string {
	positive, negative := 0, 0
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if positiveWords[word] {
			positive++
		}
		if negativeWords[word] {
			negative++
		}
	}

	switch {
	case positive > negative:
		return "Positive"
	case negative > positive:
		return "Negative"
	default:
		return "Neutral"
	}
}

// generateSuggestions produces improvement hints for the prompt.
func generateSuggestions(prompt string, wordCount, sentenceCount int) []string {
	var suggestions []string

	if wordCount < 10 {
		suggestions = append(suggestions, "Consider adding more detail to make your prompt more specific.")
	} else if wordCount > 200 {
		suggestions = append(suggestions, "Consider shortening your prompt for better clarity.")
	}

	avgSentenceLength := float64(wordCount) / float64(max(sentenceCount, 1))
	if avgSentenceLength > 25 {
		suggestions = append(suggestions, "Try breaking long sentences into shorter ones for better readability.")
	}

	if !punctuationRe.MatchString(prompt) {
		suggestions = append(suggestions, "Add punctuation to improve prompt structure.")
	}

	if isAllUpper(prompt) {
		suggestions = append(suggestions, "Consider using mixed case instead of all caps.")
	} else if isAllLower(prompt) {
		suggestions = append(suggestions, "Consider proper capitalization for better presentation.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your prompt looks well-structured!")
	}

	return suggestions
}

// isAllUpper reports whether the text contains at least one cased character
// and no lowercase ones.
func isAllUpper(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func isAllLower(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}
