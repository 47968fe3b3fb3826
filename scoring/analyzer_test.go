package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Counts(t *testing.T) {
	result := Analyze("Hello world. This is a test!\n\nSecond paragraph here.")

	assert.Equal(t, 9, result.WordCount)
	assert.Equal(t, 3, result.SentenceCount)
	assert.Equal(t, 2, result.ParagraphCount)
	assert.Equal(t, 52, result.CharacterCount)
}

func TestAnalyze_CharacterCountIsRunes(t *testing.T) {
	result := Analyze("héllo")
	assert.Equal(t, 5, result.CharacterCount)
}

func TestAnalyze_Sentiment(t *testing.T) {
	assert.Equal(t, "Positive", Analyze("I love this great tool, it is excellent.").Sentiment)
	assert.Equal(t, "Negative", Analyze("This is terrible and the error is a problem.").Sentiment)
	assert.Equal(t, "Neutral", Analyze("Describe the weather in Paris.").Sentiment)
	// Equal hits on both lexicons stay neutral.
	assert.Equal(t, "Neutral", Analyze("good bad").Sentiment)
}

func TestAnalyze_Keywords(t *testing.T) {
	result := Analyze("database database schema design for the user service design")

	require.NotEmpty(t, result.Keywords)
	assert.Equal(t, "database", result.Keywords[0])
	assert.Equal(t, "design", result.Keywords[1])
	assert.NotContains(t, result.Keywords, "the")
	assert.NotContains(t, result.Keywords, "for")
}

func TestAnalyze_KeywordsCapped(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	result := Analyze(strings.Join(words, " "))
	assert.Len(t, result.Keywords, 10)
}

func TestAnalyze_Suggestions(t *testing.T) {
	result := Analyze("hi")
	assert.Contains(t, result.Suggestions, "Consider adding more detail to make your prompt more specific.")
	assert.Contains(t, result.Suggestions, "Add punctuation to improve prompt structure.")
	assert.Contains(t, result.Suggestions, "Consider proper capitalization for better presentation.")

	result = Analyze("SHORT AND LOUD")
	assert.Contains(t, result.Suggestions, "Consider using mixed case instead of all caps.")

	result = Analyze("Please write a short story about a robot. It should be fun to read.")
	assert.Equal(t, []string{"Your prompt looks well-structured!"}, result.Suggestions)
}

func TestAnalyze_LongPromptSuggestions(t *testing.T) {
	long := strings.Repeat("word ", 210)
	result := Analyze(long + ".")
	assert.Contains(t, result.Suggestions, "Consider shortening your prompt for better clarity.")
	assert.Contains(t, result.Suggestions, "Try breaking long sentences into shorter ones for better readability.")
}

func TestComplexityLevel(t *testing.T) {
	assert.Equal(t, "Very Easy", complexityLevel(85))
	assert.Equal(t, "Easy", complexityLevel(60))
	assert.Equal(t, "Moderate", complexityLevel(45))
	assert.Equal(t, "Difficult", complexityLevel(25))
	assert.Equal(t, "Very Difficult", complexityLevel(-10))
}

func TestAnalyze_Readability(t *testing.T) {
	result := Analyze("The cat sat on the mat.")
	score, ok := result.ReadabilityScore.JSON().(float64)
	require.True(t, ok)
	assert.Greater(t, score, 80.0)
	assert.Equal(t, "Very Easy", result.ComplexityLevel)
}

func TestAnalyze_EmptyPrompt(t *testing.T) {
	result := Analyze("")
	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, 0, result.SentenceCount)
	assert.NotEmpty(t, result.Suggestions)
}
