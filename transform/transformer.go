// Package transform normalizes legacy prompt-log exports into the canonical
// record schema: renamed fields, reformatted user ids, translated category
// labels, canonical model names, and generated session ids.
package transform

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/promptlens/promptlens/models"
)

// categoryMapping translates legacy Japanese category labels to the English
// schema categories.
var categoryMapping = map[string]string{
	"教育":             "education",
	"技術":             "technology",
	"ビジネス":         "business",
	"デザイン":         "design",
	"健康":             "health",
	"料理":             "cooking",
	"フィットネス":     "fitness",
	"ライフスタイル":   "self-improvement",
	"仕事":             "business",
	"セキュリティ":     "security",
	"金融":             "finance",
	"環境":             "environment",
	"nonprofit":      "business",
	"sustainability": "environment",
}

// modelMapping maps legacy model names onto schema-compliant values.
var modelMapping = map[string]string{
	"gpt-4":           "gpt-4",
	"gpt-3.5-turbo":   "gpt-3.5-turbo",
	"claude-3":        "claude-3-opus",
	"claude-3-opus":   "claude-3-opus",
	"claude-3-sonnet": "claude-3-sonnet",
	"gemini-pro":      "gemini-pro",
	"gpt-4-turbo":     "gpt-4-turbo",
}

// legacyRecord is one line of a pre-schema export.
type legacyRecord struct {
	Prompt       string   `json:"prompt"`
	UserName     string   `json:"user_name"`
	UserID       string   `json:"user_id"`
	Timestamp    string   `json:"timestamp"`
	ModelUsed    string   `json:"model_used"`
	Category     string   `json:"category"`
	TokensUsed   int      `json:"tokens_used"`
	QualityScore float64  `json:"quality_score"`
	PromptLength *int     `json:"prompt_length,omitempty"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
}

// FileResult summarizes one transformed file.
type FileResult struct {
	InputFile          string   `json:"input_file"`
	OutputFile         string   `json:"output_file"`
	RecordsProcessed   int      `json:"records_processed"`
	RecordsTransformed int      `json:"records_transformed"`
	Errors             []string `json:"errors"`
}

// Transformer converts legacy records to the canonical schema. Session ids
// are generated sequentially, so a Transformer is single-use per output
// stream.
type Transformer struct {
	sessionCounter int
}

// NewTransformer creates a transformer with the session counter at one.
func NewTransformer() *Transformer {
	return &Transformer{sessionCounter: 1}
}

// TransformRecord converts one legacy record.
func (t *Transformer) TransformRecord(legacy legacyRecord) models.RawRecord {
	return models.RawRecord{
		Prompt:          legacy.Prompt,
		User:            legacy.UserName,
		UserID:          transformUserID(legacy.UserID),
		Timestamp:       legacy.Timestamp,
		Model:           mapModelName(legacy.ModelUsed),
		Category:        transformCategory(legacy.Category),
		TokensUsed:      legacy.TokensUsed,
		ResponseQuality: legacy.QualityScore,
		SessionID:       t.nextSessionID(),
		PromptLength:    legacy.PromptLength,
		ResponseTimeMS:  legacy.ResponseTime,
		CostUSD:         legacy.Cost,
	}
}

// TransformFile reads a legacy JSONL file and writes the canonical form.
// Bad lines are recorded as errors and skipped.
func (t *Transformer) TransformFile(inputFile, outputFile string) (*FileResult, error) {
	result := &FileResult{
		InputFile:  inputFile,
		OutputFile: outputFile,
		Errors:     []string{},
	}

	in, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", inputFile, err)
	}
	defer in.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output %s: %w", outputFile, err)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var legacy legacyRecord
		if err := sonic.UnmarshalString(line, &legacy); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid JSON: %v", lineNum, err))
			continue
		}
		result.RecordsProcessed++

		transformed := t.TransformRecord(legacy)
		encoded, err := sonic.Marshal(transformed)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: transformation error: %v", lineNum, err))
			continue
		}

		writer.Write(encoded)
		writer.WriteByte('\n')
		result.RecordsTransformed++
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("scanner error at line %d: %w", lineNum, err)
	}
	if err := writer.Flush(); err != nil {
		return result, fmt.Errorf("failed to flush output: %w", err)
	}

	return result, nil
}

// transformUserID reformats u_N ids to the zero-padded usr_00N form.
func transformUserID(userID string) string {
	if rest, ok := strings.CutPrefix(userID, "u_"); ok {
		for len(rest) < 3 {
			rest = "0" + rest
		}
		return "usr_" + rest
	}
	return userID
}

// transformCategory translates legacy category labels; unknown labels are
// lowercased.
func transformCategory(category string) string {
	if mapped, ok := categoryMapping[category]; ok {
		return mapped
	}
	return strings.ToLower(category)
}

// mapModelName maps legacy model names; unknown models default to gpt-4.
func mapModelName(model string) string {
	if mapped, ok := modelMapping[model]; ok {
		return mapped
	}
	return "gpt-4"
}

func (t *Transformer) nextSessionID() string {
	id := fmt.Sprintf("sess_%06d", t.sessionCounter)
	t.sessionCounter++
	return id
}
