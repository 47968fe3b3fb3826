package calculations

import (
	"github.com/promptlens/promptlens/output"
)

// LowQualityThreshold bounds the low-quality subset: records with
// response_quality strictly below it.
const LowQualityThreshold = 3.0

// QualityDistribution counts records per quality bucket. Buckets use
// inclusive upper edges: quality <= 2 is Poor, <= 3 Fair, <= 4 Good,
// everything else Excellent, so out-of-range values still land in a bucket
// and the counts always sum to the record total.
type QualityDistribution struct {
	Poor      int `json:"Poor"`
	Fair      int `json:"Fair"`
	Good      int `json:"Good"`
	Excellent int `json:"Excellent"`
}

// QualityInsights is the quality-distribution view. When the low-quality
// subset is empty, LowQualityCharacteristics stays an empty object rather
// than reporting statistics computed over nothing.
type QualityInsights struct {
	QualityDistribution       QualityDistribution `json:"quality_distribution"`
	AvgQuality                output.Number       `json:"avg_quality"`
	QualityStd                output.Number       `json:"quality_std"`
	LowQualityCount           int                 `json:"low_quality_count"`
	LowQualityCharacteristics map[string]any      `json:"low_quality_characteristics"`
}

// Quality computes the quality insights view. Returns nil when no data is
// loaded.
func (e *Engine) Quality() *QualityInsights {
	records := e.ds.Records()
	if len(records) == 0 {
		return nil
	}

	var dist QualityDistribution
	qualities := make([]float64, 0, len(records))
	qualitySum := 0.0

	var lowCategories, lowModels []string
	lowPromptLengthSum := 0
	lowCount := 0

	for _, r := range records {
		q := r.ResponseQuality
		qualities = append(qualities, q)
		qualitySum += q

		switch {
		case q <= 2:
			dist.Poor++
		case q <= 3:
			dist.Fair++
		case q <= 4:
			dist.Good++
		default:
			dist.Excellent++
		}

		if q < LowQualityThreshold {
			lowCount++
			lowPromptLengthSum += r.PromptLength
			lowCategories = append(lowCategories, r.Category)
			lowModels = append(lowModels, r.Model)
		}
	}

	insights := &QualityInsights{
		QualityDistribution:       dist,
		AvgQuality:                output.Float(mean(qualitySum, len(records)), 2),
		QualityStd:                output.Float(sampleStdDev(qualities), 2),
		LowQualityCount:           lowCount,
		LowQualityCharacteristics: map[string]any{},
	}

	if lowCount > 0 {
		insights.LowQualityCharacteristics = map[string]any{
			"avg_prompt_length":    output.Float(mean(float64(lowPromptLengthSum), lowCount), 1),
			"most_common_category": mostCommon(lowCategories),
			"most_common_model":    mostCommon(lowModels),
		}
	}

	return insights
}
