package rag

import (
	"context"
	"fmt"
	"strings"
)

// MatchAnalysis scores a candidate's skills against one job's requirements.
// SkillsMatched and SkillsMissing partition the requirements in their stored
// order; Percentage is matched over required, 0 for a job with no
// requirements.
type MatchAnalysis struct {
	JobID         string   `json:"job_id"`
	Percentage    float64  `json:"percentage"`
	SkillsMatched []string `json:"skills_matched"`
	SkillsMissing []string `json:"skills_missing"`
}

// MatchJob compares resume skills to the requirements of the job with the
// given ID. Matching is by case-insensitive equality: unlike the gap
// analysis this is a strict scorecard, so "Java" does not count for
// "JavaScript" here.
func (e *Engine) MatchJob(ctx context.Context, resumeSkills []string, jobID string) (MatchAnalysis, error) {
	required, err := e.store.JobSkills(ctx, jobID)
	if err != nil {
		return MatchAnalysis{}, fmt.Errorf("fetching requirements for job %s: %w", jobID, err)
	}

	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	analysis := MatchAnalysis{
		JobID:         jobID,
		SkillsMatched: []string{},
		SkillsMissing: []string{},
	}
	for _, req := range required {
		if have[strings.ToLower(req)] {
			analysis.SkillsMatched = append(analysis.SkillsMatched, req)
		} else {
			analysis.SkillsMissing = append(analysis.SkillsMissing, req)
		}
	}

	if len(required) > 0 {
		analysis.Percentage = float64(len(analysis.SkillsMatched)) / float64(len(required)) * 100
	}
	return analysis, nil
}
