package rag

import (
	"context"
	"fmt"
	"strings"
)

// SkillPathResult is the outcome of a skill-gap analysis. Failures fold
// into the result rather than an error so callers always get Success plus
// a message they can show.
type SkillPathResult struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message,omitempty"`
	CurrentSkills  []string   `json:"current_skills"`
	TargetRole     string     `json:"target_role"`
	TargetJobs     []JobMatch `json:"target_jobs,omitempty"`
	RequiredSkills []string   `json:"required_skills"`
	AlreadyHave    []string   `json:"already_have"`
	SkillsToLearn  []string   `json:"skills_to_learn"`
	CurrentRole    *JobMatch  `json:"current_role,omitempty"`
}

// SkillPath analyzes which of the target role's required skills the
// candidate already has and which they still need. Requirements are the
// union over the top three jobs matching the target role, in first-seen
// order. A current skill covers a required one when either contains the
// other case-insensitively, so "Java" covers "JavaScript"; the match is
// deliberately loose and callers should treat AlreadyHave as a hint.
func (e *Engine) SkillPath(ctx context.Context, currentSkills []string, targetRole string) SkillPathResult {
	result := SkillPathResult{
		CurrentSkills:  currentSkills,
		TargetRole:     targetRole,
		RequiredSkills: []string{},
		AlreadyHave:    []string{},
		SkillsToLearn:  []string{},
	}

	targetJobs, err := e.SearchJobs(ctx, targetRole, 3)
	if err != nil {
		e.logger.Error("skill path search failed", "target", targetRole, "error", err)
		result.Message = fmt.Sprintf("Error analyzing skills: %v", err)
		return result
	}
	if len(targetJobs) == 0 {
		result.Message = fmt.Sprintf("Couldn't find any jobs matching '%s'", targetRole)
		return result
	}
	result.TargetJobs = targetJobs

	seen := make(map[string]bool)
	for _, match := range targetJobs {
		skills, err := e.store.JobSkills(ctx, match.Job.ID)
		if err != nil {
			e.logger.Error("skill path requirements lookup failed", "job", match.Job.ID, "error", err)
			result.Message = fmt.Sprintf("Error analyzing skills: %v", err)
			return result
		}
		for _, skill := range skills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			result.RequiredSkills = append(result.RequiredSkills, skill)
		}
	}

	for _, required := range result.RequiredSkills {
		if coveredBy(required, currentSkills) {
			result.AlreadyHave = append(result.AlreadyHave, required)
		} else {
			result.SkillsToLearn = append(result.SkillsToLearn, required)
		}
	}

	// Best-effort guess at the candidate's current role from their skills.
	if len(currentSkills) > 0 {
		currentJobs, err := e.SearchJobs(ctx, strings.Join(currentSkills, " "), 1)
		if err != nil {
			e.logger.Error("skill path current role lookup failed", "error", err)
			result.Message = fmt.Sprintf("Error analyzing skills: %v", err)
			result.Success = false
			return result
		}
		if len(currentJobs) > 0 {
			result.CurrentRole = &currentJobs[0]
		}
	}

	result.Success = true
	return result
}

// coveredBy reports whether any current skill matches the required skill by
// bidirectional case-insensitive substring.
func coveredBy(required string, currentSkills []string) bool {
	req := strings.ToLower(required)
	for _, current := range currentSkills {
		cur := strings.ToLower(current)
		if cur == "" {
			continue
		}
		if strings.Contains(req, cur) || strings.Contains(cur, req) {
			return true
		}
	}
	return false
}
