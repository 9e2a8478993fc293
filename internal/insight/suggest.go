package insight

import (
	"context"
	"encoding/json"
	"strings"

	"study-planner/internal/domain"
	"study-planner/internal/errors"
)

// TaskSuggestion is one proposed task parsed from generated text.
type TaskSuggestion struct {
	Title     string `json:"title"`
	SubjectID string `json:"subjectId"`
}

const suggestSystemPrompt = `You are a study planner assistant. Given a student's free-form description of what they want to get done, respond with ONLY a JSON array of task objects, each {"title": string, "subjectId": string}. Valid subjectId values: physics, chemistry, combined, exercise, entertainment, personal. No prose, no markdown.`

// SuggestTasks turns free text into proposed task items. Suggestions with
// an unknown subject fall back to the personal category's subject.
func SuggestTasks(ctx context.Context, client Client, text string) ([]TaskSuggestion, error) {
	raw, err := client.Generate(ctx, GenerateRequest{
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   text,
	})
	if err != nil {
		return nil, err
	}

	suggestions, err := extractSuggestions(raw)
	if err != nil {
		return nil, err
	}

	cleaned := make([]TaskSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		if _, ok := domain.SubjectByID(s.SubjectID); !ok {
			s.SubjectID = "personal"
		}
		cleaned = append(cleaned, s)
	}
	return cleaned, nil
}

const insightSystemPrompt = `You are a study planner assistant. Analyze the JSON study data the student provides and reply with a short, encouraging plain-text insight about their study habits. Two or three sentences, no markdown.`

// StudyInsight asks for a free-text observation over a slice of planner
// data. The data is passed through as JSON; its shape is up to the caller.
func StudyInsight(ctx context.Context, client Client, data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", errors.NewInsightError("encoding study data", err)
	}
	raw, err := client.Generate(ctx, GenerateRequest{
		SystemPrompt: insightSystemPrompt,
		UserPrompt:   string(payload),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// extractSuggestions parses a JSON array out of raw generated text, which
// may be wrapped in markdown code fences or surrounded by prose.
func extractSuggestions(raw string) ([]TaskSuggestion, error) {
	cleaned := stripCodeFences(raw)
	block := extractArrayBlock(cleaned)
	if block == "" {
		return nil, errors.NewInsightError("no JSON array found in generated text", nil)
	}

	var suggestions []TaskSuggestion
	if err := json.Unmarshal([]byte(block), &suggestions); err != nil {
		return nil, errors.NewInsightError("generated text is not a valid task list", err)
	}
	return suggestions, nil
}

// stripCodeFences removes markdown code fence lines, keeping their content.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// extractArrayBlock finds the first balanced [ ... ] block in the text.
func extractArrayBlock(s string) string {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
