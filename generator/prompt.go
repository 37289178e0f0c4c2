package generator

import (
	"fmt"
	"strings"
)

// buildQuizPrompt renders the question-generation prompt. Weak topics
// and history summary come from vector memory and bias the set toward
// the candidate's demonstrated gaps.
func buildQuizPrompt(req QuestionRequest) string {
	audience := "Use clear, professional interview-style language."
	if req.Audience == "School Student" {
		audience = "Use very simple school-level language."
	}

	var memory strings.Builder
	if len(req.WeakTopics) > 0 {
		fmt.Fprintf(&memory,
			"\nIMPORTANT: The candidate historically struggles with: %s. "+
				"Include MORE questions on these weak areas to help them improve.",
			strings.Join(req.WeakTopics, ", "))
	}
	if req.HistorySummary != "" {
		fmt.Fprintf(&memory, "\nCandidate history: %s", req.HistorySummary)
	}

	context := req.ResumeContext
	if context == "" {
		context = "No resume provided."
	}

	return fmt.Sprintf(`You must return a JSON array of exactly %d question objects.

Each object must have:
- question (string)
- options (array of exactly 4 strings)
- correct_options (array of correct option text strings)
- topic (string, one of: %s)
- difficulty (string: "Easy", "Moderate", or "Tough")
- marks (integer: Easy=3, Moderate=5, Tough=10)

Rules:
- Audience: %s
- Target role: %s
- Difficulty preference: %s
  * ALL questions at this difficulty
- Easy/Moderate: exactly 1 correct option
- Tough: 2-3 correct options allowed
- Cover DIFFERENT subtopics, question styles (conceptual, code-based, scenario)
- Spread questions across topics according to their weights
%s

Resume/Context:
%s

Return ONLY a valid JSON array. No commentary, no markdown fences.`,
		req.Count, strings.Join(req.Topics, ", "), audience, req.Role,
		req.Difficulty, memory.String(), context)
}

// buildFeedbackPrompt renders the end-of-session report prompt.
func buildFeedbackPrompt(r FeedbackReport) string {
	return fmt.Sprintf(`Create a comprehensive technical interview performance report.

Score: %.1f%%
Marks: %.1f/%.1f
Correct: %d/%d
Topic Performance: %s
Weak Areas: %s
Strong Areas: %s

Generate a professional, actionable assessment:
1. Overall Performance Summary (2-3 key insights)
2. Technical Strengths Demonstrated
3. Critical Improvement Areas
4. 5 Recommended Practice Projects
5. 7-Day Focused Study Plan
6. 3 Best Learning Resources

Keep it interview-focused, honest, and motivating.`,
		r.Percent, r.MarksEarned, r.MarksTotal, r.Correct, r.TotalQuestions,
		strings.Join(r.TopicPerformance, ", "),
		strings.Join(r.WeakTopics, ", "),
		strings.Join(r.Strengths, ", "))
}
