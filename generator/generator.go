// Package generator produces interview questions and feedback reports
// through the Anthropic API. It is the external text-generation
// collaborator of the adaptive engine: the engine hands it a question
// spec (topic distribution + difficulty tier) and it hands back
// structured questions.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/dronaai/drona-go-sdk/core"
)

const (
	questionSystemPrompt = "You are an honest interview question generator and assessment advisor."
	feedbackSystemPrompt = "You are an honest, concise exam-feedback generator. Produce structured markdown output."
)

// Generator wraps an Anthropic client for question and feedback calls.
type Generator struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
}

// Option configures the generator.
type Option func(*Generator)

// WithModel overrides the Claude model.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithMaxTokens overrides the response token cap.
func WithMaxTokens(n int64) Option {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

// New creates a generator with the given Anthropic client.
func New(client *anthropic.Client, opts ...Option) *Generator {
	g := &Generator{
		client:    client,
		model:     "claude-sonnet-4-20250514",
		maxTokens: 4096,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// QuestionRequest describes one question-set generation call.
type QuestionRequest struct {
	Topics         []string
	Count          int
	Difficulty     core.Difficulty
	Role           string
	Audience       string
	ResumeContext  string
	WeakTopics     []string
	HistorySummary string
}

// GenerateQuestions asks the model for a structured question set.
func (g *Generator) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]core.Question, error) {
	text, err := g.complete(ctx, questionSystemPrompt, buildQuizPrompt(req), nil)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	questions, err := parseQuestions(text)
	if err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	return questions, nil
}

// FeedbackReport summarizes a finished session for the feedback prompt.
type FeedbackReport struct {
	Percent          float64
	MarksEarned      float64
	MarksTotal       float64
	Correct          int
	TotalQuestions   int
	TopicPerformance []string
	WeakTopics       []string
	Strengths        []string
}

// StreamFeedback generates the performance report, delivering text
// chunks through callback as they arrive. The full text is returned
// once the stream completes.
func (g *Generator) StreamFeedback(ctx context.Context, report FeedbackReport, callback func(chunk string, done bool)) (string, error) {
	text, err := g.complete(ctx, feedbackSystemPrompt, buildFeedbackPrompt(report), callback)
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w", err)
	}
	if callback != nil {
		callback("", true)
	}
	return text, nil
}

// complete runs one message call, streaming when a callback is given.
func (g *Generator) complete(ctx context.Context, system, prompt string, callback func(string, bool)) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
	}

	var resp *anthropic.Message
	var err error
	if callback != nil {
		resp, err = g.createMessageStreaming(ctx, params, callback)
	} else {
		resp, err = g.client.Messages.New(ctx, params)
	}
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}

// createMessageStreaming handles streaming API calls.
func (g *Generator) createMessageStreaming(ctx context.Context, params anthropic.MessageNewParams, callback func(string, bool)) (*anthropic.Message, error) {
	stream := g.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()

		if err := message.Accumulate(event); err != nil {
			// Accumulation errors are non-fatal; keep streaming
			continue
		}

		switch evt := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := evt.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				callback(delta.Text, false)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &message, nil
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseQuestions extracts the JSON array from model output and
// normalizes each question.
func parseQuestions(text string) ([]core.Question, error) {
	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("no JSON array found in model response")
	}

	var questions []core.Question
	if err := json.Unmarshal([]byte(match), &questions); err != nil {
		return nil, fmt.Errorf("unmarshal question array: %w", err)
	}

	for i := range questions {
		q := &questions[i]
		for j, opt := range q.Options {
			q.Options[j] = strings.TrimSpace(opt)
		}
		for j, opt := range q.CorrectOptions {
			q.CorrectOptions[j] = strings.TrimSpace(opt)
		}
		if !q.Difficulty.Valid() {
			q.Difficulty = core.DifficultyModerate
		}
		if q.Marks == 0 {
			q.Marks = q.Difficulty.Marks()
		}
	}
	return questions, nil
}
