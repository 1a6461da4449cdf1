package prompter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrianliechti/flowgenius/pkg/provider"
)

var _ Provider = (*Smart)(nil)

// Smart classifies the content first and builds the prompt from a template
// matching the detected content type and mood.
type Smart struct {
	completer provider.Completer

	temperature float64
	maxTokens   int
}

func NewSmart(completer provider.Completer) *Smart {
	return &Smart{
		completer: completer,

		temperature: 0.7,
		maxTokens:   300,
	}
}

type Analysis struct {
	Type  ContentType
	Mood  Mood
	Style string
}

func (s *Smart) Prompt(ctx context.Context, input string) (string, error) {
	analysis, err := s.Analyze(ctx, input)

	if err != nil {
		return "", err
	}

	messages := []provider.Message{
		provider.SystemMessage("You are an expert at creating detailed, atmospheric image generation prompts optimized for AI image generation."),
		provider.UserMessage(optimizationPrompt(input, analysis)),
	}

	return complete(ctx, s.completer, messages, s.temperature, s.maxTokens)
}

func (s *Smart) Analyze(ctx context.Context, input string) (*Analysis, error) {
	messages := []provider.Message{
		provider.SystemMessage("You are an expert content analyzer. Classify content for optimal background image generation."),
		provider.UserMessage(analysisPrompt(input)),
	}

	text, err := complete(ctx, s.completer, messages, s.temperature, s.maxTokens)

	if err != nil {
		return nil, err
	}

	return ParseAnalysis(text), nil
}

var (
	typePattern  = regexp.MustCompile(`(?i)Type:\s*(\w+)`)
	moodPattern  = regexp.MustCompile(`(?i)Mood:\s*(\w+)`)
	stylePattern = regexp.MustCompile(`(?i)Style:\s*(.+)`)
)

// ParseAnalysis reads the "Type:", "Mood:" and "Style:" lines of a
// classification answer. Missing or unknown values fall back to a personal,
// neutral analysis.
func ParseAnalysis(text string) *Analysis {
	result := &Analysis{
		Type:  ContentTypePersonal,
		Mood:  MoodNeutral,
		Style: "calm, professional atmosphere",
	}

	if m := typePattern.FindStringSubmatch(text); m != nil {
		if t := ContentType(strings.ToLower(m[1])); t.valid() {
			result.Type = t
		}
	}

	if m := moodPattern.FindStringSubmatch(text); m != nil {
		if mood := Mood(strings.ToLower(m[1])); mood.valid() {
			result.Mood = mood
		}
	}

	if m := stylePattern.FindStringSubmatch(text); m != nil {
		if style := strings.TrimSpace(m[1]); style != "" {
			result.Style = style
		}
	}

	return result
}

func analysisPrompt(content string) string {
	return `Analyze the following content and classify it into:
1. Content Type: technical, creative, personal, or academic
2. Mood: calm, energetic, dark, bright, or neutral
3. Visual Style: brief description of appropriate visual atmosphere

Content:
` + content + `

Respond in this exact format:
Type: [content_type]
Mood: [mood]
Style: [visual_style_description]`
}

func optimizationPrompt(content string, analysis *Analysis) string {
	summary := content

	if len([]rune(summary)) > 500 {
		summary = string([]rune(summary)[:500])
	}

	return fmt.Sprintf(`Create a detailed, atmospheric image generation prompt for a background image.

Content Analysis:
- Type: %s
- Mood: %s
- Style: %s

Base Template: %s

Original Content Summary:
%s...

Create an optimized prompt that:
- Captures the essence and mood of the content
- Creates an immersive but non-distracting background
- Includes specific lighting, atmosphere, and composition details
- Is suitable for AI image generation

Respond with only the optimized prompt, no additional text.`, analysis.Type, analysis.Mood, analysis.Style, Template(analysis.Type, analysis.Mood), summary)
}
