package domain

import (
	"fmt"
	"strings"
)

type PromptStyle string

const (
	DefaultPromptStyle  PromptStyle = "Default"
	ExpandedPromptStyle PromptStyle = "Expanded"
)

var PromptStyles = []PromptStyle{DefaultPromptStyle, ExpandedPromptStyle}

const topicPlaceholder = "{topic}"

const defaultPromptTemplate = `
Generate a podcast script based on the following topic: "{topic}". The podcast should follow this structure:
1. Introduction: Briefly introduce the topic, why it's relevant.
2. Discussion Outline:
    - Explore the basics: Define the core concepts or ideas.
    - Deep dive into key points: Discuss the main challenges or exciting aspects.
    - Solutions and insights: Offer tips or solutions to address the issues.
    - Debate or agreement on challenges: Explore different viewpoints or emphasize the biggest challenges.
    - Practical takeaways: Summarize the key lessons or insights.
3. Closing Remarks: Conclude with a call to action or final thought.
`

const expandedPromptTemplate = `
Expanded Prompt for Podcast Creation:
Topic: "{topic}"
Speaker: 1
Introduction: The speaker starts by introducing the topic, outlining the main idea, and providing a brief explanation of why it is relevant, timely, or exciting in today’s context. They may touch on recent trends, key statistics, or important developments related to the subject to spark the listener’s interest.
Discussion Outline:
1. Exploring the Basics: Define the core concepts or ideas.
2. Deep Dive into Key Points: Discuss the main challenges or exciting aspects.
3. Sharing Insights and Solutions: Offer tips or solutions to address the issues.
4. Exploring Challenges and Offering Perspectives: Explore different viewpoints or emphasize the biggest challenges.
5. Practical Takeaways: Summarize the key lessons or insights.
6. Closing Remarks: Conclude with a call to action or final thought.
`

func ParsePromptStyle(value string) (PromptStyle, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultPromptStyle, nil
	}
	for _, s := range PromptStyles {
		if strings.EqualFold(string(s), value) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPromptStyle, value)
}

// RenderPrompt substitutes the topic verbatim into the template for style.
// Any style other than Expanded renders the default template.
func RenderPrompt(topic string, style PromptStyle) string {
	template := defaultPromptTemplate
	if style == ExpandedPromptStyle {
		template = expandedPromptTemplate
	}
	return strings.Replace(template, topicPlaceholder, topic, 1)
}
