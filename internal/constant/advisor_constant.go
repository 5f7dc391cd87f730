package constant

import "fmt"

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	// SessionGreeting seeds every new session's conversation.
	SessionGreeting = "Hi! Ask me anything about web accessibility - WCAG guidelines, best practices, or help with specific issues."

	// ChatResolvedTopic is the in-process event stream carrying one event
	// per resolved chat turn, consumed by the metrics aggregator.
	ChatResolvedTopic = "CHAT_RESOLVED"
)

// accessibilityPromptTemplate wraps the user's raw question in a bounded
// instruction so live answers stay short and on-topic. The raw question is
// passed through untruncated; length limits are the provider's problem.
const accessibilityPromptTemplate = `You are an accessibility expert. Provide a concise, actionable answer for:

%s

Focus on:
1. Direct answer
2. Relevant WCAG guidelines
3. Practical steps

Keep response under 300 words.`

// WrapAccessibilityPrompt builds the live-call instruction for a user
// question.
func WrapAccessibilityPrompt(question string) string {
	return fmt.Sprintf(accessibilityPromptTemplate, question)
}

// ImageAnalysisPrompt is the fixed instruction for the image-analysis flow.
const ImageAnalysisPrompt = `Analyze this image for accessibility and provide:
1. Descriptive alt text (under 125 characters)
2. Key accessibility issues
3. Quick improvement suggestions

Keep response concise and actionable.`

// FallbackResources is the locally stored guidance returned when the
// generation capability is unavailable or its quota is exhausted.
const FallbackResources = `**Common Accessibility Resources:**

- **WCAG 2.1 Guidelines**: https://www.w3.org/WAI/WCAG21/quickref/
- **WebAIM**: https://webaim.org/ (excellent tutorials and tools)
- **a11y Project**: https://www.a11yproject.com/ (practical checklist)
- **MDN Accessibility**: https://developer.mozilla.org/en-US/docs/Web/Accessibility

For specific questions, try one of the common topics in the Resources panel.`
