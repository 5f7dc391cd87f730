package knowledge

// Default returns the built-in accessibility knowledge base. Slice order
// below is the documented lookup order: when a query mentions several
// topics or keywords, the first one declared here wins.
func Default() *Base {
	return New(defaultTopics, defaultKeywords)
}

const (
	// TopicColorContrast and friends name the built-in topics so callers
	// (image analysis, the lint tool) can address them without string
	// literals scattered around.
	TopicColorContrast      = "color contrast"
	TopicAltText            = "alt text"
	TopicKeyboardNavigation = "keyboard navigation"
	TopicForms              = "forms"
)

var defaultTopics = []Topic{
	{
		ID:       TopicColorContrast,
		Question: "What color contrast ratio do I need for WCAG AA compliance?",
		Answer: `## WCAG AA Color Contrast Requirements

**For Normal Text:**
- **Minimum ratio: 4.5:1** against background
- Applies to text smaller than 18pt (or 14pt bold)

**For Large Text:**
- **Minimum ratio: 3:1** against background
- Applies to text 18pt+ or 14pt+ bold

**For UI Components & Graphics:**
- **Minimum ratio: 3:1** for:
  - Form input borders
  - Icons that convey information
  - Charts and graphs
  - Focus indicators

### Testing Tools:
- **WebAIM Contrast Checker**: https://webaim.org/resources/contrastchecker/
- **Colour Contrast Analyser**: Free desktop tool
- **Chrome DevTools**: Built-in accessibility audit

### Common Color Combinations (AA Compliant):
- Black text (#000000) on white (#FFFFFF) = 21:1
- Dark gray (#595959) on white = 4.54:1
- Blue (#0066CC) on white = 4.56:1
- White text on dark blue (#003366) = 12.63:1`,
	},
	{
		ID:       TopicAltText,
		Question: "How do I write effective alt text for images?",
		Answer: `## Writing Effective Alt Text

**Key Principles:**
1. **Be descriptive but concise** (typically under 125 characters)
2. **Include the image's purpose** in context
3. **Don't start with "Image of" or "Picture of"**
4. **Describe what's important** for understanding

### Examples:

**Decorative Images:**
` + "```html\n<img src=\"border-decoration.png\" alt=\"\">\n```" + `
*Use empty alt="" for purely decorative images*

**Informative Images:**
` + "```html\n<!-- Poor -->\n<img src=\"chart.png\" alt=\"Chart\">\n\n<!-- Good -->\n<img src=\"chart.png\" alt=\"Sales increased 25% from Q1 to Q2 2024\">\n```" + `

**Functional Images (buttons, links):**
` + "```html\n<!-- Poor -->\n<img src=\"search-icon.png\" alt=\"Search icon\">\n\n<!-- Good -->\n<img src=\"search-icon.png\" alt=\"Search\">\n```" + `

**Complex Images:**
- Provide brief alt text + detailed description nearby
- Consider using ` + "`aria-describedby`" + ` for longer descriptions

### Alt Text Checklist:
- Does it convey the image's meaning?
- Is it contextually relevant?
- Would it make sense if read aloud?
- Is it concise but complete?`,
	},
	{
		ID:       TopicKeyboardNavigation,
		Question: "How can I make my website keyboard navigable?",
		Answer: `## Keyboard Navigation Best Practices

**Essential Requirements:**
1. **All interactive elements must be keyboard accessible**
2. **Logical tab order** through content
3. **Visible focus indicators** on all focusable elements
4. **No keyboard traps** (user can always navigate away)

### Key Standards:

**Tab Navigation:**
- ` + "`Tab`" + `: Move to next focusable element
- ` + "`Shift + Tab`" + `: Move to previous element
- ` + "`Enter/Space`" + `: Activate buttons and links
- ` + "`Arrow keys`" + `: Navigate within components (menus, tabs)
- ` + "`Escape`" + `: Close dialogs and menus

**Focus Management:**
` + "```css\n/* Visible focus indicator */\nbutton:focus, a:focus {\n    outline: 2px solid #0066CC;\n    outline-offset: 2px;\n}\n\n/* Never remove focus entirely */\n/* DON'T DO: *:focus { outline: none; } */\n```" + `

**HTML Structure:**
` + "```html\n<!-- Proper heading hierarchy -->\n<h1>Main Page Title</h1>\n  <h2>Section Title</h2>\n    <h3>Subsection</h3>\n\n<!-- Skip links for screen readers -->\n<a href=\"#main-content\" class=\"sr-only\">Skip to main content</a>\n\n<!-- Proper form labeling -->\n<label for=\"email\">Email Address</label>\n<input type=\"email\" id=\"email\" name=\"email\">\n```" + `

**Testing:**
- Navigate your site using only the Tab key
- Ensure all functionality is available via keyboard
- Check that focus indicators are clearly visible`,
	},
	{
		ID:       TopicForms,
		Question: "What are the key principles of accessible form design?",
		Answer: `## Accessible Form Design

**Essential Elements:**

### 1. Labels and Instructions
` + "```html\n<!-- Always use explicit labels -->\n<label for=\"firstname\">First Name *</label>\n<input type=\"text\" id=\"firstname\" name=\"firstname\" required>\n\n<!-- Group related fields -->\n<fieldset>\n    <legend>Contact Information</legend>\n    <!-- form fields here -->\n</fieldset>\n```" + `

### 2. Error Handling
` + "```html\n<!-- Clear error messages -->\n<label for=\"email\">Email Address *</label>\n<input type=\"email\" id=\"email\" aria-describedby=\"email-error\" required>\n<div id=\"email-error\" role=\"alert\">\n    Please enter a valid email address\n</div>\n```" + `

### 3. Required Field Indicators
- Mark required fields clearly (*, "required", etc.)
- Use ` + "`required`" + ` attribute and ` + "`aria-required=\"true\"`" + `
- Don't rely on color alone to indicate required fields

### 4. Input Instructions
` + "```html\n<label for=\"password\">Password</label>\n<input type=\"password\" id=\"password\" aria-describedby=\"pwd-help\">\n<div id=\"pwd-help\">\n    Must be 8+ characters with uppercase, lowercase, and numbers\n</div>\n```" + `

### 5. Accessible Form Controls

**Checkboxes & Radio Buttons:**
` + "```html\n<fieldset>\n    <legend>Preferred Contact Method</legend>\n    <input type=\"radio\" id=\"contact-email\" name=\"contact\" value=\"email\">\n    <label for=\"contact-email\">Email</label>\n\n    <input type=\"radio\" id=\"contact-phone\" name=\"contact\" value=\"phone\">\n    <label for=\"contact-phone\">Phone</label>\n</fieldset>\n```" + `

**WCAG Guidelines:**
- 3.3.1: Error Identification (A)
- 3.3.2: Labels or Instructions (A)
- 3.3.3: Error Suggestion (AA)
- 3.3.4: Error Prevention (AA)`,
	},
}

var defaultKeywords = []Keyword{
	{Word: "contrast", TopicID: TopicColorContrast},
	{Word: "ratio", TopicID: TopicColorContrast},
	{Word: "alt", TopicID: TopicAltText},
	{Word: "alternative text", TopicID: TopicAltText},
	{Word: "keyboard", TopicID: TopicKeyboardNavigation},
	{Word: "tab", TopicID: TopicKeyboardNavigation},
	{Word: "focus", TopicID: TopicKeyboardNavigation},
	{Word: "form", TopicID: TopicForms},
	{Word: "input", TopicID: TopicForms},
	{Word: "label", TopicID: TopicForms},
}
