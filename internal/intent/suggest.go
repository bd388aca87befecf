package intent

import "fmt"

// suggestions maps every category to a short canned action line. The
// lookup is total: an unknown category gets the generic acknowledgment.
var suggestions = map[Category]string{
	CategoryHelpRequest:       "I can help you with that. What specifically do you need assistance with?",
	CategoryTaskExecution:     "I'll help you execute that task. Let me prepare the necessary steps.",
	CategoryInformationQuery:  "Let me search for that information for you.",
	CategoryAutomationRequest: "I can automate that task for you. Let me set it up.",
	CategoryFileOperation:     "I'll help you with that file operation.",
	CategorySearch:            "I'll search for that information right away.",
	CategoryMemoryOperation:   "I'll remember that for you.",
	CategoryScreenshotRequest: "Taking a screenshot now...",
	CategoryOpenURL:           "Opening the URL for you...",
	CategoryOpenFile:          "Opening the file...",
	CategoryCodeAssistance:    "I can help with your code. Let me analyze it.",
	CategoryWritingAssistance: "I'll help you with your writing.",
	CategoryWebSearch:         "I'll search for that online.",
	CategorySystemCommand:     "I'll execute that system command.",
	CategoryCasualChat:        "I'm here to chat! What's on your mind?",
}

const genericSuggestion = "How can I help you?"

// Suggest produces the canned action line for a category, folding in the
// first extracted entity when one names the category's target (the URL to
// open, the file to open). Deterministic, side-effect free, never partial.
func Suggest(cat Category, entities map[Kind][]string) string {
	switch cat {
	case CategoryOpenURL:
		if urls := entities[KindURL]; len(urls) > 0 {
			return fmt.Sprintf("Opening %s for you...", urls[0])
		}
	case CategoryOpenFile:
		if paths := entities[KindFilePath]; len(paths) > 0 {
			return fmt.Sprintf("Opening %s...", paths[0])
		}
	}

	if s, ok := suggestions[cat]; ok {
		return s
	}
	return genericSuggestion
}
