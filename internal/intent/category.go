package intent

// Category labels what the user wants from a single utterance.
type Category string

const (
	CategoryHelpRequest       Category = "help-request"
	CategoryTaskExecution     Category = "task-execution"
	CategoryInformationQuery  Category = "information-query"
	CategoryAutomationRequest Category = "automation-request"
	CategoryFileOperation     Category = "file-operation"
	CategorySearch            Category = "search"
	CategoryMemoryOperation   Category = "memory-operation"
	CategoryScreenshotRequest Category = "screenshot-request"
	CategoryOpenURL           Category = "open-url"
	CategoryOpenFile          Category = "open-file"
	CategoryCodeAssistance    Category = "code-assistance"
	CategoryWritingAssistance Category = "writing-assistance"
	CategoryWebSearch         Category = "web-search"
	CategorySystemCommand     Category = "system-command"

	// CategoryCasualChat is the fallback: returned whenever no specific
	// category clears its threshold.
	CategoryCasualChat Category = "casual-chat"
)

// categoryPriority is the total order used to break score ties.
// Narrow action categories outrank broad conversational ones, and the
// fallback is always last so it can never win a tie against a specific
// category. Selection iterates this slice, never a map, so results do
// not depend on map iteration order.
var categoryPriority = []Category{
	CategoryScreenshotRequest,
	CategoryOpenURL,
	CategoryOpenFile,
	CategoryMemoryOperation,
	CategoryAutomationRequest,
	CategorySearch,
	CategoryWebSearch,
	CategorySystemCommand,
	CategoryFileOperation,
	CategoryCodeAssistance,
	CategoryWritingAssistance,
	CategoryInformationQuery,
	CategoryTaskExecution,
	CategoryHelpRequest,
	CategoryCasualChat,
}

// Categories returns every category in tie-break priority order.
func Categories() []Category {
	out := make([]Category, len(categoryPriority))
	copy(out, categoryPriority)
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, p := range categoryPriority {
		if p == c {
			return true
		}
	}
	return false
}
