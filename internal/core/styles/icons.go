package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCheckList = " "
	IconChecked   = "✓"
	IconUnchecked = "○"
	IconCursor    = "❯"
)

// Notification icons
var (
	IconNotifyInfo    = "ℹ"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✗"
)
