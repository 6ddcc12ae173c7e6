package app

// Confirmations shown after a successful save.
const (
	MoodSaved      = "Mood check-in saved locally on this device."
	GratitudeSaved = "Gratitude entry saved on this device."
	ThoughtSaved   = "Thought diary entry saved locally."
	RoutineSaved   = "Your current routine and checked items are saved on this device."
)

// WorrySaved confirms a new reminder time.
func WorrySaved(at string) string {
	return "Daily worry-time reminder saved for " + at + " (works while reignite is running)."
}

var GratitudePrompts = []string{
	"What made you smile today?",
	"Who are three people you are grateful for right now?",
	"Name one thing about your body or health that you appreciate.",
	"What is something in nature that you are grateful for?",
	"What is a small win from today that you are proud of?",
	"Which memory always makes you feel warm inside?",
	"What part of your day felt safest or calmest?",
}
