package day

import "github.com/momentum-hq/momentum/internal/domain"

// WelcomeBack returns re-engagement copy for a gap of the given length.
// A content table over breakpoints, increasingly reassuring with the size
// of the gap — never "you lost your streak", never a guilt trip.
func WelcomeBack(daysMissed int) domain.RecoveryMessage {
	switch {
	case daysMissed <= 0:
		return domain.RecoveryMessage{
			Message:         "Good to see you.",
			SubMessage:      "You're right on track.",
			SuggestedAction: "Pick up where you left off.",
		}
	case daysMissed == 1:
		return domain.RecoveryMessage{
			Message:         "Welcome back.",
			SubMessage:      "Yesterday was a rest day. Today is a new one.",
			SuggestedAction: "Start with one small task to get moving.",
		}
	case daysMissed <= 3:
		return domain.RecoveryMessage{
			Message:         "Hey, you're back.",
			SubMessage:      "A few days off changes nothing about what you've built.",
			SuggestedAction: "Choose the easiest thing on your list and do just that.",
		}
	case daysMissed <= 7:
		return domain.RecoveryMessage{
			Message:         "Welcome back — genuinely.",
			SubMessage:      "A week away usually means life got loud. That's allowed.",
			SuggestedAction: "Skim your list and archive anything that no longer matters.",
		}
	case daysMissed <= 30:
		return domain.RecoveryMessage{
			Message:         "It's really good to see you again.",
			SubMessage:      "Everything you did before still counts, all of it.",
			SuggestedAction: "Start fresh: pick three things that matter this week.",
		}
	default:
		return domain.RecoveryMessage{
			Message:         "Welcome back. No explanations needed.",
			SubMessage:      "The system waited for you, and it's glad you're here.",
			SuggestedAction: "Do one two-minute task. That's the whole plan for today.",
		}
	}
}
