package member

import "math/rand"

// Status represents a member's presence label. It has no behavioral
// effect beyond display and classification.
type Status string

const (
	StatusVibing   Status = "vibing"
	StatusDeepwork Status = "deepwork"
	StatusAFK      Status = "afk"
	StatusSleep    Status = "sleep"
	StatusPair     Status = "pair"
	StatusVoice    Status = "voice"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusVibing,
	StatusDeepwork,
	StatusAFK,
	StatusSleep,
	StatusPair,
	StatusVoice,
}

// Valid returns true if the status is a known value.
func (s Status) Valid() bool {
	switch s {
	case StatusVibing, StatusDeepwork, StatusAFK, StatusSleep, StatusPair, StatusVoice:
		return true
	default:
		return false
	}
}

// ParseStatus converts user input into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// StatusInfo holds the display attributes of a status.
type StatusInfo struct {
	Icon        string
	Label       string
	Description string
	Flavor      []string
}

// Info returns the display attributes for the status. The switch covers
// every known status; unrecognized values (a corrupted snapshot) fall
// through to the vibing entry so the UI still renders.
func (s Status) Info() StatusInfo {
	switch s {
	case StatusVibing:
		return StatusInfo{
			Icon:        "🎵",
			Label:       "Vibing/Shipping",
			Description: "In the flow, shipping code",
			Flavor: []string{
				"In the flow state 🎯",
				"Shipping at full speed 🚀",
				"Beast mode engaged 🦅",
			},
		}
	case StatusDeepwork:
		return StatusInfo{
			Icon:        "💼",
			Label:       "Deep Work",
			Description: "Focused coding session",
			Flavor: []string{
				"Terminal locked and loaded 🎯",
				"Deep in the code matrix 🧠",
				"Zero distraction protocol 🔒",
			},
		}
	case StatusAFK:
		return StatusInfo{
			Icon:        "🚶",
			Label:       "AFK/Grass",
			Description: "Away from keyboard",
			Flavor: []string{
				"Gone for real-world debugging 🎣",
				"Coffee refill mission ☕",
				"Touching grass protocol 🌿",
			},
		}
	case StatusSleep:
		return StatusInfo{
			Icon:        "😴",
			Label:       "Sleep Mode",
			Description: "Offline for rest",
			Flavor: []string{
				"Recharging for next sprint 🔋",
				"Dream debugging in progress 💤",
			},
		}
	case StatusPair:
		return StatusInfo{
			Icon:        "💬",
			Label:       "Ready to Pair",
			Description: "Available for collaboration",
			Flavor: []string{
				"Ready for mob programming 👥",
				"Code review mode standby 👀",
				"Collaboration channels open 📡",
			},
		}
	case StatusVoice:
		return StatusInfo{
			Icon:        "🎙️",
			Label:       "Voice Chat",
			Description: "In a voice session",
			Flavor: []string{
				"Voice channels active 🎙️",
				"Talking it through 🗣️",
			},
		}
	}
	return StatusVibing.Info()
}

// RandomFlavor returns a random flavor line for the status.
func (s Status) RandomFlavor() string {
	f := s.Info().Flavor
	if len(f) == 0 {
		return "Ready for action 🎯"
	}
	return f[rand.Intn(len(f))]
}
