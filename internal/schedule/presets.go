package schedule

import "strings"

// Preset is a named work/sleep schedule pairing.
type Preset struct {
	Name        string
	WorkHours   string
	SleepHours  string
	Description string
	Emoji       string
}

// Presets lists the built-in schedule presets in display order.
var Presets = []Preset{
	{
		Name:        "Standard 9-5",
		WorkHours:   "9-17",
		SleepHours:  "23-7",
		Description: "Traditional office hours with evening sleep",
		Emoji:       "🏢",
	},
	{
		Name:        "Night Owl",
		WorkHours:   "14-22",
		SleepHours:  "3-11",
		Description: "Late starter, productive evenings",
		Emoji:       "🦉",
	},
	{
		Name:        "Early Bird",
		WorkHours:   "6-14",
		SleepHours:  "21-5",
		Description: "Early riser, morning productivity",
		Emoji:       "🐦",
	},
	{
		Name:        "Freelancer Flex",
		WorkHours:   "10-18",
		SleepHours:  "1-8",
		Description: "Flexible schedule with late nights",
		Emoji:       "💻",
	},
	{
		Name:        "Global Remote",
		WorkHours:   "8-16",
		SleepHours:  "22-6",
		Description: "Optimized for international collaboration",
		Emoji:       "🌍",
	},
	{
		Name:        "Student Schedule",
		WorkHours:   "13-21",
		SleepHours:  "2-9",
		Description: "Late nights, late mornings",
		Emoji:       "🎓",
	},
	{
		Name:        "Shift Worker",
		WorkHours:   "22-6",
		SleepHours:  "8-16",
		Description: "Night shift schedule",
		Emoji:       "🌙",
	},
	{
		Name:        "Always Available",
		WorkHours:   "0-24",
		SleepHours:  "",
		Description: "No fixed schedule (not recommended!)",
		Emoji:       "⚡",
	},
}

// PresetByName returns the preset with the given name, or nil. The match
// is case-insensitive.
func PresetByName(name string) *Preset {
	for i := range Presets {
		if strings.EqualFold(Presets[i].Name, name) {
			return &Presets[i]
		}
	}
	return nil
}

// PresetFor returns the preset matching the given ranges exactly, or nil.
func PresetFor(workHours, sleepHours string) *Preset {
	for i := range Presets {
		if Presets[i].WorkHours == workHours && Presets[i].SleepHours == sleepHours {
			return &Presets[i]
		}
	}
	return nil
}
