package models

import "time"

const (
	MoodAngry     = "angry"
	MoodStressed  = "stressed"
	MoodSad       = "sad"
	MoodLonely    = "lonely"
	MoodNeutral   = "neutral"
	MoodCalm      = "calm"
	MoodConfident = "confident"
	MoodGrateful  = "grateful"
	MoodExcited   = "excited"
	MoodHappy     = "happy"
)

// MoodEntry captures one mood check-in; the store keeps at most one
// entry per calendar date, updated in place.
type MoodEntry struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Intensity int       `json:"intensity"`
}

var moodIntensities = map[string]int{
	MoodAngry:     1,
	MoodStressed:  2,
	MoodSad:       3,
	MoodLonely:    4,
	MoodNeutral:   5,
	MoodCalm:      6,
	MoodConfident: 7,
	MoodGrateful:  8,
	MoodExcited:   9,
	MoodHappy:     10,
}

// MoodIntensity maps a mood onto the fixed 1-10 scale. Unknown moods
// fall back to the neutral midpoint.
func MoodIntensity(mood string) int {
	if intensity, ok := moodIntensities[mood]; ok {
		return intensity
	}
	return moodIntensities[MoodNeutral]
}

func IsValidMood(mood string) bool {
	_, ok := moodIntensities[mood]
	return ok
}
