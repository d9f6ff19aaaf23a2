package insights

// moodLabels maps a mood code to its display word. The scale runs from the
// most difficult mood at 1 to the most elevated at 8.
var moodLabels = map[int]string{
	1: "Angry",
	2: "Stressed",
	3: "Very Sad",
	4: "Sad",
	5: "Neutral",
	6: "Happy",
	7: "Very Happy",
	8: "Excited",
}

// Label returns the display word for a mood code, or "Unknown" for any code
// outside the defined set.
func Label(mood int) string {
	if label, ok := moodLabels[mood]; ok {
		return label
	}
	return "Unknown"
}

// WellnessScore maps a mood code to its wellness score, clamping into [1, 8].
func WellnessScore(mood int) int {
	if mood < 1 {
		return 1
	}
	if mood > 8 {
		return 8
	}
	return mood
}
