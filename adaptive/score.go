package adaptive

import (
	"math"
	"sort"
)

// ComputeScore converts earned/total marks to the 0-10 score scale,
// rounded to two decimals. Zero total yields zero.
func ComputeScore(earned, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(earned/total*10*100) / 100
}

// PerformanceLabel buckets an overall percentage into a report label.
func PerformanceLabel(percent float64) string {
	switch {
	case percent >= 85:
		return "Expert"
	case percent >= 70:
		return "Proficient"
	case percent >= 50:
		return "Developing"
	default:
		return "Needs Practice"
	}
}

// Answer is one scored answer used for session-local analytics.
type Answer struct {
	Topic       string
	MarksEarned float64
	MarksTotal  float64
}

// TopicPercentMap aggregates answers into per-topic percentages.
func TopicPercentMap(answers []Answer) map[string]float64 {
	earned := make(map[string]float64)
	total := make(map[string]float64)
	for _, a := range answers {
		topic := a.Topic
		if topic == "" {
			topic = "General"
		}
		earned[topic] += a.MarksEarned
		total[topic] += a.MarksTotal
	}

	out := make(map[string]float64, len(earned))
	for topic := range earned {
		if total[topic] == 0 {
			out[topic] = 0
			continue
		}
		out[topic] = math.Round(earned[topic]/total[topic]*100*10) / 10
	}
	return out
}

// WeakTopics returns topics whose percentage falls below the threshold.
func WeakTopics(answers []Answer, threshold float64) []string {
	var weak []string
	for topic, pct := range TopicPercentMap(answers) {
		if pct < threshold {
			weak = append(weak, topic)
		}
	}
	sort.Strings(weak)
	return weak
}
