// Package analysis computes statistics over recorded play sessions.
package analysis

import (
	"github.com/SeamusWaldron/cube"
)

// Summary contains statistics for a single session.
type Summary struct {
	DurationMs         int64   `json:"duration_ms"`
	TotalTurns         int     `json:"total_turns"`
	FaceTurns          int     `json:"face_turns"`
	SliceTurns         int     `json:"slice_turns"`
	WideTurns          int     `json:"wide_turns"`
	Rotations          int     `json:"rotations"`
	QuarterTurns       int     `json:"quarter_turns"`
	TPSOverall         float64 `json:"tps_overall"`
	LongestPauseMs     int64   `json:"longest_pause_ms"`
	PauseCountOver1500 int     `json:"pause_count_over_1500ms"`
	AvgTurnDurationMs  float64 `json:"avg_turn_duration_ms"`
}

// PauseThresholdMs is the gap counted as a pause in a Summary.
const PauseThresholdMs = 1500

// Summarize builds the statistics for a session's turns. durationMs is the
// session's wall time; when zero the span between first and last turn is
// used.
func Summarize(entries []cube.HistoryEntry, durationMs int64) Summary {
	if durationMs <= 0 && len(entries) > 1 {
		durationMs = entries[len(entries)-1].Time.Sub(entries[0].Time).Milliseconds()
	}

	s := Summary{
		DurationMs:         durationMs,
		TotalTurns:         len(entries),
		TPSOverall:         CalculateTPS(entries, durationMs),
		LongestPauseMs:     FindLongestPause(entries),
		PauseCountOver1500: CountPausesOver(entries, PauseThresholdMs),
		AvgTurnDurationMs:  CalculateAvgTurnDuration(entries),
	}

	for _, e := range entries {
		t := e.Turn
		switch {
		case t.Target.IsAxis():
			s.Rotations++
			continue
		case t.Wide:
			s.WideTurns++
		case t.Depth > 1:
			s.SliceTurns++
		default:
			s.FaceTurns++
		}
		if t.Rotation == cube.Double {
			s.QuarterTurns += 2
		} else {
			s.QuarterTurns++
		}
	}

	return s
}

// PauseInfo represents a pause between two turns.
type PauseInfo struct {
	AfterTurnIndex int   `json:"after_turn_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

func gapMs(entries []cube.HistoryEntry, i int) int64 {
	return entries[i].Time.Sub(entries[i-1].Time).Milliseconds()
}

// AnalyzePauses finds all pauses of at least thresholdMs.
func AnalyzePauses(entries []cube.HistoryEntry, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(entries); i++ {
		if gap := gapMs(entries, i); gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterTurnIndex: i - 1,
				DurationMs:     gap,
				TsMs:           entries[i-1].Time.UnixMilli(),
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(entries []cube.HistoryEntry, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(len(entries)) / (float64(durationMs) / 1000.0)
}

// CalculateAvgTurnDuration calculates the average time between turns.
func CalculateAvgTurnDuration(entries []cube.HistoryEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	total := entries[len(entries)-1].Time.Sub(entries[0].Time).Milliseconds()
	return float64(total) / float64(len(entries)-1)
}

// FindLongestPause finds the longest gap between two turns.
func FindLongestPause(entries []cube.HistoryEntry) int64 {
	var longest int64
	for i := 1; i < len(entries); i++ {
		if gap := gapMs(entries, i); gap > longest {
			longest = gap
		}
	}
	return longest
}

// CountPausesOver counts gaps longer than thresholdMs.
func CountPausesOver(entries []cube.HistoryEntry, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(entries); i++ {
		if gapMs(entries, i) > thresholdMs {
			count++
		}
	}
	return count
}

// TargetProfile counts how often each target was turned.
type TargetProfile struct {
	Counts      map[cube.Target]int `json:"counts"`
	MostUsed    cube.Target         `json:"most_used"`
	Transitions map[string]int      `json:"transitions"` // e.g. "RU" -> count
}

// AnalyzeTargets profiles which targets are used most. Ties go to the
// target that reached the count first.
func AnalyzeTargets(entries []cube.HistoryEntry) *TargetProfile {
	p := &TargetProfile{
		Counts:      make(map[cube.Target]int),
		Transitions: make(map[string]int),
	}

	best := 0
	for i, e := range entries {
		target := e.Turn.Target
		p.Counts[target]++
		if p.Counts[target] > best {
			best = p.Counts[target]
			p.MostUsed = target
		}
		if i > 0 {
			p.Transitions[string(entries[i-1].Turn.Target)+string(target)]++
		}
	}

	return p
}
