package helpers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/doeshing/uniterm/internal/domain"
)

// VerbStatistic represents usage statistics for a command verb
type VerbStatistic struct {
	Verb  string
	Count int
}

// CalculateTopVerbs returns the top N most frequently typed verbs
// If limit is 0 or negative, returns all verbs
func CalculateTopVerbs(verbFrequency map[string]int, limit int) []VerbStatistic {
	stats := convertFrequencyMapToStatistics(verbFrequency)
	sortStatisticsByFrequency(stats)

	if shouldLimitResults(limit, len(stats)) {
		return stats[:limit]
	}
	return stats
}

// convertFrequencyMapToStatistics converts a map to a slice of VerbStatistic
func convertFrequencyMapToStatistics(frequency map[string]int) []VerbStatistic {
	stats := make([]VerbStatistic, 0, len(frequency))
	for verb, count := range frequency {
		stats = append(stats, VerbStatistic{
			Verb:  verb,
			Count: count,
		})
	}
	return stats
}

// sortStatisticsByFrequency sorts statistics by count (descending) then by verb name (ascending)
func sortStatisticsByFrequency(stats []VerbStatistic) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Verb < stats[j].Verb
		}
		return stats[i].Count > stats[j].Count
	})
}

// shouldLimitResults checks if we should limit the results based on the limit and actual length
func shouldLimitResults(limit int, actualLength int) bool {
	return limit > 0 && actualLength > limit
}

// CalculateSuccessRate calculates the success rate as a percentage
func CalculateSuccessRate(successfulCount int, executedCount int) float64 {
	if executedCount == 0 {
		return 0.0
	}
	return float64(successfulCount) / float64(executedCount) * 100.0
}

// CalculateDialectMix counts records per source->host dialect pairing.
// Keys are formatted "source -> host" and the result is suitable for sorted
// display.
func CalculateDialectMix(records []domain.TranscriptRecord) map[string]int {
	mix := make(map[string]int)
	for _, rec := range records {
		key := fmt.Sprintf("%s -> %s", rec.SourceDialect, rec.HostDialect)
		mix[key]++
	}
	return mix
}

// SortedKeys returns the keys of a count map in ascending order
func SortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DeriveUndoHints generates recovery hints based on the executed transcript
// Returns a sorted list of unique hints
func DeriveUndoHints(records []domain.TranscriptRecord) []string {
	hintSet := make(map[string]struct{})

	for _, record := range records {
		normalizedCommand := strings.ToLower(record.Command)
		if hint, ok := hintForCommand(normalizedCommand); ok {
			hintSet[hint] = struct{}{}
		}
	}

	return convertHintSetToSortedList(hintSet)
}

// hintForCommand matches a command against known destructive patterns.
// Windows and POSIX spellings of the same operation share one hint so the
// list stays deduplicated.
func hintForCommand(command string) (string, bool) {
	hints := []struct {
		prefix string
		hint   string
	}{
		{"rm ", "Deleted files do not go to a recycle bin; restore from backups or version control."},
		{"del ", "Deleted files do not go to a recycle bin; restore from backups or version control."},
		{"rmdir ", "Removed directory trees are unrecoverable without backups."},
		{"rd ", "Removed directory trees are unrecoverable without backups."},
		{"kill ", "Check surviving processes with `ps` or `tasklist` before repeating a kill."},
		{"taskkill ", "Check surviving processes with `ps` or `tasklist` before repeating a kill."},
	}

	for _, config := range hints {
		if strings.HasPrefix(command, config.prefix) {
			return config.hint, true
		}
	}
	return "", false
}

// convertHintSetToSortedList converts a hint set to a sorted slice
func convertHintSetToSortedList(hintSet map[string]struct{}) []string {
	hints := make([]string, 0, len(hintSet))
	for hint := range hintSet {
		hints = append(hints, hint)
	}
	sort.Strings(hints)
	return hints
}
