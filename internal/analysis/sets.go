package analysis

import "sort"

const (
	maxHotNumbers   = 12
	maxColdNumbers  = 15
	maxAvoidNumbers = 8

	// avoidMinOccurrences is the count inside the avoid window at which a
	// number is considered overdrawn.
	avoidMinOccurrences = 3
)

// hotNumbers returns the top numbers by short-window count, descending, with
// ties broken by number ascending. Numbers absent from the window never
// qualify as hot.
func hotNumbers(counts FrequencyTable) []int {
	type entry struct {
		num   int
		count float64
	}
	var entries []entry
	for num := 1; num < len(counts); num++ {
		if counts[num] > 0 {
			entries = append(entries, entry{num: num, count: counts[num]})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].num < entries[j].num
	})

	if len(entries) > maxHotNumbers {
		entries = entries[:maxHotNumbers]
	}
	hot := make([]int, len(entries))
	for i, e := range entries {
		hot[i] = e.num
	}
	return hot
}

// coldNumbers returns the numbers with zero occurrences in the cold window,
// in ascending numeric order, capped to maxColdNumbers. An empty history has
// no cold numbers: with nothing drawn yet, absence carries no signal.
func coldNumbers(counts FrequencyTable, drawCount int) []int {
	if drawCount == 0 {
		return nil
	}
	var cold []int
	for num := 1; num < len(counts); num++ {
		if counts[num] == 0 {
			cold = append(cold, num)
			if len(cold) == maxColdNumbers {
				break
			}
		}
	}
	return cold
}

// avoidNumbers returns the numbers drawn at least avoidMinOccurrences times
// inside the avoid window, by count descending (ties by number ascending),
// capped to maxAvoidNumbers.
func avoidNumbers(counts FrequencyTable) []int {
	type entry struct {
		num   int
		count float64
	}
	var entries []entry
	for num := 1; num < len(counts); num++ {
		if counts[num] >= avoidMinOccurrences {
			entries = append(entries, entry{num: num, count: counts[num]})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].num < entries[j].num
	})

	if len(entries) > maxAvoidNumbers {
		entries = entries[:maxAvoidNumbers]
	}
	avoid := make([]int, len(entries))
	for i, e := range entries {
		avoid[i] = e.num
	}
	return avoid
}
