package numeric

import (
	"strconv"
	"strings"
)

// ExtractRanges formats an ascending list of integers as comma separated
// items, collapsing every run of three or more consecutive values into
// "first-last":
//
//	[0 1 2 5 7 8 9] → "0-2,5,7-9"
//	[1 2 4 5]       → "1,2,4,5"
func ExtractRanges(nums []int) string {
	var sb strings.Builder
	emit := func(s string) {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s)
	}

	for start := 0; start < len(nums); {
		// extend the run while values step by exactly one
		end := start
		for end+1 < len(nums) && nums[end+1]-nums[end] == 1 {
			end++
		}
		if end-start >= 2 {
			emit(strconv.Itoa(nums[start]) + "-" + strconv.Itoa(nums[end]))
		} else {
			for i := start; i <= end; i++ {
				emit(strconv.Itoa(nums[i]))
			}
		}
		start = end + 1
	}

	return sb.String()
}

// MostProfit returns the best profit from daily quotes when each day one may
// buy one unit, sell any number of held units, or do nothing.
// Scanning from the end, every quote below the running maximum is a unit
// bought then and sold at that maximum.
//
//	[1 2 3 4 5 6]   → 15
//	[6 5 4 3 2 1]   → 0
//	[1 6 5 10 8 7]  → 18
//
// Complexity: O(n).
func MostProfit(quotes []int) int {
	profit, best := 0, 0
	for i := len(quotes) - 1; i >= 0; i-- {
		if quotes[i] > best {
			best = quotes[i]
			continue
		}
		profit += best - quotes[i]
	}

	return profit
}
