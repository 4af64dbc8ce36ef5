package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	winterName = regexp.MustCompile(`Winter (\d+)`)
	summerName = regexp.MustCompile(`Summer (\d+)`)
)

// NextSemesterName continues the season sequence from the last semester:
// Winter N is followed by Summer N, Summer N by Winter N+1. An empty plan or
// an unparseable name falls back to Winter of the given year.
func (p Plan) NextSemesterName(currentYear int) string {
	if len(p) == 0 {
		return fmt.Sprintf("Winter %d", currentYear)
	}
	last := p[len(p)-1].Name
	if m := winterName.FindStringSubmatch(last); m != nil {
		return fmt.Sprintf("Summer %s", m[1])
	}
	if m := summerName.FindStringSubmatch(last); m != nil {
		year, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("Winter %d", year+1)
	}
	return fmt.Sprintf("Winter %d", currentYear)
}

// StartingBlockNames lays out the first four semesters of a fresh plan,
// alternating seasons from the chosen starting season.
func StartingBlockNames(start Season, currentYear int) []string {
	names := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		year := currentYear + i/2
		if i%2 == 0 {
			if start == SeasonWinter {
				names = append(names, fmt.Sprintf("Winter %d", year))
			} else {
				names = append(names, fmt.Sprintf("Summer %d", year))
			}
			continue
		}
		if start == SeasonWinter {
			names = append(names, fmt.Sprintf("Summer %d", year+1))
		} else {
			names = append(names, fmt.Sprintf("Winter %d", year+1))
		}
	}
	return names
}
