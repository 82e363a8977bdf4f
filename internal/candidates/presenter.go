package candidates

import (
	"sort"
	"time"

	"github.com/hireonhq/hireon-cli/pkg/model"
)

// Filter selects how the applicant list is ordered and trimmed.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterRelevant Filter = "relevant"
	FilterLatest   Filter = "latest"
)

// ValidFilter reports whether f is one of the supported filter values.
func ValidFilter(f Filter) bool {
	return f == FilterAll || f == FilterRelevant || f == FilterLatest
}

// Arrange produces the display ordering for an applicant list. It is a pure
// transform: the input slice is never mutated, and the same inputs always
// yield the same output.
//
//   - all:      stable sort by relevant_score descending; equal scores keep
//     their input order.
//   - relevant: the all ordering filtered to relevant candidates, without
//     re-sorting.
//   - latest:   sort by application time descending; applicants with no
//     timestamp sort last.
func Arrange(applicants []model.Applicant, filter Filter) []model.Applicant {
	out := make([]model.Applicant, len(applicants))
	copy(out, applicants)

	switch filter {
	case FilterLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return appliedAt(out[i]).After(appliedAt(out[j]))
		})
		return out

	case FilterRelevant:
		byScore(out)
		filtered := out[:0]
		for _, a := range out {
			if a.IsRelevant() {
				filtered = append(filtered, a)
			}
		}
		return filtered

	default: // FilterAll
		byScore(out)
		return out
	}
}

func byScore(applicants []model.Applicant) {
	sort.SliceStable(applicants, func(i, j int) bool {
		return applicants[i].RelevantScore > applicants[j].RelevantScore
	})
}

func appliedAt(a model.Applicant) time.Time {
	if a.AppliedAt == nil {
		return time.Unix(0, 0)
	}
	return *a.AppliedAt
}
