package console

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest ranks the command table against an unrecognized command, closest
// first. It returns nil when nothing is similar enough to be worth offering.
func (c *Console) Suggest(input string) []string {
	query := Normalize(input)
	if query == "" {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(query, c.commands)
	if len(ranks) == 0 {
		// Typos rarely form a subsequence of the intended command; try the
		// other direction so "projcts" still finds "projects".
		for i, cmd := range c.commands {
			if fuzzy.MatchNormalizedFold(cmd, query) || fuzzy.LevenshteinDistance(query, cmd) <= 2 {
				ranks = append(ranks, fuzzy.Rank{Source: query, Target: cmd, Distance: fuzzy.LevenshteinDistance(query, cmd), OriginalIndex: i})
			}
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if r.Target == query {
			continue
		}
		out = append(out, r.Target)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
