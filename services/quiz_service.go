package services

import (
	"math/rand/v2"

	"github.com/anjiri1684/trivia_api/models"
)

// AllCategories is the quiz category id that draws from every question.
const AllCategories = 0

// SelectNextQuestion picks a question from pool whose id is not in previous.
// Candidates are filtered first and one is then drawn uniformly, so every
// unseen question is equally likely. rnd may be nil to use the global source.
func SelectNextQuestion(pool []models.Question, previous []int, rnd *rand.Rand) (models.Question, bool) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return models.Question{}, false
	}

	var i int
	if rnd != nil {
		i = rnd.IntN(len(candidates))
	} else {
		i = rand.IntN(len(candidates))
	}
	return candidates[i], true
}
