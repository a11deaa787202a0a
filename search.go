package sunshift

// OffsetScore pairs an evaluated offset with its score.
type OffsetScore struct {
	Offset Offset  `json:"offset"`
	Score  float64 `json:"score"`
}

// Result is the outcome of Search.
type Result struct {
	Best   Offset        `json:"best_offset"`
	Score  float64       `json:"score"`
	Scores []OffsetScore `json:"scores"`
}

// Search evaluates s at every offset in Offsets, in ascending order, and
// returns the one with the highest score. Only a strictly greater score
// replaces the current best, so the lowest of tied offsets wins.
func Search(s *Scorer) (Result, error) {
	offsets := Offsets()
	res := Result{
		Score:  -1,
		Scores: make([]OffsetScore, 0, len(offsets)),
	}
	for _, o := range offsets {
		score, err := s.Score(o)
		if err != nil {
			return Result{}, err
		}
		res.Scores = append(res.Scores, OffsetScore{Offset: o, Score: score})
		if score > res.Score {
			res.Best, res.Score = o, score
		}
	}
	s.logger.Debug("search complete", "best", res.Best, "hours", res.Score, "evaluated", len(res.Scores))
	return res, nil
}
