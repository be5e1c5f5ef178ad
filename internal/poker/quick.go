package poker

// QuickResult is the simplified projection used for live in-progress
// boards, where the hand may still be incomplete.
type QuickResult struct {
	Rank        HandRank
	Name        string
	Emoji       string
	Description string
}

// QuickEvaluate evaluates two hole cards against however much of the board
// is known. It returns false when fewer than five cards are available —
// partial boards are expected, not an error. Once five or more cards are
// known it runs the same ranking core as Evaluate, so the live display and
// the showdown display can never disagree on classification.
func QuickEvaluate(hole, community []Card) (QuickResult, bool) {
	if len(hole) != 2 {
		return QuickResult{}, false
	}

	all := make([]Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	if len(all) < 5 {
		return QuickResult{}, false
	}

	ev, err := Evaluate(all)
	if err != nil {
		return QuickResult{}, false
	}

	return QuickResult{
		Rank:        ev.Rank,
		Name:        ev.RankName,
		Emoji:       ev.Rank.Emoji(),
		Description: ev.Description,
	}, true
}
