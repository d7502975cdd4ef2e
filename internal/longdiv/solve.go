package longdiv

// Solve starts e if needed and walks it to completion by entering the
// correct digit at every step and applying each followup immediately.
// onFollowup, if non-nil, sees every followup before it is applied. It returns the assembled quotient.
func Solve(e *Engine, onFollowup func(Followup)) int {
	e.Start()
	for !e.Done() {
		if e.phase != PhaseAwaitingDigit {
			// A reveal is pending; nothing else can move the engine.
			if e.reveal == nil {
				break
			}
			e.Advance(Followup{RoundID: e.roundID, Kind: FollowupRevealRemainder})
			continue
		}
		e.HandleInput(e.cursor.CurrentDividendVal / e.problem.Divisor)
		for _, f := range e.HandleEnter() {
			if onFollowup != nil {
				onFollowup(f)
			}
			e.Advance(f)
		}
	}
	return e.Quotient()
}
