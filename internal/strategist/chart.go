package strategist

import "github.com/patrikgergely/bbwrl/internal/cards"

// Action is a recommended player action, as rendered in a basic-strategy
// chart cell.
type Action int

const (
	ActionStand Action = iota
	ActionHit
	ActionDouble
	ActionSplit
)

// String renders a single-letter chart cell in the conventional basic
// strategy chart alphabet: S(tand), H(it), D(ouble), s(P)lit.
func (a Action) String() string {
	switch a {
	case ActionStand:
		return "S"
	case ActionHit:
		return "H"
	case ActionDouble:
		return "D"
	case ActionSplit:
		return "P"
	default:
		return "?"
	}
}

// Recommend returns the single best action for (pt, pa) against a dealer
// showing dt, checking split (when pair is set), then double, then
// hit-or-stand, in that priority order.
func (st *Strategist) Recommend(shoe *cards.Shoe, pt, pa, dt int, pair bool) Action {
	if pair && st.ShouldSplit(shoe, pt, pa, dt) {
		return ActionSplit
	}
	if st.ShouldDouble(shoe, pt, pa, dt) {
		return ActionDouble
	}
	if st.ShouldHit(shoe, pt, pa, dt) {
		return ActionHit
	}
	return ActionStand
}

// ChartRow is one row of a basic-strategy chart: a player hand shape and
// its recommended action against every dealer up-card total 2..11.
type ChartRow struct {
	Label   string
	Actions map[int]Action
}

// Chart computes the full basic-strategy chart for shoe: one row per hard
// total 5..20, one row per soft total (ace plus 2..9), and one row per
// splittable pair, each against every dealer up-card 2..11. shoe is
// borrowed and left unmodified.
func (st *Strategist) Chart(shoe cards.Shoe) []ChartRow {
	var rows []ChartRow

	for total := 5; total <= 20; total++ {
		rows = append(rows, st.chartRow(shoe, hardLabel(total), total, 0, false))
	}
	for card := 2; card <= 9; card++ {
		rows = append(rows, st.chartRow(shoe, softLabel(card), 11+card, 1, false))
	}
	rows = append(rows, st.chartRow(shoe, "A,A", 12, 1, true))
	for card := 2; card <= 9; card++ {
		rows = append(rows, st.chartRow(shoe, pairLabel(card), 2*card, 0, true))
	}
	rows = append(rows, st.chartRow(shoe, "10,10", 20, 0, true))

	return rows
}

func (st *Strategist) chartRow(shoe cards.Shoe, label string, pt, pa int, pair bool) ChartRow {
	row := ChartRow{Label: label, Actions: make(map[int]Action, 10)}
	for dt := 2; dt <= 11; dt++ {
		s := shoe
		row.Actions[dt] = st.Recommend(&s, pt, pa, dt, pair)
	}
	return row
}

func hardLabel(total int) string {
	return digits(total)
}

func softLabel(card int) string {
	return "A," + digits(card)
}

func pairLabel(card int) string {
	d := digits(card)
	return d + "," + d
}

func digits(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
