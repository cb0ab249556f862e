package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"megasena/internal/draw"
	"megasena/internal/freq"
)

const ruleWidth = 70

func heavyRule() string { return strings.Repeat("=", ruleWidth) }
func lightRule() string { return strings.Repeat("-", ruleWidth) }

// WriteTitle writes the report title block.
func WriteTitle(w io.Writer, title string) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, heavyRule()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// WriteSection writes a section separator with a title.
func WriteSection(w io.Writer, title string) error {
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, heavyRule()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, heavyRule())
	return err
}

// FormatNumbers formats a bet line like "01 - 02 - 03", sorted ascending.
func FormatNumbers(numbers []int) string {
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " - ")
}

// RenderRanking writes the complete ranking of all 60 numbers as a
// two-column grid. Percentages are relative to the table's total weight.
func RenderRanking(w io.Writer, t freq.Table) error {
	if err := WriteSection(w, "COMPLETE RANKING - ALL 60 NUMBERS"); err != nil {
		return err
	}
	ranked := freq.Rank(t)
	total := t.Total()

	half := (len(ranked) + 1) / 2
	headers := []string{"Rank", "Number", "Weight", "%", "Rank", "Number", "Weight", "%"}
	rows := make([][]string, 0, half)
	for i := 0; i < half; i++ {
		row := rankingCells(i, ranked[i], total)
		if j := i + half; j < len(ranked) {
			row = append(row, rankingCells(j, ranked[j], total)...)
		}
		rows = append(rows, row)
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func rankingCells(rank int, e freq.Entry, total float64) []string {
	pct := 0.0
	if total > 0 {
		pct = e.Weight / total * 100
	}
	return []string{
		fmt.Sprintf("%d", rank+1),
		fmt.Sprintf("%02d", e.Number),
		fmt.Sprintf("%.2f", e.Weight),
		fmt.Sprintf("%.1f%%", pct),
	}
}

// RenderTop writes the top selection for one weighting policy, the
// recommended bet line, and the pattern summary of the selection. When
// simple is non-nil, each line also shows the plain occurrence count.
func RenderTop(w io.Writer, name, description string, top []freq.Entry, simple freq.Table) error {
	if err := WriteSection(w, name); err != nil {
		return err
	}
	if description != "" {
		if _, err := fmt.Fprintf(w, "Strategy: %s\n", description); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nTop %d Numbers:\n", len(top)); err != nil {
		return err
	}
	for i, e := range top {
		line := fmt.Sprintf("  %2d. Number %02d - Score: %8.2f", i+1, e.Number, e.Weight)
		if simple != nil {
			line += fmt.Sprintf(" (appeared %.0fx total)", simple[e.Number])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	numbers := freq.Numbers(top)
	if _, err := fmt.Fprintf(w, "\nRecommended: %s\n", FormatNumbers(numbers)); err != nil {
		return err
	}
	p := Summarize(numbers)
	_, err := fmt.Fprintf(w, "Patterns: %d even / %d odd, %d low / %d high, sum %d\n",
		p.Even, p.Odd, p.Low, p.High, p.Sum)
	return err
}

// RenderConsensus writes the cross-policy consensus: numbers grouped by how
// many selections they appear in, the consensus ranking, and the final bet
// of the betSize highest-consensus numbers.
func RenderConsensus(w io.Writer, entries []freq.ConsensusEntry, betSize int) error {
	if err := WriteSection(w, "CONSENSUS ANALYSIS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Numbers appearing in multiple methods"); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "\nNo consensus data.")
		return err
	}

	byCount := make(map[int][]int)
	maxCount := 0
	for _, e := range entries {
		byCount[e.Methods] = append(byCount[e.Methods], e.Number)
		if e.Methods > maxCount {
			maxCount = e.Methods
		}
	}
	for count := maxCount; count >= 1; count-- {
		numbers, ok := byCount[count]
		if !ok {
			continue
		}
		sort.Ints(numbers)
		if _, err := fmt.Fprintf(w, "\nIn %d method(s) (%d numbers):\n", count, len(numbers)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", FormatNumbers(numbers)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\n"+lightRule()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Consensus Ranking (by number of methods):"); err != nil {
		return err
	}
	limit := len(entries)
	if limit > 15 {
		limit = 15
	}
	for _, e := range entries[:limit] {
		if _, err := fmt.Fprintf(w, "  Number %02d - In %d method(s)\n", e.Number, e.Methods); err != nil {
			return err
		}
	}

	if betSize > len(entries) {
		betSize = len(entries)
	}
	bet := make([]int, 0, betSize)
	for _, e := range entries[:betSize] {
		bet = append(bet, e.Number)
	}
	if _, err := fmt.Fprintf(w, "\nFINAL CONSENSUS BET (Top %d):\n", betSize); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %s\n", FormatNumbers(bet))
	return err
}

// Selection names a policy and its recommended numbers for comparison.
type Selection struct {
	Name    string
	Numbers []int
}

// RenderComparison writes every policy's recommendation side by side,
// followed by the final consensus bet.
func RenderComparison(w io.Writer, selections []Selection, consensus []int) error {
	if err := WriteSection(w, "STRATEGY COMPARISON"); err != nil {
		return err
	}
	for i, s := range selections {
		if _, err := fmt.Fprintf(w, "\nMETHOD %d - %s:\n", i+1, s.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", FormatNumbers(s.Numbers)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\nFINAL CONSENSUS BET:"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %s\n", FormatNumbers(consensus))
	return err
}

// RenderDraws lists every draw in the history, oldest first.
func RenderDraws(w io.Writer, title string, h draw.History) error {
	if err := WriteSection(w, title); err != nil {
		return err
	}
	for _, r := range h {
		line := fmt.Sprintf("  %s", r.Date.Format(draw.DateLayout))
		if r.Contest > 0 {
			line += fmt.Sprintf(" (Draw %d)", r.Contest)
		}
		line += fmt.Sprintf(": %s", FormatNumbers(r.Numbers[:]))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDistribution writes per-draw pattern distributions: sum statistics
// and the even/odd and low/high split histograms, most common split first.
func RenderDistribution(w io.Writer, d Distribution) error {
	if err := WriteSection(w, "PATTERN ANALYSIS"); err != nil {
		return err
	}
	if d.Draws == 0 {
		_, err := fmt.Fprintln(w, "\nNo draws to analyze.")
		return err
	}
	if _, err := fmt.Fprintf(w, "\nSum of %d numbers:\n", draw.Size); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Average: %.0f\n", d.SumAvg); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Range: %d to %d\n", d.SumMin, d.SumMax); err != nil {
		return err
	}
	if err := renderSplits(w, "Even/Odd distribution:", d.EvenSplits, "even", "odd"); err != nil {
		return err
	}
	return renderSplits(w, "Low (1-30) / High (31-60) distribution:", d.LowSplits, "low", "high")
}

func renderSplits(w io.Writer, title string, splits [draw.Size + 1]int, first, second string) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	// Most common split first; equal counts keep ascending split order.
	order := make([]int, 0, len(splits))
	for i := range splits {
		if splits[i] > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return splits[order[i]] > splits[order[j]]
	})
	for _, i := range order {
		if _, err := fmt.Fprintf(w, "  %d %s / %d %s: %d times\n",
			i, first, draw.Size-i, second, splits[i]); err != nil {
			return err
		}
	}
	return nil
}
