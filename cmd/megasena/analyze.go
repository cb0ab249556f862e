package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"megasena/internal/console"
	"megasena/internal/draw"
	"megasena/internal/freq"
	"megasena/internal/report"
)

func newAllDrawsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all-draws",
		Short: "Simple frequency analysis over the full draw history",
		Args:  cobra.NoArgs,
		RunE:  runAllDraws,
	}
}

func newMegaViradaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mega-virada",
		Short: "Detailed analysis of the December 31st draws",
		Args:  cobra.NoArgs,
		RunE:  runMegaVirada,
	}
	cmd.Flags().IntVar(&flagViradaSince, "virada-since", defaultViradaSince, "first Mega da Virada year to include")
	return cmd
}

func newWeightedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weighted",
		Short: "Compare weighting strategies over the full draw history",
		Args:  cobra.NoArgs,
		RunE:  runWeighted,
	}
	cmd.Flags().Float64Var(&flagExpBase, "exp-base", defaultExpBase, "newest/oldest weight ratio for exponential policies")
	cmd.Flags().Float64Var(&flagMaxBoost, "max-boost", defaultMaxBoost, "newest/oldest weight ratio for the linear policy")
	cmd.Flags().IntVar(&flagWindow, "window", defaultWindow, "years in the recency window")
	return cmd
}

func newWeightedViradaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weighted-virada",
		Short: "Compare weighting strategies over the Mega da Virada draws",
		Args:  cobra.NoArgs,
		RunE:  runWeightedVirada,
	}
	cmd.Flags().IntVar(&flagViradaSince, "virada-since", defaultViradaSince, "first Mega da Virada year to include")
	cmd.Flags().Float64Var(&flagExpBase, "exp-base", defaultExpBase, "newest/oldest weight ratio for exponential policies")
	cmd.Flags().Float64Var(&flagMaxBoost, "max-boost", defaultMaxBoost, "newest/oldest weight ratio for the linear policy")
	cmd.Flags().IntVar(&flagWindow, "window", defaultWindow, "draws in the recency window")
	return cmd
}

// loadHistory loads the draw file and reports progress on the console.
func loadHistory(p *console.Printer, s settings) (draw.History, error) {
	p.Infof("Loading draws from %s ...", s.input)
	history, skipped, err := draw.Load(s.input, draw.LoadOptions{Strict: s.strict})
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		p.Warnf("Skipped %d malformed row(s)", skipped)
	}
	p.Successf("Loaded %d draws", len(history))
	if oldest, newest, ok := history.DateRange(); ok {
		p.Infof("Date range: %s to %s", oldest.Format(draw.DateLayout), newest.Format(draw.DateLayout))
	}
	return history, nil
}

func saveReport(p *console.Printer, s settings, filename string, content []byte) error {
	path := filepath.Join(s.outputDir, filename)
	if err := report.Write(path, content); err != nil {
		p.Failf("%v", err)
		return err
	}
	p.Successf("Analysis saved to: %s", path)
	return nil
}

func runAllDraws(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := console.New(cmd.OutOrStdout())
	p.Header("MEGA SENA - ALL DRAWS ANALYSIS", "Simple frequency over the full history")

	history, err := loadHistory(p, s)
	if err != nil {
		return err
	}
	simple := freq.Simple{}
	table, err := simple.Weights(history)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteTitle(&buf, "MEGA SENA - COMPLETE NUMBER FREQUENCY ANALYSIS (ALL DRAWS)"); err != nil {
		return err
	}
	total := table.Total()
	average := total / draw.MaxNumber
	fmt.Fprintf(&buf, "Draws analyzed: %d\n", len(history))
	fmt.Fprintf(&buf, "Total numbers drawn: %.0f\n", total)
	fmt.Fprintf(&buf, "Average frequency per number: %.2f\n", average)

	top := freq.TopN(table, s.top)
	title := fmt.Sprintf("TOP %d MOST FREQUENT NUMBERS", s.top)
	if err := report.RenderTop(&buf, title, simple.Description(), top, table); err != nil {
		return err
	}
	if err := report.RenderRanking(&buf, table); err != nil {
		return err
	}
	if err := renderInsights(&buf, table, average, s.top); err != nil {
		return err
	}

	p.Section("Report")
	p.Infof("%s", buf.String())
	return saveReport(p, s, "number_frequency_analysis.txt", buf.Bytes())
}

func renderInsights(buf *bytes.Buffer, table freq.Table, average float64, n int) error {
	if err := report.WriteSection(buf, "ADDITIONAL INSIGHTS"); err != nil {
		return err
	}
	least := freq.Numbers(freq.BottomN(table, n))
	fmt.Fprintf(buf, "\nLeast frequent %d numbers: %s\n", n, report.FormatNumbers(least))
	aboveAverage := 0
	for _, w := range table {
		if w > average {
			aboveAverage++
		}
	}
	fmt.Fprintf(buf, "Numbers above average frequency (%.0f): %d\n", average, aboveAverage)
	return nil
}

func runMegaVirada(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := console.New(cmd.OutOrStdout())
	p.Header("MEGA DA VIRADA - SPECIAL ANALYSIS",
		fmt.Sprintf("December 31st draws from %d on", s.viradaSince))

	history, err := loadHistory(p, s)
	if err != nil {
		return err
	}
	virada := history.Filter(draw.MegaVirada(s.viradaSince))
	if len(virada) == 0 {
		return fmt.Errorf("no Mega da Virada draws since %d in %s", s.viradaSince, s.input)
	}
	p.Successf("Found %d Mega da Virada draws", len(virada))

	simple := freq.Simple{}
	table, err := simple.Weights(virada)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteTitle(&buf, "MEGA DA VIRADA - DETAILED ANALYSIS"); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "Mega da Virada draws analyzed: %d\n", len(virada))
	if oldest, newest, ok := virada.DateRange(); ok {
		fmt.Fprintf(&buf, "Date range: %s to %s\n",
			oldest.Format(draw.DateLayout), newest.Format(draw.DateLayout))
	}
	fmt.Fprintf(&buf, "Expected frequency per number: %.2f\n", table.Total()/draw.MaxNumber)

	if err := report.RenderDraws(&buf, "ALL MEGA DA VIRADA DRAWS", virada); err != nil {
		return err
	}
	if err := report.RenderDistribution(&buf, report.Distribute(virada)); err != nil {
		return err
	}
	top := freq.TopN(table, s.top)
	title := fmt.Sprintf("TOP %d MOST FREQUENT NUMBERS IN MEGA DA VIRADA", s.top)
	if err := report.RenderTop(&buf, title, simple.Description(), top, table); err != nil {
		return err
	}
	if err := report.RenderRanking(&buf, table); err != nil {
		return err
	}
	if err := renderViradaExtremes(&buf, table); err != nil {
		return err
	}

	p.Section("Report")
	p.Infof("%s", buf.String())
	return saveReport(p, s, "mega_virada_analysis.txt", buf.Bytes())
}

// renderViradaExtremes lists the hot numbers (3+ appearances) and the
// numbers never drawn in a Mega da Virada.
func renderViradaExtremes(buf *bytes.Buffer, table freq.Table) error {
	if err := report.WriteSection(buf, "HOT AND COLD NUMBERS"); err != nil {
		return err
	}
	var hot []string
	var never []int
	for _, e := range freq.Rank(table) {
		switch {
		case e.Weight >= 3:
			hot = append(hot, fmt.Sprintf("%02d (%.0fx)", e.Number, e.Weight))
		case e.Weight == 0:
			never = append(never, e.Number)
		}
	}
	if len(hot) > 0 {
		fmt.Fprintf(buf, "\nNumbers drawn 3+ times: %s\n", strings.Join(hot, ", "))
	} else {
		fmt.Fprintln(buf, "\nNumbers drawn 3+ times: none")
	}
	if len(never) > 0 {
		fmt.Fprintf(buf, "Numbers never drawn (%d): %s\n", len(never), report.FormatNumbers(never))
	}
	return nil
}

func runWeighted(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := console.New(cmd.OutOrStdout())
	p.Header("MEGA SENA - WEIGHTED TIME-BASED ANALYSIS", "Comparing weighting strategies over all draws")

	history, err := loadHistory(p, s)
	if err != nil {
		return err
	}
	policies := []freq.Policy{
		freq.Simple{},
		freq.ExponentialRecency{Base: s.expBase},
		freq.LinearRecency{MaxBoost: s.maxBoost},
		freq.OlderFavored{Base: s.expBase},
		freq.RecentWindow{Years: s.window},
	}

	var buf bytes.Buffer
	if err := report.WriteTitle(&buf, "MEGA SENA - WEIGHTED ANALYSIS RESULTS (ALL DRAWS)"); err != nil {
		return err
	}
	if err := renderStrategies(&buf, history, policies, s.top); err != nil {
		return err
	}

	p.Section("Report")
	p.Infof("%s", buf.String())
	return saveReport(p, s, "weighted_all_draws_results.txt", buf.Bytes())
}

func runWeightedVirada(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := console.New(cmd.OutOrStdout())
	p.Header("MEGA DA VIRADA - WEIGHTED TIME-BASED ANALYSIS", "Comparing weighting strategies over the virada draws")

	history, err := loadHistory(p, s)
	if err != nil {
		return err
	}
	virada := history.Filter(draw.MegaVirada(s.viradaSince))
	if len(virada) == 0 {
		return fmt.Errorf("no Mega da Virada draws since %d in %s", s.viradaSince, s.input)
	}
	p.Successf("Found %d Mega da Virada draws", len(virada))

	policies := []freq.Policy{
		freq.Simple{},
		freq.ExponentialRecency{Base: s.expBase},
		freq.LinearRecency{MaxBoost: s.maxBoost},
		freq.OlderFavored{Base: s.expBase},
		freq.RecentWindow{Draws: s.window},
	}

	var buf bytes.Buffer
	if err := report.WriteTitle(&buf, "MEGA DA VIRADA - WEIGHTED ANALYSIS RESULTS"); err != nil {
		return err
	}
	recent := newestFirst(virada.LastN(s.window))
	title := fmt.Sprintf("MOST RECENT %d MEGA DA VIRADA DRAWS", len(recent))
	if err := report.RenderDraws(&buf, title, recent); err != nil {
		return err
	}
	if err := renderStrategies(&buf, virada, policies, s.top); err != nil {
		return err
	}

	p.Section("Report")
	p.Infof("%s", buf.String())
	return saveReport(p, s, "weighted_analysis_results.txt", buf.Bytes())
}

// renderStrategies runs every policy over the history, writes each top
// selection, and closes with the consensus ranking and strategy comparison.
func renderStrategies(buf *bytes.Buffer, history draw.History, policies []freq.Policy, top int) error {
	simpleTable, err := freq.Simple{}.Weights(history)
	if err != nil {
		return err
	}

	selections := make([][]freq.Entry, 0, len(policies))
	comparison := make([]report.Selection, 0, len(policies))
	for _, policy := range policies {
		table, err := policy.Weights(history)
		if err != nil {
			return fmt.Errorf("%s: %w", policy.Name(), err)
		}
		entries := freq.TopN(table, top)
		if err := report.RenderTop(buf, policy.Name(), policy.Description(), entries, simpleTable); err != nil {
			return err
		}
		selections = append(selections, entries)
		comparison = append(comparison, report.Selection{
			Name:    policy.Name(),
			Numbers: freq.Numbers(entries),
		})
	}

	consensus := freq.Consensus(selections)
	if err := report.RenderConsensus(buf, consensus, top); err != nil {
		return err
	}
	betSize := top
	if betSize > len(consensus) {
		betSize = len(consensus)
	}
	bet := make([]int, 0, betSize)
	for _, e := range consensus[:betSize] {
		bet = append(bet, e.Number)
	}
	return report.RenderComparison(buf, comparison, bet)
}

func newestFirst(h draw.History) draw.History {
	out := make(draw.History, len(h))
	for i, r := range h {
		out[len(h)-1-i] = r
	}
	return out
}
