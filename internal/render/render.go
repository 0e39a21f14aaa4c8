// Package render formats solver results, benchmark reports and audits for
// the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gitrdm/gochange/internal/bench"
	"github.com/gitrdm/gochange/pkg/coinchange"
)

// ─────────────────────────────────────────────────────────────
// Styles
// ─────────────────────────────────────────────────────────────

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)

	seriesStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	}
)

// printer groups digits in amounts and counts (12,345).
var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Denominations formats a coin set as 50, 25, 10.
func Denominations(d []int) string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = Number(c)
	}
	return strings.Join(parts, ", ")
}

// Row is one solver's line in a Solve table.
type Row struct {
	Solver string
	Result coinchange.Result
}

// Solve renders the results of several solvers for one amount.
func Solve(denominations []int, amount int, rows []Row) string {
	nameWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, len(r.Solver))
	}
	name := lipgloss.NewStyle().Width(nameWidth + 2)

	lines := []string{
		titleStyle.Render("Change for " + Number(amount)),
		labelStyle.Render("denominations: " + Denominations(denominations)),
		"",
	}
	for _, r := range rows {
		lines = append(lines, name.Render(r.Solver)+solution(r.Result))
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func solution(r coinchange.Result) string {
	coins := r.Solution.String()
	switch r.Status {
	case coinchange.StatusComplete:
		return coins + "  " + successStyle.Render(printer.Sprintf("%d coins", r.Coins()))
	case coinchange.StatusIncomplete:
		return coins + "  " + warnStyle.Render(printer.Sprintf("incomplete, %d left over", r.Remainder))
	default:
		return errorStyle.Render("infeasible")
	}
}

// Chart renders a horizontal bar per solver per swept amount, scaled to the
// slowest call in the report. barWidth is the length of the longest bar.
func Chart(r *bench.Report, barWidth int) string {
	if r == nil || len(r.Amounts) == 0 {
		return dimStyle.Render("(no data)")
	}
	if barWidth <= 0 {
		barWidth = 40
	}

	var slowest time.Duration
	nameWidth := 0
	for _, s := range r.Series {
		slowest = max(slowest, s.Max())
		nameWidth = max(nameWidth, len(s.Solver))
	}
	amountWidth := len(Number(r.Amounts[len(r.Amounts)-1]))

	amountCol := lipgloss.NewStyle().Width(amountWidth + 1).Align(lipgloss.Right)
	nameCol := lipgloss.NewStyle().Width(nameWidth + 2).PaddingLeft(1)

	var lines []string
	for i, amount := range r.Amounts {
		for j, s := range r.Series {
			label := ""
			if j == 0 {
				label = Number(amount)
			}
			style := seriesStyles[j%len(seriesStyles)]
			lines = append(lines, amountCol.Render(label)+nameCol.Render(s.Solver)+" "+
				style.Render(bar(s.PerCall[i], slowest, barWidth))+" "+dimStyle.Render(s.PerCall[i].String()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// bar is at least one cell wide for any non-zero duration.
func bar(d, slowest time.Duration, width int) string {
	if slowest <= 0 || d <= 0 {
		return ""
	}
	n := int(float64(d) / float64(slowest) * float64(width))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Summary renders per-solver timing aggregates and the amounts where greedy
// lost to the exact solver.
func Summary(r *bench.Report) string {
	lines := []string{
		titleStyle.Render("Benchmark"),
		labelStyle.Render(fmt.Sprintf("denominations: %s", Denominations(r.Denominations))),
		labelStyle.Render(fmt.Sprintf("%s amounts, %s repeats each, %v total",
			Number(len(r.Amounts)), Number(r.Repeats), r.Elapsed.Round(time.Millisecond))),
		"",
	}
	for i, s := range r.Series {
		style := seriesStyles[i%len(seriesStyles)]
		lines = append(lines, fmt.Sprintf("%s  mean %v  max %v", style.Render(s.Solver), s.Mean(), s.Max()))
	}
	losses := r.GreedyLosses()
	if len(losses) == 0 {
		lines = append(lines, successStyle.Render("greedy matched exact on every swept amount"))
	} else {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("greedy lost on %s of %s amounts: %s",
			Number(len(losses)), Number(len(r.Amounts)), amountList(losses, 10))))
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Audit renders a canonicity verdict and, optionally, every loss found in a
// wider range scan.
func Audit(denominations []int, ce coinchange.Counterexample, found bool, losses []coinchange.Counterexample, scanned int) string {
	lines := []string{
		titleStyle.Render("Canonicity audit"),
		labelStyle.Render("denominations: " + Denominations(denominations)),
		"",
	}
	if found {
		lines = append(lines,
			warnStyle.Render("not canonical: smallest counterexample "+Number(ce.Amount)),
			"  greedy "+solution(ce.Greedy),
			"  exact  "+solution(ce.Exact))
	} else {
		lines = append(lines, successStyle.Render(printer.Sprintf("canonical up to %d", coinchange.CounterexampleBound(denominations))))
	}
	if scanned > 0 {
		amounts := make([]int, len(losses))
		for i, l := range losses {
			amounts[i] = l.Amount
		}
		lines = append(lines, "", labelStyle.Render(printer.Sprintf("greedy loses on %d of %d amounts", len(losses), scanned)))
		if len(amounts) > 0 {
			lines = append(lines, dimStyle.Render(amountList(amounts, 20)))
		}
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func amountList(amounts []int, limit int) string {
	shown := amounts
	if len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, len(shown))
	for i, a := range shown {
		parts[i] = Number(a)
	}
	s := strings.Join(parts, ", ")
	if len(amounts) > limit {
		s += printer.Sprintf(" … (+%d more)", len(amounts)-limit)
	}
	return s
}
