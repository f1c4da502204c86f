package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfind/solve"
)

var (
	brandPrimary = lipgloss.Color("#7C3AED")
	brandAccent  = lipgloss.Color("#10B981")
	brandWarning = lipgloss.Color("#F59E0B")
	textMuted    = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().Foreground(brandPrimary).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(textMuted)
	okStyle    = lipgloss.NewStyle().Foreground(brandAccent).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(brandWarning).Bold(true)
	headStyle  = lipgloss.NewStyle().Foreground(brandPrimary).Bold(true).Align(lipgloss.Right)
	cellStyle  = lipgloss.NewStyle().Align(lipgloss.Right)
)

// write emits v as JSON or YAML, or calls table for the human format.
func write(w io.Writer, format string, v any, table func() string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		_, err := io.WriteString(w, table())
		return err
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

func renderSolve(r *solve.Response) string {
	var b strings.Builder
	status := warnStyle.Render(r.Status.String())
	if r.Converged {
		status = okStyle.Render(r.Status.String())
	}
	root := "none"
	if r.Root != nil {
		root = num(*r.Root)
	}
	roots := make([]string, len(r.Roots))
	for i, v := range r.Roots {
		roots[i] = num(v)
	}

	b.WriteString(titleStyle.Render("rootfind "+string(r.Method)) + "\n")
	field(&b, "status", status)
	field(&b, "root", root)
	field(&b, "roots", "["+strings.Join(roots, ", ")+"]")
	if r.Derivative != "" {
		field(&b, "f'(x)", r.Derivative)
	}
	field(&b, "final error", num(r.FinalError))
	field(&b, "iterations", strconv.Itoa(r.IterationsCount))
	field(&b, "message", r.Message)

	if len(r.IterationsData) == 0 {
		return b.String()
	}
	headers := []string{"n", "x", "f(x)"}
	switch r.Method {
	case solve.Secant:
		headers = append(headers, "x prev")
	case solve.Bisection:
		headers = append(headers, "bracket")
	default:
		headers = append(headers, "f'(x)")
	}
	headers = append(headers, "error")
	rows := make([][]string, 0, len(r.IterationsData))
	for _, it := range r.IterationsData {
		row := []string{strconv.Itoa(it.Iteration), num(it.X), numPtr(it.Fx)}
		switch r.Method {
		case solve.Secant:
			row = append(row, numPtr(it.XPrev))
		case solve.Bisection:
			if it.Bracket != nil {
				row = append(row, "["+num(it.Bracket[0])+", "+num(it.Bracket[1])+"]")
			} else {
				row = append(row, "-")
			}
		default:
			row = append(row, numPtr(it.FPrime))
		}
		rows = append(rows, append(row, numPtr(it.Error)))
	}
	b.WriteString("\n")
	b.WriteString(table(headers, rows))
	return b.String()
}

func renderEvaluate(r solve.EvaluateResponse) string {
	var b strings.Builder
	state := okStyle.Render("ok")
	if !r.Success {
		state = warnStyle.Render("failed")
	}
	field(&b, "result", state)
	field(&b, "message", r.Message)
	if len(r.Points) == 0 {
		return b.String()
	}
	rows := make([][]string, len(r.Points))
	for i, p := range r.Points {
		rows[i] = []string{num(p.X), num(p.Y)}
	}
	b.WriteString("\n")
	b.WriteString(table([]string{"x", "y"}, rows))
	return b.String()
}

func renderCatalog(c solve.Catalog) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("functions") + "\n")
	for _, f := range c.Functions {
		field(&b, f.Name, f.Description)
	}
	b.WriteString("\n" + titleStyle.Render("constants") + "\n")
	names := make([]string, 0, len(c.Constants))
	for name := range c.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		field(&b, name, num(c.Constants[name]))
	}
	b.WriteString("\n" + titleStyle.Render("operators") + "\n")
	b.WriteString("  " + strings.Join(c.Operators, "  ") + "\n")
	methods := make([]string, len(c.Methods))
	for i, m := range c.Methods {
		methods[i] = string(m)
	}
	b.WriteString("\n" + titleStyle.Render("methods") + "\n")
	b.WriteString("  " + strings.Join(methods, ", ") + "\n")
	b.WriteString("\n" + titleStyle.Render("examples") + "\n")
	for _, ex := range c.Examples {
		b.WriteString("  " + ex + "\n")
	}
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-12s", label)))
	b.WriteString(" " + value + "\n")
}

// table renders right-aligned columns separated by two spaces.
func table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i] + 2).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
	}
	var b strings.Builder
	b.WriteString(line(headers, headStyle))
	for _, row := range rows {
		b.WriteString(line(row, cellStyle))
	}
	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

func numPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return num(*v)
}
