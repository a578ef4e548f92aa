package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkvelagam/oddside/domain/hands"
	"github.com/sandeepkvelagam/oddside/poker"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func renderResponse(w io.Writer, resp poker.Response) {
	if !resp.OK() {
		fmt.Fprintln(w, errorStyle.Render("Error:"), resp.Error.Message)
		return
	}

	renderResult(w, *resp.Result)
	if resp.Recommendation != nil {
		fmt.Fprintf(w, "%s %s (%s potential, %s)\n",
			headerStyle.Render("Advice:"),
			adviceStyle.Render(string(resp.Recommendation.Action)),
			resp.Recommendation.Potential,
			resp.Tier)
		fmt.Fprintf(w, "        %s\n", resp.Recommendation.Reasoning)
	}
}

func renderResult(w io.Writer, result hands.Result) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Hand:"), handStyle.Render(result.Name))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Best:"), result.Description)
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Cards:"), cardStyle.Render(result.CardsUsed.String()))
	if len(result.Kickers) > 0 {
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Kickers:"), cardStyle.Render(result.Kickers.String()))
	}
}

func renderShowdown(w io.Writer, resp poker.ShowdownResponse) {
	if !resp.OK() {
		fmt.Fprintln(w, errorStyle.Render("Error:"), resp.Error.Message)
		return
	}

	fmt.Fprintln(w, headerStyle.Render("Showdown"))
	fmt.Fprintln(w, headerStyle.Render(strings.Repeat("─", 40)))
	for _, st := range resp.Standings {
		line := fmt.Sprintf("%d. %-10s %-16s %s", st.Place+1, st.PlayerID, st.Result.Name, st.Result.Description)
		if st.IsWinner {
			line = winStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}
