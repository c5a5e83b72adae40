package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/beetracker-backend/internal/domain"
	"github.com/heartmarshall/beetracker-backend/internal/hints"
	"github.com/heartmarshall/beetracker-backend/internal/progress"
	"github.com/heartmarshall/beetracker-backend/internal/service/game"
)

// explain adds the command to run next to errors the user can fix.
func explain(err error) error {
	switch {
	case errors.Is(err, game.ErrNoSession):
		return fmt.Errorf("%w; run \"beehints load\" with today's hints first", err)
	case errors.Is(err, hints.ErrNoGrid):
		return fmt.Errorf("could not find a hints grid; check the pasted text")
	default:
		return err
	}
}

func newParseCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a hints page and show what was recognised",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := hints.Parse(text)
			if err != nil {
				return explain(err)
			}
			if jsonOut {
				return writeJSON(cmd, toParseJSON(res, text))
			}
			renderParse(cmd.OutOrStdout(), res, isTerminal(cmd.OutOrStdout()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the parse result as JSON")
	return cmd
}

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load [file|-]",
		Short: "Load today's hints, replacing the current session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(c context.Context, svc *game.Service) error {
				res, err := svc.LoadHints(c, game.LoadHintsInput{Text: text})
				if err != nil {
					return explain(err)
				}
				out := cmd.OutOrStdout()
				for _, warning := range res.Parse.Warnings {
					fmt.Fprintf(out, "warning: %s\n", warning)
				}
				renderProgress(out, res.Progress, isTerminal(out))
				return nil
			})
		},
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add WORD...",
		Short: "Record found words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *game.Service) error {
				res, err := svc.SubmitWords(c, game.SubmitWordsInput{Words: args})
				if err != nil {
					return explain(err)
				}
				printSubmit(cmd, res)
				return nil
			})
		},
	}
}

func newPasteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "paste [file|-]",
		Short: "Record every word found in a block of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(c context.Context, svc *game.Service) error {
				res, err := svc.SubmitWords(c, game.SubmitWordsInput{Text: text})
				if err != nil {
					return explain(err)
				}
				printSubmit(cmd, res)
				return nil
			})
		},
	}
}

func printSubmit(cmd *cobra.Command, res *game.SubmitResult) {
	out := cmd.OutOrStdout()
	renderClassifications(out, res.Classifications, isTerminal(out))
	renderSummary(out, res.Progress)
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove WORD",
		Short: "Forget a recorded word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *game.Service) error {
				view, err := svc.RemoveWord(c, args[0])
				if err != nil {
					return explain(err)
				}
				renderSummary(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear found and rejected words, keeping the hints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *game.Service) error {
				view, err := svc.ResetWords(c)
				if err != nil {
					return explain(err)
				}
				renderSummary(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress and what is left to find",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *game.Service) error {
				view, err := svc.Progress(c)
				if err != nil {
					return explain(err)
				}
				if jsonOut {
					return writeJSON(cmd, toStatusJSON(view))
				}
				renderProgress(cmd.OutOrStdout(), view, isTerminal(cmd.OutOrStdout()))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print progress as JSON")
	return cmd
}

func newScoreCommand() *cobra.Command {
	var (
		pangram bool
		letters string
	)
	cmd := &cobra.Command{
		Use:   "score WORD...",
		Short: "Show how many points words are worth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allowed := domain.NewLetterSet(letters)
			rows := make([][]string, 0, len(args)+1)
			total := 0
			for _, word := range args {
				w := domain.NormalizeWord(word)
				if !progress.IsValidWord(w, allowed) {
					rows = append(rows, []string{w, "0"})
					continue
				}
				points := progress.PointsForWord(w, pangram || progress.IsPangram(w, allowed))
				total += points
				rows = append(rows, []string{w, strconv.Itoa(points)})
			}
			rows = append(rows, []string{"total", strconv.Itoa(total)})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Word", "Points"}, rows, []columnAlignment{alignLeft, alignRight}, isTerminal(out)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pangram, "pangram", false, "Score every word as a pangram")
	cmd.Flags().StringVar(&letters, "letters", "", "Puzzle letters; enables pangram detection and rejects other letters")
	return cmd
}
