package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	auth "Alucut/internal/auth"
	window "Alucut/internal/calc/window"
	config "Alucut/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "cutlist",
		Short: "Cut dimensions for a two-shutter aluminum sliding window",
		Long: `cutlist turns a window opening (inches) into frame track, shutter pipe
and glass sizes in whole.eighths notation: 46.6 means 46 and 6/8 inches.

Examples:
  cutlist calc --width 72.5 --height 48.25
  cutlist calc 72.5 48.25 --json
  cutlist interactive`,
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newCalcCmd(), newInteractiveCmd(), newTokenCmd(), newVersionCmd())
	return root
}

func newCalcCmd() *cobra.Command {
	var width, height string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc [width height]",
		Short: "Calculate the cut list for one opening",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				width = args[0]
			}
			if len(args) > 1 {
				height = args[1]
			}
			res, err := window.Calculate(window.Input{Width: width, Height: height})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&width, "width", "W", "", "Total opening width in inches")
	cmd.Flags().StringVarP(&height, "height", "H", "", "Total opening height in inches")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Read \"width height\" lines from stdin and print each cut list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runInteractive(in io.Reader, out io.Writer) error {
	var form window.Form
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, promptStyle.Render("Enter width and height in inches (blank line or \"quit\" to stop)."))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		width, height := fields[0], ""
		if len(fields) > 1 {
			height = fields[1]
		}
		switch form.Submit(width, height) {
		case window.StateResult:
			fmt.Fprintln(out, renderResult(*form.Result))
		case window.StateError:
			fmt.Fprintln(out, errorStyle.Render(form.Err.Error()))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func newTokenCmd() *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token signed with TOKEN_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			token, err := (&auth.TokenAuth{Key: cfg.TokenKey}).NewToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "cutlist", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "Token lifetime")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cutlist %s\n", Version)
		},
	}
}
