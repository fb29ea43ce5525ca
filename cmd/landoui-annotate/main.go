// Command landoui-annotate applies the landoui text annotations outside the
// web server: linkifying text read from stdin or arguments and printing
// Bugzilla, Phabricator and avatar URLs.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the flags shared by every subcommand and the annotator built from them.
type app struct {
	bugzillaURL    string
	phabricatorURL string
	verbose        bool
	raw            bool

	annotator *annotate.Annotator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "landoui-annotate",
		Short: "Linkify Lando text and build Bugzilla/Phabricator URLs",
		Long: `landoui-annotate runs the landoui annotations from the command line.

Base URLs come from LANDOUI_BUGZILLA_URL and LANDOUI_PHABRICATOR_URL (or the
dotenv file named by LANDOUI_ENV_FILE) unless given as flags. Text commands
read their arguments, or stdin when there are none.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.bugzillaURL, "bugzilla-url", "", "Bugzilla base URL (overrides LANDOUI_BUGZILLA_URL)")
	flags.StringVar(&a.phabricatorURL, "phabricator-url", "", "Phabricator base URL (overrides LANDOUI_PHABRICATOR_URL)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.BoolVar(&a.raw, "raw", false, "Treat input as HTML that is already escaped")

	root.AddCommand(
		a.bugsCmd(),
		a.revisionsCmd(),
		a.diffsCmd(),
		a.commitCmd(),
		a.bugURLCmd(),
		a.revisionURLCmd(),
		a.avatarCmd(),
		badgeCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	bugzillaURL, phabricatorURL, err := config.LoadBaseURLs(a.bugzillaURL, a.phabricatorURL)
	if err != nil {
		return err
	}

	a.annotator, err = annotate.New(annotate.Config{
		BugzillaURL:    bugzillaURL,
		PhabricatorURL: phabricatorURL,
	}, logger)
	return err
}

// input returns the joined args, or all of stdin when there are none. Unless
// --raw is set the text is HTML-escaped so it can be linkified.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	if a.raw {
		return text, nil
	}
	return annotate.EscapeHTML(text), nil
}

// linkifyCmd makes cmd print transform applied to its input, newline terminated.
func (a *app) linkifyCmd(cmd *cobra.Command, transform func(string) string) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		text, err := a.input(cmd, args)
		if err != nil {
			return err
		}
		out := transform(text)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	return cmd
}

func writeLine(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
