package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/domain/model"
)

func (a *app) bugsCmd() *cobra.Command {
	return a.linkifyCmd(&cobra.Command{
		Use:   "bugs [text...]",
		Short: `Link "Bug N" references to Bugzilla`,
	}, func(text string) string {
		return a.annotator.LinkifyBugNumbers(text)
	})
}

func (a *app) revisionsCmd() *cobra.Command {
	return a.linkifyCmd(&cobra.Command{
		Use:   "revisions [text...]",
		Short: "Link Phabricator revision URLs",
	}, func(text string) string {
		return a.annotator.LinkifyRevisionURLs(text)
	})
}

func (a *app) diffsCmd() *cobra.Command {
	var revisionID string

	cmd := a.linkifyCmd(&cobra.Command{
		Use:   "diffs --revision D123 [text...]",
		Short: `Link "Diff N" references to a diff of a revision`,
	}, func(text string) string {
		return a.annotator.LinkifyDiffIDs(text, revisionID)
	})

	cmd.Flags().StringVar(&revisionID, "revision", "", "Revision the diffs belong to, e.g. D123")
	_ = cmd.MarkFlagRequired("revision")
	return cmd
}

func (a *app) commitCmd() *cobra.Command {
	var (
		status     string
		commitID   string
		treeURL    string
		transplant bool
	)

	cmd := a.linkifyCmd(&cobra.Command{
		Use:   "commit --status landed --commit ID --tree URL [text...]",
		Short: "Link a landed commit id to its repository",
		Long: `Link every occurrence of the commit id to {tree}/rev/{commit}.
Text is printed unchanged unless the status is "landed".`,
	}, func(text string) string {
		if transplant {
			return a.annotator.LinkifyTransplantDetails(text, model.TransplantResult{
				Status:        model.LandingStatus(status),
				Details:       commitID,
				RepositoryURL: treeURL,
			})
		}
		return a.annotator.LinkifyCommitID(text, model.LandingResult{
			Status:  model.LandingStatus(status),
			Result:  commitID,
			TreeURL: treeURL,
		})
	})

	flags := cmd.Flags()
	flags.StringVar(&status, "status", "", "Landing status (aborted, submitted, landed, failed)")
	flags.StringVar(&commitID, "commit", "", "Landed commit id")
	flags.StringVar(&treeURL, "tree", "", "Repository URL the commit landed in")
	flags.BoolVar(&transplant, "transplant", false, "Treat the result as a transplant result")
	_ = cmd.MarkFlagRequired("status")
	_ = cmd.MarkFlagRequired("commit")
	_ = cmd.MarkFlagRequired("tree")
	return cmd
}

func (a *app) bugURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bug-url BUG",
		Short: "Print the Bugzilla URL of a bug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd, a.annotator.BugURL(args[0]))
		},
	}
}

func (a *app) revisionURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revision-url REVISION [DIFF]",
		Short: "Print the Phabricator URL of a revision, optionally at a diff",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var diffID string
			if len(args) == 2 {
				diffID = args[1]
			}
			return writeLine(cmd, a.annotator.RevisionURL(args[0], diffID))
		},
	}
}

func (a *app) avatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar URL",
		Short: "Print the avatar URL that would be embedded for URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.annotator.AvatarURL(args[0])
			if out == "" {
				return fmt.Errorf("%q is not a usable avatar url", args[0])
			}
			return writeLine(cmd, out)
		},
	}
}

// badgeCmd needs no base URLs, so it skips the root's setup.
func badgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badge landing|revision STATUS",
		Short: "Print the badge class (and name, for landings) of a status",
		Args:  cobra.ExactArgs(2),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(args[0]) {
			case "landing":
				status := model.LandingStatus(args[1])
				return writeLine(cmd, annotate.LandingBadgeClass(status)+"\t"+annotate.LandingBadgeName(status))
			case "revision":
				return writeLine(cmd, annotate.RevisionBadgeClass(model.RevisionStatus(args[1])))
			default:
				return fmt.Errorf("unknown badge kind %q: want landing or revision", args[0])
			}
		},
	}
}
