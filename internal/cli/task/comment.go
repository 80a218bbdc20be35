package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
)

// CommentCmd returns the comment parent command
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Add or list task comments",
	}

	cmd.AddCommand(CommentAddCmd())
	cmd.AddCommand(CommentListCmd())

	return cmd
}

// CommentAddCmd returns the comment add subcommand
func CommentAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <key>",
		Short: "Add a comment to a task",
		Long: `Add a comment to a task.

Comments are limited to 1000 characters. Completed tasks cannot be commented on.
The author defaults to $CIRCLEBACK_AUTHOR, then the current user.

Examples:
  circleback comment add "Apollo-Update vendor contract" --message="Chased vendor"

  # Quiet mode for bash capture
  COMMENT_ID=$(circleback comment add "Apollo-Update vendor contract" -m "Done" --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: runCommentAdd,
	}

	cmd.Flags().StringP("message", "m", "", "Comment message (required, max 1000 chars)")
	_ = cmd.MarkFlagRequired("message")
	cmd.Flags().String("author", "", "Comment author (defaults to current user)")

	return cmd
}

// CommentListCmd returns the comment list subcommand
func CommentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <key>",
		Short: "List the comments on a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runCommentList,
	}
}

func runCommentAdd(cmd *cobra.Command, args []string) error {
	message, _ := cmd.Flags().GetString("message")
	author, _ := cmd.Flags().GetString("author")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	comment, err := cliInstance.App.TrackerService.AddComment(cmd.Context(), tracker.AddCommentRequest{
		TaskKey: args[0],
		Message: message,
		Author:  author,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", comment.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(comment)
	}

	formatter.Printf("✓ Comment added to %s\n", comment.TaskKey)
	formatter.Printf("  Author: %s\n", comment.Author)
	formatter.Printf("  Message: %s\n", comment.Message)
	formatter.Printf("  Comment ID: %d\n", comment.ID)
	return nil
}

func runCommentList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	comments, err := cliInstance.App.TrackerService.ListComments(cmd.Context(), args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, c := range comments {
			formatter.Printf("%d\n", c.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(comments)
	}

	formatter.Println(render.Comments(comments))
	return nil
}
