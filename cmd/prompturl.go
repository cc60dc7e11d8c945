package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abordi-ai/abordi/internal/catalog"
	"github.com/abordi-ai/abordi/internal/linkopen"
	"github.com/abordi-ai/abordi/internal/messages"
)

var promptOpen bool

func init() {
	cmd := &cobra.Command{
		Use:   "prompt-url <title>",
		Short: "Print the chat assistant link for a prompt",
		Long:  "Builds the assistant link that asks the prompt as a question. Any text works as a title, not only catalog prompts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := catalog.PromptURL(rt.cfg.AssistantURL, args[0])
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), u); err != nil {
				return err
			}
			if !promptOpen {
				return nil
			}
			if status, ok := linkopen.OpenCmd(linkopen.Browser{}, rt.logger, u)().(messages.StatusMsg); ok {
				fmt.Fprintln(cmd.ErrOrStderr(), status.Text)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&promptOpen, "open", false, "also open the link in the browser")
	rootCmd.AddCommand(cmd)
}
