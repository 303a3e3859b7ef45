// Package ask implements the advisory passthrough command.
package ask

import (
	"context"
	"fmt"
	"strings"

	"rpires/nf-control/cmd/root"
	"rpires/nf-control/internal/advisor"
	"rpires/nf-control/internal/session"

	"github.com/spf13/cobra"
)

var (
	temperature float64
	topP        float64
)

// Cmd is the ask command
var Cmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the advisory model about processes, CFOPs, taxes or legislation",
	Long: `Ask forwards a single free-text question to the configured language model
endpoint under a tax/process advisory persona and prints the reply. The call
never fails hard: if the endpoint is unreachable or answers badly, a
diagnostic message is printed instead of a reply.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	Cmd.Flags().Float64Var(&temperature, "temperature", 0, "Sampling temperature (0 uses the configured default)")
	Cmd.Flags().Float64Var(&topP, "top-p", 0, "Top-p nucleus sampling (0 uses the configured default)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	if cmd.Flags().Changed("temperature") {
		cfg.Advisor.Temperature = temperature
	}
	if cmd.Flags().Changed("top-p") {
		cfg.Advisor.TopP = topP
	}

	sess := session.New(cfg)
	client := sess.Advisor()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !client.Available(ctx) {
		root.Log.Warn(advisor.OfflineNotice(cfg.Advisor.Endpoint, cfg.Advisor.Model))
	}

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("digite algo para consultar a I.A")
	}

	fmt.Println(client.Ask(ctx, question))
	return nil
}
