package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	optimizerapi "github.com/eagowl/fleet-optimizer/api/optimizer"
	"github.com/eagowl/fleet-optimizer/config"
	"github.com/eagowl/fleet-optimizer/core/fleetstate"
	"github.com/eagowl/fleet-optimizer/core/ledger"
	"github.com/eagowl/fleet-optimizer/core/optimizer"
	"github.com/eagowl/fleet-optimizer/infra/logger"
)

var (
	optimizeFile   string
	optimizePretty bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run a single optimization from a JSON request file",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeFile, "file", "f", "", "request file with deliveries and vehicles")
	optimizeCmd.Flags().BoolVar(&optimizePretty, "pretty", false, "indent the JSON output")
	_ = optimizeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(optimizeFile)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	var req optimizerapi.OptimizeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	deliveries, vehicles, err := req.Models()
	if err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	eng, err := optimizer.NewEngine(cfg.Engine, ledger.NewMemory(cfg.Ledger.Capacity), fleetstate.NewMemoryStore(), nil, nil, logger.NopLogger{})
	if err != nil {
		return err
	}
	outcome := eng.Optimize(deliveries, vehicles)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if optimizePretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(outcome)
}
