// Command ipsctl runs the IPS recommendation pipeline over a crawled
// topology snapshot and prints the resulting peer lists as JSON.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ziggurat-labs/ips-topology/centrality"
	"github.com/ziggurat-labs/ips-topology/config"
	"github.com/ziggurat-labs/ips-topology/ips"
	"github.com/ziggurat-labs/ips-topology/snapshot"
)

var version = "0.1.0"

// snapshotDocument is the on-disk shape a snapshot file takes: the node
// list plus an optional explicit adjacency. When adjacency is omitted,
// each node's own Connections field is used (spec §4.2).
type snapshotDocument struct {
	Nodes     []snapshot.Node    `json:"nodes"`
	Adjacency snapshot.Adjacency `json:"adjacency,omitempty"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ipsctl",
		Short: "Intelligent Peer Sharing recommendation engine",
		Long: `ipsctl runs the IPS algorithm over a crawled topology snapshot,
producing a recommended outbound peer list for every node.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ipsctl v%s\n", version)
		},
	})

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate peer recommendations from a snapshot",
		RunE:  runGenerate,
	}
	generateCmd.Flags().String("snapshot", "", "path to the snapshot JSON document (required)")
	generateCmd.Flags().String("config", "", "path to the IPS configuration YAML file (optional, defaults apply)")
	generateCmd.Flags().String("out", "", "path to write the resulting peer list JSON (default: stdout)")
	_ = generateCmd.MarkFlagRequired("snapshot")
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	configPath, _ := cmd.Flags().GetString("config")
	outPath, _ := cmd.Flags().GetString("out")

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	engine := centrality.NewGonumEngine()
	pipeline := ips.New(cfg, engine)

	log.Printf("ipsctl: running IPS over %d nodes", len(doc.Nodes))
	peers, err := pipeline.Generate(context.Background(), doc.Nodes, doc.Adjacency)
	if err != nil {
		return fmt.Errorf("generating recommendations: %w", err)
	}

	output, err := json.MarshalIndent(peers, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(output))
		return nil
	}

	if err := os.WriteFile(outPath, output, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Printf("ipsctl: wrote %d peer records to %s", len(peers), outPath)

	return nil
}
