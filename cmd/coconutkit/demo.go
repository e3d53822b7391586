package main

import (
	"bytes"
	"fmt"

	coconutkit "github.com/jormungand/CoconutKit"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through cache eviction on a tiny budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		m, err := coconutkit.NewInMemoryFileManager(
			coconutkit.WithTotalCostLimit(100),
			coconutkit.WithoutTerminalLog(),
		)
		if err != nil {
			return err
		}
		defer m.Shutdown(ctx)

		fmt.Printf("budget is %d bytes\n\n", m.TotalCostLimit())

		if err := m.CreateDirectory(ctx, "/logs", false); err != nil {
			return err
		}
		if err := m.WriteFile(ctx, "/logs/a.bin", bytes.Repeat([]byte("a"), 60)); err != nil {
			return err
		}
		fmt.Printf("wrote /logs/a.bin (60 B), resident %d B\n", m.TotalCost())

		if err := m.WriteFile(ctx, "/logs/b.bin", bytes.Repeat([]byte("b"), 30)); err != nil {
			return err
		}
		fmt.Printf("wrote /logs/b.bin (30 B), resident %d B\n", m.TotalCost())

		if _, err := m.ReadFile(ctx, "/logs/a.bin"); err != nil {
			return err
		}
		fmt.Println("read /logs/a.bin, so /logs/b.bin is now the coldest entry")

		if err := m.WriteFile(ctx, "/logs/c.bin", bytes.Repeat([]byte("c"), 20)); err != nil {
			return err
		}
		fmt.Printf("wrote /logs/c.bin (20 B), resident %d B\n\n", m.TotalCost())

		entries, err := m.ReadDirectory(ctx, "/logs")
		if err != nil {
			return err
		}
		fmt.Printf("surviving entries under /logs: %v\n", entries)

		if stat := m.Stat(ctx, "/logs/b.bin"); !stat.Exists {
			fmt.Println("/logs/b.bin was evicted together with its payload")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
