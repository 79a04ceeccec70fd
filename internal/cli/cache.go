package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barfly/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.noCache {
				printWarning(cmd.OutOrStdout(), "Cache is disabled, nothing to clear")
				return nil
			}
			store, err := c.openCache(cmd.Context())
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			cl, ok := store.(cache.Clearer)
			if !ok {
				printInfo(cmd.OutOrStdout(), "Cache cannot be cleared")
				return nil
			}
			if err := cl.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Cache cleared")
			printDetail(cmd.OutOrStdout(), "Location: %s", c.cacheLocation())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where artifacts are cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.cacheLocation())
			return nil
		},
	}
}

// cacheLocation describes the cache selected by the flags.
func (c *CLI) cacheLocation() string {
	switch {
	case c.noCache:
		return "disabled"
	case c.redisAddr != "":
		return "redis://" + c.redisAddr
	}
	dir, err := cacheDir()
	if err != nil {
		return "unavailable"
	}
	return dir
}
