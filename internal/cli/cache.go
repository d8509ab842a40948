package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/buildinfo"
	"github.com/matzehuels/sketchpad/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the export artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached export artifacts",
		Long: `Remove all cached export artifacts.

With the file backend every entry in the cache directory is removed. With
the redis backend only keys written by this build are deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			ch, err := c.newCache(ctx, cfg.Cache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer ch.Close()

			var (
				count int
				where string
			)
			switch ch := ch.(type) {
			case *cache.FileCache:
				count, err = ch.Purge()
				where = "Directory: " + ch.Dir()
			case *cache.RedisCache:
				count, err = ch.DeletePrefix(ctx, buildinfo.CachePrefix())
				where = "Redis: " + cfg.Cache.Redis.Addr
			default:
				printInfo("Caching is disabled")
				return nil
			}
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("%s", where)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
