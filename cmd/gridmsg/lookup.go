package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridmsg/internal/config"
	"gridmsg/internal/grid"
	"gridmsg/internal/notice"
	"gridmsg/internal/trace"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <gridmsg.toml> <row> <column>",
	Short: "Print the first notice attached to a row and column",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, ok, err := lookupNotice(trace.FromContext(cmd.Context()), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no notice at %s", notice.LocationKey(args[1], args[2]))
		}
		fmt.Fprintln(cmd.OutOrStdout(), notice.FormatShort([]notice.Notice{n}, 0))
		return nil
	},
}

func lookupNotice(tracer trace.Tracer, path, row, column string) (notice.Notice, bool, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return notice.Notice{}, false, err
	}
	g, err := grid.FromConfig(cfg, tracer)
	if err != nil {
		return notice.Notice{}, false, fmt.Errorf("%s: %w", path, err)
	}
	n, ok := g.Messages().Lookup(notice.LocationKey(row, column))
	return n, ok, nil
}
