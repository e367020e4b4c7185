package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gridmsg/internal/config"
	"gridmsg/internal/grid"
	"gridmsg/internal/notice"
	"gridmsg/internal/noticefmt"
	"gridmsg/internal/trace"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [gridmsg.toml...]",
	Short: "Render the system messages of one or more grids",
	Long: `Render loads each grid config, replays its notices and prints the result.
Without arguments the nearest gridmsg.toml in the current directory or its parents is used.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("format", "html", "output format (html|json|msgpack|short|pretty)")
	renderCmd.Flags().Int("jobs", 0, "max parallel workers when rendering several grids (0=auto)")
	renderCmd.Flags().Bool("positions", false, "include notice indexes in json output")
	renderCmd.Flags().Bool("indent", false, "pretty-print json output")
	renderCmd.Flags().Int("max", 0, "list at most this many notices in json output (0=all)")
	renderCmd.Flags().Int("width", -1, "truncate short/pretty lines to this width (-1=terminal, 0=off)")
}

type renderFormat string

const (
	formatHTML    renderFormat = "html"
	formatJSON    renderFormat = "json"
	formatMsgPack renderFormat = "msgpack"
	formatShort   renderFormat = "short"
	formatPretty  renderFormat = "pretty"
)

func parseRenderFormat(s string) (renderFormat, error) {
	switch f := renderFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatHTML, formatJSON, formatMsgPack, formatShort, formatPretty:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (must be html, json, msgpack, short or pretty)", s)
}

type renderOptions struct {
	format    renderFormat
	positions bool
	indent    bool
	max       int
	width     int
	color     bool
}

// renderResult is the output of one grid.
type renderResult struct {
	path       string
	out        []byte
	suppressed bool
}

func runRender(cmd *cobra.Command, args []string) error {
	tracer := trace.FromContext(cmd.Context())

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := parseRenderFormat(formatStr)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	positions, err := cmd.Flags().GetBool("positions")
	if err != nil {
		return fmt.Errorf("failed to get positions flag: %w", err)
	}
	indent, err := cmd.Flags().GetBool("indent")
	if err != nil {
		return fmt.Errorf("failed to get indent flag: %w", err)
	}
	maxNotices, err := cmd.Flags().GetInt("max")
	if err != nil {
		return fmt.Errorf("failed to get max flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	if width < 0 {
		width = terminalWidth()
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		found, ok, err := config.Find(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s found\nplease pass a config file, e.g.:\n  gridmsg render path/to/%s", config.FileName, config.FileName)
		}
		paths = []string{found}
	}

	opts := renderOptions{
		format:    format,
		positions: positions,
		indent:    indent,
		max:       maxNotices,
		width:     width,
		color:     !color.NoColor,
	}

	span := trace.Begin(tracer, trace.ScopeCommand, "render", 0)
	results, err := renderAll(cmd.Context(), tracer, span.ID(), paths, opts, jobs)
	span.WithExtra("grids", fmt.Sprint(len(paths))).End("")
	if err != nil {
		dumpRing(tracer)
		return err
	}
	return writeResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, format, quiet)
}

// renderAll renders every path concurrently; results keep argument order.
func renderAll(ctx context.Context, tracer trace.Tracer, parent uint64, paths []string, opts renderOptions, jobs int) ([]renderResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]renderResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := renderFile(tracer, parent, path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// renderFile loads one config and formats its grid.
func renderFile(tracer trace.Tracer, parent uint64, path string, opts renderOptions) (renderResult, error) {
	span := trace.Begin(tracer, trace.ScopeGrid, "grid:"+path, parent)
	log.Debug().Str("path", path).Str("format", string(opts.format)).Msg("render started")

	cfg, err := config.Load(path)
	if err != nil {
		span.End("config error")
		return renderResult{}, err
	}
	g, err := grid.FromConfig(cfg, tracer)
	if err != nil {
		span.End("grid error")
		return renderResult{}, fmt.Errorf("%s: %w", path, err)
	}

	res, err := formatGrid(g, path, opts)
	if err != nil {
		span.End("format error")
		return renderResult{}, fmt.Errorf("%s: %w", path, err)
	}
	span.WithExtra("bytes", fmt.Sprint(len(res.out))).End("")
	log.Debug().Str("path", path).Bool("suppressed", res.suppressed).Msg("render finished")
	return res, nil
}

func formatGrid(g *grid.Grid, path string, opts renderOptions) (renderResult, error) {
	res := renderResult{path: path}
	reg := g.Messages()
	var buf bytes.Buffer

	switch opts.format {
	case formatHTML:
		markup, ok := g.RenderMessages()
		if !ok {
			res.suppressed = true
			return res, nil
		}
		buf.WriteString(markup)
		buf.WriteByte('\n')
	case formatJSON:
		if err := noticefmt.JSON(&buf, reg, noticefmt.JSONOpts{IncludePositions: opts.positions, Max: opts.max, Indent: opts.indent}); err != nil {
			return res, err
		}
	case formatMsgPack:
		if err := noticefmt.MsgPack(&buf, reg); err != nil {
			return res, err
		}
	case formatShort:
		if short := notice.FormatShort(reg.Items(), opts.width); short != "" {
			buf.WriteString(short)
			buf.WriteByte('\n')
		}
	case formatPretty:
		if err := noticefmt.Pretty(&buf, reg, noticefmt.PrettyOpts{Color: opts.color, Width: opts.width}); err != nil {
			return res, err
		}
	}
	res.out = buf.Bytes()
	return res, nil
}

func writeResults(out, errOut io.Writer, results []renderResult, format renderFormat, quiet bool) error {
	rendered := 0
	for _, res := range results {
		if res.suppressed {
			if !quiet {
				fmt.Fprintf(errOut, "%s: no grid-styled notices, markup suppressed\n", res.path)
			}
			continue
		}
		if _, err := out.Write(res.out); err != nil {
			return err
		}
		rendered++
	}
	if format == formatHTML && rendered == 0 && !quiet {
		log.Info().Int("grids", len(results)).Msg("no grid produced system-message markup")
	}
	return nil
}
