// Package pipeline sequences the scan, sort, render, aggregate, and
// serialize stages into one run, dispatching to the streaming or batch
// path chosen by config.Config.Validate.
package pipeline

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/water-run/treepp/internal/aggregate"
	"github.com/water-run/treepp/internal/applog"
	"github.com/water-run/treepp/internal/banner"
	"github.com/water-run/treepp/internal/config"
	"github.com/water-run/treepp/internal/pattern"
	"github.com/water-run/treepp/internal/render"
	"github.com/water-run/treepp/internal/scan"
	"github.com/water-run/treepp/internal/serialize"
	"github.com/water-run/treepp/internal/sink"
	"github.com/water-run/treepp/internal/treemodel"

	"github.com/spf13/afero"
)

// Stats is what a run reports back to the CLI boundary for the --report
// summary line and, eventually, the process exit code.
type Stats struct {
	Directories int
	Files       int
	Elapsed     time.Duration
}

// Run executes one scan-to-output pass against the absolute root path,
// dispatching to the streaming or batch path per cfg.Mode(). The caller
// must have already called cfg.Validate successfully.
func Run(ctx context.Context, cfg config.Config, rootPath string, out *sink.Sink) (Stats, error) {
	logger, err := applog.NewApplicationLogger()
	if err != nil {
		return Stats{}, err
	}
	defer logger.Sync()

	warn := func(path string, cause error) {
		applog.WarnPath(logger, path, cause)
	}

	filterCfg, err := buildFilterConfig(cfg)
	if err != nil {
		return Stats{}, err
	}

	start := time.Now()
	var stats Stats
	var runErr error
	if cfg.Mode() == config.Batch {
		stats, runErr = runBatch(ctx, cfg, rootPath, filterCfg, out, warn, start)
	} else {
		stats, runErr = runStreaming(ctx, cfg, rootPath, filterCfg, out, warn, start)
	}
	stats.Elapsed = time.Since(start)
	return stats, runErr
}

func buildFilterConfig(cfg config.Config) (scan.FilterConfig, error) {
	excludeMatchers, err := compileAll(cfg.ExcludePatterns, cfg.IgnoreCase)
	if err != nil {
		return scan.FilterConfig{}, err
	}
	includeMatchers, err := compileAll(cfg.IncludePatterns, cfg.IgnoreCase)
	if err != nil {
		return scan.FilterConfig{}, err
	}
	return scan.FilterConfig{
		IncludeFiles:    cfg.IncludeFiles,
		ExcludePatterns: excludeMatchers,
		IncludePatterns: includeMatchers,
		UseGitignore:    cfg.Gitignore,
		Level:           cfg.Level,
	}, nil
}

func compileAll(raw []string, ignoreCase bool) ([]*pattern.Matcher, error) {
	matchers := make([]*pattern.Matcher, 0, len(raw))
	for _, p := range raw {
		m, err := pattern.Compile(p, ignoreCase)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

func renderOptions(cfg config.Config, rootPath string, out *sink.Sink) render.Options {
	glyphs := render.UnicodeGlyphs
	if cfg.ASCII {
		glyphs = render.ASCIIGlyphs
	}
	if cfg.NoIndent {
		glyphs = render.NoIndentGlyphs
	}
	var bannerLines []string
	if !cfg.NoWinBanner {
		bannerLines = banner.Capture()
	}
	return render.Options{
		Line: render.LineOptions{
			Glyphs:        glyphs,
			NoIndent:      cfg.NoIndent,
			FullPath:      cfg.FullPath,
			Quote:         cfg.Quote,
			ShowSize:      cfg.ShowSize,
			HumanReadable: cfg.HumanReadable,
			ShowDate:      cfg.ShowDate,
			Subdue:        out.Subdue,
		},
		Banner:      bannerLines,
		NoWinBanner: cfg.NoWinBanner,
		DisplayRoot: cfg.DisplayRoot(rootPath),
		Report:      cfg.Report,
	}
}

func runBatch(ctx context.Context, cfg config.Config, rootPath string, filterCfg scan.FilterConfig, out *sink.Sink, warn func(string, error), start time.Time) (Stats, error) {
	root, scanStats, err := scan.ScanTreeBatch(ctx, scan.BatchConfig{
		FS:        afero.NewOsFs(),
		RootPath:  rootPath,
		Filter:    filterCfg,
		SortKey:   cfg.SortKey,
		Reverse:   cfg.Reverse,
		DirsFirst: cfg.DirsFirst,
		Threads:   cfg.Threads,
		Warn:      warn,
	})
	if err != nil {
		// A canceled context or an unreadable root both leave batch
		// output empty; there is nothing consistent to render from a
		// partially-populated tree once the worker pool has stopped.
		return Stats{Directories: scanStats.Directories, Files: scanStats.Files}, err
	}

	root.Name = cfg.DisplayRoot(rootPath)

	if cfg.DiskUsage {
		aggregate.Aggregate(root)
	}
	if cfg.Prune {
		aggregate.MarkPruned(root)
	}

	opts := renderOptions(cfg, rootPath, out)
	lines := render.RenderBatch(root, opts)
	if cfg.Report {
		lines = append(lines, "", out.Subdue(render.FormatSummary(scanStats.Directories, scanStats.Files, time.Since(start).Seconds())))
	}

	if writeErr := emit(root, cfg, lines, out); writeErr != nil {
		return Stats{Directories: scanStats.Directories, Files: scanStats.Files}, writeErr
	}

	return Stats{Directories: scanStats.Directories, Files: scanStats.Files}, nil
}

func runStreaming(ctx context.Context, cfg config.Config, rootPath string, filterCfg scan.FilterConfig, out *sink.Sink, warn func(string, error), start time.Time) (Stats, error) {
	opts := renderOptions(cfg, rootPath, out)
	renderer, header := render.NewStreamRenderer(opts)

	var fileBuf []byte
	writeLine := func(line string) error {
		if cfg.Output != "" {
			fileBuf = append(fileBuf, line...)
			fileBuf = append(fileBuf, '\n')
		}
		return out.WriteConsole([]byte(line + "\n"))
	}

	for _, line := range header {
		if err := writeLine(line); err != nil {
			return Stats{}, err
		}
	}

	var stats Stats
	consume := func(evt scan.Event) error {
		var lines []string
		switch evt.Kind {
		case scan.EventEnterDir:
			stats.Directories++
			lines = renderer.EnterDir(evt.Entry, evt.IsLast)
		case scan.EventFile:
			stats.Files++
			lines = renderer.File(evt.Entry, evt.IsLast)
		case scan.EventLeaveDir:
			lines = renderer.LeaveDir()
		case scan.EventWarning:
			warn(evt.Path, evt.Warning)
			return nil
		}
		for _, line := range lines {
			if err := writeLine(line); err != nil {
				return err
			}
		}
		return nil
	}

	produce := func(streamCtx context.Context, ch chan<- scan.Event) error {
		streamCfg := scan.StreamConfig{
			FS:        afero.NewOsFs(),
			RootPath:  rootPath,
			Filter:    filterCfg,
			SortKey:   cfg.SortKey,
			Reverse:   cfg.Reverse,
			DirsFirst: cfg.DirsFirst,
			Warn:      warn,
		}
		return scan.ScanDirectoryStreaming(streamCtx, streamCfg, func(evt scan.Event) error {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case ch <- evt:
				return nil
			}
		})
	}

	if err := dispatchStream(ctx, produce, consume); err != nil {
		return stats, err
	}

	if cfg.Report {
		summary := render.FormatSummary(stats.Directories, stats.Files, time.Since(start).Seconds())
		if cfg.Output != "" {
			fileBuf = append(fileBuf, summary...)
			fileBuf = append(fileBuf, '\n')
		}
		if err := out.WriteConsole([]byte(out.Subdue(summary) + "\n")); err != nil {
			return stats, err
		}
	}
	if cfg.Output != "" {
		if err := out.WriteFile(fileBuf); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// dispatchStream runs produce and consume concurrently over a handoff
// channel, generalizing the teacher's producer/consumer errgroup shape
// from its content/tree command streaming to the scanner's event stream.
func dispatchStream(ctx context.Context, produce func(context.Context, chan<- scan.Event) error, consume func(scan.Event) error) error {
	group, streamCtx := errgroup.WithContext(ctx)
	events := make(chan scan.Event)

	group.Go(func() error {
		defer close(events)
		return produce(streamCtx, events)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case evt, ok := <-events:
				if !ok {
					return nil
				}
				if err := consume(evt); err != nil {
					return err
				}
			}
		}
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// emit writes the fully rendered batch output through the sink: the file
// leg (when set) receives it in cfg.outputFormat, and the console leg
// (unless --silent) always receives the plain-text rendering.
func emit(root *treemodel.Entry, cfg config.Config, lines []string, out *sink.Sink) error {
	payload, err := serialize.Marshal(root, cfg.OutputFormat(), lines)
	if err != nil {
		return err
	}
	if cfg.OutputFormat() == serialize.FormatTXT && cfg.Output == "" {
		return out.WriteConsole(payload)
	}
	if err := out.WriteFile(payload); err != nil {
		return err
	}
	if cfg.OutputFormat() == serialize.FormatTXT {
		return out.WriteConsole(payload)
	}
	text, err := serialize.Marshal(root, serialize.FormatTXT, lines)
	if err != nil {
		return err
	}
	return out.WriteConsole(text)
}
