package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/routecycle/internal/ctxlog"
	"github.com/specialistvlad/routecycle/internal/engine"
	"github.com/specialistvlad/routecycle/internal/fsutil"
	"github.com/specialistvlad/routecycle/internal/graph"
	"github.com/specialistvlad/routecycle/internal/hop"
	"github.com/specialistvlad/routecycle/internal/input"
	"github.com/specialistvlad/routecycle/internal/registry"
	"github.com/specialistvlad/routecycle/internal/report"
	"github.com/specialistvlad/routecycle/internal/tracker"
)

// ctxPollLines is how often ingestion checks for cancellation.
const ctxPollLines = 1 << 16

// run holds the state of one Run call.
type run struct {
	reg     *registry.Registry
	tracker *tracker.Tracker
	summary report.Summary
}

// Run executes the main application logic: ingest every input line into the
// registry, search each graph, and print the longest cycle. Either exactly
// one result line is written or an error is returned with nothing written.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger
	logger.Debug("App.Run method started.")
	started := time.Now()

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthCheckServer(ctx); err != nil {
			return err
		}
		defer func() {
			if cerr := a.closeHealthCheckServer(ctx); err == nil {
				err = cerr
			}
		}()
	}

	files, err := fsutil.ExpandInputs(a.config.Inputs)
	if err != nil {
		return fmt.Errorf("failed to resolve inputs: %w", err)
	}
	scanner, err := input.Open(files, a.stdin)
	if err != nil {
		return err
	}
	defer scanner.Close()
	scanner.OnFileStart(func(file string, kind input.Compression) {
		logger.Debug("Reading input file.", "file", file, "compression", kind)
	})

	normalizer, err := hop.NewNormalizer(a.model.Layout)
	if err != nil {
		return err
	}

	r := &run{
		reg:     registry.New(),
		tracker: tracker.New(),
		summary: report.Summary{
			RunID:  a.runID,
			Inputs: files,
			Layout: a.model.Layout.String(),
		},
	}

	logger.Info("Ingesting hops.", "files", len(files), "layout", r.summary.Layout, "grouped", a.model.Search.Grouped)
	if err := a.ingest(ctx, r, scanner, normalizer); err != nil {
		return err
	}
	logger.Info("Ingestion finished.",
		"lines", r.summary.Lines,
		"skipped", r.summary.Skipped,
		"graphs", r.reg.Seen(),
		"edges", r.reg.Edges(),
	)
	if r.summary.Skipped > 0 {
		logger.Warn("Malformed lines were skipped.", "count", r.summary.Skipped)
	}

	logger.Info("🚀 Starting cycle search...", "graphs", r.reg.Len(), "prune", a.model.Search.Prune)
	for id, g := range r.reg.All() {
		if err := a.search(ctx, r, id, g); err != nil {
			return err
		}
	}

	rec, found := r.tracker.Final()
	r.summary.Graphs = r.reg.Seen()
	r.summary.Hops = r.reg.Hops()
	r.summary.Edges = r.reg.Edges()
	r.summary.Result = report.NewResult(rec, found)
	r.summary.Duration = time.Since(started)

	if found {
		logger.Info("🏁 Search finished.", "graph", rec.GraphID.String(), "length", rec.Length, "searched", r.summary.GraphsSearched, "pruned", r.summary.GraphsPruned)
	} else {
		logger.Info("🏁 Search finished without finding a cycle.", "searched", r.summary.GraphsSearched)
	}

	if a.config.SummaryPath != "" {
		if err := r.summary.WriteFile(a.config.SummaryPath); err != nil {
			return err
		}
		logger.Debug("Summary written.", "path", a.config.SummaryPath)
	}

	logger.Debug("App.Run method finished.")
	return report.WriteResult(a.outW, rec, found)
}

// ingest streams every line into the registry. In grouped mode the previous
// graph is searched and released as soon as a new GraphID starts.
func (a *App) ingest(ctx context.Context, r *run, scanner *input.Scanner, normalizer *hop.Normalizer) error {
	logger := ctxlog.FromContext(ctx)
	skipHeader := a.model.Layout.SkipHeader
	grouped := a.model.Search.Grouped

	var last hop.GraphID
	haveLast := false

	for scanner.Scan() {
		a.metrics.Lines.Inc()
		if scanner.Lines()%ctxPollLines == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("ingestion interrupted: %w", err)
			}
		}
		if skipHeader && scanner.Line() == 1 {
			continue
		}

		if scanner.Oversize() {
			r.summary.Skipped++
			a.metrics.LinesSkipped.Inc()
			logger.Debug("Skipping oversized line.", "file", scanner.File(), "line", scanner.Line(), "limit", input.MaxLineSize)
			continue
		}

		id, edge, err := normalizer.Normalize(scanner.Text())
		if err != nil {
			if errors.Is(err, hop.ErrBlankLine) {
				continue
			}
			r.summary.Skipped++
			a.metrics.LinesSkipped.Inc()
			logger.Debug("Skipping malformed line.", "file", scanner.File(), "line", scanner.Line(), "compression", scanner.Compression(), "error", err)
			continue
		}

		if grouped && haveLast && id != last {
			if g, ok := r.reg.Graph(last); ok {
				if err := a.search(ctx, r, last, g); err != nil {
					return err
				}
				r.reg.Release(last)
			}
		}

		if _, err := r.reg.AddEdge(id, edge); err != nil {
			if errors.Is(err, registry.ErrReleased) {
				return fmt.Errorf("input is not grouped by graph id (%s:%d): %w", scanner.File(), scanner.Line(), err)
			}
			return err
		}
		a.metrics.Graphs.Set(float64(r.reg.Len()))
		last, haveLast = id, true
	}

	r.summary.Lines = scanner.Lines()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// search runs the engine over one graph and offers the result to the tracker.
func (a *App) search(ctx context.Context, r *run, id hop.GraphID, g *graph.Graph) error {
	opts := engine.DefaultOptions()
	if a.model.Search.Prune {
		opts.Bound = r.tracker.Best()
	}

	started := time.Now()
	res, err := engine.Search(ctx, g, opts)
	a.metrics.SearchDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return fmt.Errorf("search of graph %s interrupted: %w", id, err)
	}

	r.summary.GraphsSearched++
	a.metrics.GraphsSearched.Inc()
	if res.Pruned {
		r.summary.GraphsPruned++
		a.metrics.GraphsPruned.Inc()
	}

	if r.tracker.Consider(id, res.Found, res.Length) {
		a.metrics.LongestCycle.Set(float64(res.Length))
		ctxlog.FromContext(ctx).Debug("New longest cycle.", "graph", id, "length", res.Length, "nodes", g.NodeCount(), "steps", res.Steps)
	}
	return nil
}
