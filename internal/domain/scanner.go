package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/adapter"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// DefaultExtension is the source file suffix scanned when none is given.
const DefaultExtension = ".java"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ScanArgs contains the arguments for scanning a corpus.
type ScanArgs struct {
	Root        m.Path        `validate:"required"`
	Output      m.Path        `validate:"required"`
	Skip        int           `validate:"gte=0"`
	Limit       int           `validate:"gte=0"`
	Threads     int           `validate:"gte=1"`
	Extension   string        `validate:"required,startswith=."`
	Exclude     []string      `validate:"dive,required"`
	FileTimeout time.Duration `validate:"gte=0"`
}

// Validate checks the arguments against their struct tags.
func (a ScanArgs) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid scan arguments: %w", err)
	}

	return nil
}

// ProgressFunc is called once per completed project with the running total
// of every project completed so far. Calls are serialized.
type ProgressFunc func(project m.Project, running m.Summary)

// CorpusScanner discovers the projects of a corpus and analyzes them.
type CorpusScanner interface {
	// Discover lists the projects under args.Root in name order, drops those
	// without source files, then applies the Skip/Limit window.
	Discover(ctx context.Context, args ScanArgs) ([]m.ProjectSources, error)
	// Scan analyzes every file of every project with at most threads
	// concurrent workers. Project order and unit order follow sources.
	Scan(ctx context.Context, root m.Path, sources []m.ProjectSources, threads int, progress ProgressFunc) (m.Corpus, error)
}

type corpusScanner struct {
	fs       adapter.SourceFSAdapter
	analyzer UnitAnalyzer
}

// NewCorpusScanner constructs a CorpusScanner.
func NewCorpusScanner(fs adapter.SourceFSAdapter, analyzer UnitAnalyzer) CorpusScanner {
	return &corpusScanner{
		fs:       fs,
		analyzer: analyzer,
	}
}

func (s *corpusScanner) Discover(ctx context.Context, args ScanArgs) ([]m.ProjectSources, error) {
	dirs, err := s.fs.ListProjectDirs(ctx, args.Root)
	if err != nil {
		return nil, err
	}

	var found []m.ProjectSources

	for _, dir := range dirs {
		files, err := s.fs.ListSources(ctx, dir, args.Extension, args.Exclude)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			slog.Warn("Project not readable", "project", dir, "error", err)

			continue
		}

		if len(files) == 0 {
			slog.Debug("Empty project excluded", "project", dir)
			continue
		}

		found = append(found, m.ProjectSources{Dir: dir, Files: files})
	}

	return window(found, args.Skip, args.Limit), nil
}

func window(projects []m.ProjectSources, skip, limit int) []m.ProjectSources {
	if skip >= len(projects) {
		return nil
	}

	projects = projects[skip:]

	if limit > 0 && limit < len(projects) {
		projects = projects[:limit]
	}

	return projects
}

func (s *corpusScanner) Scan(
	ctx context.Context,
	root m.Path,
	sources []m.ProjectSources,
	threads int,
	progress ProgressFunc,
) (m.Corpus, error) {
	projects := make([]m.Project, len(sources))
	remaining := make([]atomic.Int64, len(sources))
	completed := make(chan int, len(sources))

	for i, src := range sources {
		projects[i] = m.Project{Path: src.Dir, Units: make([]m.Unit, len(src.Files))}
		remaining[i].Store(int64(len(src.Files)))

		if len(src.Files) == 0 {
			completed <- i
		}
	}

	collected := make(chan struct{})

	go func() {
		defer close(collected)

		var running m.Summary

		for i := range completed {
			running = running.Merge(projects[i].Summary())

			if progress != nil {
				progress(projects[i], running)
			}
		}
	}()

	var group errgroup.Group
	if threads > 0 {
		group.SetLimit(threads)
	}

schedule:
	for i, src := range sources {
		for j, file := range src.Files {
			if ctx.Err() != nil {
				break schedule
			}

			group.Go(func() error {
				projects[i].Units[j] = s.analyzer.Analyze(ctx, file)

				if remaining[i].Add(-1) == 0 {
					completed <- i
				}

				return nil
			})
		}
	}

	_ = group.Wait()

	close(completed)
	<-collected

	if err := ctx.Err(); err != nil {
		return m.Corpus{}, fmt.Errorf("scan interrupted: %w", err)
	}

	return m.Corpus{Root: root, Projects: projects}, nil
}
