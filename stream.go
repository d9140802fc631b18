package cssreport

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrStreamingNotSupported is reported when a record arrives with streaming
// (unbuffered) contents. The record is rejected; the rest of the run is
// unaffected.
var ErrStreamingNotSupported = errors.New("streaming not supported")

// File is the host pipeline's record contract: an opaque record with a
// path and null, buffered or streaming contents. The stream never mutates
// a record; it only reads the buffer and forwards the record downstream.
type File interface {
	Path() string
	IsNull() bool
	IsStream() bool
	Bytes() []byte
}

// BufferFile is a fully buffered File. A nil Contents slice marks a null
// record, mirroring pipeline hosts that pass empty placeholders through.
type BufferFile struct {
	FilePath string
	Contents []byte
}

func (f *BufferFile) Path() string   { return f.FilePath }
func (f *BufferFile) IsNull() bool   { return f.Contents == nil }
func (f *BufferFile) IsStream() bool { return false }
func (f *BufferFile) Bytes() []byte  { return f.Contents }

type streamState int

const (
	stateIdle streamState = iota
	stateCollecting
	stateDraining
	stateDone
)

// lintSlot holds one pending lint result. Slots are appended in arrival
// order by the intake goroutine and each is written by exactly one lint
// goroutine, so the report preserves input order regardless of completion
// order.
type lintSlot struct {
	result Result
}

// Stream is one pipeline invocation. Records enter through Write and pass
// through unchanged on Out while their lint runs proceed in the background;
// Close drains every pending run, fans the combined results out to the
// configured reporters and closes Out. A Stream is not reusable.
//
// Write and Close must be called from a single goroutine. Out must be
// consumed concurrently: Write forwards synchronously.
type Stream struct {
	cfg       Config
	source    string
	reporters []Reporter
	out       chan File

	lints   *errgroup.Group
	slots   []*lintSlot
	state   streamState
	errOnce sync.Once
}

// New creates a stream for one pipeline run. The reporter set is fixed
// here: the report writer always runs, the console echo and the fail
// policy join it when enabled in cfg.
func New(cfg Config) (*Stream, error) {
	cfg = cfg.withDefaults()
	if cfg.Engine == nil {
		return nil, errors.New("cssreport: engine is required")
	}
	if cfg.WorkDir == "" {
		return nil, errors.New("cssreport: working directory is required")
	}

	s := &Stream{
		cfg:    cfg,
		source: cfg.Engine.Name(),
		out:    make(chan File),
		lints:  new(errgroup.Group),
		state:  stateCollecting,
	}
	s.reporters = append(s.reporters, NewWriteReporter(cfg.WorkDir, cfg.Output, s.source))
	if cfg.ReportToConsole {
		s.reporters = append(s.reporters, NewConsoleReporter(cfg.ConsoleOut))
	}
	if cfg.FailAfterAllErrors {
		s.reporters = append(s.reporters, FailReporter{})
	}
	return s, nil
}

// Out is the downstream side of the pass-through. It yields records in
// input order and is closed after the report phase completes.
func (s *Stream) Out() <-chan File { return s.out }

// ReportPath returns the absolute path the report will be written to.
func (s *Stream) ReportPath() string {
	return s.reporters[0].(*WriteReporter).Path()
}

// Write accepts the next input record. Null records pass through untouched
// with no lint attempted. Streaming records are rejected through the error
// sink and not forwarded. Buffered records start a background lint run,
// unbounded, and are forwarded immediately: completion never blocks the
// forward flow of this or later records. Records written after Close are
// dropped.
func (s *Stream) Write(f File) {
	if s.state != stateCollecting {
		return
	}
	switch {
	case f.IsNull():
		s.out <- f
	case f.IsStream():
		s.emit(fmt.Errorf("%s: %w", f.Path(), ErrStreamingNotSupported))
	default:
		slot := &lintSlot{}
		s.slots = append(s.slots, slot)
		path, src := f.Path(), f.Bytes()
		s.lints.Go(func() error {
			res, err := s.cfg.Engine.Lint(context.Background(), path, src)
			if err != nil {
				return fmt.Errorf("linting %s: %w", path, err)
			}
			slot.result = res
			return nil
		})
		s.out <- f
	}
}

// Close drains the run: it waits for every pending lint, adapts the
// combined results once, runs all reporters concurrently over that one
// collection and awaits them all, then closes Out. Any failure from
// linting or from any reporter surfaces as a single error through the
// sink; one reporter failing does not stop the others. Close always
// completes, whatever failed.
func (s *Stream) Close() {
	if s.state != stateCollecting {
		return
	}
	s.state = stateDraining

	if err := s.lints.Wait(); err != nil {
		// A lint failure aborts the batch: no partial report.
		s.emit(err)
	} else {
		results := make([]Result, len(s.slots))
		for i, slot := range s.slots {
			results[i] = slot.result
		}
		reports := AdaptResults(s.source, s.cfg.SeverityFormat, results)

		var g errgroup.Group
		for _, r := range s.reporters {
			r := r
			g.Go(func() error { return r.Report(reports) })
		}
		if err := g.Wait(); err != nil {
			s.emit(err)
		}
	}

	s.state = stateDone
	close(s.out)
}

// emit forwards err to the configured sink, tagged with the plugin
// identity. At most one error is emitted per run; without a sink the error
// is dropped, which is the documented contract for hosts that registered
// no handler.
func (s *Stream) emit(err error) {
	s.errOnce.Do(func() {
		if s.cfg.ErrorSink == nil {
			return
		}
		s.cfg.ErrorSink(fmt.Errorf("cssreport: %w", err))
	})
}
