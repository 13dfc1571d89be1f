package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/letter-frequency/internal/common"
	"github.com/dtnitsch/letter-frequency/pkg/fetcher"
	"golang.org/x/sync/errgroup"
)

// StdinSource is the source name that reads from standard input.
const StdinSource = "-"

// DefaultLoadLimit bounds how many sources are read at once.
const DefaultLoadLimit = 8

// Source is one loaded input.
type Source struct {
	Name      string
	Data      []byte
	Hash      string
	SizeBytes int64
}

type Storage struct {
	fetcher *fetcher.Fetcher
	stdin   io.Reader
}

func NewStorage(f *fetcher.Fetcher, stdin io.Reader) *Storage {
	if f == nil {
		f = fetcher.NewFetcher()
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Storage{fetcher: f, stdin: stdin}
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// ReadSource reads a file path, an http(s) URL, or "-" for stdin.
func (s *Storage) ReadSource(ctx context.Context, source string) (*Source, error) {
	var data []byte
	var err error

	switch {
	case source == StdinSource:
		data, err = io.ReadAll(s.stdin)
	case common.IsURL(source):
		data, err = s.fetcher.GetBytes(ctx, source)
	default:
		data, err = s.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", source, err)
	}

	return &Source{
		Name:      source,
		Data:      data,
		Hash:      common.ContentHash(data),
		SizeBytes: int64(len(data)),
	}, nil
}

// LoadAll reads every source with at most limit reads in flight and returns
// them in argument order. The first failure cancels the remaining reads.
func (s *Storage) LoadAll(ctx context.Context, sources []string, limit int) ([]*Source, error) {
	if limit < 1 {
		limit = DefaultLoadLimit
	}

	stdinCount := 0
	for _, name := range sources {
		if name == StdinSource {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, fmt.Errorf("stdin (%q) may be given only once", StdinSource)
	}

	loaded := make([]*Source, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, name := range sources {
		g.Go(func() error {
			src, err := s.ReadSource(ctx, name)
			if err != nil {
				return err
			}
			loaded[i] = src
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}
