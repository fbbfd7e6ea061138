// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch expands batch input into queries and drives them through
// the fetch-and-decode pipeline with per-term failure isolation.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// ErrCancelled marks terms that were never attempted because the run was
// interrupted. Completed terms are still flushed to the output target.
var ErrCancelled = errors.New("cancelled before the term was attempted")

// ReadTermFile reads one term per line from a UTF-8 text file. Blank lines
// are skipped; duplicates are kept in input order. Terms are simple
// taxonomy tokens, so no quoting or escaping applies.
func ReadTermFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening term file: %w", err)
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term != "" {
			terms = append(terms, term)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading term file: %w", err)
	}
	return terms, nil
}

// Expand builds one query per term, each sharing the invocation's flags.
func Expand(base types.Query, terms []string) []types.Query {
	queries := make([]types.Query, len(terms))
	for i, term := range terms {
		q := base
		q.Term = strings.TrimSpace(term)
		queries[i] = q
	}
	return queries
}

// Worker performs a single query: build, fetch, decode.
type Worker func(ctx context.Context, q types.Query) (types.Record, error)

// Run executes the queries over a bounded worker pool and returns one
// result per query, in input order. Each worker writes its outcome into a
// pre-sized slot indexed by input position, so ordering never depends on
// completion order and no further synchronization is needed. A failing
// term never aborts the batch. Once ctx is cancelled, no new requests are
// issued and remaining terms are marked with ErrCancelled.
func Run(ctx context.Context, queries []types.Query, worker Worker, concurrency int) types.ResultSet {
	results := make(types.ResultSet, len(queries))
	if len(queries) == 0 {
		return results
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(queries) {
		concurrency = len(queries)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				q := queries[i]
				if ctx.Err() != nil {
					results[i] = types.TermResult{Term: q.Term, Err: ErrCancelled}
					continue
				}
				record, err := worker(ctx, q)
				results[i] = types.TermResult{Term: q.Term, Record: record, Err: err}
			}
		}()
	}

	for i := range queries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
