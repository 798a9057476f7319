package resolver

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Resolver finds declarations in a document and in the documents it imports
type Resolver struct {
	provider       DocumentProvider
	maxConcurrency int
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMaxConcurrency bounds the number of import candidates opened at once.
// Values below 1 leave the number unbounded.
func WithMaxConcurrency(n int) Option {
	return func(r *Resolver) {
		r.maxConcurrency = n
	}
}

// New creates a Resolver that opens imported documents through provider
func New(provider DocumentProvider, opts ...Option) *Resolver {
	r := &Resolver{provider: provider}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the declaration of identifier visible from doc. Local
// declarations shadow imported ones.
func (r *Resolver) Resolve(ctx context.Context, doc *Document, identifier string, root string) (Declaration, bool) {
	if decl, ok := FindLocalDeclaration(doc, identifier); ok {
		return decl, true
	}
	return r.FindAcrossImports(ctx, doc, identifier, root)
}

// FindAcrossImports searches the documents directly imported by doc.
// Imports of imports are not followed. Candidates are opened concurrently,
// but the winner is always the earliest import statement, and within it the
// earliest candidate path. Candidates that fail to open count as not found.
// A cancelled context yields no result.
func (r *Resolver) FindAcrossImports(ctx context.Context, doc *Document, identifier string, root string) (Declaration, bool) {
	if doc == nil || r.provider == nil || !IsIdentifier(identifier) {
		return Declaration{}, false
	}

	var candidates []string
	for _, importPath := range ExtractImports(doc.Lines) {
		candidates = append(candidates, CandidatePaths(doc.Path, importPath, root)...)
	}
	if len(candidates) == 0 {
		return Declaration{}, false
	}

	slog.Debug("Searching imported documents",
		"path", doc.Path,
		"identifier", identifier,
		"candidate_count", len(candidates))

	outcomes := make([]*Declaration, len(candidates))

	var g errgroup.Group
	if r.maxConcurrency > 0 {
		g.SetLimit(r.maxConcurrency)
	}
	for i, path := range candidates {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			imported, err := r.provider.Open(ctx, path)
			if err != nil {
				slog.Debug("Import candidate unavailable", "path", path, "error", err)
				return nil
			}

			if decl, ok := FindLocalDeclaration(imported, identifier); ok {
				outcomes[i] = &decl
			}
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		slog.Debug("Import search cancelled", "path", doc.Path, "identifier", identifier)
		return Declaration{}, false
	}

	for _, decl := range outcomes {
		if decl != nil {
			return *decl, true
		}
	}
	return Declaration{}, false
}
