package extract

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/pmeredith/dbscout/internal/annovalue"
	"github.com/pmeredith/dbscout/internal/model"
)

// Interactions builds the data-access report: repository types, transactional
// sites, and classified call sites.
func Interactions(m *model.Model, cfg Config) Report {
	r := Report{
		Repositories:       []RepositoryRecord{},
		Interactions:       []InteractionRecord{},
		TransactionalSites: []string{},
	}

	// Repositories are listed regardless of whether any of their members
	// is ever called.
	for _, t := range m.Types {
		switch {
		case t.IsInterface():
			if cfg.isRepositoryInterface(t) || cfg.hasMarker(t, MarkerRepository) {
				r.Repositories = append(r.Repositories, RepositoryRecord{
					Name:    t.Name,
					Kind:    "interface",
					Extends: superTypeNames(t),
				})
			}
		case t.Kind == model.ClassKind:
			if cfg.hasMarker(t, MarkerRepository) {
				r.Repositories = append(r.Repositories, RepositoryRecord{
					Name:    t.Name,
					Kind:    "class",
					Extends: []string{},
				})
			}
		}
	}

	sites := map[string]struct{}{}
	for _, t := range m.Types {
		if cfg.hasMarker(t, MarkerTransactional) {
			sites[t.Name] = struct{}{}
		}
		for _, meth := range t.Methods {
			if cfg.hasMarker(meth, MarkerTransactional) {
				sites[t.Name+"#"+meth.Name] = struct{}{}
			}
		}
	}
	for s := range sites {
		r.TransactionalSites = append(r.TransactionalSites, s)
	}
	sort.Strings(r.TransactionalSites)

	for _, t := range m.Types {
		if t.Kind != model.ClassKind {
			continue
		}
		for _, meth := range t.Methods {
			site := t.Name + "#" + meth.Name
			for _, call := range meth.Calls {
				decl := call.DeclaringType.Name
				if decl == "" {
					continue
				}
				kind, ok := cfg.classifyAPI(decl)
				if !ok {
					// Direct calls on repository types count even
					// without a namespace-prefix match.
					if strings.HasSuffix(decl, cfg.RepositorySuffix) {
						r.Interactions = append(r.Interactions, InteractionRecord{
							Site:          site,
							Kind:          "RepoCall",
							API:           decl,
							Method:        call.Method,
							DeclaringType: decl,
						})
					}
					continue
				}
				r.Interactions = append(r.Interactions, InteractionRecord{
					Site:          site,
					Kind:          kind,
					API:           decl,
					Method:        call.Method,
					DeclaringType: decl,
					SQLLiteral:    firstStringLiteral(call),
				})
			}
		}
	}

	slog.Info("DB interactions extracted",
		"repositories", len(r.Repositories),
		"transactionalSites", len(r.TransactionalSites),
		"interactions", len(r.Interactions))
	return r
}

// classifyAPI matches the declaring type against the prefix table, first
// match wins.
func (c *Config) classifyAPI(declaringType string) (string, bool) {
	for _, p := range c.APIPrefixes {
		if strings.HasPrefix(declaringType, p.Prefix) {
			return p.Kind, true
		}
	}
	return "", false
}

// isRepositoryInterface reports whether the interface extends a type whose
// name contains the repository-marker token.
func (c *Config) isRepositoryInterface(t *model.Type) bool {
	for _, ref := range t.SuperTypes {
		if strings.Contains(ref.Name, c.RepositorySuffix) {
			return true
		}
	}
	return false
}

func superTypeNames(t *model.Type) []string {
	out := []string{}
	for _, ref := range t.SuperTypes {
		if ref.Name != "" {
			out = append(out, ref.Name)
		}
	}
	return out
}

// firstStringLiteral returns the unescaped content of the call's first
// argument when that argument is a string literal.
func firstStringLiteral(call model.Call) *string {
	text := strings.TrimSpace(call.FirstArgText)
	if content, next, ok := annovalue.ScanString(text, 0); ok && next == len(text) {
		return &content
	}
	return nil
}
