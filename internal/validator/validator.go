package validator

import (
	"fmt"
	"slices"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/hashicorp/go-multierror"
)

// ValidateSchema checks a schema tree for structural mistakes that would
// otherwise produce misleading documentation. All problems are reported at once.
func ValidateSchema(root domain.Node) error {
	v := &checker{onStack: make(map[domain.Node]bool), done: make(map[domain.Node]bool)}
	v.visit(root, nil)
	return v.errs.ErrorOrNil()
}

type checker struct {
	errs    *multierror.Error
	onStack map[domain.Node]bool
	done    map[domain.Node]bool
}

func (c *checker) fail(path domain.Path, format string, args ...any) {
	where := path.String()
	if where == "" {
		where = "<root>"
	}
	c.errs = multierror.Append(c.errs, fmt.Errorf("%s: %s", where, fmt.Sprintf(format, args...)))
}

func (c *checker) visit(n domain.Node, path domain.Path) {
	if c.onStack[n] {
		c.fail(path, "%v", domain.ErrCyclicSchema)
		return
	}
	// Shared subtrees are checked once.
	if c.done[n] {
		return
	}
	c.onStack[n] = true
	defer func() {
		delete(c.onStack, n)
		c.done[n] = true
	}()

	switch t := n.(type) {
	case *domain.Scalar:
		c.scalar(t, path)
	case *domain.FixedValue:
		c.scalar(&t.Scalar, path)
		c.fixed(t, path)
	case *domain.Sequence:
		if t.Elem == nil {
			c.fail(path, "sequence has no element type")
			return
		}
		c.visit(t.Elem, path.Append(domain.SequenceSegment))
	case *domain.Mapping:
		c.mapping(t, path)
	case *domain.OpenMapping:
		c.mapping(&t.Mapping, path)
	case *domain.Root:
		c.mapping(&t.Mapping, path)
	}
}

func (c *checker) scalar(s *domain.Scalar, path domain.Path) {
	if s.DefaultCast != "" && len(s.Casts) > 0 && !slices.Contains(s.Casts, s.DefaultCast) {
		c.fail(path, "default cast %q is not one of the accepted casts", s.DefaultCast)
	}
}

func (c *checker) fixed(f *domain.FixedValue, path domain.Path) {
	if len(f.Values) == 0 {
		c.fail(path, "fixed value declares no values")
	}
	if f.Default != "" && !slices.Contains(f.Values, f.Default) {
		c.fail(path, "default %q is not an allowed value", f.Default)
	}
	seen := make(map[string]bool, len(f.Aliases))
	for _, a := range f.Aliases {
		if seen[a.Name] {
			c.fail(path, "value alias %q is declared more than once", a.Name)
		}
		seen[a.Name] = true
		if !slices.Contains(f.Values, a.Target) {
			c.fail(path, "value alias %q points to unknown value %q", a.Name, a.Target)
		}
	}
}

func (c *checker) mapping(m *domain.Mapping, path domain.Path) {
	for _, key := range m.Keys() {
		child := m.Fields[key]
		if child == nil {
			c.fail(path.Append(key), "field has no type")
			continue
		}
		c.visit(child, path.Append(key))
	}

	for _, key := range m.Required {
		if _, ok := m.Fields[key]; !ok {
			c.fail(path, "required key %q is not declared", key)
		}
	}
	for _, key := range m.Experimental {
		if _, ok := m.Fields[key]; !ok {
			c.fail(path, "experimental key %q is not declared", key)
		}
	}
	seen := make(map[string]bool, len(m.Aliases))
	for _, a := range m.Aliases {
		if seen[a.Name] {
			c.fail(path, "alias %q is declared more than once", a.Name)
		}
		seen[a.Name] = true
		if _, ok := m.Fields[a.Name]; ok {
			c.fail(path, "alias %q shadows a declared key", a.Name)
		}
		if _, ok := m.Fields[a.Target]; !ok {
			c.fail(path, "alias %q points to undeclared key %q", a.Name, a.Target)
		}
	}
}
