package engine

import (
	"fmt"
	"strings"
	
	"github.com/chazu/goldberg/pkg/graph"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Goldberg Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: truncated-icosahedron -> truncated_icosahedron
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a graph.ShapeData so it can be returned from `goldberg`
// and `icosahedron` and consumed by `defpart` or `assembly`.
type sexpShape struct {
	data graph.ShapeData
	used bool // consumed by defpart or assembly
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s :radius %g :detail %d)", s.data.Shape, s.data.Radius, s.data.Detail)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpNodeRef wraps a graph.NodeID so it can be passed between builtins.
type sexpNodeRef struct {
	id   graph.NodeID
	name string // human-readable name for error messages
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(noderef %q)", n.name)
	}
	return fmt.Sprintf("(noderef %s)", n.id.Short())
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// checkKeywords reports the first keyword in pa that is not in allowed.
func checkKeywords(form string, pa kwArgs, allowed ...string) error {
	for name := range pa.kw {
		known := false
		for _, a := range allowed {
			if name == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%s: unknown keyword :%s", form, name)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an integer from a SexpInt, or from a SexpFloat with no
// fractional part.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == float64(int(v.Val)) {
			return int(v.Val), nil
		}
		return 0, fmt.Errorf("expected integer, got %g", v.Val)
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_z) and plain strings ("z").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toShape converts a keyword or string to a graph.Shape.
func toShape(s zygo.Sexp) (graph.Shape, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected shape keyword (:icosahedron, :goldberg): %w", err)
	}
	return graph.ParseShape(name)
}

// ---------------------------------------------------------------------------
// Graph builder
// ---------------------------------------------------------------------------

// builder accumulates nodes while a script runs. Anonymous node IDs come
// from a per-evaluation counter so repeated evaluations of one script yield
// identical graphs.
type builder struct {
	g      *graph.Graph
	shapes []*sexpShape   // every shape value created, in creation order
	order  []graph.NodeID // node creation order
	anon   int
}

func newBuilder(g *graph.Graph) *builder {
	return &builder{g: g}
}

func (b *builder) add(n *graph.Node) {
	b.g.AddNode(n)
	b.order = append(b.order, n.ID)
}

// addShape registers s as a primitive node. An empty name produces an
// anonymous part.
func (b *builder) addShape(name string, s *sexpShape) graph.NodeID {
	s.used = true
	path := "defpart/" + name
	if name == "" {
		b.anon++
		path = fmt.Sprintf("shape/%d", b.anon)
	}
	id := graph.NewNodeID(path)
	b.add(&graph.Node{
		ID:   id,
		Kind: graph.NodePrimitive,
		Name: name,
		Data: s.data,
	})
	return id
}

// finalize turns shape values no form consumed into anonymous parts and
// roots every node that no group owns, in creation order.
func (b *builder) finalize() {
	for _, s := range b.shapes {
		if !s.used {
			b.addShape("", s)
		}
	}
	for _, id := range b.order {
		if !b.g.Owned(id) {
			b.g.AddRoot(id)
		}
	}
}

// shapeFunc returns the builtin for one shape kind:
//
//	(goldberg :radius 1.5 :detail 2)
//
// Omitted keywords take the graph defaults in force when the form runs.
func (b *builder) shapeFunc(form string, shape graph.Shape) zygo.ZlispUserFunction {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := checkKeywords(form, pa, "radius", "detail"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("%s: unexpected positional argument %s", form, pa.positional[0].SexpString(nil))
		}

		sd := graph.ShapeData{
			Shape:  shape,
			Radius: b.g.Defaults.Radius,
			Detail: b.g.Defaults.Detail,
		}
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: radius: %w", form, err)
			}
			sd.Radius = f
		}
		if v, ok := pa.kw["detail"]; ok {
			d, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: detail: %w", form, err)
			}
			sd.Detail = d
		}

		s := &sexpShape{data: sd}
		b.shapes = append(b.shapes, s)
		return s, nil
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Goldberg DSL builtins into a zygomys
// environment. The builtins populate the builder's graph during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *builder) {
	g := b.g

	// (icosahedron :radius 1 :detail 3)
	env.AddFunction("icosahedron", b.shapeFunc("icosahedron", graph.ShapeIcosahedron))

	// (goldberg :radius 1 :detail 2), also spelled truncated-icosahedron.
	env.AddFunction("goldberg", b.shapeFunc("goldberg", graph.ShapeGoldberg))
	env.AddFunction("truncated_icosahedron", b.shapeFunc("truncated-icosahedron", graph.ShapeGoldberg))

	// -----------------------------------------------------------------------
	// (defaults :radius 2 :detail 3 :shape :icosahedron)
	// -----------------------------------------------------------------------
	env.AddFunction("defaults", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := checkKeywords("defaults", pa, "radius", "detail", "shape"); err != nil {
			return zygo.SexpNull, err
		}

		d := g.Defaults
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defaults: radius: %w", err)
			}
			d.Radius = f
		}
		if v, ok := pa.kw["detail"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defaults: detail: %w", err)
			}
			d.Detail = n
		}
		if v, ok := pa.kw["shape"]; ok {
			s, err := toShape(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defaults: shape: %w", err)
			}
			d.Shape = s
		}
		g.Defaults = d

		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (sphere :radius 1 :detail 2), the default shape kind.
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return b.shapeFunc("sphere", g.Defaults.Shape)(env, name, args)
	})

	// -----------------------------------------------------------------------
	// (defpart "name" (goldberg ...))
	// -----------------------------------------------------------------------
	env.AddFunction("defpart", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("defpart requires a name and a body expression")
		}

		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defpart: name: %w", err)
		}
		if partName == "" {
			return zygo.SexpNull, fmt.Errorf("defpart: name must not be empty")
		}
		if g.Lookup(partName) != nil {
			return zygo.SexpNull, fmt.Errorf("defpart: %q is already defined", partName)
		}

		body, ok := args[1].(*sexpShape)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("defpart: expected shape expression, got %T (%s)",
				args[1], args[1].SexpString(nil))
		}

		id := b.addShape(partName, body)
		return &sexpNodeRef{id: id, name: partName}, nil
	})

	// -----------------------------------------------------------------------
	// (part "name")
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("part requires a name argument")
		}

		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}

		n := g.Lookup(partName)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("part: no part named %q", partName)
		}

		return &sexpNodeRef{id: n.ID, name: partName}, nil
	})

	// -----------------------------------------------------------------------
	// (assembly "name" (part "ball") (goldberg ...) ... :description "...")
	// -----------------------------------------------------------------------
	env.AddFunction("assembly", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := checkKeywords("assembly", pa, "description"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("assembly requires a name argument")
		}

		asmName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("assembly: name: %w", err)
		}
		if asmName == "" {
			return zygo.SexpNull, fmt.Errorf("assembly: name must not be empty")
		}
		if g.Lookup(asmName) != nil {
			return zygo.SexpNull, fmt.Errorf("assembly: %q is already defined", asmName)
		}

		gd := graph.GroupData{}
		if v, ok := pa.kw["description"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("assembly: description: %w", err)
			}
			gd.Description = s
		}

		var children []graph.NodeID
		for i, arg := range pa.positional[1:] {
			switch v := arg.(type) {
			case *sexpNodeRef:
				children = append(children, v.id)
			case *sexpShape:
				children = append(children, b.addShape("", v))
			default:
				return zygo.SexpNull, fmt.Errorf("assembly: child %d: expected part or shape, got %T (%s)",
					i+1, arg, arg.SexpString(nil))
			}
		}

		id := graph.NewNodeID("assembly/" + asmName)
		b.add(&graph.Node{
			ID:       id,
			Kind:     graph.NodeGroup,
			Name:     asmName,
			Children: children,
			Data:     gd,
		})

		return &sexpNodeRef{id: id, name: asmName}, nil
	})
}
