package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"gooze.dev/pkg/rooze/internal/adapter"
	"gooze.dev/pkg/rooze/internal/domain/mutagens"
	m "gooze.dev/pkg/rooze/internal/model"
)

// owner says which kind of item a declaration list belongs to, since a
// function_item means different things in an impl, a trait and elsewhere.
type owner int

const (
	ownerNone owner = iota
	ownerImpl
	ownerTrait
)

// containerFiles are the file names whose `mod foo;` children live in the
// same directory rather than in a directory named after the file.
var containerFiles = map[string]bool{
	"mod.rs":  true,
	"lib.rs":  true,
	"main.rs": true,
}

// discoveryVisitor walks one parsed file, collecting mutants and the
// relative paths of out-of-line modules it declares.
type discoveryVisitor struct {
	ctx        context.Context
	root       m.Path
	sourceFile *m.SourceFile
	src        []byte

	parser adapter.RustFileAdapter
	fs     adapter.SourceFSAdapter
	logger *slog.Logger

	errorValues [][]m.TokenTree

	namespaceStack []string
	mutants        []*m.Mutant
	moreFiles      []string
}

func (v *discoveryVisitor) walkChildren(n *sitter.Node, kind owner) {
	var attrs []*sitter.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)

		switch {
		case adapter.IsComment(child):
			continue
		case child.Type() == "attribute_item":
			attrs = append(attrs, child)
			continue
		}

		v.visitNode(child, attrs, kind)
		attrs = nil
	}
}

func (v *discoveryVisitor) visitNode(n *sitter.Node, outerAttrs []*sitter.Node, kind owner) {
	if len(outerAttrs) > 0 && attrsExcluded(v.attributes(outerAttrs), v.logger) {
		v.logger.Debug("skip item excluded by attributes",
			"path", v.sourceFile.Path(), "line", v.line(n), "kind", n.Type())

		return
	}

	switch n.Type() {
	case "function_item":
		switch kind {
		case ownerImpl:
			v.visitFn(n, true)
		case ownerTrait:
			// Default bodies in traits are not mutated, but closures and
			// nested items inside them are still walked.
			v.walkChildren(n, ownerNone)
		default:
			v.visitFn(n, false)
		}
	case "impl_item":
		v.visitImpl(n)
	case "trait_item":
		if body := n.ChildByFieldName("body"); body != nil {
			v.walkChildren(body, ownerTrait)
		}
	case "mod_item":
		v.visitMod(n)
	default:
		v.walkChildren(n, ownerNone)
	}
}

func (v *discoveryVisitor) visitFn(n *sitter.Node, isMethod bool) {
	name := v.text(n.ChildByFieldName("name"))
	body := n.ChildByFieldName("body")

	switch {
	case fnIsUnsafe(n):
		v.logger.Debug("skip unsafe fn", "path", v.sourceFile.Path(), "line", v.line(n), "fn", name)
		return
	case isMethod && name == "new":
		v.logger.Debug("skip constructor", "path", v.sourceFile.Path(), "line", v.line(n))
		return
	case body == nil || blockIsEmpty(body):
		v.logger.Debug("skip empty fn", "path", v.sourceFile.Path(), "line", v.line(n), "fn", name)
		return
	case attrsExcluded(v.attributes(innerAttrs(body)), v.logger):
		return
	}

	v.inNamespace(name, func() {
		v.collectFnMutants(n.ChildByFieldName("return_type"), body)
		v.walkChildren(n, ownerNone)
	})
}

func (v *discoveryVisitor) visitImpl(n *sitter.Node) {
	typeName := m.PrettyTokens(v.parser.Tokens(n.ChildByFieldName("type"), v.src))
	name := typeName

	if trait := n.ChildByFieldName("trait"); trait != nil {
		traitName := lastTypeSegment(trait, v.src)
		if traitName == "Default" {
			// Mutating default() to return Default::default() would
			// recurse forever.
			return
		}

		name = fmt.Sprintf("<impl %s for %s>", traitName, typeName)
	}

	v.inNamespace(name, func() {
		if body := n.ChildByFieldName("body"); body != nil {
			v.walkChildren(body, ownerImpl)
		}
	})
}

func (v *discoveryVisitor) visitMod(n *sitter.Node) {
	modName := unraw(v.text(n.ChildByFieldName("name")))
	body := n.ChildByFieldName("body")

	if body != nil && attrsExcluded(v.attributes(innerAttrs(body)), v.logger) {
		return
	}

	if body == nil {
		v.resolveModFile(modName, v.line(n))
	}

	v.inNamespace(modName, func() {
		if body != nil {
			v.walkChildren(body, ownerNone)
		}
	})
}

// resolveModFile finds the file holding `mod name;` relative to the current
// file. A missing file is only a warning: it may be generated or behind a
// cfg that is never built.
func (v *discoveryVisitor) resolveModFile(name string, line int) {
	current := v.sourceFile.Path()

	dir := strings.TrimSuffix(current, path.Ext(current))
	if containerFiles[path.Base(current)] {
		dir = path.Dir(current)
	}

	tried := make([]string, 0, 2)

	for _, suffix := range []string{".rs", "/mod.rs"} {
		rel := path.Join(dir, name+suffix)
		if v.fs.IsFile(v.ctx, v.fs.JoinPath(v.root, rel)) {
			v.moreFiles = append(v.moreFiles, rel)
			return
		}

		tried = append(tried, rel)
	}

	v.logger.Warn("referent of mod not found",
		"path", current, "line", line, "module", name, "tried", tried)
}

func (v *discoveryVisitor) collectFnMutants(returnType, body *sitter.Node) {
	functionName := strings.Join(v.namespaceStack, "::")

	returnTypeText := ""
	if returnType != nil {
		returnTypeText = "-> " + m.PrettyTokens(v.parser.Tokens(returnType, v.src))
	}

	replacements := mutagens.ReturnValueReplacements(classifyReturnType(returnType, v.src), v.errorValues)
	if len(replacements) == 0 {
		v.logger.Debug("no replacements for return type", "fn", functionName, "type", returnTypeText)
		return
	}

	span := m.Span{
		Start: adapter.Position(v.src, body.StartByte()),
		End:   adapter.Position(v.src, body.EndByte()),
	}

	for _, replacement := range replacements {
		v.mutants = append(v.mutants, m.NewMutant(
			v.sourceFile, functionName, returnTypeText, m.PrettyTokens(replacement), span, m.GenreFnValue,
		))
	}
}

// inNamespace runs fn with name pushed on the namespace stack.
func (v *discoveryVisitor) inNamespace(name string, fn func()) {
	v.namespaceStack = append(v.namespaceStack, name)
	depth := len(v.namespaceStack)

	fn()

	if len(v.namespaceStack) != depth || v.namespaceStack[depth-1] != name {
		panic(fmt.Sprintf("namespace stack out of balance: expected %q on top of %v", name, v.namespaceStack))
	}

	v.namespaceStack = v.namespaceStack[:depth-1]
}

func (v *discoveryVisitor) attributes(nodes []*sitter.Node) []attribute {
	attrs := make([]attribute, 0, len(nodes))

	for _, item := range nodes {
		attr := findChild(item, "attribute")
		if attr == nil {
			continue
		}

		parsed := attribute{text: v.text(item)}

		if attr.NamedChildCount() > 0 {
			for _, tok := range v.parser.Tokens(attr.NamedChild(0), v.src) {
				if tok.Kind == m.TokenIdent {
					parsed.path = append(parsed.path, tok.Text)
				}
			}
		}

		args := attr.ChildByFieldName("arguments")
		if args == nil {
			args = findChild(attr, "token_tree")
		}

		if args != nil {
			tokens := v.parser.Tokens(args, v.src)
			if len(tokens) == 1 && tokens[0].Kind == m.TokenGroup && tokens[0].Delimiter == m.DelimParen {
				parsed.args = tokens[0].Children
				parsed.hasArgs = true
			}
		}

		attrs = append(attrs, parsed)
	}

	return attrs
}

func (v *discoveryVisitor) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(v.src)
}

func (v *discoveryVisitor) line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// classifyReturnType decides the shape of a return_type node from its
// syntax alone.
func classifyReturnType(n *sitter.Node, src []byte) mutagens.ReturnShape {
	if n == nil {
		return mutagens.ShapeNone
	}

	switch n.Type() {
	case "never_type":
		return mutagens.ShapeNever
	case "primitive_type":
		if n.Content(src) == "bool" {
			return mutagens.ShapeBool
		}
	case "type_identifier":
		switch n.Content(src) {
		case "String":
			return mutagens.ShapeString
		case "Result":
			return mutagens.ShapeResult
		}
	case "scoped_type_identifier", "generic_type":
		if lastTypeSegment(n, src) == "Result" {
			return mutagens.ShapeResult
		}
	case "reference_type":
		if findChild(n, "mutable_specifier") != nil {
			return mutagens.ShapeMutRef
		}

		inner := n.ChildByFieldName("type")
		if inner != nil && inner.Type() == "primitive_type" && inner.Content(src) == "str" {
			return mutagens.ShapeStr
		}

		return mutagens.ShapeRef
	}

	return mutagens.ShapeOther
}

// lastTypeSegment returns the final identifier of a type path, ignoring
// generic arguments: `std::io::Result<T>` gives "Result".
func lastTypeSegment(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "scoped_type_identifier":
		if name := n.ChildByFieldName("name"); name != nil {
			return lastTypeSegment(name, src)
		}
	case "generic_type":
		if inner := n.ChildByFieldName("type"); inner != nil {
			return lastTypeSegment(inner, src)
		}
	}

	return n.Content(src)
}

func fnIsUnsafe(fn *sitter.Node) bool {
	modifiers := findChild(fn, "function_modifiers")
	if modifiers == nil {
		return false
	}

	return findChild(modifiers, "unsafe") != nil
}

// blockIsEmpty ignores comments, attributes and stray semicolons.
func blockIsEmpty(block *sitter.Node) bool {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		child := block.NamedChild(i)
		if adapter.IsComment(child) {
			continue
		}

		switch child.Type() {
		case "attribute_item", "inner_attribute_item", "empty_statement":
			continue
		}

		return false
	}

	return true
}

func innerAttrs(body *sitter.Node) []*sitter.Node {
	var attrs []*sitter.Node

	for i := 0; i < int(body.NamedChildCount()); i++ {
		if child := body.NamedChild(i); child.Type() == "inner_attribute_item" {
			attrs = append(attrs, child)
		}
	}

	return attrs
}

// findChild returns the first direct child, named or anonymous, of the given kind.
func findChild(n *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child.Type() == kind {
			return child
		}
	}

	return nil
}

func unraw(name string) string {
	return strings.TrimPrefix(name, "r#")
}
