package atlas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// models.md is the bundled library, one "## Category" heading per category
// with a "- **Name**: description" bullet per model.
//
//go:embed models.md
var library []byte

// Default parses the library bundled with the binary.
func Default() (Catalog, error) {
	return Parse(library)
}

// Parse reads a markdown library into a Catalog. Level-2 headings open a
// category; each list entry below contributes one model whose name is the
// entry's bold span and whose description is the remaining text. Entries
// without a bold name are skipped. Ids are derived from names; should two
// names collide the later entry is numerically suffixed, counting up until
// the id is free, so that the uniqueness guarantee consumers rely on
// always holds.
func Parse(src []byte) (Catalog, error) {
	doc := markdown.Parse(src, parser.NewWithExtensions(parser.CommonExtensions))

	catalog := Catalog{}
	taken := map[string]bool{}
	var category string
	for _, node := range doc.GetChildren() {
		switch node := node.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				category = strings.TrimSpace(textOf(node))
			}
		case *ast.List:
			if category == "" {
				continue
			}
			if _, ok := catalog[category]; !ok {
				catalog[category] = []Model{}
			}
			for _, item := range node.GetChildren() {
				model, ok := parseEntry(item)
				if !ok {
					continue
				}
				model.Category = category
				base := DeriveID(model.Name)
				model.ID = base
				for n := 2; taken[model.ID]; n++ {
					model.ID = fmt.Sprintf("%s-%d", base, n)
				}
				taken[model.ID] = true
				catalog[category] = append(catalog[category], model)
			}
		}
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("no categories found in model library")
	}
	return catalog, nil
}

// parseEntry reads one list item: the first bold span is the model name,
// everything after it is the description.
func parseEntry(item ast.Node) (Model, bool) {
	var model Model
	ast.WalkFunc(item, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch node := node.(type) {
		case *ast.Strong:
			if model.Name == "" {
				model.Name = strings.TrimSpace(textOf(node))
				return ast.SkipChildren
			}
		case *ast.Text:
			if model.Name != "" {
				model.Description += string(node.Literal)
			}
		}
		return ast.GoToNext
	})
	model.Description = strings.TrimSpace(strings.TrimLeft(model.Description, ":-–— \t"))
	return model, model.Name != ""
}

func textOf(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(node ast.Node, entering bool) ast.WalkStatus {
		if text, ok := node.(*ast.Text); ok && entering {
			b.Write(text.Literal)
		}
		return ast.GoToNext
	})
	return b.String()
}
