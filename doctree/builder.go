package doctree

import "github.com/tsawler/docweave/model"

// Config holds configuration for the tree builder.
type Config struct {
	// BodyFontSize is the reference body text size used by the default
	// heading-level heuristic. Default: 12.0
	BodyFontSize float64

	// Level overrides the heading-level heuristic. When nil, the
	// default font-ratio heuristic is used.
	Level LevelFunc
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		BodyFontSize: 12.0,
	}
}

// Builder folds an ordered region sequence into a document tree.
type Builder struct {
	level LevelFunc
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	level := config.Level
	if level == nil {
		body := config.BodyFontSize
		if body <= 0 {
			body = DefaultConfig().BodyFontSize
		}
		level = DefaultLevelFunc(body)
	}
	return &Builder{level: level}
}

// Build folds the ordered regions into a tree in a single left-to-right
// pass. A Title or SectionHeader opens a heading node that parents
// everything after it until a heading of equal or higher level closes
// it. Consecutive list items group under one list node. Tables and
// figures attach as leaves. Once a node is closed it is never revisited.
func (b *Builder) Build(ordered []model.OrderedRegion) *model.DocumentNode {
	root := &model.DocumentNode{Kind: model.KindDocument}

	// Open headings, innermost last. The current parent is the top of
	// the stack, or the root when no heading is open.
	var stack []*model.DocumentNode
	var openList *model.DocumentNode

	parent := func() *model.DocumentNode {
		if len(stack) > 0 {
			return stack[len(stack)-1]
		}
		return root
	}

	for _, or := range ordered {
		region := or.Region

		if region.Class != model.ClassListItem {
			openList = nil
		}

		switch region.Class {
		case model.ClassTitle, model.ClassSectionHeader:
			level := b.level(region)
			if level < 1 {
				level = 1
			}
			for len(stack) > 0 && stack[len(stack)-1].Level >= level {
				stack = stack[:len(stack)-1]
			}
			heading := &model.DocumentNode{
				Kind:       model.KindHeading,
				Text:       region.Text(),
				Level:      level,
				Role:       region.Class,
				Provenance: provenanceOf(region),
			}
			parent().AddChild(heading)
			stack = append(stack, heading)

		case model.ClassListItem:
			if openList == nil {
				openList = &model.DocumentNode{
					Kind: model.KindList,
					Role: model.ClassListItem,
				}
				parent().AddChild(openList)
			}
			item := &model.DocumentNode{
				Kind:       model.KindParagraph,
				Text:       region.Text(),
				Role:       model.ClassListItem,
				Provenance: provenanceOf(region),
			}
			openList.AddChild(item)
			openList.Provenance = append(openList.Provenance, item.Provenance...)

		case model.ClassTable:
			parent().AddChild(&model.DocumentNode{
				Kind:       model.KindTable,
				Role:       model.ClassTable,
				Table:      region.Table,
				Provenance: provenanceOf(region),
			})

		case model.ClassFigure:
			parent().AddChild(&model.DocumentNode{
				Kind:       model.KindFigure,
				Text:       region.Text(),
				Role:       model.ClassFigure,
				Provenance: provenanceOf(region),
			})

		default:
			// Text, captions, footnotes and page furniture all render
			// as paragraphs; the role keeps them distinguishable. A
			// region with no resolved text still produces an (empty)
			// node so provenance is never lost.
			parent().AddChild(&model.DocumentNode{
				Kind:       model.KindParagraph,
				Text:       region.Text(),
				Role:       region.Class,
				Provenance: provenanceOf(region),
			})
		}
	}

	return root
}

func provenanceOf(r model.Region) []model.Provenance {
	return []model.Provenance{{PageIndex: r.PageIndex, Box: r.Box}}
}
