package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/notepad/internal/validation"
)

var (
	ErrUnknownKind  = errors.New("unknown node type")
	ErrFileChildren = errors.New("file has children")
)

// Kind tells files from folders in the explorer tree.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Node is one entry of the explorer tree.
type Node struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"type" validate:"oneof=file folder"`
	Children []Node `json:"children,omitempty" validate:"dive"`
}

func (n Node) IsFolder() bool { return n.Kind == KindFolder }

func init() {
	validation.RegisterStructValidation(func(sl validator.StructLevel) {
		n := sl.Current().Interface().(Node)
		if n.Kind == KindFile && len(n.Children) > 0 {
			sl.ReportError(n.Children, "Children", "Children", "nochildren", "")
		}
	}, Node{})
}

// ValidateTree rejects unknown kinds and files that carry children.
func ValidateTree(nodes []Node) error {
	return Dataset{Tree: nodes}.Validate()
}

// Dataset is everything the dashboard displays.
type Dataset struct {
	Cards []Item `validate:"unique=ID,dive"`
	Tree  []Node `validate:"dive"`
}

// Validate checks cards and tree. Errors name the offending field, e.g.
// "Tree[0].Children[1].Kind", and wrap one of the Err* sentinels.
func (d Dataset) Validate() error {
	err := validation.Struct(d)
	if err == nil {
		return nil
	}
	fe, ok := validation.First(err)
	if !ok {
		return err
	}
	path := strings.TrimPrefix(fe.Namespace(), "Dataset.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: %w", path, ErrEmptyName)
	case "unique":
		return fmt.Errorf("%s: %w", path, ErrDuplicateID)
	case "oneof":
		return fmt.Errorf("%s: %w %q", path, ErrUnknownKind, fe.Value())
	case "nochildren":
		return fmt.Errorf("%s: %w", path, ErrFileChildren)
	}
	return fmt.Errorf("%s: %w", path, err)
}
