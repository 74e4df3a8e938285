package session

import (
	"strings"

	"github.com/ardour-tools/ardourfix/internal/xmltree"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// ProgramVersion returns the provenance string of the session: modified-with
// if present, created-with otherwise. The ProgramVersion element is looked up
// among the root's children first, then anywhere below the root.
func ProgramVersion(root *xmltree.Element) (string, error) {
	el := root.Find(ardourfix.TagProgramVersion)
	if el == nil {
		if all := root.Descendants(ardourfix.TagProgramVersion); len(all) > 0 {
			el = all[0]
		}
	}
	if el == nil {
		return "", ardourfix.ErrMissingVersion
	}

	if v, ok := el.Get(ardourfix.AttrModifiedWith); ok {
		return v, nil
	}
	if v, ok := el.Get(ardourfix.AttrCreatedWith); ok {
		return v, nil
	}
	return "", ardourfix.ErrMissingVersion
}

// EnforceVersion fails unless the session's provenance string starts with prefix.
func EnforceVersion(root *xmltree.Element, prefix string) error {
	v, err := ProgramVersion(root)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(v, prefix) {
		return &ardourfix.UnsupportedVersionError{Version: v, Prefix: prefix}
	}
	return nil
}
