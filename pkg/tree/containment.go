package tree

import "fmt"

// CanContain checks whether child may sit directly under parent: groups and tabs live
// under the root or a group, lines live under the tab for their own file.
func CanContain(parent, child *Node) error {
	switch c := child.data.(type) {
	case *TreeData:
		return fmt.Errorf("%w: the root cannot be nested", ErrInvalidContainment)
	case *GroupData, *TabData:
		switch parent.data.(type) {
		case *TreeData, *GroupData:
			return nil
		case *TabData, *LineData:
			return fmt.Errorf("%w: %s cannot be placed under a %s", ErrInvalidContainment, child.kind, parent.kind)
		default:
			panic(fmt.Sprintf("tree: unhandled payload %T", parent.data))
		}
	case *LineData:
		tab, ok := parent.data.(*TabData)
		if !ok {
			return fmt.Errorf("%w: line must be placed under a tab, not a %s", ErrInvalidContainment, parent.kind)
		}
		if tab.FilePath != c.FilePath {
			return fmt.Errorf("%w: line of %s cannot be placed under tab of %s", ErrInvalidContainment, c.FilePath, tab.FilePath)
		}
		return nil
	default:
		panic(fmt.Sprintf("tree: unhandled payload %T", child.data))
	}
}
