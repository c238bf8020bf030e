package models

import "strconv"

// Keys under which session state is persisted in the backend.
const (
	KeyTree            = "tabgroups.tree"
	KeyCollapseAll     = "tabgroups.collapseAll"
	KeyShowDescription = "tabgroups.showDescription"
	KeyShowAlias       = "tabgroups.showAlias"
	KeyLastDelete      = "tabgroups.lastDelete"
)

// ViewSettings are the three display toggles persisted next to the tree.
type ViewSettings struct {
	CollapseAll     bool `json:"collapse_all" yaml:"collapse_all"`
	ShowDescription bool `json:"show_description" yaml:"show_description"`
	ShowAlias       bool `json:"show_alias" yaml:"show_alias"`
}

// DefaultViewSettings shows descriptions and aliases with everything expanded.
func DefaultViewSettings() ViewSettings {
	return ViewSettings{ShowDescription: true, ShowAlias: true}
}

// ViewSetting pairs a persisted key with the field it controls.
type ViewSetting struct {
	Key   string
	Value *bool
}

// Fields lists every toggle with its key, in persistence order.
func (v *ViewSettings) Fields() []ViewSetting {
	return []ViewSetting{
		{Key: KeyCollapseAll, Value: &v.CollapseAll},
		{Key: KeyShowDescription, Value: &v.ShowDescription},
		{Key: KeyShowAlias, Value: &v.ShowAlias},
	}
}

// FormatBool is the persisted form of a toggle.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// ParseBool reads a persisted toggle, keeping fallback for unreadable values.
func ParseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}
