package match

// Config holds the reconciliation settings exposed through the application
// configuration. Offsets default to the layout of the legacy fabric sheets.
type Config struct {
	// KeyColA is the first composite-key column (zero-based).
	KeyColA int `mapstructure:"key_col_a" default:"0"`
	// KeyColB is the second composite-key column.
	KeyColB int `mapstructure:"key_col_b" default:"3"`
	// OutputCol is the column the resolved value is written to.
	OutputCol int `mapstructure:"output_col" default:"4"`
	// NumericCol is the column targeted by numeric coercion.
	NumericCol int `mapstructure:"numeric_col" default:"7"`
	// CoerceNumeric enables best-effort numeric recovery of NumericCol.
	CoerceNumeric bool `mapstructure:"coerce_numeric" default:"true"`
	// MatchEmptyKey allows an all-empty composite key to resolve against an
	// empty-string index entry. Enabled by default: the legacy sheets probe
	// the index with empty keys like any other.
	MatchEmptyKey bool `mapstructure:"match_empty_key" default:"true"`
	// SheetName is the name of the exported sheet.
	SheetName string `mapstructure:"sheet_name" default:"Result"`
	// PreviewRows caps the number of rows returned in JSON previews.
	PreviewRows int `mapstructure:"preview_rows" default:"100"`
}

// Columns returns the column layout described by the configuration.
func (c Config) Columns() Columns {
	return Columns{KeyA: c.KeyColA, KeyB: c.KeyColB, Output: c.OutputCol, Numeric: c.NumericCol}
}

// Options returns engine options described by the configuration.
func (c Config) Options() Options {
	return Options{Columns: c.Columns(), MatchEmptyKey: c.MatchEmptyKey}
}
