// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Columns is the fixed output column order for skill tables.
var Columns = []string{"app", "value", "EG", "number", "description", "image_path"}

// SkillRecord is one enumerated skill recovered from a content page.
type SkillRecord struct {
	// Apparatus is the event named by the most recent header page. Empty when
	// no header page has been seen yet.
	Apparatus string

	// Value is the difficulty indicator: a rank letter, a vault value, or the
	// column label of the cell as a fallback.
	Value string

	// ElementGroup is the page's decoded element group (1-5).
	ElementGroup Optional[int]

	// Number is the skill's sequence id, absent when the cell has none.
	Number Optional[int]

	// Description is the skill name assembled from italic and bold runs.
	Description string

	// ImagePath is the reference of the cell's illustration, or empty.
	ImagePath string
}

// Row renders the record in Columns order.
func (r SkillRecord) Row() []string {
	return []string{
		r.Apparatus,
		r.Value,
		IntString(r.ElementGroup),
		IntString(r.Number),
		r.Description,
		r.ImagePath,
	}
}

// SkillRow is the serializable form of a SkillRecord, keyed like the table
// columns. Absent optionals are nil.
type SkillRow struct {
	App         string `json:"app" yaml:"app"`
	Value       string `json:"value" yaml:"value"`
	EG          *int   `json:"EG" yaml:"EG"`
	Number      *int   `json:"number" yaml:"number"`
	Description string `json:"description" yaml:"description"`
	ImagePath   string `json:"image_path" yaml:"image_path"`
}

// ToRow converts the record into its serializable form.
func (r SkillRecord) ToRow() SkillRow {
	row := SkillRow{
		App:         r.Apparatus,
		Value:       r.Value,
		Description: r.Description,
		ImagePath:   r.ImagePath,
	}
	if v, ok := r.ElementGroup.Get(); ok {
		row.EG = &v
	}
	if v, ok := r.Number.Get(); ok {
		row.Number = &v
	}
	return row
}
