package models

type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"size:100;not null;unique" json:"type"`
}

// CategoryMap renders categories the way the listing endpoints expose them: id -> type.
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
