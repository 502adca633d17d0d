package models

// Tag is a tag name with the number of live posts carrying it.
type Tag struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
