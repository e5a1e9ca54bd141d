package ada

// KnowledgeSource is the named container articles are attached to.
type KnowledgeSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is the destination record the bulk endpoint accepts.  TagIDs is
// always present (empty, not null) on the wire.
type Article struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Content           string   `json:"content"`
	KnowledgeSourceID string   `json:"knowledge_source_id"`
	URL               string   `json:"url"`
	TagIDs            []string `json:"tag_ids"`
	Language          string   `json:"language"`
}
