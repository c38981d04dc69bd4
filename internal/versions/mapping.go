package versions

import (
	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "versions", "v").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("filename", "Filename").
	Project("storage_key", "StorageKey").
	Project("sequence", "Sequence").
	Project("page_count", "PageCount").
	Project("comment", "Comment").
	Project("created_at", "CreatedAt")

var bySequence = query.SortField{Field: "Sequence"}

func scanVersion(s repository.Scanner) (Version, error) {
	var v Version
	err := s.Scan(
		&v.ID,
		&v.DocumentID,
		&v.Filename,
		&v.StorageKey,
		&v.Sequence,
		&v.PageCount,
		&v.Comment,
		&v.CreatedAt,
	)
	return v, err
}
