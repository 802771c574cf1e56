package services

const QuestionsPerPage = 10

// Paginate returns the page-th window of QuestionsPerPage items, pages
// counted from 1. Pages outside the sequence come back empty, never nil.
func Paginate[T any](page int, items []T) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	// compare page counts before multiplying so huge pages cannot overflow
	if page < 1 || page-1 >= pages {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))

	return items[start:end]
}
