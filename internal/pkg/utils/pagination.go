package utils

const (
	DefaultPageSize = 10
	MaxPageSize     = 200
)

// Page is a normalized page/page_size pair.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps page to >= 1 and size to [1, MaxPageSize], defaulting to DefaultPageSize.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns at least 1 so an empty listing still reports a single page.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}
