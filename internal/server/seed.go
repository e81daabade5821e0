package server

import "github.com/Ycristian01/book-library-management/internal/book"

// SeedBooks returns a small starter catalog for `bookctl serve --seed`.
func SeedBooks() []book.Book {
	return []book.Book{
		{Title: "Structure and Interpretation of Computer Programs", Author: "Harold Abelson", Year: 1996, ISBN: "9780262510875"},
		{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", Year: 2015, ISBN: "9780134190440"},
		{Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", Year: 2017, ISBN: "9781449373320"},
		{Title: "Operating Systems: Three Easy Pieces", Author: "Remzi Arpaci-Dusseau", Year: 2018, ISBN: "9781985086593"},
		{Title: "Types and Programming Languages", Author: "Benjamin C. Pierce", Year: 2002, ISBN: "9780262162098"},
		{Title: "The Pragmatic Programmer", Author: "David Thomas", Year: 2019, ISBN: "9780135957059"},
		{Title: "Refactoring", Author: "Martin Fowler", Year: 2018, ISBN: "9780134757599"},
	}
}
