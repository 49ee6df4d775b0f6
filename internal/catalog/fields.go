package catalog

import (
	"errors"
	"fmt"
)

// ErrFieldCount reports a form vector whose length does not match the
// entry's field list.
var ErrFieldCount = errors.New("catalog: wrong number of form fields")

// FormField describes one line of an entry form.
type FormField struct {
	Label    string
	Required bool
}

// BookForm lists the book form fields in entry order. The order is load
// bearing: form vectors, EntryFields results, and the edit screen all use it.
var BookForm = []FormField{
	{Label: "Author", Required: true},
	{Label: "Title", Required: true},
	{Label: "Pages", Required: true},
	{Label: "Volume"},
	{Label: "Edition"},
	{Label: "Year", Required: true},
	{Label: "Series"},
	{Label: "Publisher", Required: true},
	{Label: "Note"},
}

// ArticleForm lists the article form fields in entry order.
var ArticleForm = []FormField{
	{Label: "Title", Required: true},
	{Label: "Journal", Required: true},
	{Label: "Volume", Required: true},
	{Label: "Pages"},
	{Label: "Note"},
	{Label: "Year", Required: true},
	{Label: "Edition"},
	{Label: "Publisher", Required: true},
}

// BookFields names the editable columns of a book row in form order.
type BookFields struct {
	Author    string
	Title     string
	Pages     string
	Volume    string
	Edition   string
	Year      string
	Series    string
	Publisher string
	Note      string
}

// BookFieldsFromForm converts a positional form vector into named fields.
// The vector must hold exactly len(BookForm) values.
func BookFieldsFromForm(form []string) (BookFields, error) {
	if len(form) != len(BookForm) {
		return BookFields{}, fmt.Errorf("%w: book form needs %d values, got %d", ErrFieldCount, len(BookForm), len(form))
	}
	return BookFields{
		Author:    form[0],
		Title:     form[1],
		Pages:     form[2],
		Volume:    form[3],
		Edition:   form[4],
		Year:      form[5],
		Series:    form[6],
		Publisher: form[7],
		Note:      form[8],
	}, nil
}

// Slice returns the fields as a positional vector in form order.
func (f BookFields) Slice() []string {
	return []string{f.Author, f.Title, f.Pages, f.Volume, f.Edition, f.Year, f.Series, f.Publisher, f.Note}
}

// Fields returns the editable columns of the book in form order.
func (b Book) Fields() BookFields {
	return BookFields{
		Author:    b.Author,
		Title:     b.Title,
		Pages:     b.Pages,
		Volume:    b.Volume,
		Edition:   b.Edition,
		Year:      b.Year,
		Series:    b.Series,
		Publisher: b.Publisher,
		Note:      b.Note,
	}
}

// ArticleFields names the editable columns of an article row in form order.
type ArticleFields struct {
	Title     string
	Journal   string
	Volume    string
	Pages     string
	Note      string
	Year      string
	Edition   string
	Publisher string
}

// ArticleFieldsFromForm converts a positional form vector into named fields.
// The vector must hold exactly len(ArticleForm) values.
func ArticleFieldsFromForm(form []string) (ArticleFields, error) {
	if len(form) != len(ArticleForm) {
		return ArticleFields{}, fmt.Errorf("%w: article form needs %d values, got %d", ErrFieldCount, len(ArticleForm), len(form))
	}
	return ArticleFields{
		Title:     form[0],
		Journal:   form[1],
		Volume:    form[2],
		Pages:     form[3],
		Note:      form[4],
		Year:      form[5],
		Edition:   form[6],
		Publisher: form[7],
	}, nil
}

// Slice returns the fields as a positional vector in form order.
func (f ArticleFields) Slice() []string {
	return []string{f.Title, f.Journal, f.Volume, f.Pages, f.Note, f.Year, f.Edition, f.Publisher}
}

// Fields returns the editable columns of the article in form order.
func (a Article) Fields() ArticleFields {
	return ArticleFields{
		Title:     a.Title,
		Journal:   a.Journal,
		Volume:    a.Volume,
		Pages:     a.Pages,
		Note:      a.Note,
		Year:      a.Year,
		Edition:   a.Edition,
		Publisher: a.Publisher,
	}
}
