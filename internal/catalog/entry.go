// Package catalog defines the bibliographic record types persisted by the
// store: a master entry per record, the book or article row carrying its
// fields, and the publisher and month/year rows minted alongside it.
package catalog

import "github.com/google/uuid"

// Entry kinds recorded in master_entries.entry_type.
const (
	KindBook    = "BOOK"
	KindArticle = "ARTICLE"
)

// NewID mints an opaque identifier. All primary keys in the catalog are
// random 128-bit tokens stored as text.
func NewID() string {
	return uuid.NewString()
}

// MasterEntry ties a cite key to an entry kind. Every book or article row
// has exactly one master entry with a matching cite key.
type MasterEntry struct {
	CiteKey   string `gorm:"column:cite_key;primaryKey"`
	EntryType string `gorm:"column:entry_type"`
}

func (MasterEntry) TableName() string { return "master_entries" }

// NewMasterEntry creates a master entry of the given kind with a fresh
// cite key.
func NewMasterEntry(kind string) MasterEntry {
	return MasterEntry{CiteKey: NewID(), EntryType: kind}
}

// Book is one row of the book table. Field contents are free text; empty
// strings are legal everywhere.
type Book struct {
	BookID      string `gorm:"column:book_id;primaryKey"`
	CiteKey     string `gorm:"column:cite_key"`
	PublisherID string `gorm:"column:publisher_id"`
	MonthYearID string `gorm:"column:month_year_id"`
	Author      string `gorm:"column:author"`
	Title       string `gorm:"column:title"`
	Pages       string `gorm:"column:pages"`
	Volume      string `gorm:"column:volume"`
	Edition     string `gorm:"column:edition"`
	Year        string `gorm:"column:year"`
	Series      string `gorm:"column:series"`
	Publisher   string `gorm:"column:publisher"`
	Note        string `gorm:"column:note"`
}

func (Book) TableName() string { return "book" }

// NewBook builds a book row from validated form fields and the identifiers
// of its companion rows.
func NewBook(citeKey, publisherID, monthYearID string, f BookFields) Book {
	return Book{
		BookID:      NewID(),
		CiteKey:     citeKey,
		PublisherID: publisherID,
		MonthYearID: monthYearID,
		Author:      f.Author,
		Title:       f.Title,
		Pages:       f.Pages,
		Volume:      f.Volume,
		Edition:     f.Edition,
		Year:        f.Year,
		Series:      f.Series,
		Publisher:   f.Publisher,
		Note:        f.Note,
	}
}

// Article is one row of the article table.
type Article struct {
	CiteKey     string `gorm:"column:cite_key"`
	ArticleID   string `gorm:"column:article_id;primaryKey"`
	PublisherID string `gorm:"column:publisher_id"`
	MonthYearID string `gorm:"column:month_year_id"`
	Title       string `gorm:"column:title"`
	Journal     string `gorm:"column:journal"`
	Volume      string `gorm:"column:volume"`
	Pages       string `gorm:"column:pages"`
	Note        string `gorm:"column:note"`
	Year        string `gorm:"column:year"`
	Edition     string `gorm:"column:edition"`
	Publisher   string `gorm:"column:publisher"`
}

func (Article) TableName() string { return "article" }

// NewArticle builds an article row from validated form fields and the
// identifiers of its companion rows.
func NewArticle(citeKey, publisherID, monthYearID string, f ArticleFields) Article {
	return Article{
		CiteKey:     citeKey,
		ArticleID:   NewID(),
		PublisherID: publisherID,
		MonthYearID: monthYearID,
		Title:       f.Title,
		Journal:     f.Journal,
		Volume:      f.Volume,
		Pages:       f.Pages,
		Note:        f.Note,
		Year:        f.Year,
		Edition:     f.Edition,
		Publisher:   f.Publisher,
	}
}

// Publisher rows are denormalized: a fresh row is minted for every entry
// creation rather than deduplicated by name.
type Publisher struct {
	PublisherID string `gorm:"column:publisher_id;primaryKey"`
	Name        string `gorm:"column:publisher"`
	Address     string `gorm:"column:address"`
}

func (Publisher) TableName() string { return "publisher" }

// NewPublisher creates a publisher row seeded from the form's publisher
// field. The address would come from a lookup by name; until that exists it
// is stored as "n/a".
func NewPublisher(name string) Publisher {
	return Publisher{PublisherID: NewID(), Name: name, Address: "n/a"}
}

// MonthYear rows are minted per entry creation, seeded from the form's year
// field. Year is stored as text, never parsed.
type MonthYear struct {
	MonthYearID string `gorm:"column:month_year_id;primaryKey"`
	Month       string `gorm:"column:month"`
	Year        string `gorm:"column:year"`
}

func (MonthYear) TableName() string { return "month_year" }

// NewMonthYear creates a month/year row for the given year. The form has no
// month field, so the month defaults to "01".
func NewMonthYear(year string) MonthYear {
	return MonthYear{MonthYearID: NewID(), Month: "01", Year: year}
}
