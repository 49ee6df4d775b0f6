// Package store is the persistence engine for the catalog. Each logical
// entry is a group of rows across four tables; the group operations here
// keep them consistent by running every multi-row sequence inside a single
// transaction.
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bibtui/internal/catalog"
	"bibtui/internal/logging/events"
)

var (
	// ErrUnknownKind reports an entry kind other than BOOK or ARTICLE.
	ErrUnknownKind = errors.New("store: unknown entry kind")
	// ErrNotFound reports a cite key with no matching entry row.
	ErrNotFound = errors.New("store: no entry with that cite key")
)

// Store issues all reads and writes against the catalog database. It is the
// only component that mutates rows.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path. The schema must already
// exist (see cmd/initdb); Open performs no migration.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// New wraps an existing gorm handle. Used by tests that migrate their own
// temporary database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateEntry mints a new entry group from a positional form vector: a
// master entry, the book or article row, and fresh publisher and month/year
// rows. All four inserts run in one transaction; a failure rolls the group
// back. Returns the new cite key.
func (s *Store) CreateEntry(kind string, form []string) (string, error) {
	switch kind {
	case catalog.KindBook:
		return s.createBook(form)
	case catalog.KindArticle:
		return s.createArticle(form)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (s *Store) createBook(form []string) (string, error) {
	fields, err := catalog.BookFieldsFromForm(form)
	if err != nil {
		return "", err
	}
	master := catalog.NewMasterEntry(catalog.KindBook)
	publisher := catalog.NewPublisher(fields.Publisher)
	monthYear := catalog.NewMonthYear(fields.Year)
	book := catalog.NewBook(master.CiteKey, publisher.PublisherID, monthYear.MonthYearID, fields)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&master).Error; err != nil {
			return err
		}
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		if err := tx.Create(&publisher).Error; err != nil {
			return err
		}
		return tx.Create(&monthYear).Error
	})
	if err != nil {
		events.Store.Error("create", err)
		return "", fmt.Errorf("create book: %w", err)
	}
	events.Store.Created(catalog.KindBook, master.CiteKey)
	return master.CiteKey, nil
}

func (s *Store) createArticle(form []string) (string, error) {
	fields, err := catalog.ArticleFieldsFromForm(form)
	if err != nil {
		return "", err
	}
	master := catalog.NewMasterEntry(catalog.KindArticle)
	publisher := catalog.NewPublisher(fields.Publisher)
	monthYear := catalog.NewMonthYear(fields.Year)
	article := catalog.NewArticle(master.CiteKey, publisher.PublisherID, monthYear.MonthYearID, fields)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&master).Error; err != nil {
			return err
		}
		if err := tx.Create(&article).Error; err != nil {
			return err
		}
		if err := tx.Create(&publisher).Error; err != nil {
			return err
		}
		return tx.Create(&monthYear).Error
	})
	if err != nil {
		events.Store.Error("create", err)
		return "", fmt.Errorf("create article: %w", err)
	}
	events.Store.Created(catalog.KindArticle, master.CiteKey)
	return master.CiteKey, nil
}

// UpdateEntry rewrites the entry row's non-key columns in place, matched by
// cite key. The publisher and month/year rows created with the entry are
// left as they are and go stale; nothing reclaims them.
func (s *Store) UpdateEntry(kind, citeKey string, form []string) error {
	var (
		columns map[string]interface{}
		model   interface{}
	)
	switch kind {
	case catalog.KindBook:
		fields, err := catalog.BookFieldsFromForm(form)
		if err != nil {
			return err
		}
		model = &catalog.Book{}
		columns = map[string]interface{}{
			"author":    fields.Author,
			"title":     fields.Title,
			"pages":     fields.Pages,
			"volume":    fields.Volume,
			"edition":   fields.Edition,
			"year":      fields.Year,
			"series":    fields.Series,
			"publisher": fields.Publisher,
			"note":      fields.Note,
		}
	case catalog.KindArticle:
		fields, err := catalog.ArticleFieldsFromForm(form)
		if err != nil {
			return err
		}
		model = &catalog.Article{}
		columns = map[string]interface{}{
			"title":     fields.Title,
			"journal":   fields.Journal,
			"volume":    fields.Volume,
			"pages":     fields.Pages,
			"note":      fields.Note,
			"year":      fields.Year,
			"edition":   fields.Edition,
			"publisher": fields.Publisher,
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	res := s.db.Model(model).Where("cite_key = ?", citeKey).Updates(columns)
	if res.Error != nil {
		events.Store.Error("update", res.Error)
		return fmt.Errorf("update %s: %w", kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	events.Store.Updated(kind, citeKey)
	return nil
}

// DeleteEntry removes the master entry and entry rows matching the cite key
// in one transaction. The publisher and month/year rows remain in the store
// permanently.
func (s *Store) DeleteEntry(kind, citeKey string) error {
	var model interface{}
	switch kind {
	case catalog.KindBook:
		model = &catalog.Book{}
	case catalog.KindArticle:
		model = &catalog.Article{}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("cite_key = ?", citeKey).Delete(model)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("cite_key = ?", citeKey).Delete(&catalog.MasterEntry{}).Error
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			events.Store.Error("delete", err)
			return fmt.Errorf("delete %s: %w", kind, err)
		}
		return err
	}
	events.Store.Deleted(kind, citeKey)
	return nil
}

// EntryFields fetches the entry row matching the cite key and returns its
// editable fields in form order, ready to load into an edit form and feed
// back into UpdateEntry.
func (s *Store) EntryFields(kind, citeKey string) ([]string, error) {
	switch kind {
	case catalog.KindBook:
		var book catalog.Book
		if err := s.first(&book, citeKey); err != nil {
			return nil, err
		}
		return book.Fields().Slice(), nil
	case catalog.KindArticle:
		var article catalog.Article
		if err := s.first(&article, citeKey); err != nil {
			return nil, err
		}
		return article.Fields().Slice(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (s *Store) first(dest interface{}, citeKey string) error {
	err := s.db.Where("cite_key = ?", citeKey).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Books returns every book row. No ORDER BY is issued; callers must not
// assume a stable order beyond what sqlite yields for an unmodified table.
func (s *Store) Books() ([]catalog.Book, error) {
	var books []catalog.Book
	if err := s.db.Find(&books).Error; err != nil {
		events.Store.Error("list", err)
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Articles returns every article row, in storage order.
func (s *Store) Articles() ([]catalog.Article, error) {
	var articles []catalog.Article
	if err := s.db.Find(&articles).Error; err != nil {
		events.Store.Error("list", err)
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}
