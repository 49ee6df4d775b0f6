package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bibtui/internal/catalog"
	"bibtui/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, catalog.Migrate(db))
	return store.New(db), db
}

func rowCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

var bookForm = []string{
	"A. Author", "My Title", "300", "1", "2nd", "2024", "Series X", "Acme Press", "a note",
}

var articleForm = []string{
	"On Things", "J. of Stuff", "12", "45-67", "peer reviewed", "2023", "1st", "Acme Press",
}

func TestCreateBookPersistsFourRows(t *testing.T) {
	st, db := newTestStore(t)

	citeKey, err := st.CreateEntry(catalog.KindBook, bookForm)
	require.NoError(t, err)
	require.NotEmpty(t, citeKey)

	assert.EqualValues(t, 1, rowCount(t, db, &catalog.MasterEntry{}))
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.Book{}))
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.Publisher{}))
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.MonthYear{}))

	var master catalog.MasterEntry
	require.NoError(t, db.First(&master).Error)
	assert.Equal(t, citeKey, master.CiteKey)
	assert.Equal(t, catalog.KindBook, master.EntryType)

	fields, err := st.EntryFields(catalog.KindBook, citeKey)
	require.NoError(t, err)
	assert.Equal(t, bookForm, fields)
}

func TestCreateArticleRoundTrip(t *testing.T) {
	st, db := newTestStore(t)

	citeKey, err := st.CreateEntry(catalog.KindArticle, articleForm)
	require.NoError(t, err)

	fields, err := st.EntryFields(catalog.KindArticle, citeKey)
	require.NoError(t, err)
	assert.Equal(t, articleForm, fields)

	var monthYear catalog.MonthYear
	require.NoError(t, db.First(&monthYear).Error)
	assert.Equal(t, "01", monthYear.Month)
	assert.Equal(t, "2023", monthYear.Year)

	var publisher catalog.Publisher
	require.NoError(t, db.First(&publisher).Error)
	assert.Equal(t, "Acme Press", publisher.Name)
	assert.Equal(t, "n/a", publisher.Address)
}

func TestCreateRejectsWrongFieldCount(t *testing.T) {
	st, db := newTestStore(t)

	_, err := st.CreateEntry(catalog.KindBook, bookForm[:5])
	assert.ErrorIs(t, err, catalog.ErrFieldCount)

	_, err = st.CreateEntry(catalog.KindArticle, append(articleForm, "extra"))
	assert.ErrorIs(t, err, catalog.ErrFieldCount)

	assert.EqualValues(t, 0, rowCount(t, db, &catalog.MasterEntry{}))
}

func TestCreateUnknownKind(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.CreateEntry("THESIS", bookForm)
	assert.ErrorIs(t, err, store.ErrUnknownKind)
}

func TestUpdateRewritesEntryRowOnly(t *testing.T) {
	st, db := newTestStore(t)

	citeKey, err := st.CreateEntry(catalog.KindBook, bookForm)
	require.NoError(t, err)

	updated := []string{
		"B. Editor", "My Title, Revised", "350", "1", "3rd", "2025", "Series X", "New House", "",
	}
	require.NoError(t, st.UpdateEntry(catalog.KindBook, citeKey, updated))

	fields, err := st.EntryFields(catalog.KindBook, citeKey)
	require.NoError(t, err)
	assert.Equal(t, updated, fields)

	books, err := st.Books()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, citeKey, books[0].CiteKey)

	// The companion rows are untouched: no new publisher or month/year
	// rows appear and the originals keep their values.
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.Publisher{}))
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.MonthYear{}))
	var publisher catalog.Publisher
	require.NoError(t, db.First(&publisher).Error)
	assert.Equal(t, "Acme Press", publisher.Name)
}

func TestUpdateMissingCiteKey(t *testing.T) {
	st, _ := newTestStore(t)

	err := st.UpdateEntry(catalog.KindBook, "no-such-key", bookForm)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteOrphansCompanionRows(t *testing.T) {
	st, db := newTestStore(t)

	citeKey, err := st.CreateEntry(catalog.KindBook, bookForm)
	require.NoError(t, err)

	require.NoError(t, st.DeleteEntry(catalog.KindBook, citeKey))

	assert.EqualValues(t, 0, rowCount(t, db, &catalog.MasterEntry{}))
	assert.EqualValues(t, 0, rowCount(t, db, &catalog.Book{}))
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.Publisher{}))
	assert.EqualValues(t, 1, rowCount(t, db, &catalog.MonthYear{}))

	_, err = st.EntryFields(catalog.KindBook, citeKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteMissingCiteKey(t *testing.T) {
	st, _ := newTestStore(t)

	err := st.DeleteEntry(catalog.KindArticle, "no-such-key")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBooksAndArticlesListSeparately(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.CreateEntry(catalog.KindBook, bookForm)
	require.NoError(t, err)
	_, err = st.CreateEntry(catalog.KindArticle, articleForm)
	require.NoError(t, err)

	books, err := st.Books()
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "My Title", books[0].Title)

	articles, err := st.Articles()
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, "On Things", articles[0].Title)
}

func TestEmptyOptionalFieldsAreLegal(t *testing.T) {
	st, _ := newTestStore(t)

	form := []string{"A. Author", "Sparse", "10", "", "", "1999", "", "Nobody", ""}
	citeKey, err := st.CreateEntry(catalog.KindBook, form)
	require.NoError(t, err)

	fields, err := st.EntryFields(catalog.KindBook, citeKey)
	require.NoError(t, err)
	assert.Equal(t, form, fields)
}
