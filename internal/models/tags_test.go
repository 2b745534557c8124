package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList{"go", "web"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["go","web"]`, v)

	// nil 列表落库为空数组而不是 NULL
	v, err = StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList
	assert.NoError(t, l.Scan(`["a","b"]`))
	assert.Equal(t, StringList{"a", "b"}, l)

	assert.NoError(t, l.Scan([]byte(`["c"]`)))
	assert.Equal(t, StringList{"c"}, l)

	assert.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
}

func TestStringList_RoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&Pin{}))

	pin := &Pin{Title: "t", Content: "c", AuthorID: 1, Tags: StringList{"go", "数据库"}, Status: PinStatusActive}
	assert.NoError(t, db.Create(pin).Error)

	var saved Pin
	assert.NoError(t, db.First(&saved, pin.ID).Error)
	assert.Equal(t, StringList{"go", "数据库"}, saved.Tags)

	empty := &Pin{Title: "t2", Content: "c", AuthorID: 1, Status: PinStatusActive}
	assert.NoError(t, db.Create(empty).Error)
	assert.NoError(t, db.First(&saved, empty.ID).Error)
	assert.Equal(t, StringList{}, saved.Tags)
}
