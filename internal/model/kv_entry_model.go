package model

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one persisted collection: the key names the collection and Value
// holds the whole JSON list.
type KVEntry struct {
	Key       string         `gorm:"column:entry_key;type:varchar(255);primaryKey"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
