package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (ChangeLogEntry{}).TableName(); got != "change_log" {
		t.Fatalf("unexpected ChangeLogEntry table name: %s", got)
	}
}
