package dbx

import "strings"

// SQLiteDSN turns a database file path into a modernc.org/sqlite DSN with the
// pragmas the ledgers rely on: enforced foreign keys, WAL so several
// processes can share the file, a busy timeout instead of failing fast on a
// held lock, and BEGIN IMMEDIATE so a transaction takes the write lock
// before its first read. A value that already carries a query string is
// returned unchanged.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate"
}
