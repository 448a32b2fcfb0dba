package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL error 1062: duplicate entry for a unique key. Uniqueness of
// emails, usernames and relation pairs is enforced by the database, not
// by check-then-act logic here.
const dupEntryNumber = 1062

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == dupEntryNumber
}
