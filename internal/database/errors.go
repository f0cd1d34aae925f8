package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrUnavailable = errors.New("database unavailable")
	ErrNotFound    = errors.New("row not found")
	ErrConstraint  = errors.New("constraint violation")
)

// MySQL server error numbers reported for integrity failures.
const (
	mysqlErrBadNull          = 1048
	mysqlErrDupEntry         = 1062
	mysqlErrNoReferencedRow  = 1216
	mysqlErrRowIsReferenced  = 1217
	mysqlErrNoDefault        = 1364
	mysqlErrRowIsReferenced2 = 1451
	mysqlErrNoReferencedRow2 = 1452
)

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrBadNull, mysqlErrDupEntry, mysqlErrNoReferencedRow, mysqlErrRowIsReferenced,
			mysqlErrNoDefault, mysqlErrRowIsReferenced2, mysqlErrNoReferencedRow2:
			return fmt.Errorf("%w: %w", ErrConstraint, err)
		}
	}

	return err
}
