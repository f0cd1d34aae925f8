package database

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"loja-service/internal/config"
)

const tlsConfigName = "loja"

// DSN builds the driver DSN for cfg. clientFoundRows is always on so that an
// UPDATE reports matched rows rather than changed rows.
func DSN(cfg config.DBConfig) (string, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ClientFoundRows = true

	if cfg.SSLCA != "" {
		if err := registerTLS(cfg.SSLCA); err != nil {
			return "", err
		}
		mc.TLSConfig = tlsConfigName
	}

	return mc.FormatDSN(), nil
}

func registerTLS(caPath string) error {
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return fmt.Errorf("failed to read CA certificate %s: %w", caPath, err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return fmt.Errorf("no certificates found in %s", caPath)
	}
	return mysql.RegisterTLSConfig(tlsConfigName, &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	})
}

// Open connects to MySQL, retrying the initial ping cfg.ConnectRetries times.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	retries := max(cfg.ConnectRetries, 1)
	for i := 0; i < retries; i++ {
		if err = db.Ping(); err == nil {
			log.Info().Str("db", cfg.Name).Str("host", cfg.Host).Msg("connected to database")
			return db, nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Str("db", cfg.Name).Msg("failed to connect to database")
		if i < retries-1 {
			time.Sleep(3 * time.Second)
		}
	}
	db.Close()
	return nil, fmt.Errorf("%w: %s at %s:%d after %d attempts: %v", ErrUnavailable, cfg.Name, cfg.Host, cfg.Port, retries, err)
}
