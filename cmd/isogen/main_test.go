package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/isocurrency/internal/apperrors"
	"github.com/SscSPs/isocurrency/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const header = "code\tnumeric\tname\tsymbol\texponent\tterritories\tsubunit_symbol\tflags\n"

type RunSuite struct {
	suite.Suite
	dir    string
	logs   *bytes.Buffer
	logger *slog.Logger
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

func (s *RunSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logs, nil))
}

func (s *RunSuite) config(table string) *config.Config {
	path := filepath.Join(s.dir, "isodata.tsv")
	s.Require().NoError(os.WriteFile(path, []byte(header+table), 0o644))
	return &config.Config{
		Table:     path,
		Output:    filepath.Join(s.dir, "isodata.go"),
		Package:   "currency",
		LogLevel:  "info",
		LogFormat: "json",
	}
}

func (s *RunSuite) TestGeneratesOutput() {
	cfg := s.config("EUR\t978\tEuro\t€\t2\tDE;FR\tc\t\nJPY\t392\tYen\t¥\t0\tJP\t\t\n")

	s.Require().NoError(run(cfg, s.logger))

	out, err := os.ReadFile(cfg.Output)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(string(out), "// Code generated by isogen from isodata.tsv; DO NOT EDIT."))
	s.Contains(string(out), "package currency")
	s.Contains(string(out), "const count = 2")
	s.Contains(s.logs.String(), "Generated currency tables")
}

func (s *RunSuite) TestLogsEveryRowError() {
	cfg := s.config("EUR\t978\tEuro\t€\t2\tDE\tc\t\n" +
		"USD\t978\tUS Dollar\t$\t2\tUS\t¢\t\n" +
		"eur\t1\tBad\t\t2\t\t\t\n" +
		"GBP\t826\t\t£\t2\tGB\tp\t\n")
	s.Require().NoError(os.WriteFile(cfg.Output, []byte("previous"), 0o644))

	err := run(cfg, s.logger)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s.logs.String()), "\n") {
		var entry map[string]any
		s.Require().NoError(json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	s.Len(lines, 3)
	for _, entry := range lines {
		s.Equal("ERROR", entry["level"])
		s.Equal("Invalid currency table", entry["msg"])
		s.Equal(cfg.Table, entry["table"])
	}

	out, err := os.ReadFile(cfg.Output)
	s.Require().NoError(err)
	s.Equal("previous", string(out))
}

func (s *RunSuite) TestMissingTable() {
	cfg := s.config("")
	cfg.Table = filepath.Join(s.dir, "missing.tsv")

	err := run(cfg, s.logger)
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
	_, statErr := os.Stat(cfg.Output)
	s.ErrorIs(statErr, os.ErrNotExist)
}

func (s *RunSuite) TestInvalidPackage() {
	cfg := s.config("EUR\t978\tEuro\t€\t2\tDE\tc\t\n")
	cfg.Package = "not-a-package"

	err := run(cfg, s.logger)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(s.logs.String(), "Failed to generate source")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, &config.Config{LogLevel: "warn", LogFormat: "text"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown")

	_, err = newLogger(&buf, &config.Config{LogLevel: "loud"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
