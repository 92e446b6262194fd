package sequence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Counter is one row per entity collection in the sequences table. The
// numeric value is advanced with a single UPDATE so concurrent creators can
// never observe the same value, replacing the scan-max-then-insert scheme
// whose loser depended on the unique index to be rejected.
type Counter struct {
	Name      string `gorm:"primaryKey;column:name"`
	LastValue int64  `gorm:"column:last_value"`
}

func (Counter) TableName() string { return "sequences" }

// Seeder reports the highest already-issued numeric suffix for a collection,
// so sequences deployed over existing data continue where the old generator
// left off. Return 0 when the collection is empty.
type Seeder func(tx *gorm.DB) (int64, error)

type Generator struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

// Next advances the named counter and returns the formatted identifier,
// e.g. Next("countries", "CNT") -> "CNT001".
func (g *Generator) Next(name, prefix string) (string, error) {
	return g.NextSeeded(name, prefix, nil)
}

// NextSeeded is Next with a seed callback used the first time a counter is
// touched. The increment and read-back run in one transaction; the UPDATE
// row lock serializes concurrent callers. Two first-ever uses can race to
// insert the counter row; the loser's unique violation is absorbed by one
// retry, which now finds the winner's row and increments it.
func (g *Generator) NextSeeded(name, prefix string, seed Seeder) (string, error) {
	next, err := g.advance(name, seed)
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		next, err = g.advance(name, nil)
	}
	if err != nil {
		return "", err
	}

	return Format(prefix, next), nil
}

func (g *Generator) advance(name string, seed Seeder) (int64, error) {
	var next int64

	err := g.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Counter{}).
			Where("name = ?", name).
			UpdateColumn("last_value", gorm.Expr("last_value + 1"))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var start int64
			if seed != nil {
				seeded, err := seed(tx)
				if err != nil {
					return fmt.Errorf("seed counter %s: %w", name, err)
				}
				start = seeded
			}

			if err := tx.Create(&Counter{Name: name, LastValue: start + 1}).Error; err != nil {
				return fmt.Errorf("create counter %s: %w", name, err)
			}
		}

		var c Counter
		if err := tx.Where("name = ?", name).First(&c).Error; err != nil {
			return err
		}
		next = c.LastValue
		return nil
	})
	return next, err
}

// Format renders prefix plus a 3-digit zero-padded number. Past 999 the
// width grows to four digits; identifiers are treated as opaque strings by
// every caller so the sequence keeps working.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// ParseSuffix extracts the numeric part of a generated identifier.
func ParseSuffix(id, prefix string) (int64, error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, fmt.Errorf("identifier %q does not carry prefix %q", id, prefix)
	}
	n, err := strconv.ParseInt(id[len(prefix):], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q has a non-numeric suffix: %w", id, err)
	}
	return n, nil
}

// MaxSuffixSeeder builds a Seeder that scans the collection for the highest
// generated identifier, the value the retired scan-max generator would have
// read.
func MaxSuffixSeeder(table, column, prefix string) Seeder {
	return func(tx *gorm.DB) (int64, error) {
		var last string
		err := tx.Table(table).
			Select(column).
			Order(column + " DESC").
			Limit(1).
			Scan(&last).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, nil
			}
			return 0, err
		}
		if last == "" {
			return 0, nil
		}
		return ParseSuffix(last, prefix)
	}
}
