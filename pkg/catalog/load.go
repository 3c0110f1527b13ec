package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Load reads and parses the product catalog document at the given path.
func Load(logger *zap.Logger, path string) (*Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product catalog %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product catalog %s: %w", path, err)
	}

	logger.Info("loaded product catalog",
		zap.String("op", "catalog.Load"),
		zap.String("dataVersion", doc.DataVersion),
		zap.String("asOf", doc.AsOf),
		zap.Int("mutualFunds", len(doc.MutualFunds)),
		zap.Int("fdRates", len(doc.FDRates)),
		zap.Int("termInsurance", len(doc.TermInsurance)),
		zap.Int("healthInsurance", len(doc.HealthInsurance)),
	)

	return doc, nil
}

// Parse decodes a catalog document from a reader and checks structural sanity.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode catalog document: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (doc *Document) validate() error {
	for i, fund := range doc.MutualFunds {
		if fund.ID == "" || fund.Name == "" {
			return fmt.Errorf("mutual fund at index %d is missing id or name", i)
		}
		if fund.ExpenseRatio < 0 {
			return fmt.Errorf("mutual fund %s has negative expense ratio", fund.ID)
		}
	}
	for i, fd := range doc.FDRates {
		if fd.ID == "" || fd.Institution == "" {
			return fmt.Errorf("fd rate at index %d is missing id or institution", i)
		}
		if fd.TenureMinMonths > fd.TenureMaxMonths {
			return fmt.Errorf("fd rate %s has inverted tenure bounds", fd.ID)
		}
	}
	for i, policy := range doc.TermInsurance {
		if policy.ID == "" || policy.Insurer == "" {
			return fmt.Errorf("term insurance at index %d is missing id or insurer", i)
		}
		if policy.MinSumInsured > policy.MaxSumInsured {
			return fmt.Errorf("term insurance %s has inverted sum insured bounds", policy.ID)
		}
	}
	for i, policy := range doc.HealthInsurance {
		if policy.ID == "" || policy.Insurer == "" {
			return fmt.Errorf("health insurance at index %d is missing id or insurer", i)
		}
	}
	return nil
}
