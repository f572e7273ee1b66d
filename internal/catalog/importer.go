package catalog

import (
	"context"
	"fmt"

	"souled-store/internal/model"
	"souled-store/internal/repository"

	"github.com/rs/zerolog"
)

// Importer loads catalogue records from a source and upserts them into the
// products table. The API itself never writes to the catalogue; imports
// are the external management path.
type Importer struct {
	loader      Loader
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewImporter creates a new catalogue importer.
func NewImporter(loader Loader, productRepo repository.ProductRepository, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:      loader,
		productRepo: productRepo,
		logger:      logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Run loads the source and upserts every valid record. Invalid records
// abort the import before anything is written.
func (i *Importer) Run(ctx context.Context, source string) (int, error) {
	products, err := i.loader.Load(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("catalogue load failed: %w", err)
	}

	for _, p := range products {
		if err := validateRecord(p); err != nil {
			i.logger.Error().Err(err).Int64("product_id", p.ID).Msg("invalid catalogue record")
			return 0, fmt.Errorf("invalid catalogue record: %w", err)
		}
	}

	count, err := i.productRepo.UpsertMany(ctx, products)
	if err != nil {
		return count, fmt.Errorf("catalogue upsert failed: %w", err)
	}

	i.logger.Info().
		Str("source", source).
		Int("count", count).
		Msg("catalogue import completed")

	return count, nil
}

// validateRecord checks the invariants a catalogue record must satisfy
// before it may enter the products table.
func validateRecord(p model.Product) error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("product %d has no name", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d has negative price %d", p.ID, p.Price)
	}
	if p.Category == "" {
		return fmt.Errorf("product %d has no category", p.ID)
	}
	return nil
}
