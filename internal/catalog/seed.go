package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"sentence-engine/internal/model"
)

// Dataset is the YAML seed file layout: the offence catalog plus the
// sentencing matrix rows keyed by offence id.
type Dataset struct {
	Offences        []model.OffenceRecord `yaml:"offences"`
	SentencingMatrix []MatrixSeedRow      `yaml:"sentencing_matrix"`
}

// MatrixSeedRow is one sentencing-matrix row in the seed file.
type MatrixSeedRow struct {
	OffenceID         string `yaml:"offence_id"`
	Culpability       string `yaml:"culpability"`
	Harm              string `yaml:"harm"`
	StartingPointText string `yaml:"starting_point_text"`
	CategoryRangeText string `yaml:"category_range_text"`
}

// SeedCounts reports how many rows a seed run wrote.
type SeedCounts struct {
	Offences   int
	MatrixRows int
}

// SeedFromFile loads a YAML dataset and upserts it into the catalog in one
// transaction. Matrix rows for a seeded offence are replaced, not appended, so
// re-seeding is idempotent.
func (s *Store) SeedFromFile(ctx context.Context, path string) (SeedCounts, error) {
	var counts SeedCounts

	raw, err := os.ReadFile(path)
	if err != nil {
		return counts, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var dataset Dataset
	if err := yaml.Unmarshal(raw, &dataset); err != nil {
		return counts, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, o := range dataset.Offences {
		if o.OffenceID == "" || o.CanonicalName == "" {
			return counts, fmt.Errorf("dataset offence missing offence_id or canonical_name: %+v", o)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO offence_catalog (`+offenceColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(offence_id) DO UPDATE SET
				canonical_name=excluded.canonical_name,
				short_name=excluded.short_name,
				offence_category=excluded.offence_category,
				provision=excluded.provision,
				guideline_url=excluded.guideline_url,
				legislation_url=excluded.legislation_url,
				maximum_sentence_type=excluded.maximum_sentence_type,
				maximum_sentence_amount=excluded.maximum_sentence_amount,
				minimum_sentence_code=excluded.minimum_sentence_code,
				specified_violent=excluded.specified_violent,
				specified_sexual=excluded.specified_sexual,
				specified_terrorist=excluded.specified_terrorist,
				listed_offence=excluded.listed_offence,
				schedule18a_offence=excluded.schedule18a_offence,
				schedule19za=excluded.schedule19za,
				cta_notification=excluded.cta_notification`,
			o.OffenceID, o.CanonicalName, o.ShortName, o.OffenceCategory, o.Provision,
			o.GuidelineURL, o.LegislationURL, o.MaximumSentenceType, o.MaximumSentenceAmount,
			o.MinimumSentenceCode, o.SpecifiedViolent, o.SpecifiedSexual, o.SpecifiedTerrorist,
			o.ListedOffence, o.Schedule18AOffence, o.Schedule19ZA, o.CTANotification,
		)
		if err != nil {
			return counts, fmt.Errorf("failed to upsert offence %s: %w", o.OffenceID, err)
		}
		counts.Offences++

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM sentencing_matrix WHERE offence_id = ?`, o.OffenceID); err != nil {
			return counts, fmt.Errorf("failed to clear matrix rows for %s: %w", o.OffenceID, err)
		}
	}

	for _, r := range dataset.SentencingMatrix {
		if r.OffenceID == "" {
			return counts, fmt.Errorf("dataset matrix row missing offence_id: %+v", r)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sentencing_matrix (offence_id, culpability, harm, starting_point_text, category_range_text)
			 VALUES (?, ?, ?, ?, ?)`,
			r.OffenceID, r.Culpability, r.Harm, r.StartingPointText, r.CategoryRangeText)
		if err != nil {
			return counts, fmt.Errorf("failed to insert matrix row for %s: %w", r.OffenceID, err)
		}
		counts.MatrixRows++
	}

	if err := tx.Commit(); err != nil {
		return counts, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return counts, nil
}
