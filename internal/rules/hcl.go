package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig mirrors Config's fields with hcl tags, matching
// internal/server/config.go's gohcl struct-tag pattern from the teacher.
type fileConfig struct {
	HitSoft17              bool    `hcl:"hit_soft_17,optional"`
	DealerPeeks            bool    `hcl:"dealer_peeks,optional"`
	DoubleAfterSplit       bool    `hcl:"double_after_split,optional"`
	HitAfterSplitAces      bool    `hcl:"hit_after_split_aces,optional"`
	BlackjackWithSplitAces bool    `hcl:"blackjack_with_split_aces,optional"`
	SplitUneven            bool    `hcl:"split_uneven,optional"`
	BlackjackPayout        float64 `hcl:"blackjack_payout,optional"`
	ShoeSize               int     `hcl:"shoe_size,optional"`
}

// LoadFile parses an HCL rule-variation file into a Config, starting from
// Vegas Strip defaults for any field the file omits, and validates the
// result before returning it.
func LoadFile(path string) (Config, error) {
	base := VegasStrip()

	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("rules: reading %s: %w", path, err)
	}

	fc := fileConfig{
		HitSoft17:             base.HitSoft17,
		DealerPeeks:            base.DealerPeeks,
		DoubleAfterSplit:       base.DoubleAfterSplit,
		HitAfterSplitAces:      base.HitAfterSplitAces,
		BlackjackWithSplitAces: base.BlackjackWithSplitAces,
		SplitUneven:            base.SplitUneven,
		BlackjackPayout:        base.BlackjackPayout,
		ShoeSize:               base.ShoeSize,
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("rules: parsing %s: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &fc); diags.HasErrors() {
		return Config{}, fmt.Errorf("rules: decoding %s: %w", path, diags)
	}

	cfg := Config{
		HitSoft17:              fc.HitSoft17,
		DealerPeeks:            fc.DealerPeeks,
		DoubleAfterSplit:       fc.DoubleAfterSplit,
		HitAfterSplitAces:      fc.HitAfterSplitAces,
		BlackjackWithSplitAces: fc.BlackjackWithSplitAces,
		SplitUneven:            fc.SplitUneven,
		BlackjackPayout:        fc.BlackjackPayout,
		ShoeSize:               fc.ShoeSize,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
