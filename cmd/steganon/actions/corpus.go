// Copyright 2026 The Steganon Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/engine"
	"github.com/steganon/steganon/journal/sqlite"
	"github.com/steganon/steganon/utils"
)

// CorpusCommand sweeps a directory of cover images, hiding or extracting the
// same seed chain's payload against every one and logging each attempt to
// the sqlite corpus ledger, then prints a tablewriter summary.
var CorpusCommand = &cli.Command{
	Name:      "corpus",
	Usage:     "batch hide or extract over a directory of cover images",
	ArgsUsage: "<directory>",
	Flags: []cli.Flag{
		SeedFlag,
		RawSeedFlag,
		VaultAddrFlag,
		&cli.StringFlag{Name: "op", Usage: "operation to run: hide or extract", Value: "extract"},
		&cli.StringFlag{Name: "in", Usage: "payload file for --op hide (default: stdin)"},
		&cli.StringFlag{Name: "ledger", Usage: "sqlite ledger path", Value: "corpus.db"},
	},
	Action: corpusAction,
}

func corpusAction(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return fail(ExitInvalidParameter, "a directory is required")
	}
	op := c.String("op")
	if op != "hide" && op != "extract" {
		return fail(ExitInvalidParameter, "--op must be hide or extract")
	}

	seeds, err := resolveSeeds(c.String("vault-addr"), c.StringSlice("seed"))
	if err != nil {
		return err
	}

	var payload []byte
	if op == "hide" {
		payload, err = readPayload(c.String("in"))
		if err != nil {
			return fail(ExitIOFailed, "reading payload: %v", err)
		}
	}

	ledger, err := sqlite.Open(c.String("ledger"))
	if err != nil {
		return fail(ExitIOFailed, "opening ledger: %v", err)
	}
	defer ledger.Close()

	chFP, err := chainHash(seeds)
	if err != nil {
		return fail(ExitOperationFailed, "hashing chain: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fail(ExitIOFailed, "reading %s: %v", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		imgPath := filepath.Join(dir, e.Name())
		row := runOne(imgPath, op, seeds, payload, c.Bool("raw-seed"), chFP)
		if err := ledger.Insert(row); err != nil {
			log.Warn().Err(err).Str("path", imgPath).Msg("failed to record corpus row")
		}
	}

	report, err := ledger.Report()
	if err != nil {
		return fail(ExitOperationFailed, "reading ledger report: %v", err)
	}

	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"path", "level", "op", "bytes", "status", "detail"})
	for _, r := range report {
		table.Append([]string{r.Path, utils.IntToString(r.Level), r.Operation, utils.IntToString(r.Bytes), r.Status, r.Detail})
	}
	table.Render()

	return nil
}

func runOne(imgPath, op string, seeds [][]byte, payload []byte, useRawSeed bool, chFP string) sqlite.Row {
	row := sqlite.Row{
		Path:      imgPath,
		ChainHash: chFP,
		Operation: op,
		CreatedAt: time.Now(),
	}

	codec, img, raw, err := readImage(imgPath)
	if err != nil {
		row.Status, row.Detail = "error", err.Error()
		return row
	}
	if fp, fErr := imageFingerprint(raw); fErr == nil {
		row.Fingerprint = fp
	}

	eng, err := engine.New(img, seeds, useRawSeed)
	if err != nil {
		row.Status, row.Detail = "error", err.Error()
		return row
	}
	row.Level = eng.Level()

	if op == "hide" {
		if err := eng.Hide(payload); err != nil {
			row.Status, row.Detail = "error", err.Error()
			return row
		}
		var buf bytes.Buffer
		if err := codec.Encode(&buf, img); err != nil {
			row.Status, row.Detail = "error", err.Error()
			return row
		}
		if err := os.WriteFile(imgPath, buf.Bytes(), 0o644); err != nil {
			row.Status, row.Detail = "error", err.Error()
			return row
		}
		row.Bytes = len(payload)
		row.Status = "ok"
		return row
	}

	got, err := eng.Extract()
	if err != nil {
		row.Status, row.Detail = "error", err.Error()
		return row
	}
	row.Bytes = len(got)
	row.Status = "ok"
	return row
}
