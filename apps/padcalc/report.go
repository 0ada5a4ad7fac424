//
// report.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/markkurossi/tabulate"

	"github.com/markkurossi/shapad/digest"
	"github.com/markkurossi/shapad/padding"
)

// Record is the report for one message.
type Record struct {
	Name      string   `json:"name"`
	Length    uint64   `json:"length"`
	BitLength uint64   `json:"bit_length"`
	Filler    int      `json:"filler"`
	Padding   int      `json:"padding"`
	Total     uint64   `json:"total"`
	Blocks    uint64   `json:"blocks"`
	Padded    []string `json:"padded,omitempty"`
	Digest    string   `json:"digest,omitempty"`

	layout padding.Layout
}

func process(logger *slog.Logger, opts options, msg message) (*Record, error) {
	layout, err := padding.LayoutOf(msg.length)
	if err != nil {
		return nil, err
	}
	rec := &Record{
		Name:      msg.name,
		Length:    layout.Length,
		BitLength: layout.BitLength,
		Filler:    layout.Filler,
		Padding:   layout.Size(),
		Total:     layout.Total,
		Blocks:    layout.NumBlocks(),
		layout:    layout,
	}
	if msg.lengthOnly {
		return rec, nil
	}

	padded, err := padding.Pad(msg.data)
	if err != nil {
		return nil, err
	}
	check, err := padding.Inspect(padded)
	if err != nil {
		return nil, err
	}
	if check != layout {
		return nil, fmt.Errorf("padded message layout %v, expected %v",
			check, layout)
	}
	logger.Debug("padded message", "name", msg.name, "layout", layout)

	if opts.hex {
		blocks, err := padding.Blocks(padded)
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			rec.Padded = append(rec.Padded, hex.EncodeToString(block))
		}
	}
	if opts.digest {
		sum, err := digest.SHA256{}.Digest(msg.data)
		if err != nil {
			return nil, err
		}
		rec.Digest = digest.Format(sum)
	}

	return rec, nil
}

func printJSON(w io.Writer, rec *Record) error {
	return json.NewEncoder(w).Encode(rec)
}

func printTable(w io.Writer, rec *Record) error {
	fmt.Fprintf(w, "%s: %d bytes, %d bits, %d block(s)\n",
		rec.Name, rec.Length, rec.BitLength, rec.Blocks)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Offset").SetAlign(tabulate.MR)
	tab.Header("Length").SetAlign(tabulate.MR)
	tab.Header("Content").SetAlign(tabulate.ML)

	layout := rec.layout

	row := tab.Row()
	row.Column("0")
	row.Column(fmt.Sprintf("%d", layout.Length))
	row.Column("message")

	row = tab.Row()
	row.Column(fmt.Sprintf("%d", layout.MarkerOffset()))
	row.Column("1")
	row.Column(fmt.Sprintf("0x%02x marker", padding.Marker))

	row = tab.Row()
	row.Column(fmt.Sprintf("%d", layout.MarkerOffset()+1))
	row.Column(fmt.Sprintf("%d", layout.Filler))
	row.Column("0x00 filler").SetFormat(tabulate.FmtItalic)

	row = tab.Row()
	row.Column(fmt.Sprintf("%d", layout.LengthOffset()))
	row.Column(fmt.Sprintf("%d", padding.LengthSize))
	row.Column(fmt.Sprintf("bit length 0x%016x", layout.BitLength))

	row = tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", layout.Total)).SetFormat(tabulate.FmtBold)
	row.Column("")

	tab.Print(w)

	for idx, block := range rec.Padded {
		fmt.Fprintf(w, "%4d  %s\n", idx, block)
	}
	if len(rec.Digest) > 0 {
		fmt.Fprintf(w, "sha256: %s\n", rec.Digest)
	}
	return nil
}
