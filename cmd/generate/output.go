package generate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/wallet"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatTOML  = "toml"
)

func isFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatTOML:
		return true
	default:
		return false
	}
}

// document is the top level of the json and toml output
type document struct {
	Batches []*wallet.Batch `json:"batches" toml:"batch"`
}

func render(w io.Writer, format string, batches []*wallet.Batch) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(document{Batches: batches}); err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(document{Batches: batches}); err != nil {
			return errors.Wrap(err, "failed to encode toml")
		}
	case formatTable:
		for _, b := range batches {
			renderTable(w, b)
		}
	default:
		return errors.Errorf("unknown output format %q", format)
	}

	return nil
}

func renderTable(w io.Writer, b *wallet.Batch) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%s (%s) batch %s", b.Chain, b.Scheme, b.ID)
	t.AppendHeader(table.Row{"#", "Path", "Address", "Public Key", "Private Key"})

	for _, wl := range b.Wallets {
		t.AppendRow(table.Row{wl.Index, wl.Path, wl.Address, wl.PublicKey, wl.PrivateKey})
	}

	t.Render()
	fmt.Fprintln(w)
}
